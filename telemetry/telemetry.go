package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/milk9111/arena3d/telemetry"

// Metrics counts combat activity. It reads the global OTel meter provider, so
// it records nothing until the host installs one. A nil *Metrics is valid and
// drops every sample.
type Metrics struct {
	shots     metric.Int64Counter
	hits      metric.Int64Counter
	evictions metric.Int64Counter
	deaths    metric.Int64Counter
}

func New() (*Metrics, error) {
	m := otel.Meter(instrumentationName)

	var (
		out Metrics
		err error
	)
	out.shots, err = m.Int64Counter(
		"arena3d.weapon.shots",
		metric.WithDescription("Shots fired"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}
	out.hits, err = m.Int64Counter(
		"arena3d.combat.hits",
		metric.WithDescription("Hits that applied damage, by path"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating hits counter: %w", err)
	}
	out.evictions, err = m.Int64Counter(
		"arena3d.pool.evictions",
		metric.WithDescription("Active projectiles recycled because the pool was full"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating evictions counter: %w", err)
	}
	out.deaths, err = m.Int64Counter(
		"arena3d.entity.deaths",
		metric.WithDescription("Entities whose health dropped to zero"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating deaths counter: %w", err)
	}
	return &out, nil
}

func (m *Metrics) Shot() {
	if m == nil {
		return
	}
	m.shots.Add(context.Background(), 1)
}

func (m *Metrics) Hit(path string) {
	if m == nil {
		return
	}
	m.hits.Add(context.Background(), 1, metric.WithAttributes(attribute.String("path", path)))
}

func (m *Metrics) Eviction() {
	if m == nil {
		return
	}
	m.evictions.Add(context.Background(), 1)
}

func (m *Metrics) Death() {
	if m == nil {
		return
	}
	m.deaths.Add(context.Background(), 1)
}
