package system

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/arena3d/common"
	"github.com/milk9111/arena3d/ecs"
	"github.com/milk9111/arena3d/ecs/component"
	"github.com/milk9111/arena3d/logging"
	"github.com/milk9111/arena3d/telemetry"
)

// Options wires a Simulation. World and Raycaster are required; zero tuning
// values fall back to the defaults.
type Options struct {
	World     *ecs.World
	Raycaster Raycaster
	Resolver  DamageResolver

	Spawn    mgl64.Vec3
	SpawnYaw float64

	Motion component.MotionTuning
	Weapon component.Weapon
	FX     component.WeaponFX
	Pool   PoolConfig

	Scripts  ScriptLoader
	Systems  []ecs.System
	Metrics  *telemetry.Metrics
	MaxDelta float64
	Logger   *slog.Logger
}

// Simulation advances every component once per frame in a fixed order:
// fire request, motion, weapon, world systems.
type Simulation struct {
	id      uuid.UUID
	world   *ecs.World
	motion  *MotionController
	weapon  *WeaponController
	idle    *IdleSystem
	effects *EffectQueue
	clock   *Clock
	events  *component.CombatEventEmitter
	systems *ecs.Scheduler

	maxDelta float64
	logger   *slog.Logger

	fireHeld bool
	ticks    uint64
}

func New(opts Options) *Simulation {
	id := uuid.New()
	logger := logging.OrDefault(opts.Logger).With("match", id.String())

	if opts.World == nil {
		opts.World = ecs.NewWorld()
	}
	if opts.Resolver == nil {
		opts.Resolver = NewWorldResolver(opts.World)
	}
	if opts.Motion == (component.MotionTuning{}) {
		opts.Motion = component.DefaultMotionTuning()
	}
	if opts.Weapon == (component.Weapon{}) {
		opts.Weapon = component.DefaultWeapon()
	}
	if opts.FX == (component.WeaponFX{}) {
		opts.FX = component.DefaultWeaponFX()
	}

	s := &Simulation{
		id:       id,
		world:    opts.World,
		effects:  NewEffectQueue(),
		clock:    &Clock{},
		events:   &component.CombatEventEmitter{},
		maxDelta: opts.MaxDelta,
		logger:   logger,
	}

	combat := &Combat{
		World:    opts.Raycaster,
		Resolver: opts.Resolver,
		Effects:  s.effects,
		Events:   s.events,
		Clock:    s.clock,
		Metrics:  opts.Metrics,
		Logger:   logger,
	}
	s.motion = NewMotionController(opts.Spawn, opts.SpawnYaw, opts.Motion)
	pool := NewProjectilePool(opts.Pool, opts.Weapon.DamagePerHit, combat)
	s.weapon = NewWeaponController(opts.Weapon, opts.FX, s.motion, pool, combat)
	s.idle = NewIdleSystem(opts.Scripts, logger)

	systems := append([]ecs.System{s.idle}, opts.Systems...)
	s.systems = ecs.NewScheduler(systems...)

	s.events.Subscribe(func(evt component.CombatEvent) {
		s.world.Events().Push(ecs.Event{Type: string(evt.Type), Data: evt})
	})

	logger.Info("simulation started", "max_delta", opts.MaxDelta, "max_bullets", pool.Cap())
	return s
}

// Tick runs one frame. dt is clamped to [0, MaxDelta]; fire and jump react to
// the key-down edge of their inputs, and only while the control mode is
// active.
func (s *Simulation) Tick(in component.Input, dt float64) {
	dt = common.SanitizeDelta(dt, s.maxDelta)
	s.ticks++
	s.clock.Advance(dt)
	s.effects.Prune(s.clock.Now())

	fire := in.Fire && !s.fireHeld
	s.fireHeld = in.Fire
	if fire && in.Active {
		s.weapon.Fire()
	}

	s.motion.Update(in, dt)
	s.weapon.Tick(dt)
	s.systems.Update(s.world, dt)
}

// DrainEvents returns the combat events raised since the last drain.
func (s *Simulation) DrainEvents() []ecs.Event {
	return s.world.Events().Drain()
}

// Subscribe registers a handler for combat events as they happen.
func (s *Simulation) Subscribe(h component.CombatEventHandler) {
	s.events.Subscribe(h)
}

func (s *Simulation) ID() uuid.UUID             { return s.id }
func (s *Simulation) Ticks() uint64             { return s.ticks }
func (s *Simulation) World() *ecs.World         { return s.world }
func (s *Simulation) Motion() *MotionController { return s.motion }
func (s *Simulation) Weapon() *WeaponController { return s.weapon }
func (s *Simulation) Idle() *IdleSystem         { return s.idle }
func (s *Simulation) Effects() *EffectQueue     { return s.effects }
func (s *Simulation) Clock() *Clock             { return s.clock }
func (s *Simulation) Logger() *slog.Logger      { return s.logger }
