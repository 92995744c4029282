package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arena3d/ecs/component"
	"github.com/milk9111/arena3d/ecs/system"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// PlayerSpec is the first-person body tuning. Zero fields keep the default.
type PlayerSpec struct {
	Name            string   `yaml:"name"`
	Spawn           Vec3Spec `yaml:"spawn"`
	SpawnYaw        float64  `yaml:"spawn_yaw"`
	MoveSpeed       float64  `yaml:"move_speed"`
	Damping         float64  `yaml:"damping"`
	AccelMultiplier float64  `yaml:"accel_multiplier"`
	Gravity         float64  `yaml:"gravity"`
	JumpForce       float64  `yaml:"jump_force"`
	EyeHeight       float64  `yaml:"eye_height"`
}

func LoadPlayerSpec(filename string) (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (p *PlayerSpec) Tuning() component.MotionTuning {
	t := component.DefaultMotionTuning()
	if p == nil {
		return t
	}
	override(&t.MoveSpeed, p.MoveSpeed)
	override(&t.Damping, p.Damping)
	override(&t.AccelMultiplier, p.AccelMultiplier)
	override(&t.Gravity, p.Gravity)
	override(&t.JumpForce, p.JumpForce)
	override(&t.EyeHeight, p.EyeHeight)
	return t
}

// WeaponSpec tunes the gun, its projectile pool and its effects. Zero fields
// keep the default.
type WeaponSpec struct {
	Name             string  `yaml:"name"`
	Damage           int     `yaml:"damage"`
	FireRatePeriod   float64 `yaml:"fire_rate_period"`
	MaxRange         float64 `yaml:"max_range"`
	BulletSpeed      float64 `yaml:"bullet_speed"`
	BulletLifetime   float64 `yaml:"bullet_lifetime"`
	MaxBullets       int     `yaml:"max_bullets"`
	MuzzleFlashMS    int     `yaml:"muzzle_flash_ms"`
	HitMarkerMS      int     `yaml:"hit_marker_ms"`
	HitMarkerMaxSize float64 `yaml:"hit_marker_max_size"`
	HitMarkerScale   float64 `yaml:"hit_marker_scale"`
}

func LoadWeaponSpec(filename string) (*WeaponSpec, error) {
	spec, err := LoadSpec[WeaponSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *WeaponSpec) Weapon() component.Weapon {
	w := component.DefaultWeapon()
	if s == nil {
		return w
	}
	if s.Damage > 0 {
		w.DamagePerHit = s.Damage
	}
	override(&w.FireRatePeriod, s.FireRatePeriod)
	override(&w.MaxRange, s.MaxRange)
	override(&w.BulletSpeed, s.BulletSpeed)
	override(&w.BulletLifetime, s.BulletLifetime)
	return w
}

func (s *WeaponSpec) FX() component.WeaponFX {
	fx := component.DefaultWeaponFX()
	if s == nil {
		return fx
	}
	if s.MuzzleFlashMS > 0 {
		fx.MuzzleFlash = time.Duration(s.MuzzleFlashMS) * time.Millisecond
	}
	if s.HitMarkerMS > 0 {
		fx.HitMarker = time.Duration(s.HitMarkerMS) * time.Millisecond
	}
	override(&fx.HitMarkerMaxSize, s.HitMarkerMaxSize)
	override(&fx.HitMarkerScale, s.HitMarkerScale)
	return fx
}

func (s *WeaponSpec) Pool() system.PoolConfig {
	cfg := system.DefaultPoolConfig()
	if s != nil && s.MaxBullets > 0 {
		cfg.MaxBullets = s.MaxBullets
	}
	return cfg
}

// ArenaSpec lays out the static props and the enemies of a match.
type ArenaSpec struct {
	Name    string      `yaml:"name"`
	Ground  GroundSpec  `yaml:"ground"`
	Props   []PropSpec  `yaml:"props"`
	Enemies []EnemySpec `yaml:"enemies"`
}

func LoadArenaSpec(filename string) (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type GroundSpec struct {
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

// PropSpec is a static, non-damageable collider. Shape is "box" or
// "cylinder"; boxes use Size, cylinders Radius and Height.
type PropSpec struct {
	Name   string     `yaml:"name"`
	Shape  string     `yaml:"shape"`
	Center Vec3Spec   `yaml:"center"`
	Size   Vec3Spec   `yaml:"size"`
	Radius float64    `yaml:"radius"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

func (p PropSpec) Collider() (component.Collider, error) {
	switch strings.ToLower(strings.TrimSpace(p.Shape)) {
	case "", "box":
		return component.BoxCollider(p.Center.Vec3(), p.Size.Vec3()), nil
	case "cylinder":
		return component.CylinderCollider(p.Center.Vec3(), p.Radius, p.Height), nil
	default:
		return component.Collider{}, fmt.Errorf("prop %q: unknown shape %q", p.Name, p.Shape)
	}
}

// EnemySpec is a damageable cylinder standing on Position.
type EnemySpec struct {
	Name     string     `yaml:"name"`
	Position Vec3Spec   `yaml:"position"`
	Health   int        `yaml:"health"`
	Radius   float64    `yaml:"radius"`
	Height   float64    `yaml:"height"`
	SpinRate float64    `yaml:"spin_rate"`
	Script   string     `yaml:"script"`
	Color    *YAMLColor `yaml:"color"`
}

type YAMLColor struct {
	color.Color
}

// Or returns the parsed colour, or fallback when none was set.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func override(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
