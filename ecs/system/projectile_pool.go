package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arena3d/ecs/component"
)

// ProjectileHandle indexes a pool slot. Handles stay valid for the life of
// the pool but the slot may be reused by a later spawn.
type ProjectileHandle int

type PoolConfig struct {
	MaxBullets  int
	QueryMargin float64
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{MaxBullets: 30, QueryMargin: 1.1}
}

// ProjectilePool is a fixed-capacity arena of projectiles. Slots are toggled
// and overwritten, never freed. When every slot is active the one spawned
// earliest is recycled.
type ProjectilePool struct {
	cfg    PoolConfig
	slots  []component.Projectile
	seq    uint64
	damage int
	combat *Combat
}

func NewProjectilePool(cfg PoolConfig, damage int, combat *Combat) *ProjectilePool {
	def := DefaultPoolConfig()
	if cfg.MaxBullets <= 0 {
		cfg.MaxBullets = def.MaxBullets
	}
	if cfg.QueryMargin <= 0 {
		cfg.QueryMargin = def.QueryMargin
	}
	return &ProjectilePool{
		cfg:    cfg,
		slots:  make([]component.Projectile, 0, cfg.MaxBullets),
		damage: damage,
		combat: combat,
	}
}

// Spawn activates a projectile at origin travelling along its forward axis.
func (p *ProjectilePool) Spawn(origin component.Pose, speed, lifetime float64) ProjectileHandle {
	idx := p.freeSlot()
	if idx < 0 && len(p.slots) < p.cfg.MaxBullets {
		p.slots = append(p.slots, component.Projectile{})
		idx = len(p.slots) - 1
	}
	if idx < 0 {
		idx = p.oldestActive()
		if p.combat != nil {
			p.combat.Metrics.Eviction()
			p.combat.logger().Debug("projectile pool full, recycling oldest", "slot", idx, "seq", p.slots[idx].Seq)
		}
	}

	p.seq++
	p.slots[idx] = component.Projectile{
		Active:    true,
		Position:  origin.Position,
		Velocity:  origin.Forward().Mul(speed),
		Remaining: lifetime,
		Seq:       p.seq,
	}
	return ProjectileHandle(idx)
}

// Advance moves every active projectile and runs its collision query. The
// query covers the whole step from the pre-move position with a small margin.
// A projectile whose lifetime runs out this step still gets its query.
func (p *ProjectilePool) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range p.slots {
		pr := &p.slots[i]
		if !pr.Active {
			continue
		}

		prev := pr.Position
		pr.Position = prev.Add(pr.Velocity.Mul(dt))
		pr.Remaining -= dt
		if pr.Remaining <= 0 {
			pr.Active = false
		}

		speed := pr.Velocity.Len()
		if speed == 0 || p.combat == nil || p.combat.World == nil {
			continue
		}
		hit, ok := p.combat.World.Raycast(prev, pr.Velocity, speed*dt*p.cfg.QueryMargin)
		if !ok {
			continue
		}
		pr.Active = false
		p.combat.applyHit(component.HitPathProjectile, hit, p.damage)
	}
}

// CullOutOfRange deactivates active projectiles farther than maxRange from
// anchor and returns how many were culled.
func (p *ProjectilePool) CullOutOfRange(anchor mgl64.Vec3, maxRange float64) int {
	if maxRange <= 0 {
		return 0
	}
	culled := 0
	for i := range p.slots {
		pr := &p.slots[i]
		if pr.Active && pr.Position.Sub(anchor).Len() > maxRange {
			pr.Active = false
			culled++
		}
	}
	return culled
}

func (p *ProjectilePool) SetDamage(damage int) {
	p.damage = damage
}

// Len is the number of allocated slots.
func (p *ProjectilePool) Len() int {
	return len(p.slots)
}

func (p *ProjectilePool) Cap() int {
	return p.cfg.MaxBullets
}

func (p *ProjectilePool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

func (p *ProjectilePool) Get(h ProjectileHandle) (component.Projectile, bool) {
	if h < 0 || int(h) >= len(p.slots) {
		return component.Projectile{}, false
	}
	return p.slots[h], true
}

// ForEachActive visits active projectiles in slot order.
func (p *ProjectilePool) ForEachActive(fn func(h ProjectileHandle, pr component.Projectile)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(ProjectileHandle(i), p.slots[i])
		}
	}
}

func (p *ProjectilePool) freeSlot() int {
	for i := range p.slots {
		if !p.slots[i].Active {
			return i
		}
	}
	return -1
}

func (p *ProjectilePool) oldestActive() int {
	oldest := 0
	for i := range p.slots {
		if p.slots[i].Seq < p.slots[oldest].Seq {
			oldest = i
		}
	}
	return oldest
}
