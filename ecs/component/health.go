package component

const DefaultHealth = 100

// Health makes a KindEntity object damageable. Current may drop below zero;
// Alive latches to false the first time it reaches zero or less.
type Health struct {
	Current int
	Max     int
	Alive   bool

	OnDamage func(h *Health, amount int)
	OnDeath  func(h *Health)
}

var HealthComponent = NewComponent[Health]()

// NewHealth creates a live Health component with current set to max.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = DefaultHealth
	}
	return &Health{Current: max, Max: max, Alive: true}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && h.Alive
}

// ApplyDamage subtracts amount from a live entity. Returns true if damage was
// applied.
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || !h.Alive || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.OnDamage != nil {
		h.OnDamage(h, amount)
	}
	if h.Current <= 0 {
		h.Alive = false
		if h.OnDeath != nil {
			h.OnDeath(h)
		}
	}
	return true
}
