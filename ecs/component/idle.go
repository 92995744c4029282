package component

// Idle drives the ambient behaviour of a live actor. When Script is empty the
// actor spins around +Y at SpinRate radians per second.
type Idle struct {
	SpinRate float64
	Script   string
}

var IdleComponent = NewComponent[Idle]()
