package component

// Input is the raw per-frame control state sampled by the host. Booleans are
// key levels; edges are derived by the systems that consume them. Look deltas
// are already scaled to radians.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
	Fire     bool

	LookYaw   float64
	LookPitch float64

	// Active is false while the pointer is not captured by the window.
	Active bool
}

var InputComponent = NewComponent[Input]()
