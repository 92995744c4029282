package component

import "github.com/go-gl/mathgl/mgl64"

// Motion is the first-person body state. Velocity X/Z are expressed in the
// local frame of the current yaw.
type Motion struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Grounded bool
	CanJump  bool

	Yaw   float64
	Pitch float64
}

var MotionComponent = NewComponent[Motion]()

type MotionTuning struct {
	MoveSpeed       float64
	Damping         float64
	AccelMultiplier float64
	Gravity         float64
	JumpForce       float64
	EyeHeight       float64
}

func DefaultMotionTuning() MotionTuning {
	return MotionTuning{
		MoveSpeed:       15,
		Damping:         5,
		AccelMultiplier: 2,
		Gravity:         -30,
		JumpForce:       10,
		EyeHeight:       1.2,
	}
}
