package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arena3d/common"
	"github.com/milk9111/arena3d/ecs/component"
)

const pitchLimit = math.Pi/2 - 1e-3

// MotionController integrates first-person movement: gravity, damping,
// acceleration along the view yaw, a ground clamp at eye height and
// edge-triggered jumps. It also owns the view orientation.
type MotionController struct {
	state    component.Motion
	tuning   component.MotionTuning
	jumpHeld bool
}

func NewMotionController(spawn mgl64.Vec3, yaw float64, tuning component.MotionTuning) *MotionController {
	return &MotionController{
		state:  component.Motion{Position: spawn, Yaw: yaw},
		tuning: tuning,
	}
}

// Update advances the motion state by dt seconds. Nothing moves while the
// control mode is inactive, and a jump press made then stays pending.
func (m *MotionController) Update(in component.Input, dt float64) {
	if m == nil || !in.Active {
		return
	}

	jump := in.Jump && !m.jumpHeld
	m.jumpHeld = in.Jump

	s := &m.state
	t := m.tuning

	s.Yaw += in.LookYaw
	s.Pitch = common.Clamp(s.Pitch+in.LookPitch, -pitchLimit, pitchLimit)

	dir := common.NormalizeOrZero(mgl64.Vec3{
		axis(in.Right, in.Left),
		0,
		axis(in.Forward, in.Backward),
	})

	s.Velocity[1] += t.Gravity * dt

	s.Velocity[0] -= s.Velocity[0] * t.Damping * dt
	s.Velocity[2] -= s.Velocity[2] * t.Damping * dt

	s.Velocity[2] -= dir.Z() * t.MoveSpeed * dt * t.AccelMultiplier
	s.Velocity[0] -= dir.X() * t.MoveSpeed * dt * t.AccelMultiplier

	right, forward := common.HorizontalBasis(s.Yaw)
	s.Position = s.Position.
		Add(right.Mul(-s.Velocity.X() * dt)).
		Add(forward.Mul(-s.Velocity.Z() * dt))
	s.Position[1] += s.Velocity.Y() * dt

	if s.Position.Y() <= t.EyeHeight {
		s.Position[1] = t.EyeHeight
		s.Velocity[1] = 0
		s.Grounded = true
		s.CanJump = true
	} else {
		s.Grounded = false
	}

	if jump && s.Grounded && s.CanJump {
		s.Velocity[1] = t.JumpForce
		s.Grounded = false
		s.CanJump = false
	}
}

// Pose is the eye position and view orientation.
func (m *MotionController) Pose() component.Pose {
	if m == nil {
		return component.Pose{Orientation: mgl64.QuatIdent()}
	}
	return component.NewPose(m.state.Position, m.state.Yaw, m.state.Pitch)
}

func (m *MotionController) State() component.Motion {
	return m.state
}

func (m *MotionController) Tuning() component.MotionTuning {
	return m.tuning
}

func (m *MotionController) SetTuning(t component.MotionTuning) {
	m.tuning = t
}

func axis(pos, neg bool) float64 {
	v := 0.0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
