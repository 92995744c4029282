package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arena3d/common"
)

// Pose is a position plus orientation. Forward is local -Z.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

func NewPose(position mgl64.Vec3, yaw, pitch float64) Pose {
	return Pose{Position: position, Orientation: common.YawPitch(yaw, pitch)}
}

func (p Pose) Forward() mgl64.Vec3 {
	return common.NormalizeOrZero(p.orientation().Rotate(common.Forward))
}

func (p Pose) Right() mgl64.Vec3 {
	return common.NormalizeOrZero(p.orientation().Rotate(common.Right))
}

// orientation treats the zero quaternion as identity.
func (p Pose) orientation() mgl64.Quat {
	if p.Orientation.W == 0 && p.Orientation.V == (mgl64.Vec3{}) {
		return mgl64.QuatIdent()
	}
	return p.Orientation
}
