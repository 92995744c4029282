package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axes in the right-handed, Y-up convention used by the arena.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Right   = mgl64.Vec3{1, 0, 0}
	Forward = mgl64.Vec3{0, 0, -1}
)

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// has no usable length.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// SanitizeDelta maps negative, NaN and infinite frame deltas to zero and caps
// the rest at max. A non-positive max disables the cap.
func SanitizeDelta(dt, max float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}

// YawPitch builds an orientation that yaws around +Y first and then pitches
// around the local X axis.
func YawPitch(yaw, pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up).Mul(mgl64.QuatRotate(pitch, Right))
}

// HorizontalBasis returns the local right and forward vectors of a yaw angle
// projected on the XZ plane.
func HorizontalBasis(yaw float64) (right, forward mgl64.Vec3) {
	sin, cos := math.Sincos(yaw)
	return mgl64.Vec3{cos, 0, -sin}, mgl64.Vec3{-sin, 0, -cos}
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
