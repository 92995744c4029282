package component

import "github.com/go-gl/mathgl/mgl64"

type ColliderShape uint8

const (
	ShapeBox ColliderShape = iota + 1
	// ShapeCylinder is a Y-aligned cylinder centred on Center.
	ShapeCylinder
)

type Collider struct {
	Shape       ColliderShape
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
	Radius      float64
	Height      float64
}

var ColliderComponent = NewComponent[Collider]()

func BoxCollider(center, size mgl64.Vec3) Collider {
	return Collider{Shape: ShapeBox, Center: center, HalfExtents: size.Mul(0.5)}
}

func CylinderCollider(center mgl64.Vec3, radius, height float64) Collider {
	return Collider{Shape: ShapeCylinder, Center: center, Radius: radius, Height: height}
}

// RayHit is the nearest intersection reported by a world query.
type RayHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Object   uint64
}
