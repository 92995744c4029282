package component

import "github.com/go-gl/mathgl/mgl64"

// Transform places an actor in the arena. Yaw is the rotation around +Y in
// radians.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
}

var TransformComponent = NewComponent[Transform]()
