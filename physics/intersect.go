package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arena3d/common"
	"github.com/milk9111/arena3d/ecs/component"
)

const epsilon = 1e-12

// rayPlane intersects a unit ray with the horizontal plane y = height.
func rayPlane(origin, dir mgl64.Vec3, height float64) (component.RayHit, bool) {
	if math.Abs(dir.Y()) < epsilon {
		return component.RayHit{}, false
	}
	t := (height - origin.Y()) / dir.Y()
	if t < 0 {
		return component.RayHit{}, false
	}
	normal := common.Up
	if origin.Y() < height {
		normal = common.Up.Mul(-1)
	}
	return component.RayHit{Point: origin.Add(dir.Mul(t)), Normal: normal, Distance: t}, true
}

// rayBox is a slab test against an axis-aligned box. Rays starting inside the
// box do not hit it.
func rayBox(origin, dir mgl64.Vec3, c component.Collider) (component.RayHit, bool) {
	minP := c.Center.Sub(c.HalfExtents)
	maxP := c.Center.Add(c.HalfExtents)

	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	axis := -1
	sign := 0.0

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < epsilon {
			if origin[i] < minP[i] || origin[i] > maxP[i] {
				return component.RayHit{}, false
			}
			continue
		}
		t1 := (minP[i] - origin[i]) / dir[i]
		t2 := (maxP[i] - origin[i]) / dir[i]
		s := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1
		}
		if t1 > tmin {
			tmin = t1
			axis = i
			sign = s
		}
		tmax = math.Min(tmax, t2)
		if tmax < tmin {
			return component.RayHit{}, false
		}
	}

	if axis < 0 || tmin < 0 || tmax < tmin {
		return component.RayHit{}, false
	}

	var normal mgl64.Vec3
	normal[axis] = sign
	return component.RayHit{Point: origin.Add(dir.Mul(tmin)), Normal: normal, Distance: tmin}, true
}

// rayCylinder intersects a Y-aligned capped cylinder. Rays starting inside do
// not hit it.
func rayCylinder(origin, dir mgl64.Vec3, c component.Collider) (component.RayHit, bool) {
	bottom := c.Center.Y() - c.Height/2
	top := c.Center.Y() + c.Height/2
	r2 := c.Radius * c.Radius

	ox := origin.X() - c.Center.X()
	oz := origin.Z() - c.Center.Z()
	if ox*ox+oz*oz <= r2 && origin.Y() >= bottom && origin.Y() <= top {
		return component.RayHit{}, false
	}

	best := math.Inf(1)
	var normal mgl64.Vec3

	a := dir.X()*dir.X() + dir.Z()*dir.Z()
	if a > epsilon {
		b := 2 * (ox*dir.X() + oz*dir.Z())
		cc := ox*ox + oz*oz - r2
		disc := b*b - 4*a*cc
		if disc >= 0 {
			t := (-b - math.Sqrt(disc)) / (2 * a)
			if t >= 0 {
				y := origin.Y() + dir.Y()*t
				if y >= bottom && y <= top {
					best = t
					normal = common.NormalizeOrZero(mgl64.Vec3{ox + dir.X()*t, 0, oz + dir.Z()*t})
				}
			}
		}
	}

	if math.Abs(dir.Y()) > epsilon {
		for _, face := range []struct {
			y float64
			n mgl64.Vec3
		}{
			{top, common.Up},
			{bottom, common.Up.Mul(-1)},
		} {
			t := (face.y - origin.Y()) / dir.Y()
			if t < 0 || t >= best {
				continue
			}
			px := ox + dir.X()*t
			pz := oz + dir.Z()*t
			if px*px+pz*pz <= r2 && face.n.Dot(dir) < 0 {
				best = t
				normal = face.n
			}
		}
	}

	if math.IsInf(best, 1) {
		return component.RayHit{}, false
	}
	return component.RayHit{Point: origin.Add(dir.Mul(best)), Normal: normal, Distance: best}, true
}
