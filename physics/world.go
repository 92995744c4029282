package physics

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena3d/common"
	"github.com/milk9111/arena3d/ecs/component"
)

// World answers ray queries against the arena. Every collider is indexed in a
// Chipmunk space by its XZ footprint; the space narrows the candidates and the
// exact test runs in 3D.
type World struct {
	space  *cp.Space
	bounds cp.BB
	empty  bool

	shapes   map[*cp.Shape]entry
	byObject map[uint64][]*cp.Shape

	ground    bool
	groundY   float64
	groundObj uint64
}

type entry struct {
	object   uint64
	collider component.Collider
}

// NewWorld creates an empty world without a ground plane.
func NewWorld() *World {
	return &World{
		space:    cp.NewSpace(),
		empty:    true,
		shapes:   make(map[*cp.Shape]entry),
		byObject: make(map[uint64][]*cp.Shape),
	}
}

// SetGround registers an infinite horizontal plane owned by object.
func (pw *World) SetGround(object uint64, height float64) {
	if pw == nil {
		return
	}
	pw.ground = true
	pw.groundY = height
	pw.groundObj = object
}

// Add registers a collider for object. Objects may own several colliders.
func (pw *World) Add(object uint64, c component.Collider) bool {
	if pw == nil || object == 0 {
		return false
	}

	var shape *cp.Shape
	switch c.Shape {
	case component.ShapeBox:
		if c.HalfExtents.X() <= 0 || c.HalfExtents.Y() <= 0 || c.HalfExtents.Z() <= 0 {
			return false
		}
		bb := cp.BB{
			L: c.Center.X() - c.HalfExtents.X(),
			B: c.Center.Z() - c.HalfExtents.Z(),
			R: c.Center.X() + c.HalfExtents.X(),
			T: c.Center.Z() + c.HalfExtents.Z(),
		}
		shape = cp.NewBox2(pw.space.StaticBody, bb, 0)
	case component.ShapeCylinder:
		if c.Radius <= 0 || c.Height <= 0 {
			return false
		}
		shape = cp.NewCircle(pw.space.StaticBody, c.Radius, footprint(c.Center))
	default:
		return false
	}

	pw.space.AddShape(shape)
	pw.shapes[shape] = entry{object: object, collider: c}
	pw.byObject[object] = append(pw.byObject[object], shape)

	if pw.empty {
		pw.bounds = shape.BB()
		pw.empty = false
	} else {
		pw.bounds = pw.bounds.Merge(shape.BB())
	}
	return true
}

// RemoveCollidable drops every collider owned by object, including the ground
// plane. It reports whether anything was removed.
func (pw *World) RemoveCollidable(object uint64) bool {
	if pw == nil {
		return false
	}
	removed := false
	if pw.ground && pw.groundObj == object {
		pw.ground = false
		removed = true
	}
	shapes, ok := pw.byObject[object]
	if !ok {
		return removed
	}
	for _, shape := range shapes {
		pw.space.RemoveShape(shape)
		delete(pw.shapes, shape)
	}
	delete(pw.byObject, object)
	return true
}

// Contains reports whether object still owns a collider.
func (pw *World) Contains(object uint64) bool {
	if pw == nil {
		return false
	}
	if pw.ground && pw.groundObj == object {
		return true
	}
	_, ok := pw.byObject[object]
	return ok
}

// Raycast returns the nearest intersection of the ray within maxDist. dir need
// not be normalized; a zero dir never hits. Pass math.Inf(1) for an unbounded
// query.
func (pw *World) Raycast(origin, dir mgl64.Vec3, maxDist float64) (component.RayHit, bool) {
	var best component.RayHit
	if pw == nil || !(maxDist > 0) {
		return best, false
	}
	dir = common.NormalizeOrZero(dir)
	if dir == (mgl64.Vec3{}) {
		return best, false
	}

	found := false
	consider := func(hit component.RayHit) {
		if hit.Distance < 0 || hit.Distance > maxDist {
			return
		}
		if !found || hit.Distance < best.Distance || (hit.Distance == best.Distance && hit.Object < best.Object) {
			best = hit
			found = true
		}
	}

	if pw.ground {
		if hit, ok := rayPlane(origin, dir, pw.groundY); ok {
			hit.Object = pw.groundObj
			consider(hit)
		}
	}

	for _, e := range pw.candidates(origin, dir, maxDist) {
		var (
			hit component.RayHit
			ok  bool
		)
		switch e.collider.Shape {
		case component.ShapeBox:
			hit, ok = rayBox(origin, dir, e.collider)
		case component.ShapeCylinder:
			hit, ok = rayCylinder(origin, dir, e.collider)
		}
		if ok {
			hit.Object = e.object
			consider(hit)
		}
	}
	return best, found
}

// candidates collects colliders whose footprint the ray crosses or starts in.
func (pw *World) candidates(origin, dir mgl64.Vec3, maxDist float64) []entry {
	if len(pw.shapes) == 0 {
		return nil
	}

	start := footprint(origin)
	seen := make(map[*cp.Shape]struct{})
	collect := func(shape *cp.Shape) {
		if _, ok := pw.shapes[shape]; ok {
			seen[shape] = struct{}{}
		}
	}

	// Footprints containing the start point; vertical rays only get these.
	pw.space.BBQuery(cp.NewBBForCircle(start, 0), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		collect(shape)
	}, nil)

	horizontal := math.Hypot(dir.X(), dir.Z())
	if horizontal > 1e-9 {
		reach := pw.reach(start)/horizontal + 1
		if maxDist < reach {
			reach = maxDist
		}
		end := cp.Vector{X: origin.X() + dir.X()*reach, Y: origin.Z() + dir.Z()*reach}
		pw.space.SegmentQuery(start, end, 0, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ cp.Vector, _ cp.Vector, _ float64, _ interface{}) {
			collect(shape)
		}, nil)
	}

	out := make([]entry, 0, len(seen))
	for shape := range seen {
		out = append(out, pw.shapes[shape])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].object < out[j].object })
	return out
}

// reach is the XZ distance from p to the farthest corner of the indexed
// footprints.
func (pw *World) reach(p cp.Vector) float64 {
	far := 0.0
	for _, c := range []cp.Vector{
		{X: pw.bounds.L, Y: pw.bounds.B},
		{X: pw.bounds.L, Y: pw.bounds.T},
		{X: pw.bounds.R, Y: pw.bounds.B},
		{X: pw.bounds.R, Y: pw.bounds.T},
	} {
		far = math.Max(far, p.Distance(c))
	}
	return far
}

// ForEachCollider visits colliders ordered by owning object.
func (pw *World) ForEachCollider(fn func(object uint64, c component.Collider)) {
	if pw == nil || fn == nil {
		return
	}
	objects := make([]uint64, 0, len(pw.byObject))
	for object := range pw.byObject {
		objects = append(objects, object)
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i] < objects[j] })
	for _, object := range objects {
		for _, shape := range pw.byObject[object] {
			fn(object, pw.shapes[shape].collider)
		}
	}
}

func footprint(v mgl64.Vec3) cp.Vector {
	return cp.Vector{X: v.X(), Y: v.Z()}
}
