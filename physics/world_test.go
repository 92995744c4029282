package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arena3d/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const (
	groundID uint64 = 1
	cubeID   uint64 = 2
	leftID   uint64 = 3
	farID    uint64 = 4
)

func newArena(t *testing.T) *World {
	t.Helper()
	pw := NewWorld()
	pw.SetGround(groundID, 0)
	require.True(t, pw.Add(cubeID, component.BoxCollider(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{1, 1, 1})))
	require.True(t, pw.Add(leftID, component.CylinderCollider(mgl64.Vec3{-5, 0, -10}, 0.5, 2)))
	return pw
}

func TestRaycast(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		name    string
		origin  mgl64.Vec3
		dir     mgl64.Vec3
		maxDist float64
		hit     bool
		object  uint64
		dist    float64
		normal  mgl64.Vec3
	}{
		{"cube_front_face", mgl64.Vec3{0, 0.5, 3}, mgl64.Vec3{0, 0, -1}, inf, true, cubeID, 2.5, mgl64.Vec3{0, 0, 1}},
		{"cube_beyond_max", mgl64.Vec3{0, 0.5, 3}, mgl64.Vec3{0, 0, -1}, 2, false, 0, 0, mgl64.Vec3{}},
		{"cylinder_side", mgl64.Vec3{-5, 0.5, 0}, mgl64.Vec3{0, 0, -1}, inf, true, leftID, 9.5, mgl64.Vec3{0, 0, 1}},
		{"cube_top_before_ground", mgl64.Vec3{0, 1.6, 0}, mgl64.Vec3{0, -1, 0}, inf, true, cubeID, 0.6, mgl64.Vec3{0, 1, 0}},
		{"ground", mgl64.Vec3{3, 1.6, 3}, mgl64.Vec3{0, -2, 0}, inf, true, groundID, 1.6, mgl64.Vec3{0, 1, 0}},
		{"level_miss", mgl64.Vec3{0, 1.6, 3}, mgl64.Vec3{0, 0, -1}, inf, false, 0, 0, mgl64.Vec3{}},
		{"zero_dir", mgl64.Vec3{0, 0.5, 3}, mgl64.Vec3{}, inf, false, 0, 0, mgl64.Vec3{}},
		{"cylinder_cap", mgl64.Vec3{-5, 5, -10}, mgl64.Vec3{0, -1, 0}, inf, true, leftID, 4, mgl64.Vec3{0, 1, 0}},
	}

	pw := newArena(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hit, ok := pw.Raycast(c.origin, c.dir, c.maxDist)
			require.Equal(t, c.hit, ok)
			if !c.hit {
				return
			}
			assert.Equal(t, c.object, hit.Object)
			assert.InDelta(t, c.dist, hit.Distance, 1e-9)
			assert.Less(t, hit.Normal.Sub(c.normal).Len(), 1e-9, "normal %v", hit.Normal)
		})
	}
}

func TestRaycastStraightDownInsideFootprint(t *testing.T) {
	pw := NewWorld()
	require.True(t, pw.Add(cubeID, component.BoxCollider(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{1, 1, 1})))

	hit, ok := pw.Raycast(mgl64.Vec3{0.2, 3, 0.1}, mgl64.Vec3{0, -1, 0}, math.Inf(1))
	require.True(t, ok)
	assert.Equal(t, cubeID, hit.Object)
	assert.InDelta(t, 2, hit.Distance, 1e-9)
	assert.InDelta(t, 1, hit.Point.Y(), 1e-9)
	assert.Less(t, hit.Normal.Sub(mgl64.Vec3{0, 1, 0}).Len(), 1e-9)

	pw.SetGround(groundID, 0)
	hit, ok = pw.Raycast(mgl64.Vec3{0.2, 3, 0.1}, mgl64.Vec3{0, -1, 0}, math.Inf(1))
	require.True(t, ok)
	assert.Equal(t, cubeID, hit.Object)

	_, ok = pw.Raycast(mgl64.Vec3{2, 3, 2}, mgl64.Vec3{0, -1, 0}, 10)
	require.True(t, ok)
}

func TestRaycastUnboundedReachesFarColliders(t *testing.T) {
	pw := NewWorld()
	require.True(t, pw.Add(farID, component.BoxCollider(mgl64.Vec3{0, 0.5, -500}, mgl64.Vec3{1, 1, 1})))

	hit, ok := pw.Raycast(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 0, -1}, math.Inf(1))
	require.True(t, ok)
	assert.Equal(t, farID, hit.Object)
	assert.InDelta(t, 499.5, hit.Distance, 1e-9)
}

func TestRemoveCollidable(t *testing.T) {
	pw := newArena(t)

	require.True(t, pw.RemoveCollidable(leftID))
	assert.False(t, pw.Contains(leftID))
	assert.False(t, pw.RemoveCollidable(leftID))

	_, ok := pw.Raycast(mgl64.Vec3{-5, 0.5, 0}, mgl64.Vec3{0, 0, -1}, math.Inf(1))
	assert.False(t, ok)

	hit, ok := pw.Raycast(mgl64.Vec3{0, 0.5, 3}, mgl64.Vec3{0, 0, -1}, math.Inf(1))
	require.True(t, ok)
	assert.Equal(t, cubeID, hit.Object)
}

func TestForEachColliderOrdersByObject(t *testing.T) {
	pw := newArena(t)
	require.True(t, pw.Add(farID, component.BoxCollider(mgl64.Vec3{0, 0.5, -500}, mgl64.Vec3{1, 1, 1})))
	require.True(t, pw.RemoveCollidable(leftID))

	var objects []uint64
	pw.ForEachCollider(func(object uint64, _ component.Collider) {
		objects = append(objects, object)
	})
	assert.Equal(t, []uint64{cubeID, farID}, objects, "ground is a plane, not a collider")
}

func TestAddRejectsDegenerateColliders(t *testing.T) {
	pw := NewWorld()
	assert.False(t, pw.Add(cubeID, component.BoxCollider(mgl64.Vec3{}, mgl64.Vec3{0, 1, 1})))
	assert.False(t, pw.Add(cubeID, component.CylinderCollider(mgl64.Vec3{}, 0, 1)))
	assert.False(t, pw.Add(0, component.BoxCollider(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})))
	assert.False(t, pw.Contains(cubeID))
}

func TestRaycastTowardBoxCenterHits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		center := mgl64.Vec3{
			rapid.Float64Range(-50, 50).Draw(t, "cx"),
			rapid.Float64Range(-50, 50).Draw(t, "cy"),
			rapid.Float64Range(-50, 50).Draw(t, "cz"),
		}
		size := mgl64.Vec3{
			rapid.Float64Range(0.1, 5).Draw(t, "sx"),
			rapid.Float64Range(0.1, 5).Draw(t, "sy"),
			rapid.Float64Range(0.1, 5).Draw(t, "sz"),
		}
		yaw := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "yaw")
		pitch := rapid.Float64Range(-1.4, 1.4).Draw(t, "pitch")
		dist := rapid.Float64Range(10, 200).Draw(t, "dist")

		offset := component.NewPose(mgl64.Vec3{}, yaw, pitch).Forward().Mul(dist)
		origin := center.Add(offset)

		pw := NewWorld()
		if !pw.Add(cubeID, component.BoxCollider(center, size)) {
			t.Fatalf("box rejected")
		}
		hit, ok := pw.Raycast(origin, offset.Mul(-1), math.Inf(1))
		if !ok {
			t.Fatalf("expected hit from %v toward %v", origin, center)
		}
		if hit.Object != cubeID || hit.Distance > dist {
			t.Fatalf("unexpected hit %+v (dist to center %v)", hit, dist)
		}
	})
}
