package geometry

import (
	"testing"

	"github.com/arcweave/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dummyMaterial never scatters; used where only geometry matters.
type dummyMaterial struct{}

func (d dummyMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, random *core.RNG) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (d dummyMaterial) Emitted() core.Color { return core.Vec3{} }

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	_, isHit := sphere.Hit(ray, 0.001, 1000.0)
	assert.False(t, isHit)
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{})

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			require.True(t, isHit)
			assert.InDelta(t, tt.expectedT, hit.T, 1e-9)
			assert.Equal(t, tt.expectedFront, hit.FrontFace)
			assert.True(t, hit.Normal.Equals(tt.expectedNormal))
		})
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{})
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	require.True(t, isHit)
	assert.True(t, hit.Point.Equals(core.NewVec3(1, 0, 0)))
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	_, isHit := sphere.Hit(ray, 0.001, 0.5)
	assert.False(t, isHit, "hit beyond tMax must be rejected")

	_, isHit = sphere.Hit(ray, 3.5, 1000.0)
	assert.False(t, isHit, "hit before tMin must be rejected")
}

func TestSphere_Hit_ClosestIntersection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	require.True(t, isHit)
	assert.InDelta(t, 1.0, hit.T, 1e-9)
	assert.True(t, hit.FrontFace)
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0, dummyMaterial{})
	box, ok := sphere.BoundingBox(0, 1)
	require.True(t, ok)
	assert.True(t, box.Min.Equals(core.NewVec3(-1, 0, 1)))
	assert.True(t, box.Max.Equals(core.NewVec3(3, 4, 5)))
}
