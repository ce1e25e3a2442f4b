package geometry

import (
	"testing"

	"github.com/arcweave/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_Hit(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), dummyMaterial{})

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "front face",
			ray:       core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1)),
			shouldHit: true,
			expectedT: 2.0,
		},
		{
			name:      "left face",
			ray:       core.NewRay(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0)),
			shouldHit: true,
			expectedT: 2.0,
		},
		{
			name:      "misses box",
			ray:       core.NewRay(core.NewVec3(0, 3, -3), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:      "ray starting inside exits through a face",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			shouldHit: true,
			expectedT: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(tt.ray, 0.001, 10.0)
			require.Equal(t, tt.shouldHit, isHit)
			if tt.shouldHit {
				assert.InDelta(t, tt.expectedT, hit.T, 1e-6)
				assert.InDelta(t, 0.0, tt.ray.At(hit.T).Subtract(hit.Point).Length(), 1e-6)
			}
		})
	}
}

func TestBox_BoundingBox(t *testing.T) {
	box := NewBox(core.NewVec3(1, 1, 1.5), core.NewVec3(3, 5, 5.5), dummyMaterial{})

	bbox, ok := box.BoundingBox(0, 1)
	require.True(t, ok)
	assert.True(t, bbox.Min.Equals(core.NewVec3(1, 1, 1.5)))
	assert.True(t, bbox.Max.Equals(core.NewVec3(3, 5, 5.5)))
}
