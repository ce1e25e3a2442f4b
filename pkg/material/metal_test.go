package material

import (
	"testing"

	"github.com/arcweave/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name      string
		input     float64
		expected  float64
	}{
		{"valid 0.0", 0.0, 0.0},
		{"valid 0.5", 0.5, 0.5},
		{"valid 1.0", 1.0, 1.0},
		{"clamp above 1.0", 1.5, 1.0},
		{"clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.input)
			assert.Equal(t, tt.expected, metal.Fuzz)
		})
	}
}

// TestMetal_ZeroFuzzMirrorReflection: a zero-fuzz metal hit at 45
// degrees must scatter in the exact mirror-reflected direction.
func TestMetal_ZeroFuzzMirrorReflection(t *testing.T) {
	albedo := core.NewVec3(1, 1, 1)
	metal := NewMetal(albedo, 0.0)
	random := core.NewRNG(42)

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	require.True(t, didScatter)

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()
	assert.InDelta(t, 0.0, actual.Subtract(expected).Length(), 1e-9)
	assert.Equal(t, albedo, scatter.Attenuation)
}

func TestMetal_FuzzIntroducesVariation(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	random := core.NewRNG(42)

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	var directions []core.Vec3
	for i := 0; i < 10; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, random)
		if didScatter {
			directions = append(directions, scatter.Scattered.Direction.Normalize())
		}
	}

	require.NotEmpty(t, directions)
	allSame := true
	for _, d := range directions[1:] {
		if d.Subtract(directions[0]).Length() > 1e-9 {
			allSame = false
			break
		}
	}
	assert.False(t, allSame, "fuzzy metal should vary its reflection direction")
}

func TestMetal_AbsorbsRaysBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	random := core.NewRNG(123)

	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01).Normalize())
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	absorbed, scattered := 0, 0
	for i := 0; i < 1000; i++ {
		_, didScatter := metal.Scatter(rayIn, hit, random)
		if didScatter {
			scattered++
		} else {
			absorbed++
		}
	}

	assert.Greater(t, absorbed, 0, "grazing angle + max fuzz should absorb some rays")
	assert.Greater(t, scattered, 0)
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		incident core.Vec3
		normal   core.Vec3
		expected core.Vec3
	}{
		{
			name:     "45 degree reflection",
			incident: core.NewVec3(1, 0, -1).Normalize(),
			normal:   core.NewVec3(0, 0, 1),
			expected: core.NewVec3(1, 0, 1).Normalize(),
		},
		{
			name:     "normal incidence",
			incident: core.NewVec3(0, 0, -1),
			normal:   core.NewVec3(0, 0, 1),
			expected: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := core.Reflect(tt.incident, tt.normal)
			assert.InDelta(t, 0.0, result.Subtract(tt.expected).Length(), 1e-9)
		})
	}
}
