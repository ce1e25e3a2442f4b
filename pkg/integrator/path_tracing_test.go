package integrator

import (
	"testing"

	"github.com/arcweave/pathtracer/pkg/core"
	"github.com/arcweave/pathtracer/pkg/geometry"
	"github.com/arcweave/pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathTracer_ZeroDepthIsBlack(t *testing.T) {
	pt := NewPathTracer()
	scene := core.NewScene(nil, core.DefaultBackground())
	require.NoError(t, scene.Build(0, 0, nil))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := pt.RayColor(ray, scene, core.NewRNG(1), 0)
	assert.Equal(t, core.Color{}, color)
}

func TestPathTracer_MissReturnsBackground(t *testing.T) {
	pt := NewPathTracer()
	background := core.DefaultBackground()
	scene := core.NewScene(nil, background)
	require.NoError(t, scene.Build(0, 0, nil))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	color := pt.RayColor(ray, scene, core.NewRNG(1), 10)
	assert.Equal(t, background.At(ray.Direction), color)
}

// TestPathTracer_EmissiveHitIgnoresBackground covers spec scenario F: a
// ray that directly hits a DiffuseLight returns exactly the light's
// emission, regardless of what the background would have contributed.
func TestPathTracer_EmissiveHitIgnoresBackground(t *testing.T) {
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, light)
	scene := core.NewScene([]core.Shape{sphere}, core.Background{Ground: core.NewVec3(9, 9, 9), Sky: core.NewVec3(9, 9, 9)})
	require.NoError(t, scene.Build(0, 0, nil))

	pt := NewPathTracer()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := pt.RayColor(ray, scene, core.NewRNG(1), 1)
	assert.Equal(t, core.NewVec3(4, 4, 4), color)
}

// TestPathTracer_AccumulatesAttenuationAcrossBounces fires a perpendicular
// ray at a mirror sphere: the ray reflects straight back along its
// incoming direction, re-enters the background in the opposite
// direction, and the final color is the mirror's albedo times whatever
// the background contributes along the reflected direction.
func TestPathTracer_AccumulatesAttenuationAcrossBounces(t *testing.T) {
	background := core.DefaultBackground()
	mirror := material.NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0.0)
	mirrorSphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, mirror)

	scene := core.NewScene([]core.Shape{mirrorSphere}, background)
	require.NoError(t, scene.Build(0, 0, nil))

	pt := NewPathTracer()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := pt.RayColor(ray, scene, core.NewRNG(1), 5)

	reflectedDir := core.NewVec3(0, 0, 1)
	expected := background.At(reflectedDir).Multiply(0.5)
	assert.InDelta(t, expected.X, color.X, 1e-9)
	assert.InDelta(t, expected.Y, color.Y, 1e-9)
	assert.InDelta(t, expected.Z, color.Z, 1e-9)
}

func TestPathTracer_DepthLimitStopsRecursionAtMirror(t *testing.T) {
	mirror := material.NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0.0)
	mirrorSphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, mirror)

	scene := core.NewScene([]core.Shape{mirrorSphere}, core.DefaultBackground())
	require.NoError(t, scene.Build(0, 0, nil))

	pt := NewPathTracer()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := pt.RayColor(ray, scene, core.NewRNG(1), 1)

	assert.Equal(t, core.Color{}, color, "depth exhausted at the mirror bounce before the reflected ray is ever traced")
}
