package scene

import (
	"github.com/arcweave/pathtracer/pkg/core"
	"github.com/arcweave/pathtracer/pkg/geometry"
	"github.com/arcweave/pathtracer/pkg/material"
	"github.com/arcweave/pathtracer/pkg/renderer"
)

// NewCornellScene builds a classic Cornell box: five Lambertian walls
// (red left, green right, white elsewhere), a DiffuseLight rectangle
// recessed into the ceiling, and two boxes of differing height — the
// standard test scene for validating indirect lighting and shadows.
func NewCornellScene() (*Built, error) {
	random := core.NewRNG(2)

	const boxSize = 555.0

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15.0, 15.0, 15.0))

	floor := geometry.NewRectangleZX(0, boxSize, 0, boxSize, 0, white)
	ceiling := geometry.NewRectangleZX(0, boxSize, 0, boxSize, boxSize, white)
	backWall := geometry.NewRectangleXY(0, boxSize, 0, boxSize, boxSize, white)
	leftWall := geometry.NewRectangleYZ(0, boxSize, 0, boxSize, 0, red)
	rightWall := geometry.NewRectangleYZ(0, boxSize, 0, boxSize, boxSize, green)

	const lightSize = 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	ceilingLight := geometry.NewRectangleZX(
		lightOffset, lightOffset+lightSize,
		lightOffset, lightOffset+lightSize,
		boxSize-1, light,
	)

	tallBox := geometry.NewBox(
		core.NewVec3(265, 0, 295),
		core.NewVec3(430, 330, 460),
		white,
	)
	shortBox := geometry.NewBox(
		core.NewVec3(130, 0, 65),
		core.NewVec3(295, 165, 230),
		white,
	)

	shapes := []core.Shape{
		floor, ceiling, backWall, leftWall, rightWall, ceilingLight, tallBox, shortBox,
	}

	cameraCfg := renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		ViewUp:        core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1.0,
		Aperture:      0.0,
		FocusDistance: 800.0,
		Time0:         0.0,
		Time1:         0.0,
	}

	renderCfg := renderer.DefaultRenderConfig()
	renderCfg.AspectRatio = cameraCfg.AspectRatio
	renderCfg.MaxDepth = 40

	return build(shapes, core.Background{}, cameraCfg, renderCfg, random)
}
