package scene

import (
	"github.com/arcweave/pathtracer/pkg/core"
	"github.com/arcweave/pathtracer/pkg/geometry"
	"github.com/arcweave/pathtracer/pkg/material"
	"github.com/arcweave/pathtracer/pkg/renderer"
)

// NewSpheresScene builds the classic ground-plus-spheres demo: a large
// ground sphere, one sphere of each material (Lambertian, Metal,
// Dielectric, GlossyCoated), a moving sphere to exercise motion blur,
// and a small emissive sphere, lit together with the default sky
// background.
func NewSpheresScene() (*Built, error) {
	random := core.NewRNG(1)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)
	coatedRed := material.NewGlossyCoated(core.NewVec3(0.65, 0.25, 0.2), 1.5)
	light := material.NewDiffuseLight(core.NewVec3(15.0, 14.0, 13.0))

	groundSphere := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground)
	centerSphere := geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, coatedRed)
	leftSphere := geometry.NewSphere(core.NewVec3(-2.2, 1, 0), 1.0, glass)
	rightSphere := geometry.NewSphere(core.NewVec3(2.2, 1, 0), 1.0, metalGold)
	movingSphere := geometry.NewMovingSphere(
		core.NewVec3(-1, 0.4, 1.6), core.NewVec3(-0.6, 0.4, 1.6),
		0.0, 1.0, 0.4, lambertianBlue,
	)
	lightSphere := geometry.NewSphere(core.NewVec3(0, 6, -2), 1.5, light)

	shapes := []core.Shape{
		groundSphere, centerSphere, leftSphere, rightSphere, movingSphere, lightSphere,
	}

	cameraCfg := renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 2, 8),
		LookAt:        core.NewVec3(0, 0.8, 0),
		ViewUp:        core.NewVec3(0, 1, 0),
		VFov:          35,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.05,
		FocusDistance: 8.0,
		Time0:         0.0,
		Time1:         1.0,
	}

	renderCfg := renderer.DefaultRenderConfig()
	renderCfg.AspectRatio = cameraCfg.AspectRatio

	return build(shapes, core.DefaultBackground(), cameraCfg, renderCfg, random)
}
