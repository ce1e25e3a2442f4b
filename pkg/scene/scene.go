// Package scene supplies a handful of hand-built example scenes, the
// way the original's main.py drove a fixed small set of demo scenes
// (a ground-plus-spheres scene and a Cornell-box-shaped room). These
// are example callers of the core API, not part of it: scene
// construction is always the caller's responsibility.
package scene

import (
	"github.com/arcweave/pathtracer/pkg/core"
	"github.com/arcweave/pathtracer/pkg/renderer"
)

// Built bundles everything a caller needs to hand to a Raytracer: the
// built (BVH-ready) scene, a camera, and the render configuration the
// scene was designed around.
type Built struct {
	Scene  *core.Scene
	Camera *renderer.Camera
	Config renderer.RenderConfig
}

// build finishes a Built by running Scene.Build over the camera's
// shutter interval.
func build(shapes []core.Shape, background core.Background, cameraCfg renderer.CameraConfig, renderCfg renderer.RenderConfig, random *core.RNG) (*Built, error) {
	s := core.NewScene(shapes, background)
	if err := s.Build(cameraCfg.Time0, cameraCfg.Time1, random); err != nil {
		return nil, err
	}

	cam, err := renderer.NewCamera(cameraCfg)
	if err != nil {
		return nil, err
	}

	if err := renderCfg.Validate(); err != nil {
		return nil, err
	}

	return &Built{Scene: s, Camera: cam, Config: renderCfg}, nil
}
