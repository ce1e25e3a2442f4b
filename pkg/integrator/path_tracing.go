package integrator

import (
	"math"

	"github.com/arcweave/pathtracer/pkg/core"
)

// PathTracer is a recursive, unidirectional Monte-Carlo path tracer: no
// next-event estimation, no multiple importance sampling, no Russian
// roulette. Each bounce asks the hit material to emit and/or scatter,
// and the estimate is unbiased by construction as long as MaxDepth is
// large enough for the scene's light paths.
type PathTracer struct{}

// NewPathTracer returns a ready-to-use PathTracer.
func NewPathTracer() *PathTracer {
	return &PathTracer{}
}

// RayColor estimates the radiance arriving along ray from scene, recursing
// at most maxDepth bounces deep.
func (pt *PathTracer) RayColor(ray core.Ray, scene *core.Scene, random *core.RNG, maxDepth int) core.Color {
	return pt.radiance(ray, scene, random, maxDepth)
}

func (pt *PathTracer) radiance(ray core.Ray, scene *core.Scene, random *core.RNG, depth int) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := scene.Hit(ray, 1e-3, math.Inf(1))
	if !isHit {
		return scene.Background.At(ray.Direction)
	}

	emitted := hit.Material.Emitted()

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return emitted
	}

	incoming := pt.radiance(scatter.Scattered, scene, random, depth-1)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
