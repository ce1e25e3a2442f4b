// Package integrator turns a ray and a scene into a radiance estimate.
package integrator

import "github.com/arcweave/pathtracer/pkg/core"

// Integrator computes an unbiased radiance estimate along a single ray.
type Integrator interface {
	RayColor(ray core.Ray, scene *core.Scene, random *core.RNG, maxDepth int) core.Color
}

var _ Integrator = (*PathTracer)(nil)
