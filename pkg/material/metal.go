package material

import (
	"github.com/arcweave/pathtracer/pkg/core"
)

// Metal is a specular material: a mirror perturbed by Fuzz toward a
// random direction in the unit sphere.
type Metal struct {
	Albedo core.Color
	Fuzz   float64 // 0 = perfect mirror, 1 = very fuzzy
}

func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects rayIn about the normal, fuzzed by Fuzz*random_in_unit_sphere.
// The ray is absorbed if the fuzzed reflection dips below the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, random *core.RNG) (core.ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(random.InUnitSphere().Multiply(m.Fuzz))
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterResult{
		Attenuation: m.Albedo,
		Scattered:   scattered,
	}, scatters
}

func (m *Metal) Emitted() core.Color {
	return core.Vec3{}
}
