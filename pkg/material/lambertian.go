package material

import (
	"github.com/arcweave/pathtracer/pkg/core"
)

// Lambertian is a perfectly diffuse material: it always scatters, in a
// cosine-weighted random direction around the surface normal.
type Lambertian struct {
	Albedo core.Color
}

func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter always succeeds, attenuating by Albedo.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *core.RNG) (core.ScatterResult, bool) {
	direction := random.CosineDirection(hit.Normal)
	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)

	return core.ScatterResult{
		Attenuation: l.Albedo,
		Scattered:   scattered,
	}, true
}

// Emitted is zero; Lambertian surfaces don't emit light.
func (l *Lambertian) Emitted() core.Color {
	return core.Vec3{}
}
