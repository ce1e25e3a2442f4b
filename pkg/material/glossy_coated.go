package material

import (
	"math"

	"github.com/arcweave/pathtracer/pkg/core"
)

// GlossyCoated is a diffuse surface under a dielectric coating: like
// Dielectric it uses Schlick reflectance to decide whether a hit
// mirror-reflects off the coating, but instead of refracting through
// it scatters diffusely, as if seen through a clear varnish. Attenuation
// is Albedo uniformly, on both branches.
type GlossyCoated struct {
	Albedo          core.Color
	RefractiveIndex float64
}

func NewGlossyCoated(albedo core.Color, refractiveIndex float64) *GlossyCoated {
	return &GlossyCoated{Albedo: albedo, RefractiveIndex: refractiveIndex}
}

// Scatter always succeeds. It computes the same Fresnel reflectance as
// Dielectric to pick mirror-reflect vs diffuse-scatter, but never
// refracts.
func (g *GlossyCoated) Scatter(rayIn core.Ray, hit core.HitRecord, random *core.RNG) (core.ScatterResult, bool) {
	var etaRatio float64
	if hit.FrontFace {
		etaRatio = 1.0 / g.RefractiveIndex
	} else {
		etaRatio = g.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)

	var direction core.Vec3
	if core.Schlick(cosTheta, etaRatio) > random.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = random.CosineDirection(hit.Normal)
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	return core.ScatterResult{
		Attenuation: g.Albedo,
		Scattered:   scattered,
	}, true
}

func (g *GlossyCoated) Emitted() core.Color {
	return core.Vec3{}
}
