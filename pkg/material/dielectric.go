package material

import (
	"math"

	"github.com/arcweave/pathtracer/pkg/core"
)

// Dielectric is a transparent material like glass or water: it never
// absorbs color, but at each hit it either reflects or refracts,
// chosen stochastically by Fresnel reflectance.
type Dielectric struct {
	RefractiveIndex float64
}

func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter always succeeds with attenuation (1,1,1): entering the
// surface uses eta_ratio = 1/index, exiting uses eta_ratio = index.
// Total internal reflection forces a reflect; otherwise Schlick's
// approximation weighs reflect against refract stochastically.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, random *core.RNG) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var etaRatio float64
	if hit.FrontFace {
		etaRatio = 1.0 / d.RefractiveIndex
	} else {
		etaRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := etaRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || core.Schlick(cosTheta, etaRatio) > random.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, etaRatio)
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	return core.ScatterResult{
		Attenuation: attenuation,
		Scattered:   scattered,
	}, true
}

func (d *Dielectric) Emitted() core.Color {
	return core.Vec3{}
}
