package material

import (
	"github.com/arcweave/pathtracer/pkg/core"
)

// DiffuseLight is a pure emitter: it never scatters, and emits a fixed
// radiance regardless of incoming ray direction.
type DiffuseLight struct {
	Emission core.Color
}

func NewDiffuseLight(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

func (l *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, random *core.RNG) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (l *DiffuseLight) Emitted() core.Color {
	return l.Emission
}
