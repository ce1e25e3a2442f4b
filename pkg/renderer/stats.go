package renderer

import "github.com/arcweave/pathtracer/pkg/core"

// PixelStats accumulates samples for a single pixel across however
// many tile passes touch it.
type PixelStats struct {
	ColorAccum  core.Color
	SampleCount int
}

// AddSample folds one more radiance sample into the running average.
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// Color returns the current average color for this pixel, black if no
// samples have landed yet.
func (ps *PixelStats) Color() core.Color {
	if ps.SampleCount == 0 {
		return core.Color{}
	}
	return ps.ColorAccum.Divide(float64(ps.SampleCount))
}

// RenderStats summarizes a completed render.
type RenderStats struct {
	Width, Height   int
	SamplesPerPixel int
	TilesRendered   int
}
