package renderer

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arcweave/pathtracer/pkg/core"
)

// RenderConfig holds the render-time knobs that aren't scene geometry:
// image dimensions, sampling, gamma, the RNG seed, and the tile
// scheduler's shape. The background is not part of it; it is set on
// core.Scene. Scene construction (shapes, materials, background,
// camera placement) is always the caller's responsibility and is never
// loaded from this file.
type RenderConfig struct {
	ImageWidth      int     `yaml:"image_width"`
	AspectRatio     float64 `yaml:"aspect_ratio"`
	SamplesPerPixel int     `yaml:"samples_per_pixel"`
	MaxDepth        int     `yaml:"max_depth"`
	Gamma           float64 `yaml:"gamma"`
	RandomSeed      int64   `yaml:"random_seed"`
	TileSize        int     `yaml:"tile_size"`
	NumWorkers      int     `yaml:"num_workers"`
}

// DefaultRenderConfig returns sensible defaults: a 16:9 image, 50
// samples per pixel, depth 50, gamma 2, 16x16 tiles, and one worker per
// CPU (NumWorkers 0 means "let the scheduler decide").
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 50,
		MaxDepth:        50,
		Gamma:           2.0,
		RandomSeed:      1,
		TileSize:        16,
		NumWorkers:      0,
	}
}

// ImageHeight derives the image height from width and aspect ratio.
func (c RenderConfig) ImageHeight() int {
	return core.SamplingConfig{ImageWidth: c.ImageWidth, AspectRatio: c.AspectRatio}.ImageHeight()
}

// Validate reports the first invalid field as a *core.ConfigurationError.
func (c RenderConfig) Validate() error {
	if err := (core.SamplingConfig{
		ImageWidth:      c.ImageWidth,
		AspectRatio:     c.AspectRatio,
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
	}).Validate(); err != nil {
		return err
	}
	if c.Gamma <= 0 {
		return &core.ConfigurationError{Field: "Gamma", Reason: "must be > 0"}
	}
	if c.TileSize <= 0 {
		return &core.ConfigurationError{Field: "TileSize", Reason: "must be > 0"}
	}
	if c.NumWorkers < 0 {
		return &core.ConfigurationError{Field: "NumWorkers", Reason: "must be >= 0"}
	}
	return nil
}

// LoadRenderConfig reads a YAML render configuration from path, starting
// from DefaultRenderConfig so an omitted field keeps its default, then
// validates the result.
func LoadRenderConfig(path string) (RenderConfig, error) {
	cfg := DefaultRenderConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return RenderConfig{}, &core.IOError{Op: "read render config " + path, Err: err}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RenderConfig{}, &core.IOError{Op: "parse render config " + path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return RenderConfig{}, err
	}
	return cfg, nil
}
