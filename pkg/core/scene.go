package core

// Background describes what a ray that escapes the scene sees. The
// common case is a vertical gradient between a ground color (looking
// down) and a sky color (looking up), blended by 0.5*(direction.Y+1);
// a constant background sets Ground == Sky.
type Background struct {
	Ground Color
	Sky    Color
}

// At evaluates the background for a (not necessarily unit length) ray
// direction.
func (b Background) At(direction Vec3) Color {
	unit := direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return b.Ground.Lerp(b.Sky, t)
}

// DefaultBackground is the white-to-sky-blue gradient (white looking
// down, blue looking up) used by scene constructors
// that don't specify one.
func DefaultBackground() Background {
	return Background{
		Ground: NewVec3(1.0, 1.0, 1.0),
		Sky:    NewVec3(0.5, 0.7, 1.0),
	}
}

// SamplingConfig holds the render-time knobs that aren't geometry:
// resolution, sample count, ray depth, and the RNG seed.
type SamplingConfig struct {
	ImageWidth      int
	AspectRatio     float64
	SamplesPerPixel int
	MaxDepth        int
	RandomSeed      int64
}

// ImageHeight derives the image height from width and aspect ratio,
// with a floor of 1 so a degenerate ratio never yields a zero-height
// image.
func (c SamplingConfig) ImageHeight() int {
	h := int(float64(c.ImageWidth) / c.AspectRatio)
	if h < 1 {
		h = 1
	}
	return h
}

// Validate reports the first configuration problem found, as a
// *ConfigurationError, or nil if the configuration is renderable.
func (c SamplingConfig) Validate() error {
	if c.ImageWidth <= 0 {
		return &ConfigurationError{Field: "ImageWidth", Reason: "must be > 0"}
	}
	if c.AspectRatio <= 0 {
		return &ConfigurationError{Field: "AspectRatio", Reason: "must be > 0"}
	}
	if c.SamplesPerPixel < 1 {
		return &ConfigurationError{Field: "SamplesPerPixel", Reason: "must be >= 1"}
	}
	if c.MaxDepth < 1 {
		return &ConfigurationError{Field: "MaxDepth", Reason: "must be >= 1"}
	}
	return nil
}

// Scene is an ordered sequence of surfaces plus the background they're
// seen against. It is consumed once to build the BVH root; after Build
// the scene and its BVH are immutable and freely shared by reference
// across render workers.
type Scene struct {
	Shapes     []Shape
	Background Background

	bvh Shape
}

// NewScene constructs a scene over shapes with the given background.
func NewScene(shapes []Shape, background Background) *Scene {
	return &Scene{Shapes: shapes, Background: background}
}

// Build constructs the BVH root over the scene's shapes for shutter
// interval [t0, t1]. random drives the BVH's split-axis selection; pass
// nil for the deterministic axis-cycling fallback. Build must be called
// once, after the scene's shapes are finalized and before the first
// render call; it returns a *GeometryError if any shape lacks a
// bounding box. A scene with no shapes builds without error, and every
// ray misses it.
func (s *Scene) Build(t0, t1 float64, random *RNG) error {
	if len(s.Shapes) == 0 {
		s.bvh = nil
		return nil
	}
	bvh, err := BuildBVH(s.Shapes, t0, t1, random)
	if err != nil {
		return err
	}
	s.bvh = bvh
	return nil
}

// Hit intersects a ray against the scene's BVH. Build must have been
// called first.
func (s *Scene) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if s.bvh == nil {
		return nil, false
	}
	return s.bvh.Hit(ray, tMin, tMax)
}
