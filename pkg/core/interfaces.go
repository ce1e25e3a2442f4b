package core

// Shape is satisfied by every surface primitive (sphere, moving sphere,
// axis-aligned rectangle, box) and by the BVH itself.
type Shape interface {
	// Hit returns a hit with t in (tMin, tMax), or (nil, false) on a miss.
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns an AABB enclosing the shape over [t0, t1], or
	// (zero-value, false) for an ill-defined shape. Every concrete
	// primitive in pkg/geometry always returns (aabb, true).
	BoundingBox(t0, t1 float64) (AABB, bool)
}

// HitRecord carries the geometry side of a ray-surface intersection:
// where it happened, the oriented normal, and which material owns the
// hit surface.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, oriented against the ray
	T         float64  // Ray parameter at the hit
	FrontFace bool     // True when the ray struck the geometric outside
	Material  Material // Material of the hit surface
}

// SetFaceNormal orients the stored normal against the incoming ray and
// records whether the ray struck the front face. outwardNormal must be
// the geometric (unit) outward normal. This keeps the sign convention
// out of every material's scatter code.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Material is satisfied by every scattering model (Lambertian, Metal,
// Dielectric, GlossyCoated, DiffuseLight).
type Material interface {
	// Scatter returns the attenuation and scattered ray for an incoming
	// ray, or (zero-value, false) if the ray is absorbed.
	Scatter(rayIn Ray, hit HitRecord, random *RNG) (ScatterResult, bool)

	// Emitted returns the radiance this material emits; zero for every
	// material except DiffuseLight.
	Emitted() Color
}

// ScatterResult is the outcome of a successful Material.Scatter call.
type ScatterResult struct {
	Attenuation Color
	Scattered   Ray
}

// Logger is the raytracer's minimal logging contract, satisfied by the
// pkg/logging zap wrapper.
type Logger interface {
	Printf(format string, args ...interface{})
}
