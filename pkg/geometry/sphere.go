package geometry

import (
	"math"

	"github.com/arcweave/pathtracer/pkg/core"
)

// Sphere is a stationary sphere surface.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a sphere.
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit solves the ray-sphere quadratic at² + bt + c = 0, trying the
// nearer root first and falling back to the farther one.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Divide(s.Radius)

	hit := &core.HitRecord{
		T:        root,
		Point:    point,
		Material: s.Material,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the sphere's AABB, which does not depend on
// [t0, t1] since a stationary sphere doesn't move.
func (s *Sphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius)), true
}
