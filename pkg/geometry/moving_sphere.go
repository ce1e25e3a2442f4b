package geometry

import (
	"math"

	"github.com/arcweave/pathtracer/pkg/core"
)

// MovingSphere is a sphere whose center linearly interpolates between
// Center0 at Time0 and Center1 at Time1, producing motion blur when the
// camera samples ray times across a shutter interval.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a moving sphere.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat core.Material) *MovingSphere {
	return &MovingSphere{
		Center0: center0, Center1: center1,
		Time0: time0, Time1: time1,
		Radius: radius, Material: mat,
	}
}

// CenterAt returns the sphere's center at the given ray time.
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(t))
}

// Hit is the stationary-sphere quadratic test against the center
// interpolated to ray.Time.
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Subtract(center)

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
	outwardNormal := point.Subtract(center).Divide(s.Radius)

	hit := &core.HitRecord{
		T:        root,
		Point:    point,
		Material: s.Material,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the union of the AABBs at the sphere's two
// endpoint centers, independent of the requested [t0, t1] — the sphere
// may move outside a render's shutter interval too, so the bound is
// computed over the sphere's own Time0/Time1 rather than the caller's.
func (s *MovingSphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.Center0.Subtract(radius), s.Center0.Add(radius))
	box1 := core.NewAABB(s.Center1.Subtract(radius), s.Center1.Add(radius))
	return box0.Union(box1), true
}
