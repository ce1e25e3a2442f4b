package geometry

import (
	"github.com/arcweave/pathtracer/pkg/core"
)

// Box is an axis-aligned rectangular box between Min and Max, composed
// internally of six axis-aligned rectangles.
type Box struct {
	Min, Max core.Vec3
	Material core.Material
	faces    [6]core.Shape
	bbox     core.AABB
}

// NewBox creates a box spanning [min, max] componentwise.
func NewBox(min, max core.Vec3, mat core.Material) *Box {
	b := &Box{Min: min, Max: max, Material: mat}
	b.faces = [6]core.Shape{
		NewRectangleXY(min.X, max.X, min.Y, max.Y, min.Z, mat), // back
		NewRectangleXY(min.X, max.X, min.Y, max.Y, max.Z, mat), // front
		NewRectangleYZ(min.Y, max.Y, min.Z, max.Z, min.X, mat), // left
		NewRectangleYZ(min.Y, max.Y, min.Z, max.Z, max.X, mat), // right
		NewRectangleZX(min.Z, max.Z, min.X, max.X, min.Y, mat), // bottom
		NewRectangleZX(min.Z, max.Z, min.X, max.X, max.Y, mat), // top
	}
	b.bbox = core.NewAABB(min, max)
	return b
}

// Hit delegates to a linear scan across the box's six faces, keeping
// the closest hit.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestT := tMax

	for _, face := range b.faces {
		if hit, ok := face.Hit(ray, tMin, closestT); ok {
			closestT = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the box's own min/max corners.
func (b *Box) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return b.bbox, true
}
