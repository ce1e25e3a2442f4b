package geometry

import (
	"github.com/arcweave/pathtracer/pkg/core"
)

const rectangleBoundsEpsilon = 0.0001

// RectangleXY is an axis-aligned rectangle on the plane z = K, spanning
// [X0, X1] x [Y0, Y1]. Its normal is +Z.
type RectangleXY struct {
	X0, X1, Y0, Y1 float64
	K              float64
	Material       core.Material
}

func NewRectangleXY(x0, x1, y0, y1, k float64, mat core.Material) *RectangleXY {
	return &RectangleXY{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

func (r *RectangleXY) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if ray.Direction.Z == 0 {
		return nil, false
	}
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return nil, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}
	hit := &core.HitRecord{T: t, Point: ray.At(t), Material: r.Material}
	hit.SetFaceNormal(ray, core.NewVec3(0, 0, 1))
	return hit, true
}

func (r *RectangleXY) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-rectangleBoundsEpsilon),
		core.NewVec3(r.X1, r.Y1, r.K+rectangleBoundsEpsilon),
	), true
}

// RectangleYZ is an axis-aligned rectangle on the plane x = K, spanning
// [Y0, Y1] x [Z0, Z1]. Its normal is +X.
type RectangleYZ struct {
	Y0, Y1, Z0, Z1 float64
	K              float64
	Material       core.Material
}

func NewRectangleYZ(y0, y1, z0, z1, k float64, mat core.Material) *RectangleYZ {
	return &RectangleYZ{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

func (r *RectangleYZ) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if ray.Direction.X == 0 {
		return nil, false
	}
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return nil, false
	}
	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}
	hit := &core.HitRecord{T: t, Point: ray.At(t), Material: r.Material}
	hit.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	return hit, true
}

func (r *RectangleYZ) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-rectangleBoundsEpsilon, r.Y0, r.Z0),
		core.NewVec3(r.K+rectangleBoundsEpsilon, r.Y1, r.Z1),
	), true
}

// RectangleZX is an axis-aligned rectangle on the plane y = K, spanning
// [Z0, Z1] x [X0, X1]. Its normal is +Y.
type RectangleZX struct {
	Z0, Z1, X0, X1 float64
	K              float64
	Material       core.Material
}

func NewRectangleZX(z0, z1, x0, x1, k float64, mat core.Material) *RectangleZX {
	return &RectangleZX{Z0: z0, Z1: z1, X0: x0, X1: x1, K: k, Material: mat}
}

func (r *RectangleZX) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if ray.Direction.Y == 0 {
		return nil, false
	}
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return nil, false
	}
	z := ray.Origin.Z + t*ray.Direction.Z
	x := ray.Origin.X + t*ray.Direction.X
	if z < r.Z0 || z > r.Z1 || x < r.X0 || x > r.X1 {
		return nil, false
	}
	hit := &core.HitRecord{T: t, Point: ray.At(t), Material: r.Material}
	hit.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	return hit, true
}

func (r *RectangleZX) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-rectangleBoundsEpsilon, r.Z0),
		core.NewVec3(r.X1, r.K+rectangleBoundsEpsilon, r.Z1),
	), true
}
