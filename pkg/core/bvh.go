package core

import "sort"

// BVHNode is an interior node of the bounding-volume hierarchy with two
// children, each either another BVHNode or a leaf shape. The enclosing
// AABB always contains both children's AABBs.
type BVHNode struct {
	Box         AABB
	Left, Right Shape
}

// Hit implements Shape by testing the node's AABB, then recursing into
// the side(s) that survive the slab test, tightening tMax to the
// closest hit found so far so the result has minimum t over every
// reachable leaf.
func (n *BVHNode) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}

	rightHit, hitRight := n.Right.Hit(ray, tMin, tMax)
	if hitRight {
		return rightHit, true
	}
	if hitLeft {
		return leftHit, true
	}
	return nil, false
}

// BoundingBox implements Shape; a BVH node's box is always well defined
// once built.
func (n *BVHNode) BoundingBox(t0, t1 float64) (AABB, bool) {
	return n.Box, true
}

// BuildBVH builds a bounding-volume hierarchy over shapes, a top-down
// recursive split over [t0, t1] (the shutter interval, needed so moving
// spheres are bounded correctly). random picks the split axis; a nil
// random falls back to cycling axes 0,1,2 by recursion depth, which
// spec.md §4.2 calls out as an acceptable deterministic alternative.
//
// BuildBVH copies the input slice before sorting/partitioning it, so
// callers may safely reuse shapes afterward. It returns a
// *GeometryError if any shape cannot be bounded.
func BuildBVH(shapes []Shape, t0, t1 float64, random *RNG) (Shape, error) {
	if len(shapes) == 0 {
		return nil, &GeometryError{SurfaceIndex: -1, Reason: "cannot build a BVH over zero shapes"}
	}

	owned := make([]Shape, len(shapes))
	copy(owned, shapes)

	for i, s := range owned {
		if _, ok := s.BoundingBox(t0, t1); !ok {
			return nil, &GeometryError{SurfaceIndex: i, Reason: "surface has no bounding box"}
		}
	}

	return buildBVH(owned, t0, t1, random, 0)
}

func buildBVH(shapes []Shape, t0, t1 float64, random *RNG, depth int) (Shape, error) {
	switch len(shapes) {
	case 1:
		return shapes[0], nil
	case 2:
		axis := pickAxis(random, depth)
		left, right := orderPair(shapes[0], shapes[1], axis, t0, t1)
		return newBVHNode(left, right, t0, t1)
	default:
		axis := pickAxis(random, depth)
		sortByBoxMin(shapes, axis, t0, t1)

		mid := len(shapes) / 2
		left, err := buildBVH(shapes[:mid], t0, t1, random, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := buildBVH(shapes[mid:], t0, t1, random, depth+1)
		if err != nil {
			return nil, err
		}
		return newBVHNode(left, right, t0, t1)
	}
}

func pickAxis(random *RNG, depth int) int {
	if random != nil {
		return random.Intn(3)
	}
	return depth % 3
}

func orderPair(a, b Shape, axis int, t0, t1 float64) (Shape, Shape) {
	if boxMin(a, axis, t0, t1) <= boxMin(b, axis, t0, t1) {
		return a, b
	}
	return b, a
}

// sortByBoxMin sorts shapes by bounding-box minimum on the given axis.
// SliceStable (rather than Slice) makes repeated builds over a scene
// with equal keys byte-for-byte reproducible, the deterministic
// tiebreaker spec.md §9 leaves to the implementer.
func sortByBoxMin(shapes []Shape, axis int, t0, t1 float64) {
	sort.SliceStable(shapes, func(i, j int) bool {
		return boxMin(shapes[i], axis, t0, t1) < boxMin(shapes[j], axis, t0, t1)
	})
}

func boxMin(s Shape, axis int, t0, t1 float64) float64 {
	box, _ := s.BoundingBox(t0, t1)
	switch axis {
	case 0:
		return box.Min.X
	case 1:
		return box.Min.Y
	default:
		return box.Min.Z
	}
}

func newBVHNode(left, right Shape, t0, t1 float64) (Shape, error) {
	leftBox, _ := left.BoundingBox(t0, t1)
	rightBox, _ := right.BoundingBox(t0, t1)
	return &BVHNode{
		Box:   leftBox.Union(rightBox),
		Left:  left,
		Right: right,
	}, nil
}
