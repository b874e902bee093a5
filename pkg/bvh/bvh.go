// Package bvh implements the recursive binary spatial index over shapes.
package bvh

import (
	"math/rand"
	"sort"

	"github.com/dkarpushkin/go-pathtracer/pkg/shape"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Node is a BVH tree node: an internal node has Left and (optionally)
// Right children; a leaf stores a single shape in Shape and has no
// children. A two-shape group is an internal node with one leaf per side.
type Node struct {
	BoundingBox shape.AABB
	Left, Right *Node
	Shape       shape.Shape
}

// BVH indexes a set of shapes behind a single root node.
type BVH struct {
	Root *Node
}

// New builds a BVH over shapes using a one-shot, pre-render construction:
// pick a random axis, sort by each shape's bounding-box-minimum along that
// axis, split at the midpoint, and recurse on each half. It does not use a
// surface-area heuristic — the random-axis sort trades build quality for
// simplicity.
func New(shapes []shape.Shape, random *rand.Rand) *BVH {
	items := make([]shape.Shape, len(shapes))
	copy(items, shapes)
	return &BVH{Root: build(items, random)}
}

func build(shapes []shape.Shape, random *rand.Rand) *Node {
	switch len(shapes) {
	case 0:
		return nil
	case 1:
		return &Node{Shape: shapes[0], BoundingBox: shapes[0].BoundingBox()}
	case 2:
		left, right := shapes[0], shapes[1]
		return &Node{
			Left:        &Node{Shape: left, BoundingBox: left.BoundingBox()},
			Right:       &Node{Shape: right, BoundingBox: right.BoundingBox()},
			BoundingBox: left.BoundingBox().Union(right.BoundingBox()),
		}
	}

	axis := random.Intn(3)
	sort.Slice(shapes, func(i, j int) bool {
		return axisMin(shapes[i].BoundingBox(), axis) < axisMin(shapes[j].BoundingBox(), axis)
	})

	mid := len(shapes) / 2
	left := build(shapes[:mid], random)
	right := build(shapes[mid:], random)

	return &Node{
		Left:        left,
		Right:       right,
		BoundingBox: left.BoundingBox.Union(right.BoundingBox),
	}
}

func axisMin(box shape.AABB, axis int) float64 {
	switch axis {
	case 0:
		return box.Min.X
	case 1:
		return box.Min.Y
	default:
		return box.Min.Z
	}
}

// Hit walks the tree in bounding-box order, tightening tMax as closer hits
// are found so sibling subtrees can be pruned.
func (b *BVH) Hit(ray vec3.Ray, tMin, tMax float64) (shape.HitRecord, bool) {
	if b.Root == nil {
		return shape.HitRecord{}, false
	}
	return hitNode(b.Root, ray, tMin, tMax)
}

func hitNode(n *Node, ray vec3.Ray, tMin, tMax float64) (shape.HitRecord, bool) {
	if !n.BoundingBox.Hit(ray, tMin, tMax) {
		return shape.HitRecord{}, false
	}

	if n.Shape != nil {
		return n.Shape.Hit(ray, tMin, tMax)
	}

	var closest shape.HitRecord
	hitAnything := false
	closestSoFar := tMax

	if n.Left != nil {
		if hit, ok := hitNode(n.Left, ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}
	if n.Right != nil {
		if hit, ok := hitNode(n.Right, ray, tMin, closestSoFar); ok {
			hitAnything = true
			closest = hit
		}
	}

	return closest, hitAnything
}

// BoundingBox returns the root node's bounding box.
func (b *BVH) BoundingBox() shape.AABB {
	if b.Root == nil {
		return shape.AABB{}
	}
	return b.Root.BoundingBox
}
