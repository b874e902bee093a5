package shape

import "github.com/dkarpushkin/go-pathtracer/pkg/vec3"

// Collection is a flat list of shapes tested linearly, tightening tMax as
// closer hits are found. It is an alternative to a BVH for small shape
// lists; BVH leaves hold a single shape and do not use it.
type Collection struct {
	Shapes []Shape
	bbox   AABB
	hasBox bool
}

// NewCollection builds a collection and its bounding box from shapes.
func NewCollection(shapes []Shape) *Collection {
	c := &Collection{Shapes: shapes}
	for _, s := range shapes {
		if !c.hasBox {
			c.bbox = s.BoundingBox()
			c.hasBox = true
			continue
		}
		c.bbox = c.bbox.Union(s.BoundingBox())
	}
	return c
}

// Hit returns the closest hit among all shapes within [tMin, tMax].
func (c *Collection) Hit(ray vec3.Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, s := range c.Shapes {
		if hit, ok := s.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// BoundingBox returns the union of every member shape's bounding box.
func (c *Collection) BoundingBox() AABB {
	return c.bbox
}
