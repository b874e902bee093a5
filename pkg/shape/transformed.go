package shape

import (
	"github.com/dkarpushkin/go-pathtracer/pkg/transform"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Transformed wraps an object-space Shape with a world transform: the ray
// is pulled into object space via the inverse transform, the wrapped
// shape's Hit runs unmodified, and the resulting point/normal are pushed
// back to world space via the direct transform / inverse-transpose.
type Transformed struct {
	Inner     Shape
	Transform transform.Transform
}

// NewTransformed wraps inner with t.
func NewTransformed(inner Shape, t transform.Transform) *Transformed {
	return &Transformed{Inner: inner, Transform: t}
}

// Hit converts the ray to object space, intersects, then converts the hit
// back to world space. TransformRay does not renormalize the object-space
// direction, so object point = objectRay.At(t) maps back through the direct
// transform to world-space origin + t*worldDirection — since the world
// direction is unit length, the inner Hit's t is already the world-space
// distance and the search interval passes through unscaled.
func (tr *Transformed) Hit(ray vec3.Ray, tMin, tMax float64) (HitRecord, bool) {
	objectRay := tr.Transform.TransformRay(ray)

	hit, ok := tr.Inner.Hit(objectRay, tMin, tMax)
	if !ok {
		return HitRecord{}, false
	}

	worldPoint := tr.Transform.TransformPoint(hit.Point)
	worldT := worldPoint.Subtract(ray.Origin).Length()
	if ray.Direction.Dot(worldPoint.Subtract(ray.Origin)) < 0 {
		worldT = -worldT
	}
	if worldT < tMin || worldT > tMax {
		return HitRecord{}, false
	}

	worldNormal := tr.Transform.TransformNormal(hit.Normal)

	hit.Point = worldPoint
	hit.T = worldT
	hit.SetFaceNormal(ray, worldNormal)
	return hit, true
}

// BoundingBox transforms the inner shape's object-space AABB by
// transforming all eight corners and taking the result's extrema.
func (tr *Transformed) BoundingBox() AABB {
	box := tr.Inner.BoundingBox()
	corners := box.Corners()

	world := tr.Transform.TransformPoint(corners[0])
	result := NewAABB(world, world)
	for _, c := range corners[1:] {
		p := tr.Transform.TransformPoint(c)
		result = result.Union(NewAABB(p, p))
	}
	return result
}
