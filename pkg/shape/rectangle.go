package shape

import (
	"github.com/dkarpushkin/go-pathtracer/pkg/material"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Rectangle is an axis-aligned xy rectangle at z=0 in object space,
// spanning [X0,X1] x [Y0,Y1].
type Rectangle struct {
	X0, Y0, X1, Y1 float64
	Material       material.Material
}

// NewRectangle creates a unit rectangle [-1,1]x[-1,1] at z=0.
func NewRectangle(mat material.Material) *Rectangle {
	return &Rectangle{X0: -1, Y0: -1, X1: 1, Y1: 1, Material: mat}
}

// Hit intersects the ray with the z=0 plane and tests the xy bounds.
func (r *Rectangle) Hit(ray vec3.Ray, tMin, tMax float64) (HitRecord, bool) {
	if ray.Direction.Z == 0 {
		return HitRecord{}, false
	}
	t := -ray.Origin.Z / ray.Direction.Z
	if t < tMin || t > tMax {
		return HitRecord{}, false
	}

	p := ray.At(t)
	if p.X < r.X0 || p.X > r.X1 || p.Y < r.Y0 || p.Y > r.Y1 {
		return HitRecord{}, false
	}

	var hit HitRecord
	hit.T = t
	hit.Point = p
	hit.Material = r.Material
	hit.SetFaceNormal(ray, vec3.New(0, 0, 1))
	hit.U = (p.X - r.X0) / (r.X1 - r.X0)
	hit.V = (p.Y - r.Y0) / (r.Y1 - r.Y0)
	return hit, true
}

// BoundingBox returns an AABB padded slightly in z, since the rectangle is
// a measure-zero plane slab otherwise.
func (r *Rectangle) BoundingBox() AABB {
	const pad = 1e-4
	return NewAABB(
		vec3.New(r.X0, r.Y0, -pad),
		vec3.New(r.X1, r.Y1, pad),
	)
}
