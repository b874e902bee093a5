// Package shape implements the polymorphic intersection interface and its
// primitive variants: sphere, cube, rectangle, torus, and ray-marched
// implicit surfaces, plus the generic transform-wrapping shape and the
// flat shape collection the BVH indexes.
package shape

import (
	"github.com/dkarpushkin/go-pathtracer/pkg/material"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// AABB is an axis-aligned bounding box with the invariant Min <= Max on
// every component.
type AABB struct {
	Min, Max vec3.Vec3
}

// NewAABB builds an AABB from explicit corners.
func NewAABB(min, max vec3.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints returns the smallest AABB enclosing all given points.
func NewAABBFromPoints(points ...vec3.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return AABB{Min: min, Max: max}
}

// Hit performs the slab test against the ray's parametric range [tMin, tMax].
func (b AABB) Hit(ray vec3.Ray, tMin, tMax float64) bool {
	origin, dir := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}, [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	bmin, bmax := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}, [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if absf(dir[axis]) < 1e-8 {
			if origin[axis] < bmin[axis] || origin[axis] > bmax[axis] {
				return false
			}
			continue
		}
		invD := 1.0 / dir[axis]
		t0 := (bmin[axis] - origin[axis]) * invD
		t1 := (bmax[axis] - origin[axis]) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Union returns the AABB enclosing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Center returns the midpoint of the box.
func (b AABB) Center() vec3.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Corners returns all eight corners of the box, used to transform an AABB
// by transforming its corners and taking the result's extrema.
func (b AABB) Corners() [8]vec3.Vec3 {
	return [8]vec3.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// HitRecord describes a ray-shape intersection.
type HitRecord struct {
	Point     vec3.Vec3
	Normal    vec3.Vec3
	T         float64
	U, V      float64
	FrontFace bool
	Material  material.Material
}

// SetFaceNormal derives FrontFace from sign(normal . direction) and stores
// the outward-facing normal as observed by the ray.
func (h *HitRecord) SetFaceNormal(ray vec3.Ray, outwardNormal vec3.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is the polymorphic intersection contract every primitive and the
// transform wrapper implements.
type Shape interface {
	Hit(ray vec3.Ray, tMin, tMax float64) (HitRecord, bool)
	BoundingBox() AABB
}
