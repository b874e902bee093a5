package shape

import (
	"math"

	"github.com/dkarpushkin/go-pathtracer/pkg/material"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Function is the capability set a ray-marched implicit surface must
// provide: an implicit scalar field whose zero set is the surface, its
// gradient (used as the surface normal), a bounding sphere entry/exit test
// to seed and bound the march, and an optional uv parameterization.
type Function interface {
	// Bounds returns the object-space min/max corner of a conservative
	// bounding box for the surface.
	Bounds() (vec3.Vec3, vec3.Vec3)
	// IntersectBound returns the ray parameters (entry, exit) where the
	// ray crosses the surface's bounding volume, or ok=false if it misses.
	IntersectBound(origin, dir vec3.Vec3) (enter, exit float64, ok bool)
	// Eval evaluates the scalar field at p; the surface is Eval(p) == 0.
	Eval(p vec3.Vec3) float64
	// Gradient returns the field gradient at p (the surface normal,
	// un-normalized).
	Gradient(p vec3.Vec3) vec3.Vec3
	// UV returns the texture coordinate at a surface point; implicit
	// surfaces without a natural parameterization may return (0, 0).
	UV(p vec3.Vec3) (u, v float64)
}

// RayMarched intersects a ray with an implicit Function by stepping along
// the ray inside the function's bounding interval, watching for a sign
// change in the field and then reversing and refining the step.
type RayMarched struct {
	Function Function
	Material material.Material
	Step     float64
	Depth    int
}

// NewRayMarched creates a ray-marched shape with the given step size and
// iteration depth. A depth of 0 defaults to 100 outer iterations.
func NewRayMarched(fn Function, mat material.Material, step float64, depth int) *RayMarched {
	if depth == 0 {
		depth = 100
	}
	if step == 0 {
		step = 0.01
	}
	return &RayMarched{Function: fn, Material: mat, Step: step, Depth: depth}
}

// Hit marches from the bounding-sphere entry point, reversing and scaling
// the step by -0.01 on every sign flip of the field, until the field value
// is within tolerance of zero or the march exits the bounding interval.
func (rm *RayMarched) Hit(ray vec3.Ray, tMin, tMax float64) (HitRecord, bool) {
	start, end, ok := rm.Function.IntersectBound(ray.Origin, ray.Direction)
	if !ok {
		return HitRecord{}, false
	}
	if start < tMin {
		start = tMin
	}
	if end > tMax {
		end = tMax
	}
	if start >= end {
		return HitRecord{}, false
	}

	t := start
	step := rm.Step
	p := ray.At(t)
	r := rm.Function.Eval(p)

	for i := 0; i < rm.Depth; i++ {
		for t > start-1e-9 && t < end+1e-9 {
			p = ray.At(t)
			next := rm.Function.Eval(p)

			if approxZero(next) {
				return rm.buildHit(ray, t, p, tMin, tMax)
			}
			if (r < 0 && next > 0) || (r > 0 && next < 0) {
				step *= -0.01
				r = next
				break
			}
			r = next
			t += step
		}
		if t < start || t > end {
			return HitRecord{}, false
		}
	}

	return HitRecord{}, false
}

func approxZero(x float64) bool {
	return math.Abs(x) < 1e-6
}

func (rm *RayMarched) buildHit(ray vec3.Ray, t float64, p vec3.Vec3, tMin, tMax float64) (HitRecord, bool) {
	if t < tMin || t > tMax {
		return HitRecord{}, false
	}

	var hit HitRecord
	hit.T = t
	hit.Point = p
	hit.Material = rm.Material
	hit.SetFaceNormal(ray, rm.Function.Gradient(p).Normalize())
	hit.U, hit.V = rm.Function.UV(p)
	return hit, true
}

// BoundingBox returns the function's declared bounding box.
func (rm *RayMarched) BoundingBox() AABB {
	min, max := rm.Function.Bounds()
	return NewAABB(min, max)
}
