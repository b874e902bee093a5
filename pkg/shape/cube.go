package shape

import (
	"math"

	"github.com/dkarpushkin/go-pathtracer/pkg/material"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Cube is the canonical axis-aligned unit cube [-1,1]^3 in object space.
type Cube struct {
	Material material.Material
}

// NewCube creates a unit cube with the given material.
func NewCube(mat material.Material) *Cube {
	return &Cube{Material: mat}
}

// Hit performs the slab test for the object-space unit cube, then selects
// the hit face by whichever component of the (absolute) hit point is
// closest to 1, matching the canonical cube's face-selection-by-max-abs-
// component rule.
func (c *Cube) Hit(ray vec3.Ray, tMin, tMax float64) (HitRecord, bool) {
	box := AABB{Min: vec3.New(-1, -1, -1), Max: vec3.New(1, 1, 1)}

	tEnter, tExit := math.Inf(-1), math.Inf(1)
	origin, dir := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}, [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	bmin, bmax := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}, [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if absf(dir[axis]) < 1e-8 {
			if origin[axis] < bmin[axis] || origin[axis] > bmax[axis] {
				return HitRecord{}, false
			}
			continue
		}
		invD := 1.0 / dir[axis]
		t0 := (bmin[axis] - origin[axis]) * invD
		t1 := (bmax[axis] - origin[axis]) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tEnter {
			tEnter = t0
		}
		if t1 < tExit {
			tExit = t1
		}
		if tEnter > tExit {
			return HitRecord{}, false
		}
	}

	t := tEnter
	if t < tMin || t > tMax {
		t = tExit
		if t < tMin || t > tMax {
			return HitRecord{}, false
		}
	}

	p := ray.At(t)
	normal, u, v := cubeFace(p)

	var hit HitRecord
	hit.T = t
	hit.Point = p
	hit.Material = c.Material
	hit.SetFaceNormal(ray, normal)
	hit.U, hit.V = u, v
	return hit, true
}

// cubeFace picks the face by the largest absolute component of p and
// returns its outward normal and the other two coordinates as uv.
func cubeFace(p vec3.Vec3) (normal vec3.Vec3, u, v float64) {
	ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)

	switch {
	case ax >= ay && ax >= az:
		return vec3.New(sign(p.X), 0, 0), p.Y, p.Z
	case ay >= ax && ay >= az:
		return vec3.New(0, sign(p.Y), 0), p.X, p.Z
	default:
		return vec3.New(0, 0, sign(p.Z)), p.X, p.Y
	}
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// BoundingBox returns the canonical +-1 cube.
func (c *Cube) BoundingBox() AABB {
	return NewAABB(vec3.New(-1, -1, -1), vec3.New(1, 1, 1))
}
