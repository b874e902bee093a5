package shape

import (
	"math"

	"github.com/dkarpushkin/go-pathtracer/pkg/algebra"
	"github.com/dkarpushkin/go-pathtracer/pkg/material"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Sphere is the canonical unit sphere centered at the origin in object
// space; world placement comes entirely from a wrapping Transform.
// InverseNormal flips the computed normal inward, producing a hollow shell
// useful for glass-bubble-style dielectric interiors.
type Sphere struct {
	Material      material.Material
	InverseNormal bool
}

// NewSphere creates a unit sphere with the given material.
func NewSphere(mat material.Material) *Sphere {
	return &Sphere{Material: mat}
}

// Hit solves the sphere quadratic a*t^2 + 2*halfB*t + c = 0 for the unit
// sphere at the origin.
func (s *Sphere) Hit(ray vec3.Ray, tMin, tMax float64) (HitRecord, bool) {
	oc := ray.Origin
	a := ray.Direction.Dot(ray.Direction)
	halfB := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - 1.0

	t0, t1, ok := algebra.SolveQuadratic(a, halfB, c)
	if !ok {
		return HitRecord{}, false
	}

	t := t0
	if t < tMin || t > tMax {
		t = t1
		if t < tMin || t > tMax {
			return HitRecord{}, false
		}
	}

	p := ray.At(t)
	outwardNormal := p
	if s.InverseNormal {
		outwardNormal = outwardNormal.Negate()
	}

	var hit HitRecord
	hit.T = t
	hit.Point = p
	hit.Material = s.Material
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = sphereUV(p)
	return hit, true
}

// sphereUV maps a unit-sphere point to (u, v) with theta = acos(-p.y),
// phi = atan2(-p.z, p.x) + pi.
func sphereUV(p vec3.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the canonical +-1 cube.
func (s *Sphere) BoundingBox() AABB {
	return NewAABB(vec3.New(-1, -1, -1), vec3.New(1, 1, 1))
}
