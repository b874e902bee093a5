package shape

import (
	"math"

	"github.com/dkarpushkin/go-pathtracer/pkg/algebra"
	"github.com/dkarpushkin/go-pathtracer/pkg/material"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Torus lies in the object-space xy plane, centered at the origin, with a
// major Radius (ring radius) and minor TubeRadius (tube thickness).
type Torus struct {
	Radius, TubeRadius float64
	Material           material.Material
}

// NewTorus creates a torus with the given ring/tube radii.
func NewTorus(radius, tubeRadius float64, mat material.Material) *Torus {
	return &Torus{Radius: radius, TubeRadius: tubeRadius, Material: mat}
}

// Hit solves the quartic torus equation derived from
// (x^2+y^2+z^2 + R^2 - r^2)^2 = 4R^2(x^2+y^2), substituting the ray's
// parametric point, and picks the smallest positive real root.
func (tr *Torus) Hit(ray vec3.Ray, tMin, tMax float64) (HitRecord, bool) {
	o, d := ray.Origin, ray.Direction
	R, r := tr.Radius, tr.TubeRadius

	fourR2 := 4 * R * R
	g := fourR2 * (d.X*d.X + d.Y*d.Y)
	h := 2 * fourR2 * (o.X*d.X + o.Y*d.Y)
	i := fourR2 * (o.X*o.X + o.Y*o.Y)
	j := d.Dot(d)
	k := 2 * o.Dot(d)
	l := o.Dot(o) + R*R - r*r

	a := j * j
	b := 2 * j * k
	c := 2*j*l + k*k - g
	dd := 2*k*l - h
	e := l*l - i

	roots := algebra.SolveQuartic(
		complex(a, 0), complex(b, 0), complex(c, 0), complex(dd, 0), complex(e, 0),
	)

	best := math.Inf(1)
	found := false
	for _, root := range roots {
		if math.Abs(imag(root)) >= 1e-15 {
			continue
		}
		t := real(root)
		if t < tMin || t > tMax {
			continue
		}
		if t < best {
			best = t
			found = true
		}
	}
	if !found {
		return HitRecord{}, false
	}

	t := best
	p := ray.At(t)
	ringPoint := vec3.New(p.X, p.Y, 0).Normalize().Multiply(R)
	outwardNormal := p.Subtract(ringPoint).Normalize()

	var hit HitRecord
	hit.T = t
	hit.Point = p
	hit.Material = tr.Material
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = torusUV(p, R, r)
	return hit, true
}

func torusUV(p vec3.Vec3, R, r float64) (u, v float64) {
	theta := math.Asin(clampTo(p.Z/r, -1, 1))
	phi := math.Acos(clampTo(p.Z/(R+r*math.Cos(theta)), -1, 1)) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

func clampTo(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// BoundingBox returns the AABB of the torus's bounding donut.
func (tr *Torus) BoundingBox() AABB {
	outer := tr.Radius + tr.TubeRadius
	return NewAABB(
		vec3.New(-outer, -outer, -tr.TubeRadius),
		vec3.New(outer, outer, tr.TubeRadius),
	)
}
