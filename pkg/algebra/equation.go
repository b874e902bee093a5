// Package algebra holds the polynomial root solvers used by the curved
// primitives: the quadratic solver serves the sphere and the ray-marched
// implicit surfaces' bounding spheres, the quartic solver serves the torus.
package algebra

import (
	"math"
	"math/cmplx"
)

// SolveQuadratic solves a*t^2 + 2*halfB*t + c = 0 and returns the two real
// roots in ascending order, or ok=false when the discriminant is negative.
func SolveQuadratic(a, halfB, c float64) (t0, t1 float64, ok bool) {
	d := halfB*halfB - a*c
	if d < 0 {
		return 0, 0, false
	}
	dSqrt := math.Sqrt(d)
	if d == 0 {
		return -halfB / a, -halfB / a, true
	}
	r0 := (-halfB - dSqrt) / a
	r1 := (-halfB + dSqrt) / a
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return r0, r1, true
}

// SolveQuartic solves a*t^4 + b*t^3 + c*t^2 + d*t + e = 0 via the depressed
// quartic and Cardano's resolvent cubic, returning all four (possibly
// complex) roots. Callers treat a root as real when |Im| is below a small
// epsilon (the caller-chosen tolerance; this package imposes none).
func SolveQuartic(a, b, c, d, e complex128) [4]complex128 {
	b = b / a
	c = c / a
	d = d / a
	e = e / a

	b2 := b * b
	alpha := c - (3.0/8.0)*b2
	beta := (b2*b)/8.0 - (b*c)/2.0 + d
	gamma := (-3.0/256.0)*b2*b2 + b2*c/16.0 - b*d/4.0 + e

	alpha2 := alpha * alpha
	t := -b / 4.0

	if approxZero(beta) {
		r := cmplx.Sqrt(alpha2 - 4.0*gamma)
		r1 := cmplx.Sqrt((-alpha + r) / 2.0)
		r2 := cmplx.Sqrt((-alpha - r) / 2.0)
		return [4]complex128{t + r1, t - r1, t + r2, t - r2}
	}

	p := -(alpha2/12.0 + gamma)
	q := -alpha2*alpha/108.0 + alpha*gamma/3.0 - beta*beta/8.0
	r := -q/2.0 + cmplx.Sqrt(q*q/4.0+p*p*p/27.0)
	u := cmplx.Pow(r, 1.0/3.0)

	var y complex128
	y = (-5.0/6.0)*alpha + u
	if approxZero(u) {
		y -= cmplx.Pow(q, 1.0/3.0)
	} else {
		y -= p / (3.0 * u)
	}

	w := cmplx.Sqrt(alpha + 2.0*y)
	r1 := cmplx.Sqrt(-(3.0*alpha + 2.0*y + 2.0*beta/w))
	r2 := cmplx.Sqrt(-(3.0*alpha + 2.0*y - 2.0*beta/w))

	return [4]complex128{
		t + (w-r1)/2.0,
		t + (w+r1)/2.0,
		t + (-w-r2)/2.0,
		t + (-w+r2)/2.0,
	}
}

func approxZero(z complex128) bool {
	const eps = 1e-9
	return cmplx.Abs(z) < eps
}
