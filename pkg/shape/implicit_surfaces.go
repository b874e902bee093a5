package shape

import (
	"math"

	"github.com/dkarpushkin/go-pathtracer/pkg/algebra"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// boundingSphereIntersect solves for the ray parameters where it crosses a
// sphere of the given radius centered at the origin, clamping a negative
// entry to zero so the march always starts at or after the ray origin.
func boundingSphereIntersect(origin, dir vec3.Vec3, radius float64) (enter, exit float64, ok bool) {
	t0, t1, ok := algebra.SolveQuadratic(dir.Dot(dir), dir.Dot(origin), origin.Dot(origin)-radius*radius)
	if !ok {
		return 0, 0, false
	}
	if t0 < 0 {
		t0 = 0
	}
	return t0, t1, true
}

// Heart is the implicit surface a^3 - x^2*z^3 - (9/80)*y^2*z^3 = 0 where
// a = x^2 + (9/4)y^2 + z^2 - 1, scaled along y to stretch it into a heart
// shape. Ported from the original Rust implementation's Heart shape.
type Heart struct {
	Radius vec3.Vec3 // per-axis scale of the bounding sphere probe
}

// NewHeart creates the canonical heart implicit surface.
func NewHeart() *Heart {
	return &Heart{Radius: vec3.New(1.45, 1.45/2.05, 1.45)}
}

func (h *Heart) Bounds() (vec3.Vec3, vec3.Vec3) {
	return h.Radius.Negate(), h.Radius
}

func (h *Heart) IntersectBound(origin, dir vec3.Vec3) (float64, float64, bool) {
	o := vec3.New(origin.X/h.Radius.X, origin.Y/h.Radius.Y, origin.Z/h.Radius.Z)
	d := vec3.New(dir.X/h.Radius.X, dir.Y/h.Radius.Y, dir.Z/h.Radius.Z)
	return boundingSphereIntersect(o, d, 1)
}

func (h *Heart) Eval(p vec3.Vec3) float64 {
	x, y, z := p.X, p.Y, p.Z
	a := x*x + 2.25*y*y + z*z - 1
	return a*a*a - x*x*z*z*z - (9.0/80.0)*y*y*z*z*z
}

func (h *Heart) Gradient(p vec3.Vec3) vec3.Vec3 {
	x, y, z := p.X, p.Y, p.Z
	a := x*x + 2.25*y*y + z*z - 1
	z3 := z * z * z
	dx := 3*a*a*(2*x) - 2*x*z3
	dy := 3*a*a*(4.5*y) - (9.0/40.0)*y*z3
	dz := 3*a*a*(2*z) - x*x*3*z*z - (9.0/80.0)*y*y*3*z*z
	return vec3.New(dx, dy, dz)
}

func (h *Heart) UV(vec3.Vec3) (float64, float64) { return 0, 0 }

// Sine is a triply-periodic implicit surface defined by the zero set of
// sin(x)sin(y) + sin(y)sin(z) + sin(z)sin(x), bounded to a single period
// cube.
type Sine struct {
	HalfExtent float64
}

// NewSine creates a sine-surface bounded to [-halfExtent, halfExtent]^3.
func NewSine(halfExtent float64) *Sine {
	if halfExtent == 0 {
		halfExtent = math.Pi
	}
	return &Sine{HalfExtent: halfExtent}
}

func (s *Sine) Bounds() (vec3.Vec3, vec3.Vec3) {
	e := vec3.New(s.HalfExtent, s.HalfExtent, s.HalfExtent)
	return e.Negate(), e
}

func (s *Sine) IntersectBound(origin, dir vec3.Vec3) (float64, float64, bool) {
	return boundingSphereIntersect(origin, dir, s.HalfExtent*math.Sqrt(3))
}

func (s *Sine) Eval(p vec3.Vec3) float64 {
	return math.Sin(p.X)*math.Sin(p.Y) + math.Sin(p.Y)*math.Sin(p.Z) + math.Sin(p.Z)*math.Sin(p.X)
}

func (s *Sine) Gradient(p vec3.Vec3) vec3.Vec3 {
	sx, cx := math.Sincos(p.X)
	sy, cy := math.Sincos(p.Y)
	sz, cz := math.Sincos(p.Z)
	return vec3.New(
		cx*sy+sz*cx,
		cy*sz+sx*cy,
		cz*sx+sy*cz,
	)
}

func (s *Sine) UV(vec3.Vec3) (float64, float64) { return 0, 0 }

// Star is an astroid-like superellipsoid |x|^p + |y|^p + |z|^p = 1 with
// p < 1, pulling the surface into sharp, star-like points along the axes.
type Star struct {
	Power float64
}

// NewStar creates a star surface with the given power (default 2/3).
func NewStar(power float64) *Star {
	if power == 0 {
		power = 2.0 / 3.0
	}
	return &Star{Power: power}
}

func (s *Star) Bounds() (vec3.Vec3, vec3.Vec3) {
	return vec3.New(-1, -1, -1), vec3.New(1, 1, 1)
}

func (s *Star) IntersectBound(origin, dir vec3.Vec3) (float64, float64, bool) {
	return boundingSphereIntersect(origin, dir, math.Sqrt(3))
}

func (s *Star) Eval(p vec3.Vec3) float64 {
	return powAbs(p.X, s.Power) + powAbs(p.Y, s.Power) + powAbs(p.Z, s.Power) - 1
}

func powAbs(x, power float64) float64 {
	return math.Pow(math.Abs(x), power)
}

func (s *Star) Gradient(p vec3.Vec3) vec3.Vec3 {
	d := func(x float64) float64 {
		if x == 0 {
			return 0
		}
		return s.Power * math.Pow(math.Abs(x), s.Power-1) * sign(x)
	}
	return vec3.New(d(p.X), d(p.Y), d(p.Z))
}

func (s *Star) UV(vec3.Vec3) (float64, float64) { return 0, 0 }

// DupinCyclide is the canonical Dupin cyclide
// (x^2+y^2+z^2+b^2-d^2)^2 - 4(ax-cd)^2 - 4b^2 y^2 = 0
// with a^2 = b^2 + c^2.
type DupinCyclide struct {
	A, B, C, D float64
}

// NewDupinCyclide creates a Dupin cyclide from ring radius a, tube radius
// b, and focus offsets c, d, with a constrained so a^2 = b^2 + c^2.
func NewDupinCyclide(b, c, d float64) *DupinCyclide {
	a := math.Sqrt(b*b + c*c)
	return &DupinCyclide{A: a, B: b, C: c, D: d}
}

func (c *DupinCyclide) Bounds() (vec3.Vec3, vec3.Vec3) {
	extent := c.A + c.B + c.D
	e := vec3.New(extent, extent, extent)
	return e.Negate(), e
}

func (c *DupinCyclide) IntersectBound(origin, dir vec3.Vec3) (float64, float64, bool) {
	extent := c.A + c.B + c.D
	return boundingSphereIntersect(origin, dir, extent*math.Sqrt(3))
}

func (c *DupinCyclide) Eval(p vec3.Vec3) float64 {
	x, y, z := p.X, p.Y, p.Z
	s := x*x + y*y + z*z + c.B*c.B - c.D*c.D
	u := c.A*x - c.C*c.D
	return s*s - 4*u*u - 4*c.B*c.B*y*y
}

func (c *DupinCyclide) Gradient(p vec3.Vec3) vec3.Vec3 {
	x, y, z := p.X, p.Y, p.Z
	s := x*x + y*y + z*z + c.B*c.B - c.D*c.D
	u := c.A*x - c.C*c.D
	return vec3.New(
		2*s*2*x-8*u*c.A,
		2*s*2*y-8*c.B*c.B*y,
		2*s*2*z,
	)
}

func (c *DupinCyclide) UV(vec3.Vec3) (float64, float64) { return 0, 0 }

// Hunt is a smooth, peanut-shaped quartic surface
// (x^2+y^2+z^2-a^2)^2 = b*(x^4+y^4+z^4) named for its resemblance to the
// classic Hunt surface gallery of algebraic surfaces.
type Hunt struct {
	A, B float64
}

// NewHunt creates a Hunt-style quartic surface.
func NewHunt(a, b float64) *Hunt {
	if a == 0 {
		a = 1.3
	}
	if b == 0 {
		b = 0.3
	}
	return &Hunt{A: a, B: b}
}

func (h *Hunt) Bounds() (vec3.Vec3, vec3.Vec3) {
	e := (h.A + 1) * 1.5
	return vec3.New(-e, -e, -e), vec3.New(e, e, e)
}

func (h *Hunt) IntersectBound(origin, dir vec3.Vec3) (float64, float64, bool) {
	e := (h.A + 1) * 1.5
	return boundingSphereIntersect(origin, dir, e*math.Sqrt(3))
}

func (h *Hunt) Eval(p vec3.Vec3) float64 {
	x, y, z := p.X, p.Y, p.Z
	r2 := x*x + y*y + z*z
	left := r2 - h.A*h.A
	return left*left - h.B*(x*x*x*x+y*y*y*y+z*z*z*z)
}

func (h *Hunt) Gradient(p vec3.Vec3) vec3.Vec3 {
	x, y, z := p.X, p.Y, p.Z
	r2 := x*x + y*y + z*z
	left := r2 - h.A*h.A
	return vec3.New(
		2*left*2*x-4*h.B*x*x*x,
		2*left*2*y-4*h.B*y*y*y,
		2*left*2*z-4*h.B*z*z*z,
	)
}

func (h *Hunt) UV(vec3.Vec3) (float64, float64) { return 0, 0 }

// Cushion is the quartic x^4 + y^4 + z^4 - x^2 - y^2 - z^2 + k = 0, a
// pillow-shaped blob that pinches inward along the axes as k shrinks.
type Cushion struct {
	K float64
}

// NewCushion creates a cushion surface with the given offset constant.
func NewCushion(k float64) *Cushion {
	if k == 0 {
		k = 0.3
	}
	return &Cushion{K: k}
}

func (c *Cushion) Bounds() (vec3.Vec3, vec3.Vec3) {
	return vec3.New(-1.3, -1.3, -1.3), vec3.New(1.3, 1.3, 1.3)
}

func (c *Cushion) IntersectBound(origin, dir vec3.Vec3) (float64, float64, bool) {
	return boundingSphereIntersect(origin, dir, 1.3*math.Sqrt(3))
}

func (c *Cushion) Eval(p vec3.Vec3) float64 {
	x, y, z := p.X, p.Y, p.Z
	return x*x*x*x + y*y*y*y + z*z*z*z - x*x - y*y - z*z + c.K
}

func (c *Cushion) Gradient(p vec3.Vec3) vec3.Vec3 {
	x, y, z := p.X, p.Y, p.Z
	return vec3.New(4*x*x*x-2*x, 4*y*y*y-2*y, 4*z*z*z-2*z)
}

func (c *Cushion) UV(vec3.Vec3) (float64, float64) { return 0, 0 }
