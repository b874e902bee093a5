// Package transform implements the affine transform that every shape in
// pkg/shape is optionally wrapped with: a shape with a transform intersects
// in its own object space, and the transform carries the ray in and the hit
// back out.
package transform

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Transform is a 4x4 affine matrix paired explicitly with its inverse, so
// that per-ray object-space conversion never recomputes it.
type Transform struct {
	direct  mgl64.Mat4
	inverse mgl64.Mat4
}

// Identity returns the transform that leaves points and vectors unchanged.
func Identity() Transform {
	return Transform{direct: mgl64.Ident4(), inverse: mgl64.Ident4()}
}

// New composes translation, Euler rotation (roll*pitch*yaw, the product
// Rx*Ry*Rz, each angle in radians; applied to a point, the Z rotation acts
// first, then Y, then X), and scale into a single transform, along with
// its inverse.
func New(translation, rotation, scale vec3.Vec3) Transform {
	s := mgl64.Scale3D(nonZero(scale.X), nonZero(scale.Y), nonZero(scale.Z))
	rx := mgl64.HomogRotate3DX(rotation.X)
	ry := mgl64.HomogRotate3DY(rotation.Y)
	rz := mgl64.HomogRotate3DZ(rotation.Z)
	t := mgl64.Translate3D(translation.X, translation.Y, translation.Z)

	direct := t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
	inverse := direct.Inv()

	return Transform{direct: direct, inverse: inverse}
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// Compose returns a transform equivalent to applying t first, then outer.
func Compose(outer, t Transform) Transform {
	direct := outer.direct.Mul4(t.direct)
	return Transform{direct: direct, inverse: direct.Inv()}
}

// Inverse returns the inverse transform (direct/inverse swapped).
func (t Transform) Inverse() Transform {
	return Transform{direct: t.inverse, inverse: t.direct}
}

// TransformPoint transforms a point (w=1).
func (t Transform) TransformPoint(p vec3.Vec3) vec3.Vec3 {
	return mulPoint(t.direct, p)
}

// InverseTransformPoint transforms a point by the inverse.
func (t Transform) InverseTransformPoint(p vec3.Vec3) vec3.Vec3 {
	return mulPoint(t.inverse, p)
}

// TransformVector transforms a direction vector (w=0, no translation).
func (t Transform) TransformVector(v vec3.Vec3) vec3.Vec3 {
	return mulVector(t.direct, v)
}

// InverseTransformVector transforms a direction vector by the inverse.
func (t Transform) InverseTransformVector(v vec3.Vec3) vec3.Vec3 {
	return mulVector(t.inverse, v)
}

// TransformNormal transforms a normal using the inverse-transpose of the
// direct matrix, so normals survive non-uniform scale correctly.
func (t Transform) TransformNormal(n vec3.Vec3) vec3.Vec3 {
	it := t.inverse.Transpose()
	return mulVector(it, n).Normalize()
}

// InverseTransformNormal transforms a normal by the inverse-transpose of
// the inverse matrix (i.e. the transpose of the direct matrix).
func (t Transform) InverseTransformNormal(n vec3.Vec3) vec3.Vec3 {
	dt := t.direct.Transpose()
	return mulVector(dt, n).Normalize()
}

// TransformRay carries a world-space ray into object space via the inverse
// transform. Direction is NOT renormalized: callers that need a parametric
// t comparable between object and world space keep the unnormalized scale.
func (t Transform) TransformRay(r vec3.Ray) vec3.Ray {
	return vec3.Ray{
		Origin:    t.InverseTransformPoint(r.Origin),
		Direction: t.InverseTransformVector(r.Direction),
	}
}

func mulPoint(m mgl64.Mat4, p vec3.Vec3) vec3.Vec3 {
	v := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return vec3.New(v[0], v[1], v[2])
}

func mulVector(m mgl64.Mat4, v vec3.Vec3) vec3.Vec3 {
	r := m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return vec3.New(r[0], r[1], r[2])
}
