// Package camera implements the pinhole camera model, its viewport
// parameterization, the jittered multisample ray caster, and orbit control.
package camera

import (
	"math"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Camera is a pinhole camera: position, orthonormal (direction, up, right)
// basis, field of view, and focal length. Viewport width derives from fov
// and focal length; height from viewport width and the image aspect ratio.
type Camera struct {
	Position    vec3.Vec3
	Direction   vec3.Vec3
	Up          vec3.Vec3
	Right       vec3.Vec3
	Fov         float64 // radians
	FocalLength float64
}

// New builds a camera looking from position towards lookAt, with upHint
// used to derive an orthonormal up/right pair: right = normalize(direction
// x upHint); up = normalize(right x direction).
func New(position, lookAt, upHint vec3.Vec3, fovDegrees, focalLength float64) Camera {
	direction := lookAt.Subtract(position).Normalize()
	right := direction.Cross(upHint).Normalize()
	up := right.Cross(direction).Normalize()

	return Camera{
		Position:    position,
		Direction:   direction,
		Up:          up,
		Right:       right,
		Fov:         fovDegrees * math.Pi / 180,
		FocalLength: focalLength,
	}
}

// viewportWidth returns 2*tan(fov/2)*focalLength.
func (c Camera) viewportWidth() float64 {
	return math.Tan(c.Fov/2) * c.FocalLength * 2
}

// OrbitController maintains a camera as an orbit around a fixed target,
// parameterized by spherical angles and distance — the control scheme the
// original interactive binaries drive from keyboard/mouse input.
type OrbitController struct {
	Target      vec3.Vec3
	Phi, Theta  float64 // radians; Theta is polar angle from +Y
	Distance    float64
	Up          vec3.Vec3
	Fov         float64
	FocalLength float64
}

// NewOrbitController creates an orbit controller aimed at target.
func NewOrbitController(target vec3.Vec3, phi, theta, distance, fovDegrees, focalLength float64) *OrbitController {
	return &OrbitController{
		Target:      target,
		Phi:         phi,
		Theta:       theta,
		Distance:    distance,
		Up:          vec3.New(0, 1, 0),
		Fov:         fovDegrees,
		FocalLength: focalLength,
	}
}

// Orbit adjusts phi/theta by the given deltas, wrapping phi modulo 2*pi and
// clamping theta away from the poles to avoid a degenerate up vector.
func (o *OrbitController) Orbit(dPhi, dTheta float64) {
	o.Phi = math.Mod(o.Phi+dPhi, 2*math.Pi)
	if o.Phi < 0 {
		o.Phi += 2 * math.Pi
	}
	o.Theta += dTheta

	const epsilon = 0.01
	if o.Theta < epsilon {
		o.Theta = epsilon
	}
	if o.Theta > math.Pi-epsilon {
		o.Theta = math.Pi - epsilon
	}
}

// Zoom adjusts the orbit distance, never letting it reach zero.
func (o *OrbitController) Zoom(delta float64) {
	o.Distance += delta
	if o.Distance < 0.01 {
		o.Distance = 0.01
	}
}

// Camera derives the current pinhole camera from the orbit parameters.
func (o *OrbitController) Camera() Camera {
	position := vec3.New(
		o.Target.X+o.Distance*math.Sin(o.Theta)*math.Cos(o.Phi),
		o.Target.Y+o.Distance*math.Cos(o.Theta),
		o.Target.Z+o.Distance*math.Sin(o.Theta)*math.Sin(o.Phi),
	)
	return New(position, o.Target, o.Up, o.Fov, o.FocalLength)
}
