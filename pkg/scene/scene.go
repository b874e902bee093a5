// Package scene owns the shape list, BVH root, material table, camera, and
// background of a renderable scene, and exposes the closest-hit entry point
// the integrator consumes.
package scene

import (
	"github.com/dkarpushkin/go-pathtracer/pkg/bvh"
	"github.com/dkarpushkin/go-pathtracer/pkg/camera"
	"github.com/dkarpushkin/go-pathtracer/pkg/material"
	"github.com/dkarpushkin/go-pathtracer/pkg/shape"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Background is a procedural sky function evaluated when a ray escapes the
// scene without hitting anything.
type Background func(ray vec3.Ray) vec3.Vec3

// SolidBackground returns a Background that always returns color.
func SolidBackground(color vec3.Vec3) Background {
	return func(vec3.Ray) vec3.Vec3 { return color }
}

// GradientBackground linearly blends bottom to top based on the ray
// direction's Y component, the classic "sky" used by the example scenes.
func GradientBackground(bottom, top vec3.Vec3) Background {
	return func(ray vec3.Ray) vec3.Vec3 {
		t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
		return bottom.Multiply(1 - t).Add(top.Multiply(t))
	}
}

// Scene owns every shape (indexed by a BVH), the camera, and the
// background. Materials are referenced directly by the shapes that use
// them once the scene is constructed; the Materials map exists only to
// resolve named references while loading (see package sceneio).
type Scene struct {
	World      *bvh.BVH
	Materials  map[string]material.Material
	Camera     camera.Camera
	Background Background
	Width      int
	Height     int
}

// ClosestHit finds the nearest shape intersection along ray within
// [tMin, tMax].
func (s *Scene) ClosestHit(ray vec3.Ray, tMin, tMax float64) (shape.HitRecord, bool) {
	return s.World.Hit(ray, tMin, tMax)
}
