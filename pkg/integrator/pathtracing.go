// Package integrator implements the recursive radiance estimator: hit ->
// material scatter x recurse, or emit, or background.
package integrator

import (
	"math/rand"

	"github.com/dkarpushkin/go-pathtracer/pkg/material"
	"github.com/dkarpushkin/go-pathtracer/pkg/scene"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// PathTracer is a fixed-depth recursive radiance estimator: no Russian
// roulette, no light importance sampling. Each bounce's radiance is the
// material's emission plus its attenuation times the recursive radiance of
// the scattered ray; a ray that scatters nowhere contributes only emission,
// a ray that misses contributes the scene background, and a ray traced
// once the depth is exhausted contributes black.
type PathTracer struct {
	Scene    *scene.Scene
	MaxDepth int
}

// NewPathTracer creates a path tracer bound to scene with the given fixed
// recursion depth.
func NewPathTracer(s *scene.Scene, maxDepth int) *PathTracer {
	return &PathTracer{Scene: s, MaxDepth: maxDepth}
}

// RayColor estimates the radiance arriving along ray.
func (pt *PathTracer) RayColor(ray vec3.Ray, random *rand.Rand) vec3.Vec3 {
	return pt.rayColor(ray, pt.MaxDepth, random)
}

func (pt *PathTracer) rayColor(ray vec3.Ray, depth int, random *rand.Rand) vec3.Vec3 {
	if depth <= 0 {
		return vec3.Vec3{}
	}

	hit, ok := pt.Scene.ClosestHit(ray, 0.001, 1e9)
	if !ok {
		return pt.Scene.Background(ray)
	}

	matHit := material.Hit{Point: hit.Point, Normal: hit.Normal, FrontFace: hit.FrontFace, U: hit.U, V: hit.V}
	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scattered, attenuation, scatters := hit.Material.Scatter(ray, matHit, random)
	if !scatters {
		return emitted
	}

	return emitted.Add(attenuation.MultiplyVec(pt.rayColor(scattered, depth-1, random)))
}
