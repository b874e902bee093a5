// Package material implements the scatter/emit contract over a ray hit and
// the texture layer that materials consult for spatially-varying color.
package material

import (
	"math/rand"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Hit is the minimal view of a ray-shape intersection a material needs:
// point, normal, front/back face, and uv. It mirrors shape.HitRecord
// without importing the shape package, avoiding an import cycle (shapes
// hold a Material).
type Hit struct {
	Point     vec3.Vec3
	Normal    vec3.Vec3
	FrontFace bool
	U, V      float64
}

// Material is the scatter/emit contract every surface material implements.
// A material may scatter (producing a new ray and an attenuation), emit
// (for light sources), both, or neither (pure absorption).
type Material interface {
	// Scatter returns a new ray and an attenuation color, or ok=false if
	// the ray is absorbed.
	Scatter(rayIn vec3.Ray, hit Hit, random *rand.Rand) (scattered vec3.Ray, attenuation vec3.Vec3, ok bool)
	// Emitted returns the emitted radiance at a hit; non-emissive
	// materials return the zero vector.
	Emitted(u, v float64, p vec3.Vec3) vec3.Vec3
}

// Texture is the uv/point -> color contract the texture layer implements.
type Texture interface {
	Value(u, v float64, p vec3.Vec3) vec3.Vec3
}
