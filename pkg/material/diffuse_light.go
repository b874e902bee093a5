package material

import (
	"math/rand"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// DiffuseLight is a pure emitter: it never scatters, and emits a constant
// radiance sourced from its texture (usually a SolidColor with components
// above 1 to act as a light source).
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a diffuse light of the given emission color.
func NewDiffuseLight(emission vec3.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// Scatter always fails: diffuse lights absorb every incoming ray.
func (d *DiffuseLight) Scatter(rayIn vec3.Ray, hit Hit, random *rand.Rand) (vec3.Ray, vec3.Vec3, bool) {
	return vec3.Ray{}, vec3.Vec3{}, false
}

// Emitted returns the light's emission color.
func (d *DiffuseLight) Emitted(u, v float64, p vec3.Vec3) vec3.Vec3 {
	return d.Emit.Value(u, v, p)
}
