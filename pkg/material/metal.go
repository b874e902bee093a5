package material

import (
	"math/rand"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Metal is a specular reflector with optional fuzz: a perfect mirror
// reflection perturbed by a random offset scaled by Fuzz.
type Metal struct {
	Albedo vec3.Vec3
	Fuzz   float64
}

// NewMetal creates a metal material, clamping fuzz to [0, 1].
func NewMetal(albedo vec3.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects rayIn about the normal, perturbs it by Fuzz, and
// scatters only if the result stays on the outward side of the surface.
func (m *Metal) Scatter(rayIn vec3.Ray, hit Hit, random *rand.Rand) (vec3.Ray, vec3.Vec3, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(vec3.RandomInUnitSphere(random).Multiply(m.Fuzz))
	}

	scattered := vec3.NewRay(hit.Point, reflected)
	ok := scattered.Direction.Dot(hit.Normal) > 0
	return scattered, m.Albedo, ok
}

// Emitted returns black; metal does not emit light.
func (m *Metal) Emitted(u, v float64, p vec3.Vec3) vec3.Vec3 {
	return vec3.Vec3{}
}
