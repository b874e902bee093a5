package material

import (
	"math/rand"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Lambertian is a perfectly diffuse material: it scatters with a
// cosine-weighted random direction about the hit normal and attenuates by
// its texture's color evaluated at the hit's uv/point.
type Lambertian struct {
	Albedo Texture
}

// NewLambertian creates a Lambertian material from a solid color.
func NewLambertian(albedo vec3.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewLambertianTexture creates a Lambertian material backed by any texture.
func NewLambertianTexture(tex Texture) *Lambertian {
	return &Lambertian{Albedo: tex}
}

// Scatter picks a cosine-weighted direction around the normal; if the
// sampled direction nearly cancels the normal, it substitutes the normal
// itself to avoid a degenerate (zero-length) scattered ray.
func (l *Lambertian) Scatter(rayIn vec3.Ray, hit Hit, random *rand.Rand) (vec3.Ray, vec3.Vec3, bool) {
	direction := vec3.RandomCosineDirection(hit.Normal, random)
	scattered := vec3.NewRay(hit.Point, direction)
	attenuation := l.Albedo.Value(hit.U, hit.V, hit.Point)
	return scattered, attenuation, true
}

// Emitted returns black; Lambertian surfaces do not emit light.
func (l *Lambertian) Emitted(u, v float64, p vec3.Vec3) vec3.Vec3 {
	return vec3.Vec3{}
}
