package material

import (
	"math"
	"math/rand"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Dielectric is a transparent material (glass, water) that reflects or
// refracts according to Schlick's approximation of the Fresnel equations,
// with no color absorption.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric with the given index of refraction
// (e.g. 1.5 for glass).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter decides between reflection and refraction using the Fresnel
// reflectance at the hit angle, falling back to reflection whenever
// refraction would require total internal reflection.
func (d *Dielectric) Scatter(rayIn vec3.Ray, hit Hit, random *rand.Rand) (vec3.Ray, vec3.Vec3, bool) {
	attenuation := vec3.New(1, 1, 1)

	refractionRatio := d.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction vec3.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	return vec3.NewRay(hit.Point, direction), attenuation, true
}

// Emitted returns black; dielectrics do not emit light.
func (d *Dielectric) Emitted(u, v float64, p vec3.Vec3) vec3.Vec3 {
	return vec3.Vec3{}
}

// Reflectance computes the Fresnel reflectance via Schlick's approximation.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
