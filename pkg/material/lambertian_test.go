package material

import (
	"math/rand"
	"testing"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

func TestLambertianScatterAttenuatesByAlbedo(t *testing.T) {
	lam := NewLambertian(vec3.New(0.5, 0.25, 0.75))
	random := rand.New(rand.NewSource(1))

	hit := Hit{Point: vec3.New(0, 0, 0), Normal: vec3.New(0, 1, 0), FrontFace: true}
	rayIn := vec3.NewRay(vec3.New(0, 1, 0), vec3.New(0, -1, 0))

	_, attenuation, ok := lam.Scatter(rayIn, hit, random)
	if !ok {
		t.Fatal("expected Lambertian to always scatter")
	}
	if !attenuation.Equals(vec3.New(0.5, 0.25, 0.75)) {
		t.Errorf("expected attenuation to equal albedo, got %v", attenuation)
	}
}

func TestLambertianScatterStaysInNormalHemisphere(t *testing.T) {
	lam := NewLambertian(vec3.New(1, 1, 1))
	random := rand.New(rand.NewSource(2))
	normal := vec3.New(0, 1, 0)
	hit := Hit{Point: vec3.Vec3{}, Normal: normal}
	rayIn := vec3.NewRay(vec3.New(0, 1, 0), vec3.New(0, -1, 0))

	for i := 0; i < 500; i++ {
		scattered, _, ok := lam.Scatter(rayIn, hit, random)
		if !ok {
			t.Fatal("expected scatter")
		}
		if scattered.Direction.Dot(normal) < -1e-9 {
			t.Fatalf("scattered direction %v fell below the normal's hemisphere", scattered.Direction)
		}
	}
}

func TestLambertianEmittedIsBlack(t *testing.T) {
	lam := NewLambertian(vec3.New(1, 1, 1))
	if !lam.Emitted(0, 0, vec3.Vec3{}).IsZero() {
		t.Error("expected Lambertian to emit nothing")
	}
}
