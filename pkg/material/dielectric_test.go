package material

import (
	"math/rand"
	"testing"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

func TestDielectricAttenuationIsAlwaysWhite(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(5))
	hit := Hit{Point: vec3.Vec3{}, Normal: vec3.New(0, 1, 0), FrontFace: true}
	rayIn := vec3.NewRay(vec3.New(0, 1, 0), vec3.New(0, -1, 0))

	for i := 0; i < 100; i++ {
		_, attenuation, ok := glass.Scatter(rayIn, hit, random)
		if !ok {
			t.Fatal("expected dielectric to always scatter")
		}
		if !attenuation.Equals(vec3.New(1, 1, 1)) {
			t.Errorf("expected attenuation (1,1,1), got %v", attenuation)
		}
	}
}

func TestDielectricStraightOnEntryMostlyRefracts(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(6))
	hit := Hit{Point: vec3.Vec3{}, Normal: vec3.New(0, 1, 0), FrontFace: true}
	rayIn := vec3.NewRay(vec3.New(0, 1, 0), vec3.New(0, -1, 0))

	refracted := 0
	for i := 0; i < 200; i++ {
		scattered, _, _ := glass.Scatter(rayIn, hit, random)
		if scattered.Direction.Dot(vec3.New(0, -1, 0)) > 0.99 {
			refracted++
		}
	}
	// Schlick reflectance at normal incidence for ior=1.5 is small (~4%),
	// so straight-on rays should refract through the vast majority of the
	// time rather than reflect.
	if refracted < 150 {
		t.Errorf("expected most straight-on hits to refract, only %d/200 did", refracted)
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(7))

	// Exiting the glass (FrontFace=false flips the ratio to ior) at a
	// grazing angle exceeds the critical angle and must always reflect.
	normal := vec3.New(0, 1, 0)
	hit := Hit{Point: vec3.Vec3{}, Normal: normal, FrontFace: false}
	rayIn := vec3.NewRay(vec3.New(-1, 0.05, 0), vec3.New(1, -0.05, 0))

	scattered, _, ok := glass.Scatter(rayIn, hit, random)
	if !ok {
		t.Fatal("expected scatter")
	}
	// A reflected ray stays on the same side of the normal as the
	// incoming ray's origin implies; check it does not cross to the
	// refraction side (y component flips sign under real refraction here).
	if scattered.Direction.Y <= 0 {
		t.Errorf("expected total internal reflection to keep the ray on the incoming side, got %v", scattered.Direction)
	}
}

func TestDielectricEmittedIsBlack(t *testing.T) {
	glass := NewDielectric(1.5)
	if !glass.Emitted(0, 0, vec3.Vec3{}).IsZero() {
		t.Error("expected dielectric to emit nothing")
	}
}

func TestReflectanceAtNormalIncidenceMatchesSchlickR0(t *testing.T) {
	ior := 1.5
	r0 := (1 - ior) / (1 + ior)
	r0 *= r0

	got := Reflectance(1.0, ior)
	if got-r0 > 1e-9 || r0-got > 1e-9 {
		t.Errorf("Reflectance(1.0, %v) = %v, want r0 = %v", ior, got, r0)
	}
}
