package shape

import (
	"math"
	"testing"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

func TestSphereHitMiss(t *testing.T) {
	sphere := NewSphere(nil)
	ray := vec3.NewRay(vec3.New(2, 0, 5), vec3.New(0, 0, -1))

	if _, ok := sphere.Hit(ray, 0.001, 1000); ok {
		t.Fatal("expected miss, got hit")
	}
}

func TestSphereHitFrontFace(t *testing.T) {
	sphere := NewSphere(nil)
	ray := vec3.NewRay(vec3.New(0, 0, 2), vec3.New(0, 0, -1))

	hit, ok := sphere.Hit(ray, 0.001, 1000)
	if !ok {
		t.Fatal("expected hit, got miss")
	}
	if math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("expected t=1, got t=%v", hit.T)
	}
	if !hit.FrontFace {
		t.Error("expected front face hit")
	}
	if !hit.Normal.Equals(vec3.New(0, 0, 1)) {
		t.Errorf("expected normal (0,0,1), got %v", hit.Normal)
	}
}

func TestSphereHitBackFaceFromInside(t *testing.T) {
	sphere := NewSphere(nil)
	ray := vec3.NewRay(vec3.New(0, 0, 0), vec3.New(0, 0, 1))

	hit, ok := sphere.Hit(ray, 0.001, 1000)
	if !ok {
		t.Fatal("expected hit, got miss")
	}
	if hit.FrontFace {
		t.Error("expected back face hit when ray originates inside the sphere")
	}
	if !hit.Normal.Equals(vec3.New(0, 0, -1)) {
		t.Errorf("expected normal flipped to face the ray (0,0,-1), got %v", hit.Normal)
	}
}

func TestSphereInverseNormalFlipsOutwardNormal(t *testing.T) {
	sphere := NewSphere(nil)
	sphere.InverseNormal = true
	ray := vec3.NewRay(vec3.New(0, 0, 2), vec3.New(0, 0, -1))

	hit, ok := sphere.Hit(ray, 0.001, 1000)
	if !ok {
		t.Fatal("expected hit, got miss")
	}
	// The outward normal flips to point inward; SetFaceNormal then reports
	// this as a back-face hit for a ray approaching from outside.
	if hit.FrontFace {
		t.Error("expected inverse-normal sphere to report a back-face hit from outside")
	}
}

func TestSphereBoundingBox(t *testing.T) {
	sphere := NewSphere(nil)
	box := sphere.BoundingBox()
	if !box.Min.Equals(vec3.New(-1, -1, -1)) || !box.Max.Equals(vec3.New(1, 1, 1)) {
		t.Errorf("expected unit bounding box, got [%v, %v]", box.Min, box.Max)
	}
}
