package shape

import (
	"math"
	"testing"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

func TestCubeHitMiss(t *testing.T) {
	cube := NewCube(nil)
	ray := vec3.NewRay(vec3.New(5, 5, 5), vec3.New(1, 0, 0))

	if _, ok := cube.Hit(ray, 0.001, 1000); ok {
		t.Fatal("expected miss, got hit")
	}
}

func TestCubeHitOffCenter(t *testing.T) {
	cube := NewCube(nil)
	// Enters through the +z face off-center, well within its bounds.
	ray := vec3.NewRay(vec3.New(0.3, 0.2, 5), vec3.New(0, 0, -1))

	hit, ok := cube.Hit(ray, 0.001, 1000)
	if !ok {
		t.Fatal("expected hit, got miss")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("expected t=4, got t=%v", hit.T)
	}
	if !hit.Normal.Equals(vec3.New(0, 0, 1)) {
		t.Errorf("expected +z face normal, got %v", hit.Normal)
	}
	if math.Abs(hit.U-0.3) > 1e-9 || math.Abs(hit.V-0.2) > 1e-9 {
		t.Errorf("expected uv=(0.3,0.2), got (%v,%v)", hit.U, hit.V)
	}
}

func TestCubeFaceSelectionPicksMaxAbsComponent(t *testing.T) {
	cube := NewCube(nil)
	// Ray grazes toward the top-front edge but should resolve to the +y
	// face since it enters there first.
	ray := vec3.NewRay(vec3.New(0, 5, 0.5), vec3.New(0, -1, 0))

	hit, ok := cube.Hit(ray, 0.001, 1000)
	if !ok {
		t.Fatal("expected hit, got miss")
	}
	if !hit.Normal.Equals(vec3.New(0, 1, 0)) {
		t.Errorf("expected +y face normal, got %v", hit.Normal)
	}
}

func TestCubeBoundingBox(t *testing.T) {
	cube := NewCube(nil)
	box := cube.BoundingBox()
	if !box.Min.Equals(vec3.New(-1, -1, -1)) || !box.Max.Equals(vec3.New(1, 1, 1)) {
		t.Errorf("expected unit bounding box, got [%v, %v]", box.Min, box.Max)
	}
}
