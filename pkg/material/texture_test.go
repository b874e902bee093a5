package material

import (
	"testing"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

func TestSolidColorIsConstant(t *testing.T) {
	tex := NewSolidColor(vec3.New(0.1, 0.2, 0.3))
	a := tex.Value(0, 0, vec3.New(5, 5, 5))
	b := tex.Value(1, 1, vec3.New(-5, -5, -5))
	if !a.Equals(b) || !a.Equals(vec3.New(0.1, 0.2, 0.3)) {
		t.Errorf("expected constant color, got %v and %v", a, b)
	}
}

func TestCheckerTextureAlternatesBySignOfProduct(t *testing.T) {
	checker := NewCheckerTexture(1, vec3.New(1, 1, 1), vec3.New(0, 0, 0))

	// At the origin sin(0)*sin(0)*sin(0) = 0, not negative, so Even wins.
	even := checker.Value(0, 0, vec3.New(0, 0, 0))
	if !even.Equals(vec3.New(1, 1, 1)) {
		t.Errorf("expected even color at origin, got %v", even)
	}

	// Half a period along x alone keeps the product at zero too; push one
	// axis just past pi so sin flips negative while the others stay positive.
	p := vec3.New(3.2, 0.1, 0.1)
	got := checker.Value(0, 0, p)
	if !got.Equals(vec3.New(0, 0, 0)) {
		t.Errorf("expected odd color past the sign flip, got %v", got)
	}
}

func TestUVCheckerAlternatesByParity(t *testing.T) {
	checker := NewUVChecker(4, 4, vec3.New(1, 1, 1), vec3.New(0, 0, 0))

	even := checker.Value(0.1, 0.1, vec3.Vec3{}) // floor(0.4)=0, floor(0.4)=0 -> sum even
	if !even.Equals(vec3.New(1, 1, 1)) {
		t.Errorf("expected even color, got %v", even)
	}

	odd := checker.Value(0.3, 0.1, vec3.Vec3{}) // floor(1.2)=1, floor(0.4)=0 -> sum odd
	if !odd.Equals(vec3.New(0, 0, 0)) {
		t.Errorf("expected odd color, got %v", odd)
	}
}

func TestImageTextureSamplesNearestPixelWithFlippedV(t *testing.T) {
	// A 2x2 image; pixel rows stored top-to-bottom as Pixels[y*Width+x].
	pixels := []vec3.Vec3{
		vec3.New(1, 0, 0), vec3.New(0, 1, 0), // row 0 (image top)
		vec3.New(0, 0, 1), vec3.New(1, 1, 1), // row 1 (image bottom)
	}
	tex := NewImageTexture(2, 2, pixels)

	// v=1 maps to the image's top row (row 0).
	top := tex.Value(0.1, 0.99, vec3.Vec3{})
	if !top.Equals(vec3.New(1, 0, 0)) {
		t.Errorf("expected top-left pixel at v=1, got %v", top)
	}

	// v=0 maps to the image's bottom row (row 1).
	bottom := tex.Value(0.1, 0.0, vec3.Vec3{})
	if !bottom.Equals(vec3.New(0, 0, 1)) {
		t.Errorf("expected bottom-left pixel at v=0, got %v", bottom)
	}
}

func TestImageTextureWrapsUV(t *testing.T) {
	pixels := []vec3.Vec3{vec3.New(0.5, 0.5, 0.5)}
	tex := NewImageTexture(1, 1, pixels)

	got := tex.Value(1.5, -0.5, vec3.Vec3{})
	if !got.Equals(vec3.New(0.5, 0.5, 0.5)) {
		t.Errorf("expected wrapped uv to still sample the single pixel, got %v", got)
	}
}

func TestImageTextureEmptyReturnsZero(t *testing.T) {
	tex := NewImageTexture(0, 0, nil)
	if !tex.Value(0.5, 0.5, vec3.Vec3{}).IsZero() {
		t.Error("expected empty image texture to return the zero vector")
	}
}
