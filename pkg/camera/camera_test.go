package camera

import (
	"math"
	"testing"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

func TestNewCameraBuildsOrthonormalBasis(t *testing.T) {
	cam := New(vec3.New(0, 1, 5), vec3.New(0, 0, 0), vec3.New(0, 1, 0), 40, 1)

	vectors := []vec3.Vec3{cam.Direction, cam.Up, cam.Right}
	for _, v := range vectors {
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Errorf("expected unit vector, got %v with length %v", v, v.Length())
		}
	}

	if math.Abs(cam.Direction.Dot(cam.Up)) > 1e-9 {
		t.Errorf("direction and up are not orthogonal: dot=%v", cam.Direction.Dot(cam.Up))
	}
	if math.Abs(cam.Direction.Dot(cam.Right)) > 1e-9 {
		t.Errorf("direction and right are not orthogonal: dot=%v", cam.Direction.Dot(cam.Right))
	}
	if math.Abs(cam.Up.Dot(cam.Right)) > 1e-9 {
		t.Errorf("up and right are not orthogonal: dot=%v", cam.Up.Dot(cam.Right))
	}
}

func TestNewCameraDirectionPointsAtLookAt(t *testing.T) {
	cam := New(vec3.New(0, 0, 5), vec3.New(0, 0, 0), vec3.New(0, 1, 0), 40, 1)
	want := vec3.New(0, 0, -1)
	if cam.Direction.Subtract(want).Length() > 1e-9 {
		t.Errorf("expected direction %v, got %v", want, cam.Direction)
	}
}

func TestOrbitControllerWrapsPhiAndClampsTheta(t *testing.T) {
	oc := NewOrbitController(vec3.Vec3{}, 0, math.Pi/2, 10, 40, 1)

	oc.Orbit(3*math.Pi, 0)
	if oc.Phi < 0 || oc.Phi >= 2*math.Pi {
		t.Errorf("expected phi wrapped into [0, 2pi), got %v", oc.Phi)
	}

	oc.Orbit(0, -10) // drive far past the pole
	if oc.Theta <= 0 || oc.Theta >= math.Pi {
		t.Errorf("expected theta clamped within (0, pi), got %v", oc.Theta)
	}
}

func TestOrbitControllerZoomNeverReachesZero(t *testing.T) {
	oc := NewOrbitController(vec3.Vec3{}, 0, math.Pi/2, 1, 40, 1)
	oc.Zoom(-100)
	if oc.Distance <= 0 {
		t.Errorf("expected distance to stay positive, got %v", oc.Distance)
	}
}

func TestOrbitControllerCameraMatchesSphericalPosition(t *testing.T) {
	oc := NewOrbitController(vec3.New(1, 2, 3), 0, math.Pi/2, 5, 40, 1)
	cam := oc.Camera()

	want := vec3.New(1+5, 2, 3)
	if cam.Position.Subtract(want).Length() > 1e-9 {
		t.Errorf("expected position %v, got %v", want, cam.Position)
	}
}
