package material

import (
	"math/rand"
	"testing"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

func TestDiffuseLightNeverScatters(t *testing.T) {
	light := NewDiffuseLight(vec3.New(4, 4, 4))
	random := rand.New(rand.NewSource(1))
	hit := Hit{Point: vec3.Vec3{}, Normal: vec3.New(0, 1, 0)}
	rayIn := vec3.NewRay(vec3.New(0, 1, 0), vec3.New(0, -1, 0))

	_, _, ok := light.Scatter(rayIn, hit, random)
	if ok {
		t.Error("expected diffuse light to absorb every ray")
	}
}

func TestDiffuseLightEmitsItsColor(t *testing.T) {
	light := NewDiffuseLight(vec3.New(4, 2, 1))
	got := light.Emitted(0, 0, vec3.Vec3{})
	if !got.Equals(vec3.New(4, 2, 1)) {
		t.Errorf("expected emission (4,2,1), got %v", got)
	}
}
