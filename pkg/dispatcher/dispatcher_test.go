package dispatcher

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarpushkin/go-pathtracer/pkg/bvh"
	"github.com/dkarpushkin/go-pathtracer/pkg/camera"
	"github.com/dkarpushkin/go-pathtracer/pkg/integrator"
	"github.com/dkarpushkin/go-pathtracer/pkg/material"
	"github.com/dkarpushkin/go-pathtracer/pkg/scene"
	"github.com/dkarpushkin/go-pathtracer/pkg/shape"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

func testScene() *scene.Scene {
	random := rand.New(rand.NewSource(1))
	light := material.NewDiffuseLight(vec3.New(1, 1, 1))
	return &scene.Scene{
		World:      bvh.New([]shape.Shape{shape.NewSphere(light)}, random),
		Camera:     camera.New(vec3.New(0, 0, 5), vec3.New(0, 0, 0), vec3.New(0, 1, 0), 60, 1),
		Background: scene.SolidBackground(vec3.Vec3{}),
		Width:      8,
		Height:     6,
	}
}

func TestRenderWritesEveryPixelExactlyOnce(t *testing.T) {
	s := testScene()
	pt := integrator.NewPathTracer(s, 4)
	d := New(pt, 3)
	defer d.Close()

	buffer := make([]vec3.Vec3, s.Width*s.Height)
	for i := range buffer {
		buffer[i] = vec3.New(-1, -1, -1) // sentinel, overwritten on hit
	}

	require.NoError(t, d.Render(context.Background(), s.Camera, s.Width, s.Height, 2, buffer))

	for i, c := range buffer {
		assert.False(t, c.Equals(vec3.New(-1, -1, -1)), "pixel %d was never written", i)
	}
}

func TestRenderStepOverwritesFirstThenAccumulates(t *testing.T) {
	s := testScene()
	pt := integrator.NewPathTracer(s, 4)
	d := New(pt, 2)
	defer d.Close()

	buffer := make([]vec3.Vec3, s.Width*s.Height)
	ctx := context.Background()

	require.NoError(t, d.RenderStep(ctx, s.Camera, s.Width, s.Height, 4, buffer), "first RenderStep")
	afterFirst := append([]vec3.Vec3(nil), buffer...)

	require.NoError(t, d.RenderStep(ctx, s.Camera, s.Width, s.Height, 4, buffer), "second RenderStep")

	for i := range buffer {
		// Every pixel sees the same deterministic light hit, so the second
		// accumulated pass can only add to the first, never subtract.
		assert.GreaterOrEqual(t, buffer[i].Luminance(), afterFirst[i].Luminance()-1e-9,
			"pixel %d: accumulated value %v is less than first pass %v", i, buffer[i], afterFirst[i])
	}
}

func TestRenderStepRestartsAfterReset(t *testing.T) {
	s := testScene()
	pt := integrator.NewPathTracer(s, 4)
	d := New(pt, 2)
	defer d.Close()

	buffer := make([]vec3.Vec3, s.Width*s.Height)
	ctx := context.Background()

	require.NoError(t, d.RenderStep(ctx, s.Camera, s.Width, s.Height, 4, buffer), "first RenderStep")
	afterFirst := append([]vec3.Vec3(nil), buffer...)

	require.NoError(t, d.RenderStep(ctx, s.Camera, s.Width, s.Height, 4, buffer), "second RenderStep")

	d.Reset()

	// Reusing the same (already-accumulated) buffer after Reset must
	// overwrite it, landing back near a single pass's magnitude instead
	// of building on the two-pass total.
	require.NoError(t, d.RenderStep(ctx, s.Camera, s.Width, s.Height, 4, buffer), "post-reset RenderStep")

	for i := range buffer {
		assert.LessOrEqual(t, buffer[i].Luminance(), afterFirst[i].Luminance()*1.5+1e-6,
			"pixel %d: post-reset value %v looks accumulated rather than overwritten (first pass was %v)", i, buffer[i], afterFirst[i])
	}
}
