package camera

import (
	"math/rand"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// PixelRays is a batch of per-sample rays produced for one pixel.
type PixelRays struct {
	X, Y int
	Rays []vec3.Ray
}

// MultisamplerRayCaster lazily produces (x, y, rays) batches across an
// image (or a tiled sub-range of one), jittering each sample within its
// pixel footprint for antialiasing.
type MultisamplerRayCaster struct {
	camera         Camera
	width, height  int
	fromX, fromY   int
	toX, toY       int
	samplesPerPix  int
	center         vec3.Vec3
	leftTop        vec3.Vec3
	pixelResolution float64
}

// NewMultisamplerRayCaster builds a ray caster over the full width x
// height image.
func NewMultisamplerRayCaster(cam Camera, width, height, samplesPerPixel int) *MultisamplerRayCaster {
	return newPartial(cam, width, height, 0, 0, width, height, samplesPerPixel)
}

// NewPartialRayCaster builds a ray caster restricted to the pixel range
// [fromX, toX) x [fromY, toY) of the full image, keeping the full image's
// viewport geometry.
func NewPartialRayCaster(cam Camera, width, height, fromX, fromY, toX, toY, samplesPerPixel int) *MultisamplerRayCaster {
	return newPartial(cam, width, height, fromX, fromY, toX, toY, samplesPerPixel)
}

func newPartial(cam Camera, width, height, fromX, fromY, toX, toY, samplesPerPixel int) *MultisamplerRayCaster {
	aspectRatio := float64(width) / float64(height)
	viewportWidth := cam.viewportWidth()
	viewportHeight := viewportWidth / aspectRatio

	center := cam.Position.Add(cam.Direction.Multiply(cam.FocalLength))
	leftTop := center.
		Subtract(cam.Right.Multiply(viewportWidth / 2)).
		Add(cam.Up.Multiply(viewportHeight / 2))

	return &MultisamplerRayCaster{
		camera:          cam,
		width:           width,
		height:          height,
		fromX:           fromX,
		fromY:           fromY,
		toX:             toX,
		toY:             toY,
		samplesPerPix:   samplesPerPixel,
		center:          center,
		leftTop:         leftTop,
		pixelResolution: viewportWidth / float64(width),
	}
}

// GetRay returns the unjittered ray through pixel center (x, y).
func (c *MultisamplerRayCaster) GetRay(x, y int) vec3.Ray {
	return c.rayAt(float64(x)+0.5, float64(y)+0.5)
}

func (c *MultisamplerRayCaster) rayAt(x, y float64) vec3.Ray {
	point := c.leftTop.
		Add(c.camera.Right.Multiply(c.pixelResolution * x)).
		Subtract(c.camera.Up.Multiply(c.pixelResolution * y))
	return vec3.NewRayTo(c.camera.Position, point)
}

// Sample returns SamplesPerPixel jittered rays through pixel (x, y).
func (c *MultisamplerRayCaster) Sample(x, y int, random *rand.Rand) PixelRays {
	rays := make([]vec3.Ray, c.samplesPerPix)
	for i := range rays {
		ju := random.Float64()
		jv := random.Float64()
		rays[i] = c.rayAt(float64(x)+ju, float64(y)+jv)
	}
	return PixelRays{X: x, Y: y, Rays: rays}
}

// Batches builds one PixelRays batch per pixel in this ray caster's range,
// row-major, and returns them all at once. The dispatcher does not use it;
// it calls Sample per pixel while chunking work.
func (c *MultisamplerRayCaster) Batches(random *rand.Rand) []PixelRays {
	batches := make([]PixelRays, 0, (c.toX-c.fromX)*(c.toY-c.fromY))
	for y := c.fromY; y < c.toY; y++ {
		for x := c.fromX; x < c.toX; x++ {
			batches = append(batches, c.Sample(x, y, random))
		}
	}
	return batches
}
