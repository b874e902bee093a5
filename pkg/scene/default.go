package scene

import (
	"math/rand"

	"github.com/dkarpushkin/go-pathtracer/pkg/bvh"
	"github.com/dkarpushkin/go-pathtracer/pkg/camera"
	"github.com/dkarpushkin/go-pathtracer/pkg/material"
	"github.com/dkarpushkin/go-pathtracer/pkg/shape"
	"github.com/dkarpushkin/go-pathtracer/pkg/transform"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// NewDefaultScene builds a small scene (a checkered ground plane, three
// spheres of the classic lambertian/metal/dielectric trio, and an emissive
// sphere overhead) used when no scene file is given on the command line.
func NewDefaultScene(width, height int, random *rand.Rand) *Scene {
	ground := material.NewLambertianTexture(material.NewCheckerTexture(10, vec3.New(0.2, 0.3, 0.1), vec3.New(0.9, 0.9, 0.9)))
	diffuse := material.NewLambertian(vec3.New(0.6, 0.3, 0.3))
	metal := material.NewMetal(vec3.New(0.8, 0.8, 0.8), 0.05)
	glass := material.NewDielectric(1.5)
	light := material.NewDiffuseLight(vec3.New(4, 4, 4))

	materials := map[string]material.Material{
		"ground":  ground,
		"diffuse": diffuse,
		"metal":   metal,
		"glass":   glass,
		"light":   light,
	}

	groundPlane := shape.NewTransformed(
		shape.NewRectangle(ground),
		transform.New(vec3.New(0, -1, 0), vec3.New(-3.14159265358979323846/2, 0, 0), vec3.New(200, 200, 1)),
	)

	shapes := []shape.Shape{
		groundPlane,
		shape.NewTransformed(shape.NewSphere(diffuse), transform.New(vec3.New(-2.2, 0, 0), vec3.Vec3{}, vec3.New(1, 1, 1))),
		shape.NewTransformed(shape.NewSphere(metal), transform.New(vec3.New(0, 0, 0), vec3.Vec3{}, vec3.New(1, 1, 1))),
		shape.NewTransformed(shape.NewSphere(glass), transform.New(vec3.New(2.2, 0, 0), vec3.Vec3{}, vec3.New(1, 1, 1))),
		shape.NewTransformed(shape.NewSphere(light), transform.New(vec3.New(0, 4, -1), vec3.Vec3{}, vec3.New(1.5, 1.5, 1.5))),
	}

	cam := camera.New(vec3.New(0, 1.5, 8), vec3.New(0, 0.5, 0), vec3.New(0, 1, 0), 40, 1)

	return &Scene{
		World:      bvh.New(shapes, random),
		Materials:  materials,
		Camera:     cam,
		Background: GradientBackground(vec3.New(1, 1, 1), vec3.New(0.5, 0.7, 1.0)),
		Width:      width,
		Height:     height,
	}
}
