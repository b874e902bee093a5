// Package sceneio parses the declarative JSON scene file format (camera,
// background, named materials, shapes with Euler-degree transforms and
// material references by name) into a resolved scene.Scene graph.
package sceneio

import (
	"bytes"
	"encoding/json"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/dkarpushkin/go-pathtracer/pkg/bvh"
	"github.com/dkarpushkin/go-pathtracer/pkg/camera"
	"github.com/dkarpushkin/go-pathtracer/pkg/material"
	"github.com/dkarpushkin/go-pathtracer/pkg/scene"
	"github.com/dkarpushkin/go-pathtracer/pkg/shape"
	"github.com/dkarpushkin/go-pathtracer/pkg/transform"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// cameraJSON mirrors the scene file's camera block.
type cameraJSON struct {
	Position    [3]float64 `json:"position"`
	LookAt      [3]float64 `json:"look_at"`
	Up          [3]float64 `json:"up"`
	FovDegrees  float64    `json:"fov_degrees"`
	FocalLength float64    `json:"focal_length"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
}

// materialJSON mirrors one entry of the scene file's materials map.
type materialJSON struct {
	Type  string     `json:"type"`
	Color [3]float64 `json:"color"`
	Fuzz  float64    `json:"fuzz"`
	IOR   float64    `json:"ior"`
}

// transformJSON mirrors a shape's optional transform block; rotation is in
// degrees, per axis, composed roll*pitch*yaw (Rx*Ry*Rz, so the Z rotation
// acts on a point first).
type transformJSON struct {
	Translation [3]float64 `json:"translation"`
	RotationDeg [3]float64 `json:"rotation_degrees"`
	Scale       [3]float64 `json:"scale"`
}

// shapeJSON mirrors one entry of the scene file's shapes list; the Type
// field discriminates which of the Rectangle, Torus and RayMarched
// parameter blocks applies.
type shapeJSON struct {
	Type          string         `json:"type"`
	Material      string         `json:"material"`
	Transform     *transformJSON `json:"transform"`
	InverseNormal bool           `json:"inverse_normal"`
	Rectangle *struct {
		X0 float64 `json:"x0"`
		Y0 float64 `json:"y0"`
		X1 float64 `json:"x1"`
		Y1 float64 `json:"y1"`
	} `json:"rectangle,omitempty"`
	Torus *struct {
		Radius     float64 `json:"radius"`
		TubeRadius float64 `json:"tube_radius"`
	} `json:"torus,omitempty"`
	RayMarched *struct {
		Surface string  `json:"surface"`
		Step    float64 `json:"step"`
		Depth   int     `json:"depth"`
		Param1  float64 `json:"param1"`
		Param2  float64 `json:"param2"`
		Param3  float64 `json:"param3"`
	} `json:"ray_marched,omitempty"`
}

// sceneJSON is the root of the scene file.
type sceneJSON struct {
	Camera     cameraJSON              `json:"camera"`
	Background [3]float64              `json:"background"`
	Materials  map[string]materialJSON `json:"materials"`
	Shapes     []shapeJSON             `json:"shapes"`
}

// Load parses JSON scene data and resolves it into a scene.Scene, with the
// given random source used only for the BVH's random-axis construction.
func Load(data []byte, random *rand.Rand) (*scene.Scene, error) {
	if dup, ok := duplicateMaterialKey(data); ok {
		return nil, errors.Errorf("duplicate material name %q", dup)
	}

	var raw sceneJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse scene JSON")
	}

	materials := make(map[string]material.Material, len(raw.Materials))
	for name, m := range raw.Materials {
		mat, err := buildMaterial(m)
		if err != nil {
			return nil, errors.Wrapf(err, "material %q", name)
		}
		materials[name] = mat
	}

	shapes := make([]shape.Shape, 0, len(raw.Shapes))
	for i, s := range raw.Shapes {
		built, err := buildShape(s, materials)
		if err != nil {
			return nil, errors.Wrapf(err, "shape[%d]", i)
		}
		shapes = append(shapes, built)
	}

	cam := camera.New(
		toVec3(raw.Camera.Position),
		toVec3(raw.Camera.LookAt),
		toVec3(raw.Camera.Up),
		raw.Camera.FovDegrees,
		defaultFocalLength(raw.Camera.FocalLength),
	)

	return &scene.Scene{
		World:      bvh.New(shapes, random),
		Materials:  materials,
		Camera:     cam,
		Background: scene.SolidBackground(toVec3(raw.Background)),
		Width:      raw.Camera.Width,
		Height:     raw.Camera.Height,
	}, nil
}

func defaultFocalLength(f float64) float64 {
	if f == 0 {
		return 1
	}
	return f
}

func toVec3(a [3]float64) vec3.Vec3 {
	return vec3.New(a[0], a[1], a[2])
}

func buildMaterial(m materialJSON) (material.Material, error) {
	color := toVec3(m.Color)
	switch m.Type {
	case "lambertian":
		return material.NewLambertian(color), nil
	case "metal":
		return material.NewMetal(color, m.Fuzz), nil
	case "dielectric":
		ior := m.IOR
		if ior == 0 {
			ior = 1.5
		}
		return material.NewDielectric(ior), nil
	case "diffuse_light":
		return material.NewDiffuseLight(color), nil
	default:
		return nil, errors.Errorf("unknown material type %q", m.Type)
	}
}

func buildShape(s shapeJSON, materials map[string]material.Material) (shape.Shape, error) {
	mat, ok := materials[s.Material]
	if !ok {
		return nil, errors.Errorf("unknown material reference %q", s.Material)
	}

	var base shape.Shape
	switch s.Type {
	case "sphere":
		sp := shape.NewSphere(mat)
		sp.InverseNormal = s.InverseNormal
		base = sp
	case "cube":
		base = shape.NewCube(mat)
	case "rectangle":
		r := shape.NewRectangle(mat)
		if s.Rectangle != nil {
			r.X0, r.Y0, r.X1, r.Y1 = s.Rectangle.X0, s.Rectangle.Y0, s.Rectangle.X1, s.Rectangle.Y1
		}
		base = r
	case "torus":
		radius, tube := 1.0, 0.3
		if s.Torus != nil {
			radius, tube = s.Torus.Radius, s.Torus.TubeRadius
		}
		base = shape.NewTorus(radius, tube, mat)
	case "ray_marched":
		fn, err := buildImplicitSurface(s.RayMarched)
		if err != nil {
			return nil, err
		}
		step, depth := 0.0, 0
		if s.RayMarched != nil {
			step, depth = s.RayMarched.Step, s.RayMarched.Depth
		}
		base = shape.NewRayMarched(fn, mat, step, depth)
	default:
		return nil, errors.Errorf("unknown shape type %q", s.Type)
	}

	if s.Transform == nil {
		return base, nil
	}

	degToRad := func(v [3]float64) vec3.Vec3 {
		const d2r = 3.14159265358979323846 / 180
		return vec3.New(v[0]*d2r, v[1]*d2r, v[2]*d2r)
	}

	scale := s.Transform.Scale
	if scale == [3]float64{} {
		scale = [3]float64{1, 1, 1}
	}

	t := transform.New(toVec3(s.Transform.Translation), degToRad(s.Transform.RotationDeg), toVec3(scale))
	return shape.NewTransformed(base, t), nil
}

// buildImplicitSurface resolves a ray-marched shape's "surface" discriminator
// to one of the six ShapeFunction implementations spec.md §4.C names.
func buildImplicitSurface(rm *struct {
	Surface string  `json:"surface"`
	Step    float64 `json:"step"`
	Depth   int     `json:"depth"`
	Param1  float64 `json:"param1"`
	Param2  float64 `json:"param2"`
	Param3  float64 `json:"param3"`
}) (shape.Function, error) {
	if rm == nil {
		return nil, errors.New("ray_marched shape missing \"ray_marched\" params block")
	}

	switch rm.Surface {
	case "heart":
		return shape.NewHeart(), nil
	case "sine":
		return shape.NewSine(rm.Param1), nil
	case "star":
		return shape.NewStar(rm.Param1), nil
	case "dupin_cyclide":
		return shape.NewDupinCyclide(rm.Param1, rm.Param2, rm.Param3), nil
	case "hunt":
		return shape.NewHunt(rm.Param1, rm.Param2), nil
	case "cushion":
		return shape.NewCushion(rm.Param1), nil
	default:
		return nil, errors.Errorf("unknown ray-marched surface %q", rm.Surface)
	}
}

// duplicateMaterialKey scans the raw token stream for the top-level
// "materials" object and reports the first key that appears twice.
// encoding/json's map decoding silently keeps the last value for a
// repeated key, which would hide what spec.md §6 calls a load error.
func duplicateMaterialKey(data []byte) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))

	// Consume the root object's opening brace.
	if tok, err := dec.Token(); err != nil {
		return "", false
	} else if d, ok := tok.(json.Delim); !ok || d != '{' {
		return "", false
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return "", false
		}
		key, _ := keyTok.(string)

		if key != "materials" {
			if err := skipJSONValue(dec); err != nil {
				return "", false
			}
			continue
		}

		valTok, err := dec.Token()
		if err != nil {
			return "", false
		}
		if d, ok := valTok.(json.Delim); !ok || d != '{' {
			return "", false // not an object; let json.Unmarshal report the type error
		}

		seen := map[string]bool{}
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return "", false
			}
			name, _ := nameTok.(string)
			if seen[name] {
				return name, true
			}
			seen[name] = true

			if err := skipJSONValue(dec); err != nil {
				return "", false
			}
		}
		return "", false
	}

	return "", false
}

// skipJSONValue consumes one complete JSON value (scalar, object, or array)
// from dec, discarding it.
func skipJSONValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if _, ok := tok.(json.Delim); !ok {
		return nil // scalar: already fully consumed
	}

	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if nd, ok := tok.(json.Delim); ok {
			switch nd {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
