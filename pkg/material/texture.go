package material

import (
	"math"

	"github.com/dkarpushkin/go-pathtracer/pkg/algebra"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// SolidColor is a constant-color texture.
type SolidColor struct {
	Color vec3.Vec3
}

// NewSolidColor creates a constant-color texture.
func NewSolidColor(color vec3.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the constant color regardless of uv or point.
func (s *SolidColor) Value(u, v float64, p vec3.Vec3) vec3.Vec3 {
	return s.Color
}

// CheckerTexture picks between two sub-textures using the sign of
// sin(m.x*x)*sin(m.y*y)*sin(m.z*z), producing a 3-D checkerboard. It is
// evaluated at the world-space hit point, so the pattern stays fixed in
// world space when the owning shape is transformed.
type CheckerTexture struct {
	Scale vec3.Vec3
	Even  Texture
	Odd   Texture
}

// NewCheckerTexture creates a checker texture with a uniform scale on all
// three axes.
func NewCheckerTexture(scale float64, even, odd vec3.Vec3) *CheckerTexture {
	return &CheckerTexture{
		Scale: vec3.New(scale, scale, scale),
		Even:  NewSolidColor(even),
		Odd:   NewSolidColor(odd),
	}
}

// Value evaluates the 3-D checker pattern at p.
func (c *CheckerTexture) Value(u, v float64, p vec3.Vec3) vec3.Vec3 {
	sines := math.Sin(c.Scale.X*p.X) * math.Sin(c.Scale.Y*p.Y) * math.Sin(c.Scale.Z*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

// UVChecker is the 2-D analogue of CheckerTexture, operating on the (u, v)
// parameterization of the hit instead of the 3-D point.
type UVChecker struct {
	UScale, VScale float64
	Even, Odd      Texture
}

// NewUVChecker creates a uv-space checker texture.
func NewUVChecker(uScale, vScale float64, even, odd vec3.Vec3) *UVChecker {
	return &UVChecker{UScale: uScale, VScale: vScale, Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

// Value evaluates the uv-space checker pattern.
func (c *UVChecker) Value(u, v float64, p vec3.Vec3) vec3.Vec3 {
	iu := int(math.Floor(u * c.UScale))
	iv := int(math.Floor(v * c.VScale))
	if (iu+iv)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}

// NoiseTexture renders a marble-like pattern by modulating a sine wave
// with turbulence: color = base * 0.5 * (1 + sin(scale*p.z + turbScale*turb(p))).
type NoiseTexture struct {
	Noise     *algebra.Perlin
	Scale     float64
	TurbScale float64
	Depth     int
	Color     vec3.Vec3
}

// NewNoiseTexture creates a Perlin-noise marble texture.
func NewNoiseTexture(noise *algebra.Perlin, scale float64, color vec3.Vec3) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale, TurbScale: 10, Depth: 7, Color: color}
}

// Value evaluates the marble pattern at p.
func (n *NoiseTexture) Value(u, v float64, p vec3.Vec3) vec3.Vec3 {
	turb := n.Noise.Turb(p, n.Depth)
	factor := 0.5 * (1 + math.Sin(n.Scale*p.Z+n.TurbScale*turb))
	return n.Color.Multiply(factor)
}

// ImageTexture samples a decoded image with nearest-neighbor filtering,
// wrapping uv to [0, 1) and flipping v so v=1 maps to the image's top row.
type ImageTexture struct {
	Width, Height int
	Pixels        []vec3.Vec3 // row-major, Pixels[y*Width+x]
}

// NewImageTexture creates an image texture from decoded pixel data.
func NewImageTexture(width, height int, pixels []vec3.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// Value samples the nearest pixel to (u, v).
func (t *ImageTexture) Value(u, v float64, p vec3.Vec3) vec3.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return vec3.Vec3{}
	}

	u = wrap01(u)
	v = wrap01(v)

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	x = clampInt(x, 0, t.Width-1)
	y = clampInt(y, 0, t.Height-1)

	return t.Pixels[y*t.Width+x]
}

func wrap01(x float64) float64 {
	x -= math.Floor(x)
	if x < 0 {
		x += 1
	}
	return x
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
