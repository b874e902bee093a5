package algebra

import (
	"math"
	"math/rand"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

const permSize = 256

// Perlin implements classic Perlin noise with Hermite-smoothed trilinear
// interpolation, plus octave-summed turbulence.
type Perlin struct {
	permX, permY, permZ []int
	ranvec              []vec3.Vec3
}

// NewPerlin builds permutation and gradient tables from the given random
// source. Pass a seeded *rand.Rand for reproducible noise fields.
func NewPerlin(random *rand.Rand) *Perlin {
	ranvec := make([]vec3.Vec3, permSize)
	for i := range ranvec {
		ranvec[i] = vec3.Random(random, -1, 1).Normalize()
	}

	return &Perlin{
		permX: generatePerm(random),
		permY: generatePerm(random),
		permZ: generatePerm(random),
		ranvec: ranvec,
	}
}

func generatePerm(random *rand.Rand) []int {
	p := make([]int, permSize)
	for i := range p {
		p[i] = i
	}
	random.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Noise samples the scalar noise field at p.
func (pn *Perlin) Noise(p vec3.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]vec3.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.ranvec[idx]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]vec3.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := vec3.New(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turb sums noise over depth octaves with weight halving and point
// doubling, and returns the absolute value of that sum: each successive
// octave samples the noise field at a point doubled from the previous
// octave, not at the original point.
func (pn *Perlin) Turb(p vec3.Vec3, depth int) float64 {
	accum := 0.0
	tempP := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * pn.Noise(tempP)
		weight *= 0.5
		tempP = tempP.Multiply(2)
	}

	return math.Abs(accum)
}
