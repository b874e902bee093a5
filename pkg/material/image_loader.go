package material

import (
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// LoadImageTexture decodes an image file (png, jpeg, bmp, webp — the bmp
// and webp decoders are registered for image.Decode by this file's blank
// imports) and converts it into an ImageTexture. imaging.Open normalizes
// EXIF orientation before the pixels are read out.
func LoadImageTexture(path string) (*ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open image texture %q", path)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "decode image texture %q", path)
	}

	return imageTextureFrom(img), nil
}

func imageTextureFrom(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]vec3.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = vec3.New(
				float64(r)/0xffff,
				float64(g)/0xffff,
				float64(b)/0xffff,
			)
		}
	}

	return NewImageTexture(width, height, pixels)
}
