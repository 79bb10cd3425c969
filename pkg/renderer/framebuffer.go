package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer is a row-major buffer of linear RGB colors. Row 0 is the
// bottom of the image, matching the projection plane's V axis.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[j*fb.Width+i]
}

// Set stores the color of pixel (i, j)
func (fb *Framebuffer) Set(i, j int, c core.Vec3) {
	fb.Pixels[j*fb.Width+i] = c
}

// Bounds returns the framebuffer rectangle
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// Image converts the buffer to an 8-bit image with the top row first
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())

	for j := 0; j < fb.Height; j++ {
		y := fb.Height - 1 - j
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j).Clamp(0, 1)
			img.SetRGBA(i, y, color.RGBA{
				R: toByte(c.X),
				G: toByte(c.Y),
				B: toByte(c.Z),
				A: 255,
			})
		}
	}

	return img
}

func toByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
