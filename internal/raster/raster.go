// Package raster provides image loading, the flat RGB pixel buffer used by
// the processing pipeline, and PNG output.
package raster

import (
	"image"

	"province-mapper/pkg/colorutil"
)

// RGB is a flat, row-major H×W image with 3 bytes per pixel in RGB order.
// The zero origin is the top-left corner. The pipeline treats input buffers
// as immutable.
type RGB struct {
	Width  int
	Height int
	Pix    []uint8 // len = Width*Height*3
}

// NewRGB allocates a zeroed RGB buffer of the given dimensions.
func NewRGB(width, height int) *RGB {
	return &RGB{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// At returns the color at pixel (x, y). No bounds checking.
func (m *RGB) At(x, y int) colorutil.RGB {
	i := (y*m.Width + x) * 3
	return colorutil.RGB{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2]}
}

// Set writes the color at pixel (x, y). No bounds checking.
func (m *RGB) Set(x, y int, c colorutil.RGB) {
	i := (y*m.Width + x) * 3
	m.Pix[i] = c.R
	m.Pix[i+1] = c.G
	m.Pix[i+2] = c.B
}

// Fill sets every pixel to the given color.
func (m *RGB) Fill(c colorutil.RGB) {
	for i := 0; i < len(m.Pix); i += 3 {
		m.Pix[i] = c.R
		m.Pix[i+1] = c.G
		m.Pix[i+2] = c.B
	}
}

// FromImage converts a decoded image.Image into a flat RGB buffer.
// Alpha is dropped; decoders that premultiply are handled by RGBA().
func FromImage(img image.Image) *RGB {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := NewRGB(w, h)

	// Fast path for the common decoder output types.
	switch src := img.(type) {
	case *image.RGBA:
		for y := 0; y < h; y++ {
			si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			di := y * w * 3
			for x := 0; x < w; x++ {
				out.Pix[di] = src.Pix[si]
				out.Pix[di+1] = src.Pix[si+1]
				out.Pix[di+2] = src.Pix[si+2]
				si += 4
				di += 3
			}
		}
		return out
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			di := y * w * 3
			for x := 0; x < w; x++ {
				out.Pix[di] = src.Pix[si]
				out.Pix[di+1] = src.Pix[si+1]
				out.Pix[di+2] = src.Pix[si+2]
				si += 4
				di += 3
			}
		}
		return out
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.Set(x, y, colorutil.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		}
	}
	return out
}

// ToImage converts the buffer into an opaque *image.RGBA for encoding.
func (m *RGB) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	si := 0
	for y := 0; y < m.Height; y++ {
		di := img.PixOffset(0, y)
		for x := 0; x < m.Width; x++ {
			img.Pix[di] = m.Pix[si]
			img.Pix[di+1] = m.Pix[si+1]
			img.Pix[di+2] = m.Pix[si+2]
			img.Pix[di+3] = 255
			si += 3
			di += 4
		}
	}
	return img
}
