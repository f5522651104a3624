package province

import (
	"errors"
	"fmt"

	"province-mapper/pkg/colorutil"
)

// MaxID is the largest province id the 24-bit color encoding can carry.
const MaxID = 0xFFFFFF

// ErrIDRange reports a province id outside the 24-bit encoding domain.
var ErrIDRange = errors.New("province id must be within 0..16777215 (24-bit)")

// IDEncodingFormula documents the encoding for metadata consumers.
const IDEncodingFormula = "id=(r<<16)|(g<<8)|b; r,g,b from the output image"

// IDToRGB packs a province id into a color triple. This bijection is the
// sole mechanism by which a province's numeric identity survives into a
// raster image.
func IDToRGB(id int) (colorutil.RGB, error) {
	if id < 0 || id > MaxID {
		return colorutil.RGB{}, fmt.Errorf("%w: %d", ErrIDRange, id)
	}
	return colorutil.RGB{
		R: uint8((id >> 16) & 0xFF),
		G: uint8((id >> 8) & 0xFF),
		B: uint8(id & 0xFF),
	}, nil
}

// RGBToID is the exact inverse of IDToRGB for every byte triple.
func RGBToID(c colorutil.RGB) int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}
