// Package province turns a classified region mask into an id-encoded
// province image and its metadata payload.
package province

import (
	"fmt"

	"province-mapper/internal/label"
	"province-mapper/pkg/colorutil"
)

// Config is the immutable configuration threaded through every pipeline
// stage. Build one with DefaultConfig and adjust fields before Validate.
type Config struct {
	// Mask colors expected in the input image.
	BorderColor colorutil.RGB
	LandColor   colorutil.RGB
	WaterColor  colorutil.RGB

	// Colors painted for non-province pixels in the output image.
	OutBorderColor colorutil.RGB
	OutWaterColor  colorutil.RGB

	// Tolerance is the maximum per-channel absolute difference for a pixel
	// to match a mask color. 0 means exact equality.
	Tolerance int

	// DilateBorders widens the border mask by one pixel before labeling.
	DilateBorders bool

	// MinArea filters out components smaller than this many pixels.
	// 1 keeps everything.
	MinArea int

	// Connectivity selects 4- or 8-connected component extraction.
	Connectivity label.Connectivity
}

// DefaultConfig returns the standard mask color scheme: black borders,
// white land, dark-grey water, exact matching, 4-connectivity, no filter.
func DefaultConfig() Config {
	return Config{
		BorderColor:    colorutil.Black,
		LandColor:      colorutil.White,
		WaterColor:     colorutil.RGB{R: 0x30, G: 0x30, B: 0x30},
		OutBorderColor: colorutil.Black,
		OutWaterColor:  colorutil.RGB{R: 0x30, G: 0x30, B: 0x30},
		Tolerance:      0,
		DilateBorders:  false,
		MinArea:        1,
		Connectivity:   label.Connect4,
	}
}

// Validate checks the numeric fields. It is called before any image work
// so misconfiguration never starts a run.
func (c Config) Validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %d", c.Tolerance)
	}
	if c.MinArea < 0 {
		return fmt.Errorf("min area must be non-negative, got %d", c.MinArea)
	}
	if !c.Connectivity.Valid() {
		return fmt.Errorf("connectivity must be 4 or 8, got %d", c.Connectivity)
	}
	return nil
}
