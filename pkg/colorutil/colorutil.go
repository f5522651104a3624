// Package colorutil provides shared color utilities for the province mapper.
package colorutil

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an 8-bit-per-channel color triple.
type RGB struct {
	R, G, B uint8
}

// Common mask colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseRGB parses a color specification.
// Accepted forms: "#RRGGBB", "RRGGBB", or "r,g,b" with decimal components.
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return RGB{}, fmt.Errorf("RGB must be 'r,g,b', got %q", s)
		}
		var vals [3]uint8
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return RGB{}, fmt.Errorf("RGB component %q is not an integer", strings.TrimSpace(p))
			}
			if v < 0 || v > 255 {
				return RGB{}, fmt.Errorf("RGB component %d out of range 0..255", v)
			}
			vals[i] = uint8(v)
		}
		return RGB{R: vals[0], G: vals[1], B: vals[2]}, nil
	}

	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("hex color must be 6 digits like #303030, got %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
