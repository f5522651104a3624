package raster

import (
	"fmt"
	"image/png"
	"os"
)

// CompressionFor maps a 0..9 compression knob onto Go's PNG encoder levels.
// 0 disables compression, 1-3 favor speed, anything higher uses the default.
func CompressionFor(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	default:
		return png.DefaultCompression
	}
}

// SavePNG encodes the buffer as a PNG file at the given compression level.
func SavePNG(m *RGB, path string, compression int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output image: %w", err)
	}
	defer file.Close()

	enc := png.Encoder{CompressionLevel: CompressionFor(compression)}
	if err := enc.Encode(file, m.ToImage()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
