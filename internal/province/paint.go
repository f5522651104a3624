package province

import (
	"province-mapper/internal/label"
	"province-mapper/internal/mask"
	"province-mapper/internal/raster"
	"province-mapper/pkg/colorutil"
)

// BuildLookup builds the per-label output color table. Index 0 (background)
// maps to the output water color; a positive label maps to its id-encoded
// color, or falls back to water when the component is below minArea so
// filtered blobs leave no holes. Fails if a label exceeds the 24-bit id space.
func BuildLookup(components []label.Component, minArea int, outWater colorutil.RGB) ([]colorutil.RGB, error) {
	lut := make([]colorutil.RGB, len(components)+1)
	lut[0] = outWater

	for _, comp := range components {
		if comp.Area < minArea {
			lut[comp.Label] = outWater
			continue
		}
		c, err := IDToRGB(int(comp.Label))
		if err != nil {
			return nil, err
		}
		lut[comp.Label] = c
	}
	return lut, nil
}

// Paint renders the output image: one table lookup per label-grid cell,
// then the original water pixels, then the border pixels. Final precedence,
// highest to lowest: border > original water > labeled fill.
func Paint(labels *label.Result, lut []colorutil.RGB, c mask.Classification, outBorder, outWater colorutil.RGB) *raster.RGB {
	out := raster.NewRGB(labels.Width, labels.Height)

	for i, lab := range labels.Labels {
		col := lut[lab]
		p := i * 3
		out.Pix[p] = col.R
		out.Pix[p+1] = col.G
		out.Pix[p+2] = col.B
	}

	// Water from the post-resolution mask, not the label grid: this keeps
	// true water distinct from unclassified background, which also carries
	// label 0.
	for i, isWater := range c.Water.Bits {
		if isWater {
			p := i * 3
			out.Pix[p] = outWater.R
			out.Pix[p+1] = outWater.G
			out.Pix[p+2] = outWater.B
		}
	}

	for i, isBorder := range c.Border.Bits {
		if isBorder {
			p := i * 3
			out.Pix[p] = outBorder.R
			out.Pix[p+1] = outBorder.G
			out.Pix[p+2] = outBorder.B
		}
	}

	return out
}
