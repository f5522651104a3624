package mask

import (
	"province-mapper/internal/raster"
	"province-mapper/pkg/colorutil"
)

// Classification holds the three resolved category bitmaps. After
// ResolveOverlaps, at most one of the three is true for any pixel.
type Classification struct {
	Border *Bitmap
	Land   *Bitmap
	Water  *Bitmap
}

// MatchColor marks every pixel whose per-channel absolute difference from
// target is at most tol. tol 0 means exact equality.
func MatchColor(img *raster.RGB, target colorutil.RGB, tol int) *Bitmap {
	out := NewBitmap(img.Width, img.Height)

	if tol <= 0 {
		for i := range out.Bits {
			p := i * 3
			out.Bits[i] = img.Pix[p] == target.R &&
				img.Pix[p+1] == target.G &&
				img.Pix[p+2] == target.B
		}
		return out
	}

	for i := range out.Bits {
		p := i * 3
		out.Bits[i] = absDiff(img.Pix[p], target.R) <= tol &&
			absDiff(img.Pix[p+1], target.G) <= tol &&
			absDiff(img.Pix[p+2], target.B) <= tol
	}
	return out
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Classify builds the border, land, and water bitmaps for an image and
// resolves overlaps by the fixed priority border > land > water. Pixels
// matching none of the three colors stay unclassified in all bitmaps.
func Classify(img *raster.RGB, border, land, water colorutil.RGB, tol int) Classification {
	c := Classification{
		Border: MatchColor(img, border, tol),
		Land:   MatchColor(img, land, tol),
		Water:  MatchColor(img, water, tol),
	}
	c.ResolveOverlaps()
	return c
}

// ResolveOverlaps subtracts higher-priority bitmaps from lower-priority
// ones: land loses border pixels, water loses border and land pixels.
// It is safe to reapply after the border bitmap has been modified.
func (c Classification) ResolveOverlaps() {
	c.Land.AndNot(c.Border)
	c.Water.AndNot(c.Border)
	c.Water.AndNot(c.Land)
}

// FillMask returns the grid of pixels eligible for component labeling:
// land minus border.
func (c Classification) FillMask() *Bitmap {
	fill := c.Land.Clone()
	fill.AndNot(c.Border)
	return fill
}
