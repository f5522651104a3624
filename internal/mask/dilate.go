package mask

// Dilate3x3 expands the bitmap by one pixel in all eight directions, the
// equivalent of morphological dilation with a dense 3×3 structuring element.
// A new bitmap is returned; the input is left untouched.
func Dilate3x3(b *Bitmap) *Bitmap {
	out := NewBitmap(b.Width, b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !b.Get(x, y) {
				continue
			}
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					nx, ny := x+kx, y+ky
					if nx >= 0 && nx < b.Width && ny >= 0 && ny < b.Height {
						out.Set(nx, ny, true)
					}
				}
			}
		}
	}
	return out
}

// DilateBorder widens the border bitmap by one pixel and re-resolves the
// category overlaps so the mutual-exclusivity invariant still holds.
// Hand-painted masks often leave land slightly under- or over-painted next
// to borders; the one pixel ring closes those gaps before labeling.
func DilateBorder(c *Classification) {
	c.Border = Dilate3x3(c.Border)
	c.ResolveOverlaps()
}
