// Package mask provides pixel classification of a painted region mask into
// border, land, and water bitmaps, plus the morphology applied to them.
package mask

// Bitmap is a flat, row-major H×W boolean grid.
type Bitmap struct {
	Width  int
	Height int
	Bits   []bool
}

// NewBitmap allocates an all-false bitmap of the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Bits:   make([]bool, width*height),
	}
}

// Get returns the bit at (x, y). No bounds checking.
func (b *Bitmap) Get(x, y int) bool {
	return b.Bits[y*b.Width+x]
}

// Set writes the bit at (x, y). No bounds checking.
func (b *Bitmap) Set(x, y int, v bool) {
	b.Bits[y*b.Width+x] = v
}

// Count returns the number of true bits.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.Bits {
		if v {
			n++
		}
	}
	return n
}

// AndNot clears every bit of b that is set in other. Dimensions must match.
func (b *Bitmap) AndNot(other *Bitmap) {
	for i, v := range other.Bits {
		if v {
			b.Bits[i] = false
		}
	}
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	c := NewBitmap(b.Width, b.Height)
	copy(c.Bits, b.Bits)
	return c
}
