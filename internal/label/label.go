// Package label extracts connected components from a boolean fill mask.
package label

import (
	"fmt"

	"province-mapper/internal/mask"
	"province-mapper/pkg/geometry"
)

// Connectivity selects the pixel adjacency rule.
type Connectivity int

const (
	// Connect4 treats only edge-adjacent pixels as connected.
	Connect4 Connectivity = 4
	// Connect8 additionally treats corner-adjacent pixels as connected.
	Connect8 Connectivity = 8
)

// Valid reports whether the connectivity is one of the supported values.
func (c Connectivity) Valid() bool {
	return c == Connect4 || c == Connect8
}

// Component holds the per-label statistics accumulated during labeling.
type Component struct {
	Label    int32
	Area     int              // pixel count, >= 1
	Centroid geometry.Point2D // arithmetic mean of pixel coordinates
	Bounds   geometry.RectInt // tight bounding box in pixel coordinates
}

// Result is the output of connected-component labeling. Labels holds one
// int32 per pixel in row-major order; 0 marks pixels outside the fill mask,
// positive values index into Components (label n is Components[n-1]).
type Result struct {
	Width      int
	Height     int
	Labels     []int32
	Components []Component
}

var offsets4 = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

var offsets8 = [][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Components labels every connected group of true pixels in the fill mask.
// Labels are assigned starting at 1 in row-major first-pixel-encountered
// order, so the result is deterministic for a given mask. Each component's
// area, centroid, and bounding box are accumulated in the same pass.
func Components(fill *mask.Bitmap, conn Connectivity) (*Result, error) {
	if !conn.Valid() {
		return nil, fmt.Errorf("unsupported connectivity %d (want 4 or 8)", conn)
	}

	w, h := fill.Width, fill.Height
	res := &Result{
		Width:  w,
		Height: h,
		Labels: make([]int32, w*h),
	}

	offsets := offsets4
	if conn == Connect8 {
		offsets = offsets8
	}

	var queue []int32
	next := int32(1)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := int32(y*w + x)
			if !fill.Bits[idx] || res.Labels[idx] != 0 {
				continue
			}
			var comp Component
			comp, queue = res.flood(fill, idx, next, offsets, queue)
			res.Components = append(res.Components, comp)
			next++
		}
	}

	return res, nil
}

// flood grows one component from the seed pixel with an explicit queue,
// accumulating its statistics as pixels are claimed. The queue backing
// array is returned so the caller can reuse it for the next component.
func (r *Result) flood(fill *mask.Bitmap, seed, lab int32, offsets [][2]int, queue []int32) (Component, []int32) {
	w := int32(r.Width)
	h := int32(r.Height)

	sx := int(seed % w)
	sy := int(seed / w)
	comp := Component{
		Label:  lab,
		Bounds: geometry.RectInt{X: sx, Y: sy, Width: 1, Height: 1},
	}
	var sumX, sumY float64

	queue = append(queue[:0], seed)
	r.Labels[seed] = lab

	for len(queue) > 0 {
		idx := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		cx := idx % w
		cy := idx / w

		comp.Area++
		sumX += float64(cx)
		sumY += float64(cy)
		comp.Bounds = comp.Bounds.Union(geometry.RectInt{X: int(cx), Y: int(cy), Width: 1, Height: 1})

		for _, d := range offsets {
			nx := cx + int32(d[0])
			ny := cy + int32(d[1])
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			ni := ny*w + nx
			if fill.Bits[ni] && r.Labels[ni] == 0 {
				r.Labels[ni] = lab
				queue = append(queue, ni)
			}
		}
	}

	n := float64(comp.Area)
	comp.Centroid = geometry.NewPoint2D(sumX/n, sumY/n)
	return comp, queue
}
