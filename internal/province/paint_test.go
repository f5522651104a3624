package province_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"province-mapper/internal/label"
	"province-mapper/internal/mask"
	"province-mapper/internal/province"
	"province-mapper/internal/raster"
	"province-mapper/pkg/colorutil"
)

var (
	outWater  = colorutil.RGB{R: 0x30, G: 0x30, B: 0x30}
	outBorder = colorutil.Black
	maskWater = colorutil.RGB{R: 0x30, G: 0x30, B: 0x30}
)

func TestBuildLookup(t *testing.T) {
	comps := []label.Component{
		{Label: 1, Area: 10},
		{Label: 2, Area: 3},
		{Label: 3, Area: 5},
	}

	lut, err := province.BuildLookup(comps, 5, outWater)
	require.NoError(t, err)
	require.Len(t, lut, 4)

	require.Equal(t, outWater, lut[0], "background maps to water")
	require.Equal(t, colorutil.RGB{B: 1}, lut[1])
	require.Equal(t, outWater, lut[2], "filtered component falls back to water")
	require.Equal(t, colorutil.RGB{B: 3}, lut[3])
}

func TestPaintPrecedence(t *testing.T) {
	// 3x3 scene: one border pixel, one water background pixel, seven land
	// pixels in a single component.
	img := raster.NewRGB(3, 3)
	img.Fill(colorutil.White)
	img.Set(0, 0, colorutil.Black)
	img.Set(2, 2, maskWater)

	classes := mask.Classify(img, colorutil.Black, colorutil.White, maskWater, 0)
	fill := classes.FillMask()
	require.Equal(t, 7, fill.Count())

	labels, err := label.Components(fill, label.Connect4)
	require.NoError(t, err)
	require.Len(t, labels.Components, 1)

	lut, err := province.BuildLookup(labels.Components, 1, outWater)
	require.NoError(t, err)
	out := province.Paint(labels, lut, classes, outBorder, outWater)

	// Border pixel takes the border color regardless of neighbors.
	require.Equal(t, outBorder, out.At(0, 0))
	// The untouched water pixel carries label 0 like any filtered
	// component, yet paints as water from the mask overlay.
	require.Equal(t, outWater, out.At(2, 2))
	// Land pixels carry the component's id color.
	idColor := colorutil.RGB{B: 1}
	require.Equal(t, idColor, out.At(1, 0))
	require.Equal(t, idColor, out.At(1, 1))
	require.Equal(t, idColor, out.At(2, 0))
}

func TestPaintBorderOverridesWater(t *testing.T) {
	// A pixel matching both border and water classifies as border and must
	// paint as border even though the water overlay runs after the fill pass.
	img := raster.NewRGB(2, 1)
	img.Set(0, 0, colorutil.Black)
	img.Set(1, 0, maskWater)

	classes := mask.Classify(img, colorutil.Black, colorutil.White, maskWater, 0)
	labels, err := label.Components(classes.FillMask(), label.Connect4)
	require.NoError(t, err)

	lut, err := province.BuildLookup(labels.Components, 1, outWater)
	require.NoError(t, err)
	out := province.Paint(labels, lut, classes, outBorder, outWater)

	require.Equal(t, outBorder, out.At(0, 0))
	require.Equal(t, outWater, out.At(1, 0))
}

func TestPaintFilteredComponentLeavesNoHoles(t *testing.T) {
	img := raster.NewRGB(3, 1)
	img.Fill(colorutil.White)
	img.Set(1, 0, colorutil.Black) // splits land into two 1px components

	classes := mask.Classify(img, colorutil.Black, colorutil.White, maskWater, 0)
	labels, err := label.Components(classes.FillMask(), label.Connect4)
	require.NoError(t, err)
	require.Len(t, labels.Components, 2)

	// min area 2 filters both single-pixel components.
	lut, err := province.BuildLookup(labels.Components, 2, outWater)
	require.NoError(t, err)
	out := province.Paint(labels, lut, classes, outBorder, outWater)

	require.Equal(t, outWater, out.At(0, 0))
	require.Equal(t, outBorder, out.At(1, 0))
	require.Equal(t, outWater, out.At(2, 0))
}

func TestBuildLookupIDOverflow(t *testing.T) {
	comps := []label.Component{{Label: province.MaxID + 1, Area: 1}}
	_, err := province.BuildLookup(comps, 1, outWater)
	require.ErrorIs(t, err, province.ErrIDRange)
}
