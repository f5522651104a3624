package raster_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"province-mapper/internal/raster"
	"province-mapper/pkg/colorutil"
)

func TestNewRGB(t *testing.T) {
	m := raster.NewRGB(4, 3)
	require.Equal(t, 4, m.Width)
	require.Equal(t, 3, m.Height)
	require.Len(t, m.Pix, 4*3*3)
}

func TestAtSet(t *testing.T) {
	m := raster.NewRGB(3, 2)
	c := colorutil.RGB{R: 10, G: 20, B: 30}
	m.Set(2, 1, c)
	require.Equal(t, c, m.At(2, 1))
	require.Equal(t, colorutil.Black, m.At(0, 0))
}

func TestFromImageRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(1, 1, color.RGBA{G: 128, B: 64, A: 255})

	m := raster.FromImage(src)
	require.Equal(t, colorutil.RGB{R: 255}, m.At(0, 0))
	require.Equal(t, colorutil.RGB{G: 128, B: 64}, m.At(1, 1))
}

func TestFromImageOffsetBounds(t *testing.T) {
	// Decoders may produce images whose bounds do not start at the origin.
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.SetRGBA(5, 5, color.RGBA{B: 9, A: 255})

	m := raster.FromImage(src)
	require.Equal(t, 2, m.Width)
	require.Equal(t, 1, m.Height)
	require.Equal(t, colorutil.RGB{B: 9}, m.At(0, 0))
}

func TestToImageRoundTrip(t *testing.T) {
	m := raster.NewRGB(2, 2)
	m.Set(0, 0, colorutil.White)
	m.Set(1, 1, colorutil.RGB{R: 1, G: 2, B: 3})

	back := raster.FromImage(m.ToImage())
	require.Equal(t, m.Pix, back.Pix)
}

func TestSaveAndLoadPNG(t *testing.T) {
	m := raster.NewRGB(3, 2)
	m.Set(0, 0, colorutil.RGB{R: 0x12, G: 0x34, B: 0x56})
	m.Set(2, 1, colorutil.White)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, raster.SavePNG(m, path, 1))

	back, err := raster.Load(path)
	require.NoError(t, err)
	require.Equal(t, m.Width, back.Width)
	require.Equal(t, m.Height, back.Height)
	require.Equal(t, m.Pix, back.Pix)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := raster.Load(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}

func TestLoadUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0644))
	_, err := raster.Load(path)
	require.Error(t, err)
}

func TestCompressionFor(t *testing.T) {
	require.Equal(t, png.NoCompression, raster.CompressionFor(0))
	require.Equal(t, png.NoCompression, raster.CompressionFor(-1))
	require.Equal(t, png.BestSpeed, raster.CompressionFor(1))
	require.Equal(t, png.BestSpeed, raster.CompressionFor(3))
	require.Equal(t, png.DefaultCompression, raster.CompressionFor(6))
}

func TestIsSupportedFormat(t *testing.T) {
	require.True(t, raster.IsSupportedFormat("mask.png"))
	require.True(t, raster.IsSupportedFormat("scan.TIF"))
	require.True(t, raster.IsSupportedFormat("map.bmp"))
	require.False(t, raster.IsSupportedFormat("notes.txt"))
}
