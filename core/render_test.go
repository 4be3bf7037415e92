package baldr_test

import (
	"image"
	"image/color"
	"testing"

	baldr "github.com/esimov/baldr/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawSquares_CanvasSize(t *testing.T) {
	for _, sz := range []struct{ w, h, s int }{{20, 20, 10}, {60, 20, 20}, {3, 5, 1}} {
		tiles := (sz.w / sz.s) * (sz.h / sz.s)
		colors := make([]color.RGBA, tiles)
		for i := range colors {
			colors[i] = white
		}

		img, err := baldr.DrawSquares(sz.w, sz.h, sz.s, colors)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, sz.w, sz.h), img.Bounds())
	}
}

func TestDrawSquares_TileColors(t *testing.T) {
	colors := []color.RGBA{red, green, blue, white}
	img, err := baldr.DrawSquares(20, 20, 10, colors)
	require.NoError(t, err)

	// Sample the center of every tile.
	centers := []image.Point{{5, 5}, {15, 5}, {5, 15}, {15, 15}}
	for i, p := range centers {
		assert.Equal(t, colors[i], img.RGBAAt(p.X, p.Y), "tile %d", i)
	}
}

func TestDrawSquares_ShortColors(t *testing.T) {
	img, err := baldr.DrawSquares(20, 20, 10, []color.RGBA{red})
	assert.ErrorIs(t, err, baldr.ErrShortColors)
	require.NotNil(t, img)
	assert.Equal(t, red, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(15, 15))
}

func TestDrawSquares_InvalidGeometry(t *testing.T) {
	for _, sz := range []struct{ w, h, s int }{{20, 20, 0}, {25, 20, 10}, {20, 15, 10}, {0, 10, 10}} {
		_, err := baldr.DrawSquares(sz.w, sz.h, sz.s, []color.RGBA{red})
		assert.ErrorIs(t, err, baldr.ErrInvalidGeometry)
	}
}

func BenchmarkDrawSquares(b *testing.B) {
	colors := make([]color.RGBA, 50*50)
	for i := range colors {
		colors[i] = color.RGBA{R: uint8(i), G: uint8(i >> 8), A: 0xff}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := baldr.DrawSquares(50*16, 50*16, 16, colors); err != nil {
			b.Fatal(err)
		}
	}
}
