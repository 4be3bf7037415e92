package utils

import (
	"errors"
	"image/color"
	"slices"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// SortByBrightness orders the colors from the darkest to the brightest one.
func SortByBrightness(colors []color.RGBA) {
	slices.SortStableFunc(colors, func(a, b color.RGBA) int {
		ya, yb := luminance(a), luminance(b)
		switch {
		case ya < yb:
			return -1
		case ya > yb:
			return 1
		}
		return 0
	})
}

func luminance(c color.RGBA) float64 {
	col, _ := colorful.MakeColor(c)
	r, g, b := col.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// SavePalette draws the colors side by side, as squares of tileSize pixels,
// from the darkest to the brightest, and saves them as a PNG file.
func SavePalette(colors []color.RGBA, tileSize int, path string) error {
	if len(colors) == 0 {
		return errors.New("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	sorted := slices.Clone(colors)
	SortByBrightness(sorted)

	dc := gg.NewContext(tileSize*len(sorted), tileSize)
	for i, c := range sorted {
		dc.DrawRectangle(float64(i*tileSize), 0, float64(tileSize), float64(tileSize))
		dc.SetColor(c)
		dc.Fill()
	}
	return dc.SavePNG(path)
}
