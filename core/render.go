package baldr

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

var (
	// ErrShortColors is returned when there are fewer colors than tiles to paint.
	ErrShortColors = errors.New("baldr: not enough colors to fill the canvas")
	// ErrInvalidGeometry is returned when the canvas can't be split into whole squares.
	ErrInvalidGeometry = errors.New("baldr: invalid canvas geometry")
)

// painter is the drawing surface of the grid renderer. *gg.Context implements it.
type painter interface {
	DrawRectangle(x, y, w, h float64)
	SetColor(c color.Color)
	Fill()
}

// DrawSquares paints the colors as square tiles of squareSize pixels on a
// new canvas of width x height pixels, left to right and top to bottom.
// Colors exceeding the number of tiles are ignored. If the colors run out
// before the canvas is covered, the partially painted canvas is returned
// together with ErrShortColors.
func DrawSquares(width, height, squareSize int, colors []color.RGBA) (*image.RGBA, error) {
	dc, err := drawSquares(width, height, squareSize, colors)
	if dc == nil {
		return nil, err
	}
	return dc.Image().(*image.RGBA), err
}

func drawSquares(width, height, squareSize int, colors []color.RGBA) (*gg.Context, error) {
	if squareSize <= 0 || width <= 0 || height <= 0 ||
		width%squareSize != 0 || height%squareSize != 0 {
		return nil, fmt.Errorf("%w: %dx%d canvas with %d pixel squares",
			ErrInvalidGeometry, width, height, squareSize)
	}

	dc := gg.NewContext(width, height)
	if _, err := paintSquares(dc, width, height, squareSize, colors); err != nil {
		return dc, err
	}
	return dc, nil
}

// paintSquares fills the tiles one by one and returns the number of tiles painted.
func paintSquares(dc painter, width, height, squareSize int, colors []color.RGBA) (int, error) {
	var (
		tiles   = (width / squareSize) * (height / squareSize)
		painted int
		x1, y1  int
		x2      = squareSize
		side    = float64(squareSize)
	)

	for _, c := range colors {
		if painted == tiles {
			break
		}
		dc.DrawRectangle(float64(x1), float64(y1), side, side)
		dc.SetColor(c)
		dc.Fill()
		painted++

		// Move to the next row once the right edge of the canvas is reached.
		if x2 == width {
			x1, x2 = 0, squareSize
			y1 += squareSize
		} else {
			x1 += squareSize
			x2 += squareSize
		}
	}

	if painted < tiles {
		return painted, fmt.Errorf("%w: painted %d of %d tiles", ErrShortColors, painted, tiles)
	}
	return painted, nil
}
