package baldr

import (
	"fmt"
	"image/color"
	"math/rand"
)

// FillInMissingColors pads colors up to n entries by sampling, with replacement,
// from the colors already present. The input is returned as is when it holds
// n or more colors.
func FillInMissingColors(rng *rand.Rand, n int, colors []color.RGBA) ([]color.RGBA, error) {
	k := n - len(colors)
	if k <= 0 {
		return colors, nil
	}
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}

	res := make([]color.RGBA, len(colors), n)
	copy(res, colors)
	for i := 0; i < k; i++ {
		res = append(res, colors[rng.Intn(len(colors))])
	}
	return res, nil
}

// RandomColors returns the colors of a single picture.
//
// The distinct palette colors are padded up to numColors, shuffled, and the
// first numColors of them are kept. That selection is padded again up to
// numSquaresTotal without a second shuffle, so the sampled tail follows the
// shuffled head. When numSquaresTotal is less than numColors the result
// still holds numColors entries.
func RandomColors(rng *rand.Rand, p Palette, numSquaresTotal, numColors int) ([]color.RGBA, error) {
	if numColors < 0 {
		return nil, fmt.Errorf("%w: negative number of colors", ErrInvalidConfig)
	}

	distinct, err := FillInMissingColors(rng, numColors, p.Distinct())
	if err != nil {
		return nil, err
	}
	rng.Shuffle(len(distinct), func(i, j int) {
		distinct[i], distinct[j] = distinct[j], distinct[i]
	})

	return FillInMissingColors(rng, numSquaresTotal, distinct[:numColors])
}
