package baldr

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration value falls outside of its range.
var ErrInvalidConfig = errors.New("baldr: invalid configuration")

// Range is an inclusive interval of accepted integer values.
type Range struct {
	Min, Max int
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%d-%d]", r.Min, r.Max)
}

// Accepted values of the configuration options.
var (
	SquaresRange    = Range{1, 50}
	SquareSizeRange = Range{1, 512}
	ColorsRange     = Range{1, 100}
	PicturesRange   = Range{1, 100}
	WorkersRange    = Range{1, 256}
)

// Config holds the settings of a generation run. It is passed by value
// to every task, so it must not be changed once the run has started.
type Config struct {
	// Number of squares on the horizontal and vertical axis.
	SquaresX int
	SquaresY int
	// Side length of a square in pixels.
	SquareSize int
	// Number of distinct colors used in a single picture.
	NumColors int
	// Number of pictures generated in batch mode.
	NumPictures int
	// Number of pictures generated concurrently.
	Workers int
	// Base seed of the random generators. Zero picks a time based seed.
	Seed int64
}

// Width returns the canvas width in pixels.
func (c Config) Width() int {
	return c.SquaresX * c.SquareSize
}

// Height returns the canvas height in pixels.
func (c Config) Height() int {
	return c.SquaresY * c.SquareSize
}

// NumSquaresTotal returns the number of tiles of a picture.
func (c Config) NumSquaresTotal() int {
	return c.SquaresX * c.SquaresY
}

// Validate checks every option against its accepted range.
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value int
		rng   Range
	}{
		{"squares x", c.SquaresX, SquaresRange},
		{"squares y", c.SquaresY, SquaresRange},
		{"square size", c.SquareSize, SquareSizeRange},
		{"colors", c.NumColors, ColorsRange},
		{"pictures", c.NumPictures, PicturesRange},
		{"workers", c.Workers, WorkersRange},
	}
	for _, ch := range checks {
		if !ch.rng.Contains(ch.value) {
			return fmt.Errorf("%w: %s must be within %s, got %d", ErrInvalidConfig, ch.name, ch.rng, ch.value)
		}
	}
	return nil
}
