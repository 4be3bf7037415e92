package baldr

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"path/filepath"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/sync/errgroup"
)

// Generator produces mosaic pictures out of a palette.
// It holds no mutable state, so its methods are safe for concurrent use.
type Generator struct {
	cfg     Config
	palette Palette
	seed    int64
}

// Result describes a picture saved by Run.
type Result struct {
	Index int
	Path  string
}

// NewGenerator returns a generator for the given configuration and palette.
func NewGenerator(cfg Config, p Palette) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg:     cfg,
		palette: append(Palette(nil), p...),
		seed:    seed,
	}, nil
}

// Config returns the configuration of the generator.
func (g *Generator) Config() Config {
	return g.cfg
}

// PictureName returns the file name of the picture with the given index.
func PictureName(index int) string {
	return fmt.Sprintf("pic%d.png", index)
}

// Picture generates the picture with the given index.
// The same seed and index always yield the same picture.
func (g *Generator) Picture(index int) (*image.RGBA, error) {
	dc, err := g.render(index)
	if err != nil {
		return nil, err
	}
	return dc.Image().(*image.RGBA), nil
}

// Preview generates a single picture and hands it over to show instead of saving it.
func (g *Generator) Preview(show func(image.Image) error) error {
	img, err := g.Picture(0)
	if err != nil {
		return err
	}
	return show(img)
}

// Run generates the configured number of pictures concurrently and saves
// them as PNG files into dir, which must exist. The file name of a picture
// depends only on its index. done, if not nil, is called once per saved
// picture in completion order; calls are serialized. The first failing
// task cancels the pending ones and its error is returned.
func (g *Generator) Run(ctx context.Context, dir string, done func(Result)) error {
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)

	for i := 0; i < g.cfg.NumPictures; i++ {
		index := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, PictureName(index))
			if err := g.save(index, path); err != nil {
				return err
			}
			if done != nil {
				mu.Lock()
				done(Result{Index: index, Path: path})
				mu.Unlock()
			}
			return nil
		})
	}
	return eg.Wait()
}

func (g *Generator) save(index int, path string) error {
	dc, err := g.render(index)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", filepath.Base(path), err)
	}
	return nil
}

// render samples the colors of a picture and paints them.
func (g *Generator) render(index int) (*gg.Context, error) {
	rng := rand.New(rand.NewSource(g.seed + int64(index)))

	colors, err := RandomColors(rng, g.palette, g.cfg.NumSquaresTotal(), g.cfg.NumColors)
	if err != nil {
		return nil, fmt.Errorf("picture %d: %w", index, err)
	}
	dc, err := drawSquares(g.cfg.Width(), g.cfg.Height(), g.cfg.SquareSize, colors)
	if err != nil {
		return nil, fmt.Errorf("picture %d: %w", index, err)
	}
	return dc, nil
}
