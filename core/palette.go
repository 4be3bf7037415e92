package baldr

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"math"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"golang.org/x/image/draw"
)

// ErrEmptyPalette is returned when colors have to be picked from a palette holding none.
var ErrEmptyPalette = errors.New("baldr: palette has no colors")

// Method selects the way a palette is obtained from the source image.
type Method int

const (
	// MethodTable reads the color table of the image converted to indexed mode.
	MethodTable Method = iota
	// MethodDominant extracts the most dominant colors of the image.
	MethodDominant
	// MethodKMeans clusters the image pixels and uses the cluster centers.
	MethodKMeans
)

// kmeansSamples caps the number of pixels fed into the clustering.
const kmeansSamples = 12000

func (m Method) String() string {
	switch m {
	case MethodDominant:
		return "dominant"
	case MethodKMeans:
		return "kmeans"
	default:
		return "table"
	}
}

// ParseMethod returns the palette method named by s.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "table":
		return MethodTable, nil
	case "dominant":
		return MethodDominant, nil
	case "kmeans":
		return MethodKMeans, nil
	}
	return MethodTable, fmt.Errorf("unknown palette method %q", s)
}

// Palette is a list of opaque RGB colors.
type Palette []color.RGBA

// Distinct returns the palette without duplicated colors.
// The first occurrence of every color is kept, in order.
func (p Palette) Distinct() Palette {
	seen := make(map[color.RGBA]struct{}, len(p))
	res := make(Palette, 0, len(p))
	for _, c := range p {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		res = append(res, c)
	}
	return res
}

// ExtractPalette reduces the source image to a palette of colors.
// The size is only a hint for the adaptive methods; MethodTable returns
// the whole color table of the indexed image.
func ExtractPalette(img image.Image, m Method, size int) (Palette, error) {
	var p Palette

	switch m {
	case MethodDominant:
		p = dominantPalette(img, size)
	case MethodKMeans:
		var err error
		if p, err = kmeansPalette(img, size); err != nil {
			return nil, err
		}
	default:
		p = tablePalette(img)
	}
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}
	return p, nil
}

// tablePalette converts the image to indexed color mode and returns its color table.
// Images already in indexed mode keep their own table, the rest are dithered
// onto the web-safe palette and only the referenced entries are kept.
func tablePalette(img image.Image) Palette {
	if src, ok := img.(*image.Paletted); ok {
		p := make(Palette, 0, len(src.Palette))
		for _, c := range src.Palette {
			p = append(p, toRGB(c))
		}
		return p
	}

	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.WebSafe)
	draw.FloydSteinberg.Draw(dst, dst.Bounds(), img, b.Min)

	used := make([]bool, len(dst.Palette))
	for _, idx := range dst.Pix {
		used[idx] = true
	}
	p := make(Palette, 0, len(dst.Palette))
	for i, c := range dst.Palette {
		if used[i] {
			p = append(p, toRGB(c))
		}
	}
	return p
}

func dominantPalette(img image.Image, size int) Palette {
	colors := dominantcolor.FindWeight(img, max(size, 1))
	p := make(Palette, 0, len(colors))
	for _, c := range colors {
		p = append(p, toRGB(c.RGBA))
	}
	return p
}

func kmeansPalette(img image.Image, size int) (Palette, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyPalette
	}

	// Subsample large images to keep the clustering tractable.
	step := 1
	if width*height > kmeansSamples {
		step = int(math.Sqrt(float64(width*height)/float64(kmeansSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, kmeansSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r) / float64(a),
				float64(g) / float64(a),
				float64(b) / float64(a),
			})
		}
	}
	if len(dataset) == 0 {
		return nil, ErrEmptyPalette
	}

	k := min(max(size, 1), len(dataset))
	cc, err := kmeans.New().Partition(dataset, k)
	if err != nil {
		return nil, fmt.Errorf("kmeans partition: %w", err)
	}

	p := make(Palette, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		r, g, b := col.RGB255()
		p = append(p, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}
	return p, nil
}

// toRGB drops the alpha channel of c.
func toRGB(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}
