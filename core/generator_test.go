package baldr_test

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"

	baldr "github.com/esimov/baldr/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fourColors = baldr.Palette{red, green, blue, white}

func TestGenerator_RejectsInvalidInput(t *testing.T) {
	cfg := validConfig()
	cfg.NumColors = 0
	_, err := baldr.NewGenerator(cfg, fourColors)
	assert.ErrorIs(t, err, baldr.ErrInvalidConfig)

	_, err = baldr.NewGenerator(validConfig(), nil)
	assert.ErrorIs(t, err, baldr.ErrEmptyPalette)
}

func TestGenerator_PictureIsDeterministic(t *testing.T) {
	g1, err := baldr.NewGenerator(validConfig(), fourColors)
	require.NoError(t, err)
	g2, err := baldr.NewGenerator(validConfig(), fourColors)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		a, err := g1.Picture(i)
		require.NoError(t, err)
		b, err := g2.Picture(i)
		require.NoError(t, err)
		assert.Equal(t, a.Pix, b.Pix, "picture %d", i)
	}
}

func TestGenerator_Preview(t *testing.T) {
	g, err := baldr.NewGenerator(validConfig(), fourColors)
	require.NoError(t, err)

	var shown image.Image
	err = g.Preview(func(img image.Image) error {
		shown = img
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, shown)
	assert.Equal(t, image.Rect(0, 0, 20, 20), shown.Bounds())
}

func TestGenerator_RunSavesEveryPicture(t *testing.T) {
	dir := t.TempDir()
	g, err := baldr.NewGenerator(validConfig(), fourColors)
	require.NoError(t, err)

	var done []baldr.Result
	err = g.Run(context.Background(), dir, func(r baldr.Result) {
		done = append(done, r)
	})
	require.NoError(t, err)
	require.Len(t, done, 5)

	sort.Slice(done, func(i, j int) bool { return done[i].Index < done[j].Index })
	for i, r := range done {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, filepath.Join(dir, baldr.PictureName(i)), r.Path)

		f, err := os.Open(r.Path)
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestGenerator_RunMatchesPicture(t *testing.T) {
	dir := t.TempDir()
	g, err := baldr.NewGenerator(validConfig(), fourColors)
	require.NoError(t, err)
	require.NoError(t, g.Run(context.Background(), dir, nil))

	want, err := g.Picture(3)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "pic3.png"))
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			assert.Equal(t, want.At(x, y), got.At(x, y))
		}
	}
}

func TestGenerator_RunFailsOnMissingDir(t *testing.T) {
	g, err := baldr.NewGenerator(validConfig(), fourColors)
	require.NoError(t, err)

	err = g.Run(context.Background(), filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}
