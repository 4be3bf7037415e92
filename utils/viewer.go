package utils

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/browser"
)

// openFile opens a file with the default application of the system.
var openFile = browser.OpenFile

// ShowImage saves img into a temporary PNG file and opens it in the default
// image viewer. The path of the temporary file is returned.
func ShowImage(img image.Image) (string, error) {
	f, err := os.CreateTemp("", "baldr-*.png")
	if err != nil {
		return "", fmt.Errorf("unable to create temporary file: %w", err)
	}
	defer f.Close()

	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("unable to encode the preview image: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if err := openFile(f.Name()); err != nil {
		return f.Name(), fmt.Errorf("unable to open the image viewer: %w", err)
	}
	return f.Name(), nil
}
