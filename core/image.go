package baldr

import (
	"image"
	"io"

	"github.com/disintegration/imaging"

	// imaging registers the gif, jpeg, png, bmp and tiff decoders.
	_ "golang.org/x/image/webp"
)

// GetImage opens the image file found at path and decodes it.
// The EXIF orientation, if any, is applied to the decoded image.
func GetImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeImage decodes an image from the reader.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return img, nil
}
