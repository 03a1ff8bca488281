package export

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/df07/go-padvinder/pkg/renderer"
)

// Save writes the tone-mapped image to path. The file format (PNG, JPEG, GIF, TIFF or BMP)
// is chosen by the file extension.
func Save(path string, img *renderer.Image, gamma float64) error {
	if err := imaging.Save(img.ToRGBA(gamma), path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Encode writes the tone-mapped image in the given format
func Encode(w io.Writer, img *renderer.Image, format imaging.Format, gamma float64) error {
	if err := imaging.Encode(w, img.ToRGBA(gamma), format); err != nil {
		return fmt.Errorf("failed to encode %v: %w", format, err)
	}
	return nil
}

// EncodePNG returns the tone-mapped image as PNG bytes
func EncodePNG(img *renderer.Image, gamma float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, imaging.PNG, gamma); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Thumbnail scales the tone-mapped image down to fit a size x size box, keeping the
// aspect ratio. Images that already fit are returned at their own size.
func Thumbnail(img *renderer.Image, size int, gamma float64) image.Image {
	return resize.Thumbnail(uint(size), uint(size), img.ToRGBA(gamma), resize.Lanczos3)
}

// SaveThumbnail writes a thumbnail of the image to path
func SaveThumbnail(path string, img *renderer.Image, size int, gamma float64) error {
	if err := imaging.Save(Thumbnail(img, size, gamma), path); err != nil {
		return fmt.Errorf("failed to save thumbnail %s: %w", path, err)
	}
	return nil
}
