package export

import (
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/renderer"
)

// rawImage is the CBOR layout of an unprocessed render: linear RGB triples, row-major
type rawImage struct {
	ResX   int       `cbor:"res_x"`
	ResY   int       `cbor:"res_y"`
	Pixels []float64 `cbor:"pixels"`
}

// WriteRaw writes the linear float buffer without tone mapping or clamping
func WriteRaw(w io.Writer, img *renderer.Image) error {
	pixels := img.Pixels()
	raw := rawImage{
		ResX:   img.ResX,
		ResY:   img.ResY,
		Pixels: make([]float64, 0, 3*len(pixels)),
	}
	for _, p := range pixels {
		raw.Pixels = append(raw.Pixels, p.X, p.Y, p.Z)
	}

	if err := cbor.NewEncoder(w).Encode(raw); err != nil {
		return fmt.Errorf("failed to encode raw image: %w", err)
	}
	return nil
}

// ReadRaw reads an image written by WriteRaw
func ReadRaw(r io.Reader) (*renderer.Image, error) {
	var raw rawImage
	if err := cbor.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode raw image: %w", err)
	}
	if len(raw.Pixels)%3 != 0 {
		return nil, fmt.Errorf("raw image has %d channels, not a multiple of 3: %w", len(raw.Pixels), core.ErrInvalidParameter)
	}

	pixels := make([]core.Vec3, len(raw.Pixels)/3)
	for i := range pixels {
		pixels[i] = core.NewVec3(raw.Pixels[3*i], raw.Pixels[3*i+1], raw.Pixels[3*i+2])
	}
	return renderer.NewImageFromPixels(raw.ResX, raw.ResY, pixels)
}

// SaveRaw writes the raw image to path
func SaveRaw(path string, img *renderer.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteRaw(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// LoadRaw reads a raw image from path
func LoadRaw(path string) (*renderer.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()
	return ReadRaw(file)
}
