package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-padvinder/pkg/core"
)

// DefaultGamma is the display gamma used when converting to 8-bit color
const DefaultGamma = 2.2

// ValidateGamma fails with ErrInvalidParameter unless gamma is a finite positive number
func ValidateGamma(gamma float64) error {
	if err := core.CheckFiniteScalars(gamma); err != nil {
		return fmt.Errorf("gamma: %w", err)
	}
	if gamma <= 0 {
		return fmt.Errorf("gamma %g must be positive: %w", gamma, core.ErrInvalidParameter)
	}
	return nil
}

// Image is a linear float color buffer of ResX rows and ResY columns.
// Pixel (0,0) is the upper-left corner.
type Image struct {
	ResX, ResY int
	pixels     []core.Vec3 // Row-major
}

// NewImage creates a black image
func NewImage(resX, resY int) *Image {
	return &Image{
		ResX:   resX,
		ResY:   resY,
		pixels: make([]core.Vec3, resX*resY),
	}
}

// NewImageFromPixels wraps a row-major pixel buffer
func NewImageFromPixels(resX, resY int, pixels []core.Vec3) (*Image, error) {
	if resX <= 0 || resY <= 0 || len(pixels) != resX*resY {
		return nil, fmt.Errorf("%d pixels do not fill a %dx%d image: %w", len(pixels), resX, resY, core.ErrInvalidParameter)
	}
	return &Image{ResX: resX, ResY: resY, pixels: pixels}, nil
}

// At returns the color of pixel (px, py)
func (img *Image) At(px, py int) core.Vec3 {
	return img.pixels[px*img.ResY+py]
}

// Set overwrites the color of pixel (px, py)
func (img *Image) Set(px, py int, c core.Vec3) {
	img.pixels[px*img.ResY+py] = c
}

// Add accumulates a color into pixel (px, py)
func (img *Image) Add(px, py int, c core.Vec3) {
	i := px*img.ResY + py
	img.pixels[i] = img.pixels[i].Add(c)
}

// Scale multiplies every pixel by factor
func (img *Image) Scale(factor float64) {
	for i := range img.pixels {
		img.pixels[i] = img.pixels[i].Multiply(factor)
	}
}

// Pixels returns the row-major pixel buffer
func (img *Image) Pixels() []core.Vec3 {
	return img.pixels
}

// AverageLuminance returns the mean luminance of all pixels
func (img *Image) AverageLuminance() float64 {
	if len(img.pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range img.pixels {
		total += p.Luminance()
	}
	return total / float64(len(img.pixels))
}

// ToRGBA converts the image to 8-bit color; gamma must pass ValidateGamma.
// Row px becomes image line px and column py becomes image column py, so the
// result is ResY pixels wide and ResX pixels tall.
func (img *Image) ToRGBA(gamma float64) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.ResY, img.ResX))
	for px := 0; px < img.ResX; px++ {
		for py := 0; py < img.ResY; py++ {
			out.SetRGBA(py, px, vec3ToColor(img.At(px, py), gamma))
		}
	}
	return out
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 1.0)

	if gamma != 1 {
		colorVec = colorVec.GammaCorrect(gamma)
	}

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
