package renderer

import (
	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      integrator.Scene
	camera     RayGenerator
	integrator integrator.Integrator
	image      *Image
	config     Config
}

// NewTileRenderer creates a tile renderer that accumulates samples into img
func NewTileRenderer(scene integrator.Scene, camera RayGenerator, integratorInst integrator.Integrator, img *Image, config Config) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		camera:     camera,
		integrator: integratorInst,
		image:      img,
		config:     config,
	}
}

// RenderTile traces every sample of every pixel in the tile and adds the colors to
// the image. It returns the number of samples traced.
func (tr *TileRenderer) RenderTile(tile *Tile) int {
	bounds := tile.Bounds
	samples := 0

	for px := bounds.Min.X; px < bounds.Max.X; px++ {
		for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
			samples += tr.samplePixel(px, py)
		}
	}

	return samples
}

// samplePixel accumulates all samples of a single pixel
func (tr *TileRenderer) samplePixel(px, py int) int {
	for sample := 0; sample < tr.config.SamplesPerPixel; sample++ {
		// The stream only depends on the pixel and sample index, never on the worker
		sampler := core.NewPixelSampler(tr.config.Seed, px, py, sample)
		ray := tr.camera.Ray(px, py, tr.config.ResX, tr.config.ResY, sampler, true)
		tr.image.Add(px, py, tr.integrator.RayColor(ray, tr.scene, sampler))
	}
	return tr.config.SamplesPerPixel
}
