package renderer

import (
	"fmt"

	"github.com/df07/go-padvinder/pkg/core"
)

// Config contains the render settings. The resolution is given as (ResX, ResY):
// pixel (px, py) of the image is row px and column py.
type Config struct {
	ResX            int       // Number of image rows
	ResY            int       // Number of image columns
	SamplesPerPixel int       // Number of rays per pixel
	PathLength      int       // Maximum number of path segments
	Background      core.Vec3 // Color of rays leaving the scene
	TileSize        int       // Edge length of the square work units
	NumWorkers      int       // Number of parallel workers (0 = use CPU count)
	Seed            uint64    // Seed of all random streams
}

// DefaultConfig returns the default render settings
func DefaultConfig() Config {
	return Config{
		ResX:            100,
		ResY:            100,
		SamplesPerPixel: 5,
		PathLength:      2,
		Background:      core.NewVec3(0.1, 0.1, 0.1),
		TileSize:        32,
		NumWorkers:      0, // Auto-detect CPU count
		Seed:            1,
	}
}

// Validate checks that the settings describe a renderable image
func (c Config) Validate() error {
	if c.ResX <= 0 || c.ResY <= 0 {
		return fmt.Errorf("resolution (%d, %d) must be positive: %w", c.ResX, c.ResY, core.ErrInvalidParameter)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel %d must be positive: %w", c.SamplesPerPixel, core.ErrInvalidParameter)
	}
	if c.PathLength < 1 {
		return fmt.Errorf("path length %d must be at least 1: %w", c.PathLength, core.ErrInvalidParameter)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size %d must be positive: %w", c.TileSize, core.ErrInvalidParameter)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count %d must not be negative: %w", c.NumWorkers, core.ErrInvalidParameter)
	}
	if err := core.CheckFinite(c.Background); err != nil {
		return fmt.Errorf("background color: %w", err)
	}
	return nil
}
