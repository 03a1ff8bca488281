package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/integrator"
)

// RayGenerator produces the primary ray for a pixel of an image with dimensions (dx, dy)
type RayGenerator interface {
	Ray(px, py, dx, dy int, sampler core.Sampler, jitter bool) core.Ray
}

// Renderer estimates the color of every pixel by averaging jittered path samples
type Renderer struct {
	config     Config
	integrator *integrator.PathTracingIntegrator
	logger     zerolog.Logger
}

// New creates a renderer after validating the configuration
func New(config Config, logger zerolog.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	return &Renderer{
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.PathLength, config.Background),
		logger:     logger,
	}, nil
}

// Config returns the render settings
func (r *Renderer) Config() Config {
	return r.config
}

// Render renders the scene as seen by the camera. It cannot fail.
func (r *Renderer) Render(scene integrator.Scene, camera RayGenerator) *Image {
	img, _, _ := r.RenderContext(context.Background(), scene, camera)
	return img
}

// RenderContext renders the scene in parallel tiles. When ctx is cancelled the tiles
// that have not started are skipped and ctx.Err() is returned without an image.
func (r *Renderer) RenderContext(ctx context.Context, scene integrator.Scene, camera RayGenerator) (*Image, RenderStats, error) {
	start := time.Now()

	img := NewImage(r.config.ResX, r.config.ResY)
	tiles := NewTileGrid(r.config.ResX, r.config.ResY, r.config.TileSize)
	tileRenderer := NewTileRenderer(scene, camera, r.integrator, img, r.config)
	workerPool := NewWorkerPool(ctx, tileRenderer, len(tiles), r.config.NumWorkers)
	progress := NewProgress(len(tiles), r.logger)

	stats := RenderStats{
		TotalPixels: r.config.ResX * r.config.ResY,
		Tiles:       len(tiles),
		Workers:     workerPool.GetNumWorkers(),
	}

	r.logger.Info().
		Int("res_x", r.config.ResX).
		Int("res_y", r.config.ResY).
		Int("spp", r.config.SamplesPerPixel).
		Int("path_length", r.config.PathLength).
		Int("tiles", stats.Tiles).
		Int("workers", stats.Workers).
		Msg("Starting render")

	workerPool.Start()
	for i, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	// Wait for all tiles to complete
	var renderErr error
	for range tiles {
		result, ok := workerPool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.TotalSamples += result.Samples
		progress.Complete()
	}
	workerPool.Stop()
	stats.Duration = time.Since(start)

	if renderErr != nil {
		r.logger.Warn().Err(renderErr).Float64("progress", progress.Fraction()).Msg("Render stopped")
		return nil, stats, renderErr
	}

	// Average the accumulated samples
	img.Scale(1 / float64(r.config.SamplesPerPixel))

	r.logger.Info().
		Dur("duration", stats.Duration).
		Int("samples", stats.TotalSamples).
		Float64("avg_luminance", img.AverageLuminance()).
		Msg("Render finished")

	return img, stats, nil
}
