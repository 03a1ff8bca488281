package renderer

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/sasha-s/go-deadlock"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of samples taken
	Tiles        int           // Number of tiles the image was split into
	Workers      int           // Number of parallel workers
	Duration     time.Duration // Wall time of the render
}

// AverageSamples returns the average number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// Progress counts finished tiles and logs every completed tenth of the render
type Progress struct {
	mu       deadlock.Mutex
	total    int
	done     int
	reported int // Last logged tenth
	logger   zerolog.Logger
}

// NewProgress creates a tracker for total tiles
func NewProgress(total int, logger zerolog.Logger) *Progress {
	return &Progress{total: total, logger: logger}
}

// Complete marks one more tile as finished
func (p *Progress) Complete() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done >= p.total {
		return
	}
	p.done++

	tenth := p.done * 10 / p.total
	if tenth > p.reported {
		p.reported = tenth
		p.logger.Debug().
			Int("tiles_done", p.done).
			Int("tiles_total", p.total).
			Int("percent", tenth*10).
			Msg("Render progress")
	}
}

// Fraction returns the finished share of the render in [0, 1]
func (p *Progress) Fraction() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.total == 0 {
		return 1
	}
	return float64(p.done) / float64(p.total)
}
