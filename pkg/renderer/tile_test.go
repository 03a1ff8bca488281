package renderer

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		resX, resY    int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 8, 8, 4, 4},
		{"partial tiles", 10, 5, 4, 6},
		{"single tile", 3, 3, 16, 1},
		{"one pixel tiles", 2, 3, 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.resX, tt.resY, tt.tileSize)
			assert.Len(t, tiles, tt.expectedTiles)

			// Every pixel is covered exactly once
			covered := make(map[image.Point]int)
			for i, tile := range tiles {
				assert.Equal(t, i, tile.ID)
				for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
					for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
						covered[image.Pt(x, y)]++
					}
				}
			}
			assert.Len(t, covered, tt.resX*tt.resY)
			for p, n := range covered {
				assert.Equal(t, 1, n, "pixel %v", p)
			}
		})
	}
}
