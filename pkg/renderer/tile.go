package renderer

import "image"

// Tile represents a rectangular block of pixels rendered as one unit of work.
// Bounds.X spans rows (px) and Bounds.Y spans columns (py).
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (px0,py0,px1,py1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(resX, resY, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (resX + tileSize - 1) / tileSize // Ceiling division
	tilesY := (resY + tileSize - 1) / tileSize

	for tileX := 0; tileX < tilesX; tileX++ {
		for tileY := 0; tileY < tilesY; tileY++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, resX) // Don't exceed image bounds
			y1 := min(y0+tileSize, resY)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}
