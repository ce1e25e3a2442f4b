package renderer

import "image"

// Tile is a rectangular, non-overlapping region of the output image
// handed to a single worker. Tiles cover the image with no gaps and no
// overlap, so workers never race on a pixel.
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// Tiles partitions a width x height image into tileSize x tileSize
// tiles (the last tile in each row/column is clipped to the image
// bounds), in row-major order so ID is reproducible across runs.
func Tiles(width, height, tileSize int) []Tile {
	if tileSize <= 0 {
		tileSize = width
	}
	var tiles []Tile
	id := 0
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			maxX, maxY := x+tileSize, y+tileSize
			if maxX > width {
				maxX = width
			}
			if maxY > height {
				maxY = height
			}
			tiles = append(tiles, Tile{
				ID:     id,
				Bounds: image.Rect(x, y, maxX, maxY),
			})
			id++
		}
	}
	return tiles
}
