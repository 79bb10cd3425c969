package renderer

import (
	"fmt"
	"image"
)

// Threading is the number of workers a render pass uses
type Threading int

const (
	NoThreading Threading = 1
	Threads2    Threading = 2
	Threads4    Threading = 4
	Threads8    Threading = 8
	Threads16   Threading = 16
)

// grids maps each worker count to its tile grid as columns x rows
var grids = map[Threading][2]int{
	NoThreading: {1, 1},
	Threads2:    {2, 1},
	Threads4:    {4, 1},
	Threads8:    {4, 2},
	Threads16:   {4, 4},
}

// ParseThreading validates a requested worker count
func ParseThreading(workers int) (Threading, error) {
	t := Threading(workers)
	if _, ok := grids[t]; !ok {
		return NoThreading, fmt.Errorf("%d workers: %w", workers, ErrUnsupportedThreading)
	}
	return t, nil
}

// Grid returns the number of tile columns and rows
func (t Threading) Grid() (cols, rows int) {
	g, ok := grids[t]
	if !ok {
		return 1, 1
	}
	return g[0], g[1]
}

// Tile represents a rectangular region of the image owned by one worker
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid splits the image into equal tiles for the worker count. The
// last column and row absorb any remainder so every pixel belongs to
// exactly one tile.
func NewTileGrid(width, height int, threading Threading) []*Tile {
	cols, rows := threading.Grid()
	tileWidth := width / cols
	tileHeight := height / rows

	tiles := make([]*Tile, 0, cols*rows)
	tileID := 0

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x0 := col * tileWidth
			y0 := row * tileHeight
			x1 := x0 + tileWidth
			y1 := y0 + tileHeight
			if col == cols-1 {
				x1 = width
			}
			if row == rows-1 {
				y1 = height
			}

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}
