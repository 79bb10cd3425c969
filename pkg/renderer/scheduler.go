package renderer

import (
	"golang.org/x/sync/errgroup"
)

// renderTiles runs one worker per tile and waits for all of them. With a
// single tile the work runs on the calling goroutine.
func renderTiles(tiles []*Tile, tr *TileRenderer, fb *Framebuffer) ([]TileStats, error) {
	stats := make([]TileStats, len(tiles))

	if len(tiles) == 1 {
		s, err := tr.RenderTileBounds(tiles[0].Bounds, fb)
		s.ID = tiles[0].ID
		stats[0] = s
		return stats, err
	}

	var g errgroup.Group
	for i, tile := range tiles {
		i, tile := i, tile
		g.Go(func() error {
			s, err := tr.RenderTileBounds(tile.Bounds, fb)
			s.ID = tile.ID
			stats[i] = s
			return err
		})
	}

	return stats, g.Wait()
}
