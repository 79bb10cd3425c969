package renderer

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// TileStats contains statistics about one rendered tile
type TileStats struct {
	ID       int
	Bounds   image.Rectangle
	Pixels   int           // Number of primary rays traced
	Distance float64       // Total distance traveled by all rays of the tile
	Duration time.Duration // Wall time spent on the tile
}

// RenderStats contains statistics about a render pass
type RenderStats struct {
	Width     int
	Height    int
	Threading Threading
	Tiles     []TileStats
	Duration  time.Duration // Wall time of the whole pass
}

// TotalPixels returns the number of pixels rendered across all tiles
func (rs RenderStats) TotalPixels() int {
	total := 0
	for _, t := range rs.Tiles {
		total += t.Pixels
	}
	return total
}

// AverageDistance returns the mean traveled distance per primary ray
func (rs RenderStats) AverageDistance() float64 {
	pixels := rs.TotalPixels()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for _, t := range rs.Tiles {
		total += t.Distance
	}
	return total / float64(pixels)
}

// WriteTable writes a per-tile timing table
func (rs RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tile", "Bounds", "Pixels", "Avg distance", "Time"})

	for _, t := range rs.Tiles {
		avg := 0.0
		if t.Pixels > 0 {
			avg = t.Distance / float64(t.Pixels)
		}
		table.Append([]string{
			fmt.Sprintf("%02d", t.ID),
			fmt.Sprintf("%v", t.Bounds),
			fmt.Sprintf("%d", t.Pixels),
			fmt.Sprintf("%.3f", avg),
			t.Duration.Round(time.Microsecond).String(),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d workers", rs.Threading),
		fmt.Sprintf("%dx%d", rs.Width, rs.Height),
		fmt.Sprintf("%d", rs.TotalPixels()),
		fmt.Sprintf("%.3f", rs.AverageDistance()),
		rs.Duration.Round(time.Microsecond).String(),
	})
	table.Render()
}
