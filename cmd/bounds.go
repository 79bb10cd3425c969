package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/bounds"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Print the bounding volumes of the detailed mesh.
func PrintBounds(ctx *cli.Context) error {
	setupLogging(ctx)

	s, err := buildScene(ctx)
	if err != nil {
		return err
	}

	bv, ok := s.Volume()
	if !ok {
		return scene.ErrMissingVolume
	}

	var buf bytes.Buffer
	writeVolumes(&buf, bv)
	logger.Noticef("bounding volumes of the %s\n%s", bv.Target, buf.String())

	if ctx.Bool("candidates") {
		mesh, ok := s.Object(bv.Target).(*scene.MeshObject)
		if !ok {
			return fmt.Errorf("%s is not a mesh", bv.Target)
		}

		cfg := bounds.DefaultOOBBConfig()
		cfg.AngleStep = ctx.Float64("oobb-step")
		_, candidates, err := bounds.SearchOrientation(mesh.Mesh.Vertices, cfg)
		if err != nil {
			return err
		}

		buf.Reset()
		writeCandidates(&buf, candidates)
		logger.Noticef("oriented box search\n%s", buf.String())
	}

	return nil
}

func writeVolumes(buf *bytes.Buffer, bv *scene.BoundingVolumeObject) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Kind", "Angle", "Width", "Height", "Depth", "Volume"})

	for _, v := range []bounds.Volume{bv.AABB, bv.OOBB} {
		table.Append([]string{
			v.Kind.String(),
			fmt.Sprintf("%.0f", v.AngleDeg),
			fmt.Sprintf("%.4f", v.Width()),
			fmt.Sprintf("%.4f", v.Height()),
			fmt.Sprintf("%.4f", v.Depth()),
			fmt.Sprintf("%.5f", v.Volume()),
		})
	}

	saved := 0.0
	if bv.AABB.Volume() > 0 {
		saved = 100 * (1 - bv.OOBB.Volume()/bv.AABB.Volume())
	}
	table.SetFooter([]string{"", "", "", "", "OOBB SAVES", fmt.Sprintf("%.1f%%", saved)})
	table.Render()
}

func writeCandidates(buf *bytes.Buffer, candidates []bounds.Candidate) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Angle", "Min X", "Max X", "Min Z", "Max Z", "Area"})

	for _, c := range candidates {
		table.Append([]string{
			fmt.Sprintf("%.1f", c.AngleDeg),
			fmt.Sprintf("%.4f", c.MinX),
			fmt.Sprintf("%.4f", c.MaxX),
			fmt.Sprintf("%.4f", c.MinZ),
			fmt.Sprintf("%.4f", c.MaxZ),
			fmt.Sprintf("%.5f", c.Area),
		})
	}
	table.Render()
}
