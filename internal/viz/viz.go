// Package viz renders the navigation core's visualization primitives --
// the planned path, the particle cloud, and the prior map -- to static
// files. The live publish/subscribe visualization channel is external to
// the core (spec §1); this package instead gives the same primitives a
// file-based renderer in two flavors, grounded on the teacher's
// internal/lidar/monitor package: a static PNG via gonum/plot
// (gridplotter.go) and an interactive HTML scatter via go-echarts
// (echarts_handlers.go). Neither is on the hot path -- cmd/navcore calls
// these once per run or on demand, never from a tick.
package viz

import (
	"bytes"
	"fmt"
	"os"

	"gonum.org/v1/gonum/plot"
	"gonum.org/v1/gonum/plot/plotter"
	"gonum.org/v1/gonum/plot/vg"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/ConnorCrwf/robot-nav-core/internal/localize"
)

// Scene bundles the primitives one render call needs: the prior map, the
// current particle cloud, and the planned path.
type Scene struct {
	Map       *geom.VectorMap
	Particles []localize.Particle
	Path      []geom.Point
}

// RenderPNG draws the scene's map segments, particle cloud, and path onto a
// single static plot and saves it to path (grounded on gridplotter.go's
// plot.New/plotter.NewLine/Save sequence).
func RenderPNG(scene Scene, path string) error {
	p := plot.New()
	p.Title.Text = "navigation scene"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"

	if scene.Map != nil {
		for _, seg := range scene.Map.Segments {
			line, err := plotter.NewLine(plotter.XYs{
				{X: seg.A.X, Y: seg.A.Y},
				{X: seg.B.X, Y: seg.B.Y},
			})
			if err != nil {
				return fmt.Errorf("render scene: %w", err)
			}
			line.Width = vg.Points(1)
			p.Add(line)
		}
	}

	if len(scene.Particles) > 0 {
		pts := make(plotter.XYs, len(scene.Particles))
		for i, particle := range scene.Particles {
			pts[i] = plotter.XY{X: particle.Pose.X, Y: particle.Pose.Y}
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("render scene: %w", err)
		}
		scatter.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(scatter)
	}

	if len(scene.Path) > 1 {
		pts := make(plotter.XYs, len(scene.Path))
		for i, pt := range scene.Path {
			pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		pathLine, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("render scene: %w", err)
		}
		pathLine.Width = vg.Points(2)
		p.Add(pathLine)
	}

	if err := p.Save(10*vg.Inch, 10*vg.Inch, path); err != nil {
		return fmt.Errorf("render scene: save %q: %w", path, err)
	}
	return nil
}

// RenderHTML renders an interactive scatter of the scene's particle cloud
// and path to an HTML file, grounded on the teacher's
// handleBackgroundGridPolar (echarts_handlers.go). The map segments are not
// drawn in the HTML output.
func RenderHTML(scene Scene, path string) error {
	buf, err := renderEchartsHTML(scene)
	if err != nil {
		return fmt.Errorf("render scene html: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("render scene html: write %q: %w", path, err)
	}
	return nil
}

// renderEchartsHTML is split out from RenderHTML for testability -- it is
// exercised directly by tests without touching the filesystem.
func renderEchartsHTML(scene Scene) (*bytes.Buffer, error) {
	return buildEchartsScatter(scene)
}
