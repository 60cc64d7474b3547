package viz

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// buildEchartsScatter mirrors the teacher's handleBackgroundGridPolar: a
// square scatter with symmetric axis padding derived from the data extent,
// one series per primitive (particles, path).
func buildEchartsScatter(scene Scene) (*bytes.Buffer, error) {
	particleData := make([]opts.ScatterData, 0, len(scene.Particles))
	maxAbs := 1.0
	for _, particle := range scene.Particles {
		x, y := particle.Pose.X, particle.Pose.Y
		particleData = append(particleData, opts.ScatterData{Value: []interface{}{x, y}})
		if abs := absMax(x, y); abs > maxAbs {
			maxAbs = abs
		}
	}

	pathData := make([]opts.ScatterData, 0, len(scene.Path))
	for _, pt := range scene.Path {
		pathData = append(pathData, opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
		if abs := absMax(pt.X, pt.Y); abs > maxAbs {
			maxAbs = abs
		}
	}

	pad := maxAbs * 1.05

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Navigation Scene", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Navigation Scene", Subtitle: fmt.Sprintf("particles=%d waypoints=%d", len(scene.Particles), len(scene.Path))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
	)

	scatter.AddSeries("particles", particleData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	scatter.AddSeries("path", pathData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		return nil, fmt.Errorf("render echarts scatter: %w", err)
	}
	return &buf, nil
}

func absMax(x, y float64) float64 {
	ax, ay := x, y
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax > ay {
		return ax
	}
	return ay
}
