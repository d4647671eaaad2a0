// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/tokudaek/voronoiareas"
)

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "900px",
			Height: "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Bounded Voronoi diagram",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
	)
}

// renderChart writes an interactive HTML chart: seeds and cell centroids as
// scatter series, boundary graph edges as line overlays.
func renderChart(path string, result *voronoiareas.Result) error {
	scatter := charts.NewScatter()
	prepareScatter(scatter)

	seeds := make([]opts.ScatterData, 0, len(result.Diagram.Seeds))
	for _, s := range result.Diagram.Seeds {
		seeds = append(seeds, opts.ScatterData{Value: []float64{s.X, s.Y}})
	}
	scatter.AddSeries("seeds", seeds).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "red"}),
		)

	centroids := make([]opts.ScatterData, 0, len(result.Stats.Cells))
	for _, c := range result.Stats.Cells {
		if c.Area == 0 {
			continue
		}
		centroids = append(centroids, opts.ScatterData{Value: []float64{c.Centroid.X, c.Centroid.Y}})
	}
	scatter.AddSeries("centroids", centroids).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "green"}),
		)

	coords := result.Graph.Coords()
	for _, e := range result.Graph.Edges() {
		line := charts.NewLine()
		line.AddSeries("boundary", []opts.LineData{
			{Value: []float64{coords[e.U].X, coords[e.U].Y}},
			{Value: []float64{coords[e.V].X, coords[e.V].Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{Width: 1}),
		)
		scatter.Overlap(line)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck

	return scatter.Render(file)
}
