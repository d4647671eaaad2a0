// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command voronoiareas computes the bounded Voronoi diagram of a sampled
// seed set over the unit square, intersects it with the map polygon, and
// reports per-cell areas, centroid displacements and the average shortest
// path length over the cell boundary graph. It writes an SVG rendering, an
// interactive HTML chart and a CSV report to the output directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"

	"github.com/tokudaek/voronoiareas"
	"github.com/tokudaek/voronoiareas/utils"
)

func main() {
	distrib := flag.String("distrib", "uniform", fmt.Sprintf("seed distribution %v", utils.Distributions()))
	samplesz := flag.Int("samplesz", 50, "number of seeds to sample")
	seed := flag.Int64("seed", 0, "random seed")
	relax := flag.Int("relax", 0, "Lloyd relaxation steps")
	outdir := flag.String("outdir", "/tmp", "output directory")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	seeds, err := utils.Sample(utils.Distribution(*distrib), *samplesz, *seed)
	if err != nil {
		log.Fatal("sampling seeds", zap.Error(err))
	}

	rect := r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1})
	mapPoly := []r2.Point{
		{X: 0, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: 0},
	}

	diagram, err := voronoiareas.NewDiagram(seeds, rect, voronoiareas.WithLogger(log))
	if err != nil {
		log.Fatal("building diagram", zap.Error(err))
	}
	if *relax > 0 {
		if err := diagram.Relax(*relax); err != nil {
			log.Fatal("relaxing diagram", zap.Error(err))
		}
	}

	result, err := voronoiareas.Compute(diagram.Seeds, rect, mapPoly, voronoiareas.WithLogger(log))
	if err != nil {
		log.Fatal("running pipeline", zap.Error(err))
	}

	avg, err := result.Paths.AverageLength()
	switch {
	case errors.Is(err, voronoiareas.ErrDisconnected):
		log.Warn("boundary graph is disconnected, no average path length")
	case err != nil:
		log.Warn("average path length undefined", zap.Error(err))
	default:
		log.Info("average path length", zap.Float64("avgpathlength", avg))
	}
	log.Info("areas",
		zap.Float64("mean", result.Stats.AreaMean),
		zap.Float64("std", result.Stats.AreaStd))

	svgPath := filepath.Join(*outdir, "voronoi.svg")
	if err := renderSVG(svgPath, result); err != nil {
		log.Fatal("writing svg", zap.Error(err))
	}
	htmlPath := filepath.Join(*outdir, "voronoi.html")
	if err := renderChart(htmlPath, result); err != nil {
		log.Fatal("writing html chart", zap.Error(err))
	}
	csvPath := filepath.Join(*outdir, "voronoi.csv")
	if err := writeReport(csvPath, result.Stats); err != nil {
		log.Fatal("writing csv report", zap.Error(err))
	}

	log.Info("outputs written",
		zap.String("svg", svgPath),
		zap.String("html", htmlPath),
		zap.String("csv", csvPath))
}
