// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"

	"github.com/tokudaek/voronoiareas"
)

const (
	width  = 800
	height = 800

	seedStyle = "fill:rgb(255,0,0)"
	edgeStyle = "fill:none;stroke:rgb(60,60,60);stroke-width:1"
)

var fills = []string{
	"rgb(166,206,227)", "rgb(178,223,138)", "rgb(251,154,153)",
	"rgb(253,191,111)", "rgb(202,178,214)", "rgb(255,255,153)",
}

func toScreen(p r2.Point, rect r2.Rect) (int, int) {
	x := (p.X - rect.X.Lo) / (rect.X.Hi - rect.X.Lo)
	y := (p.Y - rect.Y.Lo) / (rect.Y.Hi - rect.Y.Lo)
	return int(x * width), int((1 - y) * height)
}

// renderSVG draws the bounded cells, the boundary graph edges and the seeds.
func renderSVG(path string, result *voronoiareas.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck

	rect := result.Diagram.Rect

	canvas := svg.New(file)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	for i, cell := range result.Cells {
		style := fmt.Sprintf("fill:%s;stroke:rgb(120,120,120);stroke-width:1", fills[i%len(fills)])
		for _, ring := range cell.Pieces {
			xPoints := make([]int, 0, len(ring))
			yPoints := make([]int, 0, len(ring))
			for _, p := range ring {
				x, y := toScreen(p, rect)
				xPoints = append(xPoints, x)
				yPoints = append(yPoints, y)
			}
			canvas.Polygon(xPoints, yPoints, style)
		}
	}

	coords := result.Graph.Coords()
	for _, e := range result.Graph.Edges() {
		x1, y1 := toScreen(coords[e.U], rect)
		x2, y2 := toScreen(coords[e.V], rect)
		canvas.Line(x1, y1, x2, y2, edgeStyle)
	}

	for _, s := range result.Diagram.Seeds {
		sx, sy := toScreen(s, rect)
		canvas.Circle(sx, sy, 3, seedStyle)
	}
	canvas.End()
	return nil
}
