// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoiareas

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"

	"github.com/tokudaek/voronoiareas/delaunay"
	"github.com/tokudaek/voronoiareas/utils"
)

func fourSeeds() []r2.Point {
	return []r2.Point{
		{X: 0.25, Y: 0.25},
		{X: 0.75, Y: 0.25},
		{X: 0.25, Y: 0.75},
		{X: 0.75, Y: 0.75},
	}
}

func mustNewDiagram(t *testing.T, cnt int) *Diagram {
	t.Helper()
	seeds, err := utils.Sample(utils.Uniform, cnt, 0)
	if err != nil {
		t.Fatalf("utils.Sample(...) error = %v, want nil", err)
	}
	d, err := NewDiagram(seeds, unitRect())
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}
	return d
}

func mustCell(t *testing.T, d *Diagram, i int) Cell {
	t.Helper()
	c, err := d.Cell(i)
	if err != nil {
		t.Fatalf("d.Cell(%d) error = %v, want nil", i, err)
	}
	return c
}

func TestNewDiagram_FourSeeds(t *testing.T) {
	d, err := NewDiagram(fourSeeds(), unitRect())
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}

	if got := d.NumCells(); got != 4 {
		t.Fatalf("d.NumCells() = %v, want 4", got)
	}
	for i := range d.NumCells() {
		c := mustCell(t, d, i)
		if n := c.NumVertices(); n != 4 {
			t.Errorf("cell %d: NumVertices() = %v, want 4", i, n)
		}
		if area := c.Area(); math.Abs(area-0.25) > 1e-12 {
			t.Errorf("cell %d: Area() = %v, want 0.25", i, area)
		}
		// Each 0.5x0.5 cell is centered on its own seed.
		if disp := c.Centroid().Sub(c.Seed()).Norm(); disp > 1e-12 {
			t.Errorf("cell %d: centroid displaced from seed by %v, want 0", i, disp)
		}
	}
}

func TestNewDiagram_SingleSeed(t *testing.T) {
	d, err := NewDiagram([]r2.Point{{X: 0.5, Y: 0.5}}, unitRect())
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}
	if got := d.NumCells(); got != 1 {
		t.Fatalf("d.NumCells() = %v, want 1", got)
	}
	c := mustCell(t, d, 0)
	if area := c.Area(); math.Abs(area-1) > 1e-12 {
		t.Errorf("c.Area() = %v, want 1", area)
	}
}

func TestNewDiagram_TilesRectangle(t *testing.T) {
	tests := []struct {
		name string
		size int
		rng  int64
	}{
		{"minimal", 4, 0},
		// 4 seeds drawn with rng 2 include a near-collinear triple whose
		// circumcenter lands far outside the rectangle; its unbounded
		// ridges still have to be cut where they actually cross the
		// boundary or the cells overlap.
		{"minimal far circumcenter", 4, 2},
		{"small", 10, 0},
		{"small alternate draw", 10, 5},
		{"medium", 60, 0},
		{"medium alternate draw", 60, 11},
		{"large", 300, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeds, err := utils.Sample(utils.Uniform, tt.size, tt.rng)
			if err != nil {
				t.Fatalf("utils.Sample(...) error = %v, want nil", err)
			}
			d, err := NewDiagram(seeds, unitRect())
			if err != nil {
				t.Fatalf("NewDiagram(...) error = %v, want nil", err)
			}

			var total float64
			for i := range d.NumCells() {
				c := mustCell(t, d, i)
				ring := c.Ring()
				if !isConvexCCW(ring) {
					t.Errorf("cell %d is not a convex CCW polygon: %v", i, ring)
				}
				area := c.Area()
				if area <= 0 {
					t.Errorf("cell %d: Area() = %v, want > 0", i, area)
				}
				for _, p := range ring {
					if p.X < -1e-9 || p.X > 1+1e-9 || p.Y < -1e-9 || p.Y > 1+1e-9 {
						t.Errorf("cell %d: vertex %v outside the clipping rectangle", i, p)
					}
				}
				if !ringContains(ring, c.Seed()) {
					t.Errorf("cell %d does not contain its seed %v", i, c.Seed())
				}
				total += area
			}
			if math.Abs(total-1) > 1e-9 {
				t.Errorf("total cell area = %v, want 1", total)
			}
		})
	}
}

func TestNewDiagram_SeedInOwnCell(t *testing.T) {
	d := mustNewDiagram(t, 80)
	for i := range d.NumCells() {
		c := mustCell(t, d, i)
		if !ringContains(c.Ring(), c.Seed()) {
			t.Errorf("cell %d does not contain its seed %v", i, c.Seed())
		}
	}
}

func TestNewDiagram_CornerSeed(t *testing.T) {
	seeds := []r2.Point{
		{X: 0, Y: 0},
		{X: 0.7, Y: 0.2},
		{X: 0.3, Y: 0.8},
		{X: 0.8, Y: 0.7},
		{X: 0.5, Y: 0.4},
	}
	d, err := NewDiagram(seeds, unitRect())
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}

	corner := mustCell(t, d, 0)
	found := false
	for _, p := range corner.Ring() {
		if p == (r2.Point{X: 0, Y: 0}) {
			found = true
		}
	}
	if !found {
		t.Errorf("corner seed cell ring %v does not claim the corner", corner.Ring())
	}

	var total float64
	for i := range d.NumCells() {
		c := mustCell(t, d, i)
		ring := c.Ring()
		for j, p := range ring {
			if p == ring[(j+1)%len(ring)] {
				t.Errorf("cell %d has a duplicate consecutive vertex %v", i, p)
			}
		}
		if area := c.Area(); area <= 0 {
			t.Errorf("cell %d: Area() = %v, want > 0", i, area)
		}
		total += c.Area()
	}
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("total cell area = %v, want 1", total)
	}
}

func TestNewDiagram_Deterministic(t *testing.T) {
	seeds, err := utils.Sample(utils.Gaussian, 120, 3)
	if err != nil {
		t.Fatalf("utils.Sample(...) error = %v, want nil", err)
	}
	a, err := NewDiagram(seeds, unitRect())
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}
	b, err := NewDiagram(seeds, unitRect())
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}
	for i := range a.NumCells() {
		if diff := cmp.Diff(mustCell(t, a, i).Ring(), mustCell(t, b, i).Ring()); diff != "" {
			t.Fatalf("cell %d differs between identical runs (-first +second):\n%s", i, diff)
		}
	}
}

func TestNewDiagram_Errors(t *testing.T) {
	collinear := []r2.Point{{X: 0, Y: 0}, {X: 0.25, Y: 0.25}, {X: 0.5, Y: 0.5}, {X: 0.75, Y: 0.75}}
	tests := []struct {
		name  string
		seeds []r2.Point
		rect  r2.Rect
		want  error
	}{
		{"no seeds", nil, unitRect(), ErrNoSeeds},
		{"inverted rect", fourSeeds(), r2.Rect{}, ErrInvalidRect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDiagram(tt.seeds, tt.rect)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewDiagram(...) error = %v, want %v", err, tt.want)
			}
		})
	}

	t.Run("degenerate seeds", func(t *testing.T) {
		_, err := NewDiagram(collinear, unitRect())
		var degenerate *delaunay.DegenerateInputError
		if !errors.As(err, &degenerate) {
			t.Errorf("NewDiagram(...) error = %v, want *delaunay.DegenerateInputError", err)
		}
	})
}

func TestDiagram_Relax(t *testing.T) {
	d := mustNewDiagram(t, 40)

	before := maxDisplacement(t, d)
	if err := d.Relax(3); err != nil {
		t.Fatalf("d.Relax(3) error = %v, want nil", err)
	}
	after := maxDisplacement(t, d)

	if after >= before {
		t.Errorf("max centroid displacement after relaxation = %v, want < %v", after, before)
	}

	var total float64
	for i := range d.NumCells() {
		total += mustCell(t, d, i).Area()
	}
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("total cell area after relaxation = %v, want 1", total)
	}
}

func maxDisplacement(t *testing.T, d *Diagram) float64 {
	t.Helper()
	var max float64
	for i := range d.NumCells() {
		c := mustCell(t, d, i)
		max = math.Max(max, c.Centroid().Sub(c.Seed()).Norm())
	}
	return max
}

// ringContains reports whether p lies inside or on the convex CCW ring.
func ringContains(ring []r2.Point, p r2.Point) bool {
	for i, a := range ring {
		b := ring[(i+1)%len(ring)]
		if b.Sub(a).Cross(p.Sub(a)) < -1e-9 {
			return false
		}
	}
	return true
}
