// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoiareas

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoundaryGraph(t *testing.T, cells []BoundedCell, setters ...Option) *BoundaryGraph {
	t.Helper()
	bg, err := NewBoundaryGraph(cells, setters...)
	require.NoError(t, err)
	return bg
}

// squareCell wraps a single axis-aligned square ring as a bounded cell.
func squareCell(seed int, x0, y0, side float64) BoundedCell {
	return BoundedCell{
		SeedIndex: seed,
		Pieces: [][]r2.Point{{
			{X: x0, Y: y0},
			{X: x0 + side, Y: y0},
			{X: x0 + side, Y: y0 + side},
			{X: x0, Y: y0 + side},
		}},
	}
}

func TestNewBoundaryGraph_Grid(t *testing.T) {
	// Four half-unit squares tiling the unit square share their interior
	// boundary segments: 9 distinct corners, 12 distinct segments.
	cells := []BoundedCell{
		squareCell(0, 0, 0, 0.5),
		squareCell(1, 0.5, 0, 0.5),
		squareCell(2, 0, 0.5, 0.5),
		squareCell(3, 0.5, 0.5, 0.5),
	}
	bg := mustBoundaryGraph(t, cells)

	assert.Equal(t, 9, bg.NumNodes())
	assert.Len(t, bg.Edges(), 12)
	for _, e := range bg.Edges() {
		assert.InDelta(t, 0.5, e.Weight, 1e-12)
		assert.Less(t, e.U, e.V)
	}
}

func TestDistanceMatrix_Grid(t *testing.T) {
	cells := []BoundedCell{
		squareCell(0, 0, 0, 0.5),
		squareCell(1, 0.5, 0, 0.5),
		squareCell(2, 0, 0.5, 0.5),
		squareCell(3, 0.5, 0.5, 0.5),
	}
	bg := mustBoundaryGraph(t, cells)
	m := bg.ShortestPaths()

	node := func(p r2.Point) int {
		for i, c := range bg.Coords() {
			if c == p {
				return i
			}
		}
		t.Fatalf("coordinate %v not interned", p)
		return -1
	}

	origin := node(r2.Point{X: 0, Y: 0})
	opposite := node(r2.Point{X: 1, Y: 1})
	assert.InDelta(t, 2.0, m.Distance(origin, opposite), 1e-12)

	for u := 0; u < m.NumNodes(); u++ {
		assert.Zero(t, m.Distance(u, u))
		for v := 0; v < m.NumNodes(); v++ {
			assert.InDelta(t, m.Distance(v, u), m.Distance(u, v), 1e-12)
			for w := 0; w < m.NumNodes(); w++ {
				assert.LessOrEqual(t, m.Distance(u, w), m.Distance(u, v)+m.Distance(v, w)+1e-12)
			}
		}
	}
}

func TestNewBoundaryGraph_DropsZeroLengthSegments(t *testing.T) {
	cells := []BoundedCell{{
		SeedIndex: 0,
		Pieces: [][]r2.Point{{
			{X: 0, Y: 0},
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 1, Y: 1},
		}},
	}}
	bg := mustBoundaryGraph(t, cells)

	assert.Equal(t, 3, bg.NumNodes())
	assert.Len(t, bg.Edges(), 3)
}

func TestNewBoundaryGraph_Snap(t *testing.T) {
	shifted := 1 + 1e-12
	cells := []BoundedCell{
		squareCell(0, 0, 0, 1),
		{
			SeedIndex: 1,
			Pieces: [][]r2.Point{{
				{X: 1, Y: 0},
				{X: 2, Y: 0},
				{X: 2, Y: 1},
				{X: shifted, Y: 1},
			}},
		},
	}

	exact := mustBoundaryGraph(t, cells)
	assert.Equal(t, 7, exact.NumNodes(), "exact matching keeps the off-by-1e-12 corner distinct")

	snapped := mustBoundaryGraph(t, cells, WithSnap(1e-9))
	assert.Equal(t, 6, snapped.NumNodes(), "snapping merges the off-by-1e-12 corner")
}

func TestDistanceMatrix_Disconnected(t *testing.T) {
	cells := []BoundedCell{
		squareCell(0, 0, 0, 1),
		squareCell(1, 5, 5, 1),
	}
	bg := mustBoundaryGraph(t, cells)
	m := bg.ShortestPaths()

	u := 0
	// Node ids are assigned in interning order, so the second square's
	// corners follow the first square's.
	v := 4
	assert.True(t, math.IsInf(m.Distance(u, v), 1))

	_, err := m.AverageLength()
	assert.True(t, errors.Is(err, ErrDisconnected), "AverageLength() error = %v, want ErrDisconnected", err)
}

func TestDistanceMatrix_TooFewNodes(t *testing.T) {
	bg := mustBoundaryGraph(t, nil)
	require.Zero(t, bg.NumNodes())

	_, err := bg.ShortestPaths().AverageLength()
	assert.True(t, errors.Is(err, ErrTooFewNodes), "AverageLength() error = %v, want ErrTooFewNodes", err)
}

func TestDistanceMatrix_AverageLength(t *testing.T) {
	// Single unit square ring: 4 nodes, ordered-pair distances are eight 1s
	// and four 2s, mean 16/12.
	bg := mustBoundaryGraph(t, []BoundedCell{squareCell(0, 0, 0, 1)})
	avg, err := bg.ShortestPaths().AverageLength()
	require.NoError(t, err)
	assert.InDelta(t, 16.0/12.0, avg, 1e-12)
}

func TestNewBoundaryGraph_FromDiagram(t *testing.T) {
	d, err := NewDiagram(fourSeeds(), unitRect())
	require.NoError(t, err)
	cells, err := d.ClipToDomain(unitSquareRing())
	require.NoError(t, err)

	bg := mustBoundaryGraph(t, cells)
	assert.Equal(t, 9, bg.NumNodes())
	assert.Len(t, bg.Edges(), 12)

	avg, err := bg.ShortestPaths().AverageLength()
	require.NoError(t, err)
	assert.Greater(t, avg, 0.0)
}
