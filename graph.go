// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoiareas

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// BoundaryGraph is the planar adjacency graph over the bounded cells'
// boundary segments: one node per distinct boundary coordinate, one
// undirected edge per ring segment weighted by its Euclidean length.
// The graph is built once and read-only afterwards.
type BoundaryGraph struct {
	g      *simple.WeightedUndirectedGraph
	coords []r2.Point
	ids    map[r2.Point]int64
}

// Edge is one weighted boundary segment between two node ids.
type Edge struct {
	U, V   int
	Weight float64
}

// NewBoundaryGraph builds the boundary graph of the given bounded cells.
//
// Coordinates are deduplicated by exact float equality unless WithSnap sets
// a quantization tolerance. Zero-length segments (repeated vertices) are
// dropped.
func NewBoundaryGraph(cells []BoundedCell, setters ...Option) (*BoundaryGraph, error) {
	opts, err := applyOptions(setters)
	if err != nil {
		return nil, err
	}
	return newBoundaryGraph(cells, opts), nil
}

func newBoundaryGraph(cells []BoundedCell, opts Options) *BoundaryGraph {
	bg := &BoundaryGraph{
		g:   simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		ids: make(map[r2.Point]int64),
	}

	for _, cell := range cells {
		for _, ring := range cell.Pieces {
			n := len(ring)
			for i, p := range ring {
				q := ring[(i+1)%n]
				u := bg.intern(snapPoint(p, opts.Snap))
				v := bg.intern(snapPoint(q, opts.Snap))
				if u == v {
					continue
				}
				w := bg.coords[u].Sub(bg.coords[v]).Norm()
				bg.g.SetWeightedEdge(simple.WeightedEdge{
					F: simple.Node(u),
					T: simple.Node(v),
					W: w,
				})
			}
		}
	}
	return bg
}

func (bg *BoundaryGraph) intern(p r2.Point) int64 {
	if id, ok := bg.ids[p]; ok {
		return id
	}
	id := int64(len(bg.coords))
	bg.ids[p] = id
	bg.coords = append(bg.coords, p)
	bg.g.AddNode(simple.Node(id))
	return id
}

func snapPoint(p r2.Point, tol float64) r2.Point {
	if tol <= 0 {
		return p
	}
	return r2.Point{
		X: math.Round(p.X/tol) * tol,
		Y: math.Round(p.Y/tol) * tol,
	}
}

// NumNodes returns the number of distinct boundary coordinates.
func (bg *BoundaryGraph) NumNodes() int {
	return len(bg.coords)
}

// Coords returns the node coordinates indexed by node id.
// The returned slice is owned by the graph and must not be mutated.
func (bg *BoundaryGraph) Coords() []r2.Point {
	return bg.coords
}

// Edges returns all boundary segments with U < V, sorted by (U, V).
func (bg *BoundaryGraph) Edges() []Edge {
	var edges []Edge
	it := bg.g.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		u, v := int(e.From().ID()), int(e.To().ID())
		if u > v {
			u, v = v, u
		}
		edges = append(edges, Edge{U: u, V: v, Weight: e.Weight()})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return edges
}

// ShortestPaths computes all-pairs shortest path distances over the
// boundary graph.
func (bg *BoundaryGraph) ShortestPaths() *DistanceMatrix {
	return &DistanceMatrix{
		n:     bg.NumNodes(),
		paths: path.DijkstraAllPaths(bg.g),
	}
}

// DistanceMatrix holds symmetric all-pairs shortest path distances.
// Unreachable pairs report +Inf, never 0.
type DistanceMatrix struct {
	n     int
	paths path.AllShortest
}

// NumNodes returns the number of nodes the matrix covers.
func (m *DistanceMatrix) NumNodes() int {
	return m.n
}

// Distance returns the shortest path length between nodes u and v,
// +Inf when no path exists.
func (m *DistanceMatrix) Distance(u, v int) float64 {
	if u == v {
		return 0
	}
	return m.paths.Weight(int64(u), int64(v))
}

// AverageLength returns the mean shortest path length over all ordered node
// pairs. It reports ErrTooFewNodes for graphs with fewer than 2 nodes and
// ErrDisconnected when any pair is unreachable, rather than averaging over
// a silently truncated set.
func (m *DistanceMatrix) AverageLength() (float64, error) {
	if m.n < 2 {
		return 0, ErrTooFewNodes
	}
	var sum float64
	for u := 0; u < m.n; u++ {
		for v := 0; v < m.n; v++ {
			if u == v {
				continue
			}
			d := m.Distance(u, v)
			if math.IsInf(d, 1) {
				return 0, ErrDisconnected
			}
			sum += d
		}
	}
	return sum / float64(m.n*(m.n-1)), nil
}
