// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoiareas

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRect is returned when the clipping rectangle is empty or
	// inverted (xmin >= xmax or ymin >= ymax).
	ErrInvalidRect = errors.New("voronoiareas: invalid clipping rectangle")

	// ErrNoSeeds is returned when an empty seed set is supplied.
	ErrNoSeeds = errors.New("voronoiareas: no seeds")

	// ErrTooFewNodes is returned by average path length queries on graphs
	// with fewer than 2 nodes.
	ErrTooFewNodes = errors.New("voronoiareas: graph has fewer than 2 nodes")

	// ErrDisconnected is returned by average path length queries when some
	// node pair has no connecting path.
	ErrDisconnected = errors.New("voronoiareas: graph is disconnected")
)

// IllFormedRegionError reports a Voronoi region that could not be closed
// into a valid polygon: fewer than 3 vertices or a degenerate convex hull.
type IllFormedRegionError struct {
	Region int
	Reason string
}

func (e *IllFormedRegionError) Error() string {
	return fmt.Sprintf("voronoiareas: ill-formed region %d: %s", e.Region, e.Reason)
}

// InvalidDomainPolygonError reports a domain boundary that is not a simple
// polygon. Vertex is the index of the first offending boundary vertex.
type InvalidDomainPolygonError struct {
	Vertex int
	Reason string
}

func (e *InvalidDomainPolygonError) Error() string {
	return fmt.Sprintf("voronoiareas: invalid domain polygon at vertex %d: %s", e.Vertex, e.Reason)
}
