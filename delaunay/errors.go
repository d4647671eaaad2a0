// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"errors"
	"fmt"
)

var errNonPositiveEps = errors.New("delaunay: eps must be positive")

// DegenerateInputError reports a seed set the tessellation is undefined for:
// fewer than 4 seeds, duplicates, or a fully collinear configuration.
// Seed is the index of the offending seed, or NoVertex when the whole set is
// at fault.
type DegenerateInputError struct {
	Seed   int
	Reason string
}

func (e *DegenerateInputError) Error() string {
	if e.Seed == NoVertex {
		return fmt.Sprintf("delaunay: degenerate input: %s", e.Reason)
	}
	return fmt.Sprintf("delaunay: degenerate input at seed %d: %s", e.Seed, e.Reason)
}
