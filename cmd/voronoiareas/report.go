// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/tokudaek/voronoiareas"
)

// writeReport writes one CSV row per cell: seed coordinates, area, centroid
// and centroid-to-seed displacement.
func writeReport(path string, stats *voronoiareas.Stats) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck

	w := csv.NewWriter(file)
	if err := w.Write([]string{"seed_x", "seed_y", "area", "centroid_x", "centroid_y", "displacement", "pieces"}); err != nil {
		return err
	}
	for _, c := range stats.Cells {
		row := []string{
			formatFloat(c.Seed.X),
			formatFloat(c.Seed.Y),
			formatFloat(c.Area),
			formatFloat(c.Centroid.X),
			formatFloat(c.Centroid.Y),
			formatFloat(c.Displacement),
			strconv.Itoa(c.Pieces),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
