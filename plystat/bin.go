// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plystat

import (
	"math"

	"github.com/aclements/go-gg/table"
)

// Bin counts rows into equal-width bins along a column. It is the
// histogram transform: feed its result to a bar layer.
//
// X is the only required field. All other fields have reasonable
// default zero values.
//
// The result of Bin has exactly Bins rows per group, including rows
// for empty bins, and two columns in addition to constant columns
// from the input:
//
// - Column X is the center of each bin.
//
// - Column "count" is the number of rows in the bin, or the summed
// weight of the rows if W is set.
type Bin struct {
	// X is the name of the column to bin rows by.
	X string

	// W is the optional name of the column to use for row
	// weights. It may be "" to count each row as 1.
	W string

	// Bins is the number of bins. If Bins is 0, it is treated as
	// 10.
	Bins int

	// SplitGroups indicates that each group in the table should
	// get bins covering the extent of that group alone. The
	// default, false, bins every group over the extent of all of
	// the data combined, so histograms are comparable and
	// stackable across groups.
	SplitGroups bool
}

func (b Bin) F(g table.Grouping) table.Grouping {
	if b.Bins <= 0 {
		b.Bins = 10
	}
	spans := colSpans(g, "Bin", b.X, 1, b.SplitGroups)

	return table.MapTables(g, func(gid table.GroupID, t *table.Table) *table.Table {
		xs := numColumn(t, "Bin", b.X)
		var ws []float64
		if b.W != "" {
			ws = numColumn(t, "Bin", b.W)
		}

		sp := spans[gid]
		if math.IsNaN(sp.min) {
			nt := new(table.Builder).Add(b.X, []float64{}).Add("count", []float64{})
			keepConsts(nt, t)
			return nt.Done()
		}
		min, max := sp.min, sp.max
		if min == max {
			// Degenerate extent. Give the one bin unit width.
			min, max = min-0.5, max+0.5
		}
		width := (max - min) / float64(b.Bins)

		// Bins are half-open on the right, except the last bin,
		// which is closed so the maximum lands in it.
		counts := make([]float64, b.Bins)
		for i, x := range xs {
			if math.IsNaN(x) {
				continue
			}
			bi := int((x - min) / width)
			if bi < 0 {
				bi = 0
			} else if bi >= b.Bins {
				bi = b.Bins - 1
			}
			if ws != nil {
				counts[bi] += ws[i]
			} else {
				counts[bi]++
			}
		}

		centers := make([]float64, b.Bins)
		for i := range centers {
			centers[i] = min + width*(float64(i)+0.5)
		}

		nt := new(table.Builder).Add(b.X, centers).Add("count", counts)
		keepConsts(nt, t)
		return nt.Done()
	})
}
