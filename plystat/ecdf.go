// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plystat

import (
	"math"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
)

// ECDF computes the empirical cumulative distribution of a set of
// samples. Feed its result to a steps layer with StepHV to get the
// usual staircase.
//
// X is the only required field. All other fields have reasonable
// default zero values.
//
// The result of ECDF has three columns in addition to constant
// columns from the input:
//
// - Column X is the points at which the distribution steps (the
// distinct sample values), plus one point on each side if Widen
// extends the domain.
//
// - Column "cumulative density" is the fraction of total weight at or
// below X.
//
// - Column "cumulative count" is the weight at or below X.
type ECDF struct {
	// X is the name of the column to use for samples.
	X string

	// W is the optional name of the column to use for sample
	// weights. It may be "" to uniformly weight samples.
	W string

	// Widen sets the domain of the result to Widen times the span
	// of the data, adding a point at 0 below the smallest sample
	// and a point at 1 above the largest so both levels are
	// visible. If Widen is 0, it is treated as 1.1. Widen <= 1
	// adds no points.
	Widen float64

	// SplitGroups indicates that each group should be widened
	// based on its own extent. The default, false, widens every
	// group to the extent of all of the data combined.
	SplitGroups bool
}

func (e ECDF) F(g table.Grouping) table.Grouping {
	if e.Widen == 0 {
		e.Widen = 1.1
	}
	spans := colSpans(g, "ECDF", e.X, e.Widen, e.SplitGroups)
	dname, cname := "cumulative density", "cumulative count"

	return table.MapTables(g, func(gid table.GroupID, t *table.Table) *table.Table {
		xs := numColumn(t, "ECDF", e.X)
		var ws []float64
		if e.W != "" {
			ws = numColumn(t, "ECDF", e.W)
		}

		if len(xs) == 0 {
			nt := new(table.Builder).Add(e.X, []float64{}).Add(dname, []float64{}).Add(cname, []float64{})
			keepConsts(nt, t)
			return nt.Done()
		}

		// Accumulate weight at each distinct sample value.
		order := make([]int, len(xs))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool { return xs[order[i]] < xs[order[j]] })

		var xo, co []float64
		for _, i := range order {
			w := 1.0
			if ws != nil {
				w = ws[i]
			}
			if n := len(xo); n > 0 && xo[n-1] == xs[i] {
				co[n-1] += w
			} else {
				cum := w
				if len(co) > 0 {
					cum += co[len(co)-1]
				}
				xo = append(xo, xs[i])
				co = append(co, cum)
			}
		}
		total := co[len(co)-1]

		if e.Widen > 1 {
			sp := spans[gid]
			if !math.IsNaN(sp.min) {
				xo = append([]float64{sp.min}, xo...)
				co = append([]float64{0}, co...)
				xo = append(xo, sp.max)
				co = append(co, total)
			}
		}

		do := make([]float64, len(co))
		if total > 0 {
			do = vec.Map(func(c float64) float64 { return c / total }, co)
		}

		nt := new(table.Builder).Add(e.X, xo).Add(dname, do).Add(cname, co)
		keepConsts(nt, t)
		return nt.Done()
	})
}
