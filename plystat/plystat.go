// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plystat provides statistical transforms for ply pipelines.
//
// Each transform is a struct whose fields configure it and whose F
// method maps a table.Grouping to a new table.Grouping, so any of
// them can serve as a ply.Stat. Transforms are applied to each group
// independently, but by default compute domains from all of the data
// combined so results are comparable across groups; the SplitGroups
// field of a transform opts out of this.
//
// Transforms that depend on a column the data does not have panic
// with *ply.GroupKeyError, which ply.Apply converts into a returned
// error.
package plystat

import (
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-ply/ply"
)

// checkColumns panics with *ply.GroupKeyError if any of cols is not a
// column of g.
func checkColumns(g table.Grouping, op string, cols ...string) {
	have := g.Columns()
	for _, col := range cols {
		found := false
		for _, col2 := range have {
			if col == col2 {
				found = true
				break
			}
		}
		if !found {
			panic(&ply.GroupKeyError{Op: op, Column: col})
		}
	}
}

// numColumn returns column col of t converted to []float64, panicking
// with *ply.GroupKeyError if the column does not exist.
func numColumn(t *table.Table, op, col string) []float64 {
	c := t.Column(col)
	if c == nil {
		panic(&ply.GroupKeyError{Op: op, Column: col})
	}
	var xs []float64
	slice.Convert(&xs, c)
	return xs
}

// span is the extent of a column within one group.
type span struct {
	min, max float64
}

// colSpans computes the extent of column x for each group of g,
// widened to widen times the extent of the data (widen <= 1 leaves
// the extent alone). Unless split is set, every group gets the
// combined extent of all groups, which keeps results stackable and
// comparable across groups.
func colSpans(g table.Grouping, op, x string, widen float64, split bool) map[table.GroupID]span {
	spans := make(map[table.GroupID]span)
	min, max := math.NaN(), math.NaN()
	for _, gid := range g.Tables() {
		xs := numColumn(g.Table(gid), op, x)
		gmin, gmax := stats.Bounds(xs)
		if split {
			spans[gid] = widenSpan(span{gmin, gmax}, widen)
			continue
		}
		if gmin < min || math.IsNaN(min) {
			min = gmin
		}
		if gmax > max || math.IsNaN(max) {
			max = gmax
		}
	}
	if !split {
		shared := widenSpan(span{min, max}, widen)
		for _, gid := range g.Tables() {
			spans[gid] = shared
		}
	}
	return spans
}

func widenSpan(s span, widen float64) span {
	if widen <= 1 || math.IsNaN(s.min) {
		return s
	}
	pad := (s.max - s.min) * (widen - 1) / 2
	return span{s.min - pad, s.max + pad}
}

// samplePoints computes, for each group of g, the points at which to
// sample a fitted function of column x: n evenly spaced points over
// the group's span. n <= 0 is treated as 200 and widen <= 0 as 1.1.
func samplePoints(g table.Grouping, op, x string, n int, widen float64, split bool) map[table.GroupID][]float64 {
	if n <= 0 {
		n = 200
	}
	if widen <= 0 {
		widen = 1.1
	}
	points := make(map[table.GroupID][]float64)
	for gid, sp := range colSpans(g, op, x, widen, split) {
		if math.IsNaN(sp.min) {
			// No data to sample over.
			continue
		}
		points[gid] = vec.Linspace(sp.min, sp.max, n)
	}
	return points
}

// keepConsts copies the constant columns of t into nt, keeping any
// columns nt already has.
func keepConsts(nt *table.Builder, t *table.Table) {
	for _, col := range t.Columns() {
		if nt.Has(col) {
			continue
		}
		if cv, ok := t.Const(col); ok {
			nt.AddConst(col, cv)
		}
	}
}
