// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plystat

import (
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/vec"
)

// Smooth fits a smooth trend through the data (X, Y) by
// locally-weighted polynomial regression (LOESS).
//
// X and Y are required. All other fields have reasonable default zero
// values.
//
// The result of Smooth has two columns in addition to constant
// columns from the input:
//
// - Column X is the points at which the fitted function is sampled.
//
// - Column Y is the value of the fitted function.
type Smooth struct {
	// X and Y are the names of the columns to use for X and Y
	// values of data points, respectively.
	X, Y string

	// N is the number of points to sample the fit at. If N is 0,
	// it is treated as 200.
	N int

	// Widen sets the domain of the sample points to Widen times
	// the span of the data. If Widen is 0, it is treated as 1.1.
	Widen float64

	// Degree is the degree of the local fit polynomial. If it is
	// 0, it is treated as 2.
	Degree int

	// Span controls the smoothness of the fit: the fraction of
	// the data that influences each local fit, between 0 and 1,
	// where smaller values follow the data more tightly. If it is
	// 0, it is treated as 0.5.
	Span float64

	// SplitGroups indicates that each group should be sampled
	// over the extent of that group alone. The default, false,
	// samples every group's fit over the extent of all of the
	// data combined.
	SplitGroups bool
}

func (s Smooth) F(g table.Grouping) table.Grouping {
	if s.Degree <= 0 {
		s.Degree = 2
	}
	if s.Span <= 0 {
		s.Span = 0.5
	}
	points := samplePoints(g, "Smooth", s.X, s.N, s.Widen, s.SplitGroups)

	return table.MapTables(g, func(gid table.GroupID, t *table.Table) *table.Table {
		xs := numColumn(t, "Smooth", s.X)
		ys := numColumn(t, "Smooth", s.Y)

		eval := points[gid]
		if t.Len() == 0 || eval == nil {
			nt := new(table.Builder).Add(s.X, []float64{}).Add(s.Y, []float64{})
			keepConsts(nt, t)
			return nt.Done()
		}

		loess := fit.LOESS(xs, ys, s.Degree, s.Span)
		nt := new(table.Builder).Add(s.X, eval).Add(s.Y, vec.Map(loess, eval))
		keepConsts(nt, t)
		return nt.Done()
	})
}
