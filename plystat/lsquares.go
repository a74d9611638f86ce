// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plystat

import (
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/vec"
)

// LeastSquares fits a least squares polynomial regression through the
// data (X, Y).
//
// X and Y are required. All other fields have reasonable default zero
// values.
//
// The result of LeastSquares has two columns in addition to constant
// columns from the input:
//
// - Column X is the points at which the fit polynomial is sampled.
//
// - Column Y is the value of the fit polynomial.
type LeastSquares struct {
	// X and Y are the names of the columns to use for X and Y
	// values of data points, respectively.
	X, Y string

	// N is the number of points to sample the fit at. If N is 0,
	// it is treated as 200.
	N int

	// Widen sets the domain of the sample points to Widen times
	// the span of the data. If Widen is 0, it is treated as 1.1.
	Widen float64

	// Degree is the degree of the fit polynomial. If it is 0, it
	// is treated as 1, a line.
	Degree int

	// SplitGroups indicates that each group should be sampled
	// over the extent of that group alone. The default, false,
	// samples every group's fit over the extent of all of the
	// data combined.
	SplitGroups bool
}

func (s LeastSquares) F(g table.Grouping) table.Grouping {
	if s.Degree <= 0 {
		s.Degree = 1
	}
	points := samplePoints(g, "LeastSquares", s.X, s.N, s.Widen, s.SplitGroups)

	return table.MapTables(g, func(gid table.GroupID, t *table.Table) *table.Table {
		xs := numColumn(t, "LeastSquares", s.X)
		ys := numColumn(t, "LeastSquares", s.Y)

		eval := points[gid]
		if t.Len() == 0 || eval == nil {
			nt := new(table.Builder).Add(s.X, []float64{}).Add(s.Y, []float64{})
			keepConsts(nt, t)
			return nt.Done()
		}

		r := fit.PolynomialRegression(xs, ys, nil, s.Degree)
		nt := new(table.Builder).Add(s.X, eval).Add(s.Y, vec.Map(r.F, eval))
		keepConsts(nt, t)
		return nt.Done()
	})
}
