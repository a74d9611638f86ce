// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plystat

import (
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// Density estimates the probability density of a set of samples by
// kernel density estimation.
//
// X is the only required field. All other fields have reasonable
// default zero values.
//
// The result of Density has three columns in addition to constant
// columns from the input:
//
// - Column X is the points at which the density estimate is sampled.
//
// - Column "probability density" is the density estimate.
//
// - Column "cumulative density" is the cumulative density estimate.
type Density struct {
	// X is the name of the column to use for samples.
	X string

	// W is the optional name of the column to use for sample
	// weights. It may be "" to uniformly weight samples.
	W string

	// N is the number of points to sample the estimate at. If N
	// is 0, it is treated as 200.
	N int

	// Widen sets the domain of the sample points to Widen times
	// the span of the data. If Widen is 0, it is treated as 1.1
	// (that is, 5% of the span on each side), which leaves room
	// for the estimate's tails.
	Widen float64

	// Kernel is the smoothing kernel.
	Kernel stats.KDEKernel

	// Bandwidth is the smoothing bandwidth. If it is 0, the
	// bandwidth is estimated from the data (currently with
	// stats.BandwidthScott).
	Bandwidth float64

	// SplitGroups indicates that each group in the table should
	// get sample points covering the extent of that group alone.
	// The default, false, samples every group's estimate over the
	// extent of all of the data combined, so estimates are
	// stackable and comparable across groups.
	SplitGroups bool
}

func (d Density) F(g table.Grouping) table.Grouping {
	if d.N <= 0 {
		d.N = 200
	}
	points := samplePoints(g, "Density", d.X, d.N, d.Widen, d.SplitGroups)
	dname, cname := "probability density", "cumulative density"

	return table.MapTables(g, func(gid table.GroupID, t *table.Table) *table.Table {
		var sample stats.Sample
		sample.Xs = numColumn(t, "Density", d.X)
		if d.W != "" {
			sample.Weights = numColumn(t, "Density", d.W)
		}

		eval := points[gid]
		if sample.Weight() == 0 || eval == nil {
			nt := new(table.Builder).Add(d.X, []float64{}).Add(dname, []float64{}).Add(cname, []float64{})
			keepConsts(nt, t)
			return nt.Done()
		}

		kde := stats.KDE{
			Sample:    sample,
			Kernel:    d.Kernel,
			Bandwidth: d.Bandwidth,
		}
		if kde.Bandwidth == 0 || math.IsNaN(kde.Bandwidth) {
			kde.Bandwidth = stats.BandwidthScott(sample)
		}

		nt := new(table.Builder).Add(d.X, eval)
		nt.Add(dname, vec.Map(kde.PDF, eval))
		nt.Add(cname, vec.Map(kde.CDF, eval))
		keepConsts(nt, t)
		return nt.Done()
	})
}
