// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plystat

import (
	"math"
	"testing"

	"github.com/aclements/go-gg/table"
)

// linear returns a table sampling y = 2x + 1 at n points.
func linear(n int) *table.Table {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = 2*xs[i] + 1
	}
	return new(table.Builder).Add("x", xs).Add("y", ys).Done()
}

func checkLinearFit(t *testing.T, g table.Grouping, tol float64) {
	t.Helper()
	out := g.Table(table.RootGroupID)
	xs := out.MustColumn("x").([]float64)
	ys := out.MustColumn("y").([]float64)
	for i := range xs {
		if want := 2*xs[i] + 1; math.Abs(ys[i]-want) > tol {
			t.Errorf("fit at %g: want %g; got %g", xs[i], want, ys[i])
		}
	}
}

func TestLeastSquares(t *testing.T) {
	g := LeastSquares{X: "x", Y: "y", N: 25}.F(linear(20))
	if want, got := 25, rows(g); want != got {
		t.Fatalf("want %d sample points; got %d", want, got)
	}
	checkLinearFit(t, g, 1e-6)
}

func TestSmooth(t *testing.T) {
	// LOESS through exactly linear data reproduces the line at
	// interior points; the widened tails extrapolate and get a
	// looser tolerance.
	g := Smooth{X: "x", Y: "y", N: 25, Widen: 1}.F(linear(20))
	if want, got := 25, rows(g); want != got {
		t.Fatalf("want %d sample points; got %d", want, got)
	}
	checkLinearFit(t, g, 1e-3)
}

func TestFitUnknownColumn(t *testing.T) {
	shouldPanic(t, `LeastSquares: unknown column "zzz"`, func() {
		LeastSquares{X: "x", Y: "zzz"}.F(linear(5))
	})
	shouldPanic(t, `Smooth: unknown column "zzz"`, func() {
		Smooth{X: "zzz", Y: "y"}.F(linear(5))
	})
}
