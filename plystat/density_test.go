// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plystat

import (
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestDensity(t *testing.T) {
	g := Density{X: "v", N: 50}.F(samples(200))

	out := g.Table(table.RootGroupID)
	if want, got := 50, out.Len(); want != got {
		t.Fatalf("want %d sample points; got %d", want, got)
	}
	xs := out.MustColumn("v").([]float64)
	pdf := out.MustColumn("probability density").([]float64)
	cdf := out.MustColumn("cumulative density").([]float64)

	for i, p := range pdf {
		if p < 0 {
			t.Errorf("negative density %g at %g", p, xs[i])
		}
	}
	for i := 1; i < len(cdf); i++ {
		if cdf[i] < cdf[i-1] {
			t.Fatalf("cumulative density not monotone: %v", cdf)
		}
	}
	if cdf[0] > 0.2 || cdf[len(cdf)-1] < 0.8 {
		t.Errorf("cumulative density should span most of [0, 1]; got [%g, %g]",
			cdf[0], cdf[len(cdf)-1])
	}
}

func TestDensitySharedDomain(t *testing.T) {
	tab := new(table.Builder).
		Add("v", []float64{0, 1, 2, 3, 10, 11, 12, 13}).
		Add("g", []string{"a", "a", "a", "a", "b", "b", "b", "b"}).
		Done()
	g := Density{X: "v", N: 20}.F(table.GroupBy(tab, "g"))

	gids := g.Tables()
	x0 := g.Table(gids[0]).MustColumn("v")
	x1 := g.Table(gids[1]).MustColumn("v")
	if !de(x0, x1) {
		t.Errorf("groups should share sample points by default")
	}

	g = Density{X: "v", N: 20, SplitGroups: true}.F(table.GroupBy(tab, "g"))
	gids = g.Tables()
	x0 = g.Table(gids[0]).MustColumn("v")
	x1 = g.Table(gids[1]).MustColumn("v")
	if de(x0, x1) {
		t.Errorf("SplitGroups should give each group its own sample points")
	}
}

func TestDensityUnknownColumn(t *testing.T) {
	shouldPanic(t, `Density: unknown column "zzz"`, func() {
		Density{X: "zzz"}.F(samples(10))
	})
}
