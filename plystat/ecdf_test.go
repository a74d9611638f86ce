// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plystat

import (
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestECDF(t *testing.T) {
	tab := new(table.Builder).Add("v", []float64{3, 1, 2, 2}).Done()
	g := ECDF{X: "v", Widen: 1}.F(tab)

	out := g.Table(table.RootGroupID)
	if want := []float64{1, 2, 3}; !de(want, out.MustColumn("v")) {
		t.Errorf("want steps at %v; got %v", want, out.MustColumn("v"))
	}
	if want := []float64{0.25, 0.75, 1}; !de(want, out.MustColumn("cumulative density")) {
		t.Errorf("want density %v; got %v", want, out.MustColumn("cumulative density"))
	}
	if want := []float64{1, 3, 4}; !de(want, out.MustColumn("cumulative count")) {
		t.Errorf("want count %v; got %v", want, out.MustColumn("cumulative count"))
	}
}

func TestECDFWiden(t *testing.T) {
	tab := new(table.Builder).Add("v", []float64{1, 2, 3}).Done()
	g := ECDF{X: "v"}.F(tab)

	out := g.Table(table.RootGroupID)
	xs := out.MustColumn("v").([]float64)
	ds := out.MustColumn("cumulative density").([]float64)
	if len(xs) != 5 {
		t.Fatalf("want 3 steps plus 2 widening points; got %v", xs)
	}
	if xs[0] >= 1 || xs[len(xs)-1] <= 3 {
		t.Errorf("widening points should lie outside the data: %v", xs)
	}
	if ds[0] != 0 || ds[len(ds)-1] != 1 {
		t.Errorf("density should start at 0 and end at 1: %v", ds)
	}
	for i := 1; i < len(ds); i++ {
		if ds[i] < ds[i-1] {
			t.Errorf("density not monotone: %v", ds)
		}
	}
}

func TestECDFWeighted(t *testing.T) {
	tab := new(table.Builder).
		Add("v", []float64{1, 2}).
		Add("w", []float64{1, 3}).
		Done()
	g := ECDF{X: "v", W: "w", Widen: 1}.F(tab)

	out := g.Table(table.RootGroupID)
	if want := []float64{0.25, 1}; !de(want, out.MustColumn("cumulative density")) {
		t.Errorf("want density %v; got %v", want, out.MustColumn("cumulative density"))
	}
}
