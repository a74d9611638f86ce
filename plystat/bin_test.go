// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plystat

import (
	"fmt"
	"math/rand"
	"reflect"
	"regexp"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-ply/ply"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func shouldPanic(t *testing.T, re string, f func()) {
	t.Helper()
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("panic %q does not match %q", err, re)
		}
	}()
	f()
}

func rows(g table.Grouping) int {
	n := 0
	for _, gid := range g.Tables() {
		n += g.Table(gid).Len()
	}
	return n
}

// samples returns a table of n pseudo-random values in column "v".
func samples(n int) *table.Table {
	rng := rand.New(rand.NewSource(42))
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = rng.NormFloat64()
	}
	return new(table.Builder).Add("v", vs).Done()
}

func TestBin(t *testing.T) {
	g := Bin{X: "v"}.F(samples(50))
	if want, got := 10, rows(g); want != got {
		t.Fatalf("want %d bins; got %d rows", want, got)
	}

	tab := g.Table(table.RootGroupID)
	counts := tab.MustColumn("count").([]float64)
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != 50 {
		t.Errorf("bin counts should sum to 50; got %g", total)
	}

	centers := tab.MustColumn("v").([]float64)
	for i := 1; i < len(centers); i++ {
		if centers[i] <= centers[i-1] {
			t.Errorf("bin centers not increasing: %v", centers)
		}
	}
}

func TestBinWeighted(t *testing.T) {
	tab := new(table.Builder).
		Add("v", []float64{0, 1, 2, 3}).
		Add("w", []float64{1, 2, 3, 4}).
		Done()
	g := Bin{X: "v", W: "w", Bins: 2}.F(tab)

	counts := g.Table(table.RootGroupID).MustColumn("count").([]float64)
	if want := []float64{3, 7}; !de(want, counts) {
		t.Errorf("want weighted counts %v; got %v", want, counts)
	}
}

func TestBinSharedBounds(t *testing.T) {
	// Grouped data bins over the combined extent by default, so
	// every group gets the same bin centers.
	tab := new(table.Builder).
		Add("v", []float64{0, 1, 2, 3, 10, 11, 12, 13}).
		Add("g", []string{"a", "a", "a", "a", "b", "b", "b", "b"}).
		Done()
	g := Bin{X: "v", Bins: 4}.F(table.GroupBy(tab, "g"))

	gids := g.Tables()
	if len(gids) != 2 {
		t.Fatalf("want 2 groups; got %d", len(gids))
	}
	c0 := g.Table(gids[0]).MustColumn("v")
	c1 := g.Table(gids[1]).MustColumn("v")
	if !de(c0, c1) {
		t.Errorf("groups should share bin centers: %v vs %v", c0, c1)
	}
}

func TestBinUnknownColumn(t *testing.T) {
	shouldPanic(t, `Bin: unknown column "zzz"`, func() {
		Bin{X: "zzz"}.F(samples(10))
	})
}

// TestHistogramPipeline is the histogram-with-labels scenario: bin
// 100 rows into 10 bars, then label each bar with its count. The
// label layer can only see the bin counts with StatData set.
func TestHistogramPipeline(t *testing.T) {
	data := samples(100)

	s := ply.Config{StatData: true}.NewScene(data)
	s.Stat(Bin{X: "v"})
	if want, got := 10, rows(s.Data()); want != got {
		t.Fatalf("with StatData, downstream data should have %d rows; got %d", want, got)
	}
	if err := ply.Apply(s,
		ply.LayerBars{Mapping: ply.Mapping{X: "v", Y: "count"}},
		ply.LayerText{Mapping: ply.Mapping{X: "v", Y: "count", Text: "count"}},
	); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	for i, tr := range s.Figure().Data {
		if want, got := 10, tr.Rows(); want != got {
			t.Errorf("trace %d: want %d rows; got %d", i, want, got)
		}
	}

	// Without StatData, only the bar layer consumes the bin
	// table; downstream steps keep seeing the 100 raw rows.
	s = ply.NewScene(data)
	s.Stat(Bin{X: "v"})
	if want, got := 100, rows(s.Data()); want != got {
		t.Errorf("without StatData, downstream data should have %d rows; got %d", want, got)
	}
	s.Add(ply.LayerBars{Mapping: ply.Mapping{X: "v", Y: "count"}})
	if want, got := 10, s.Figure().Data[0].Rows(); want != got {
		t.Errorf("bar layer should consume the %d-row bin table; got %d rows", want, got)
	}
}
