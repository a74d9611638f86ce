// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestValuesJSON(t *testing.T) {
	try := func(vs Values, want string) {
		t.Helper()
		b, err := json.Marshal(vs)
		if err != nil {
			t.Errorf("%v: unexpected error %s", vs, err)
			return
		}
		if string(b) != want {
			t.Errorf("%v: want %s; got %s", vs, want, b)
		}
	}

	try(Values{}, `[]`)
	try(Values{1, 2.5, -3}, `[1,2.5,-3]`)
	try(Values{1, math.NaN(), 2}, `[1,null,2]`)
	try(Values{math.Inf(1), math.Inf(-1)}, `[null,null]`)
	try(Values{1e21}, `[1e+21]`)
}

func TestLayoutIdempotent(t *testing.T) {
	edits := []Step{
		Title("t"),
		XAxis{Label: "x", Range: []float64{0, 1}, RangeSlider: true},
		YAxis{Label: "y", Type: "log"},
		DragMode(DragPan),
		HoverMode(HoverX),
		BarMode(BarStack),
		Legend(true),
	}

	s1 := NewScene(groupedXY(1, 2)).Add(edits...)
	s2 := NewScene(groupedXY(1, 2)).Add(edits...).Add(edits...)
	if !de(s1.Figure().Layout, s2.Figure().Layout) {
		t.Errorf("re-applying layout edits changed the layout:\n%+v\nvs\n%+v",
			s1.Figure().Layout, s2.Figure().Layout)
	}
}

func TestLayoutMerge(t *testing.T) {
	s := NewScene(groupedXY(1, 2))
	s.Add(XAxis{Label: "first"}, XAxis{Range: []float64{0, 5}}, XAxis{Label: "second"})

	ax := s.Figure().Layout.XAxis
	if ax.Title != "second" {
		t.Errorf("later edits should win: want title %q; got %q", "second", ax.Title)
	}
	if want := []float64{0, 5}; !de(want, ax.Range) {
		t.Errorf("unset fields should not clobber: want range %v; got %v", want, ax.Range)
	}
}

func TestLayerSnapshot(t *testing.T) {
	s := NewScene(groupedXY(3, 4))
	s.Add(LayerLines{})
	before := *s.traces[0]

	// Later pipeline steps must not alter the existing trace.
	s.Stat(keepFirst{})
	s.Add(LayerPoints{}, Title("t"), XAxis{Range: []float64{-10, 10}})
	if !de(before, *s.traces[0]) {
		t.Errorf("trace changed after later steps:\n%+v\nvs\n%+v", before, *s.traces[0])
	}
}

func TestAxisTicks(t *testing.T) {
	s := NewScene(groupedXY(1, 4))
	s.Add(LayerLines{}, XAxis{MaxTicks: 5})

	ax := s.Figure().Layout.XAxis
	if ax.TickVals == nil {
		t.Fatalf("want computed ticks; got none")
	}
	if len(ax.TickVals) > 5 {
		t.Errorf("want at most 5 ticks; got %d", len(ax.TickVals))
	}
	if len(ax.TickText) != len(ax.TickVals) {
		t.Errorf("want %d tick labels; got %d", len(ax.TickVals), len(ax.TickText))
	}
	// The data spans x 0 to 3; the ticks must too.
	for _, v := range ax.TickVals {
		if v < 0 || v > 3 {
			t.Errorf("tick %v outside the data extent [0, 3]", v)
		}
	}

	// A fixed range overrides the data extent.
	s.Add(XAxis{Range: []float64{0, 100}})
	ax = s.Figure().Layout.XAxis
	ok := false
	for _, v := range ax.TickVals {
		if v > 3 {
			ok = true
		}
	}
	if !ok {
		t.Errorf("ticks %v should cover the fixed range [0, 100]", ax.TickVals)
	}
}

func TestWriteHTML(t *testing.T) {
	s := NewScene(groupedXY(1, 2))
	s.Add(Title("my <figure>"), LayerLines{})

	var buf strings.Builder
	if err := s.Figure().WriteHTML(&buf); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	page := buf.String()
	if !strings.Contains(page, "Plotly.newPlot") {
		t.Errorf("page does not call the renderer")
	}
	if !strings.Contains(page, `"type":"scatter"`) {
		t.Errorf("page does not inline the figure data")
	}
	if strings.Contains(page, "<figure>") {
		t.Errorf("title not escaped: %s", page)
	}
}
