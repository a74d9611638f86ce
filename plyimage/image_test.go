// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plyimage

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-ply/ply"
)

// testFigure builds a figure with a grouped line trace (with
// separator rows), a marker trace, and a bar trace.
func testFigure() *ply.Figure {
	tab := new(table.Builder).
		Add("x", []float64{0, 1, 2, 0, 1, 2}).
		Add("y", []float64{0, 1, 4, 1, 2, 5}).
		Add("g", []string{"a", "a", "a", "b", "b", "b"}).
		Done()

	s := ply.NewScene(table.GroupBy(tab, "g"))
	s.Add(
		ply.Title("test"),
		ply.XLabel("x"),
		ply.YLabel("y"),
		ply.LayerLines{},
		ply.LayerPoints{},
	)

	bars := new(table.Builder).
		Add("name", []string{"p", "q"}).
		Add("n", []float64{3, 4}).
		Done()
	s.Add(ply.Fork(func(s *ply.Scene) {
		s.SetData(bars)
		s.Add(ply.LayerBars{})
	}))

	return s.Figure()
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, testFigure(), 640, 480); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	out := buf.String()

	for _, want := range []string{"<svg", "width=\"640\"", "<path", "<circle", "<rect", "test", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}

	// The line trace has a separator row between its two groups,
	// so its path must contain a second subpath.
	if got := strings.Count(out, "M"); got < 2 {
		t.Errorf("want at least 2 subpath starts for the grouped line; got %d", got)
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testFigure(), Options{Width: 320, Height: 240}); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %s", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("want 320x240; got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPNGSupersample(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testFigure(), Options{Width: 320, Height: 240, Supersample: 2}); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %s", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("supersampled image should downscale to 320x240; got %dx%d",
			cfg.Width, cfg.Height)
	}
}

func TestParseColor(t *testing.T) {
	try := func(s string, want color.Color) {
		t.Helper()
		if got := parseColor(s); got != want {
			t.Errorf("%q: want %v; got %v", s, want, got)
		}
	}

	try("#1f77b4", color.RGBA{0x1f, 0x77, 0xb4, 0xff})
	try("rgba(255,127,14,0.5)", color.NRGBA{255, 127, 14, 128})
	try("bogus", color.Black)
}
