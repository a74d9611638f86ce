// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plyimage

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/aclements/go-ply/ply"
)

// colorway is the cycle of colors for traces that don't set one. It
// matches the interactive renderer's default colorway so static and
// interactive renderings of the same figure look alike.
var colorway = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

func defaultColor(i int) string {
	return colorway[i%len(colorway)]
}

// traceColor returns the stroke color of trace i.
func traceColor(tr *ply.Trace, i int) string {
	if tr.Line != nil && tr.Line.Color != "" {
		return tr.Line.Color
	}
	if tr.Marker != nil {
		if c, ok := tr.Marker.Color.(string); ok && c != "" {
			return c
		}
	}
	return defaultColor(i)
}

// fillColor returns the fill color of filled trace i.
func fillColor(tr *ply.Trace, i int) string {
	if tr.FillColor != "" {
		return tr.FillColor
	}
	return defaultColor(i)
}

// parseColor parses the CSS color forms ply emits: "#rrggbb" and
// "rgba(r,g,b,a)". Anything else comes back black.
func parseColor(s string) color.Color {
	if len(s) == 7 && s[0] == '#' {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{r, g, b, 0xff}
		}
	}
	if strings.HasPrefix(s, "rgba(") {
		var r, g, b int
		var a float64
		if _, err := fmt.Sscanf(s, "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err == nil {
			return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a*255 + 0.5)}
		}
	}
	return color.Black
}
