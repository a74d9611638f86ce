// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
)

// colorway is the discrete palette for traces split by a color
// mapping. It matches the renderer's default trace colorway so split
// and unsplit figures look alike.
var colorway = []color.RGBA{
	{0x1f, 0x77, 0xb4, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
	{0xe3, 0x77, 0xc2, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff},
	{0xbc, 0xbd, 0x22, 0xff},
	{0x17, 0xbe, 0xcf, 0xff},
}

// levelColor returns the color for the i'th distinct value of a
// discrete color mapping.
func levelColor(i int) color.RGBA {
	return colorway[i%len(colorway)]
}

// continuousColors maps xs through a continuous palette, normalized
// over the extent of xs. Non-finite values and degenerate extents
// map to the middle of the palette.
func continuousColors(xs []float64) []string {
	min, max := math.NaN(), math.NaN()
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min || math.IsNaN(min) {
			min = v
		}
		if v > max || math.IsNaN(max) {
			max = v
		}
	}

	out := make([]string, len(xs))
	for i, v := range xs {
		x := 0.5
		if !math.IsNaN(v) && !math.IsInf(v, 0) && max > min {
			x = (v - min) / (max - min)
		}
		out[i] = cssColor(palette.Viridis.Map(x))
	}
	return out
}

// cssColor renders c as a CSS color string.
func cssColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "rgba(0,0,0,0)"
	}
	if a != 0xffff {
		// Undo alpha pre-multiplication.
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	r, g, b = r>>8, g>>8, b>>8
	if a != 0xffff {
		return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", r, g, b, float64(a)/0xffff)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// cssColorAlpha renders c as a CSS color string with opacity a,
// replacing any alpha c carries.
func cssColorAlpha(c color.RGBA, a float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, a)
}
