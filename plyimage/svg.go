// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plyimage

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-ply/ply"
	svg "github.com/ajstarks/svgo"
)

// Plot margins in pixels.
const (
	marginL = 56
	marginR = 16
	marginT = 40
	marginB = 44
)

// SVG writes a static rendering of fig to w as an SVG image of
// width by height pixels.
//
// The rendering covers the trace types ply emits: line, marker, and
// text scatter traces, filled traces, and bar traces. Interactive
// features of the figure (hover text, drag modes, range sliders) have
// no static form and are ignored.
func SVG(w io.Writer, fig *ply.Figure, width, height int) error {
	p := newProjection(fig, float64(width), float64(height))

	canvas := svg.New(w)
	canvas.Start(width, height, `font-size="12px" font-family="Helvetica,Arial,sans-serif"`)
	defer canvas.End()

	drawFrame(canvas, fig, p, width, height)

	for i, tr := range fig.Data {
		xs, ys := p.resolve(tr)
		switch {
		case tr.Type == "bar":
			drawBars(canvas, p, xs, ys, traceColor(tr, i))
		case tr.Fill != "":
			drawFilled(canvas, p, xs, ys, fillColor(tr, i))
		case tr.Mode == "markers":
			drawMarkers(canvas, p, tr, xs, ys, i)
		case tr.Mode == "text":
			drawTexts(canvas, p, tr, xs, ys)
		default:
			drawPath(canvas, p, xs, ys, traceColor(tr, i))
		}
	}
	return nil
}

// A projection maps figure data coordinates to pixel coordinates. It
// also carries the category index of each axis, shared across traces
// so the same category lands at the same position everywhere.
type projection struct {
	x, y axisProj
}

type axisProj struct {
	min, max float64 // data domain
	r0, r1   float64 // pixel range

	cats []string
	idx  map[string]int
}

func newProjection(fig *ply.Figure, width, height float64) *projection {
	p := &projection{
		x: axisProj{min: math.NaN(), max: math.NaN(), r0: marginL, r1: width - marginR, idx: map[string]int{}},
		y: axisProj{min: math.NaN(), max: math.NaN(), r0: height - marginB, r1: marginT, idx: map[string]int{}},
	}
	for _, tr := range fig.Data {
		xs, ys := p.resolve(tr)
		p.x.observe(xs)
		p.y.observe(ys)
		if tr.Type == "bar" {
			// Bars grow from the zero line.
			p.y.observe([]float64{0})
		}
	}
	if ax := fig.Layout.XAxis; ax != nil && len(ax.Range) == 2 {
		p.x.min, p.x.max = ax.Range[0], ax.Range[1]
	}
	if ax := fig.Layout.YAxis; ax != nil && len(ax.Range) == 2 {
		p.y.min, p.y.max = ax.Range[0], ax.Range[1]
	}
	p.x.fixDegenerate()
	p.y.fixDegenerate()
	return p
}

// resolve returns the coordinates of tr as floats, mapping category
// values to their dense index on the axis.
func (p *projection) resolve(tr *ply.Trace) (xs, ys []float64) {
	return p.x.values(tr.X), p.y.values(tr.Y)
}

func (a *axisProj) values(col interface{}) []float64 {
	switch col := col.(type) {
	case ply.Values:
		return col
	case []string:
		out := make([]float64, len(col))
		for i, s := range col {
			j, ok := a.idx[s]
			if !ok {
				j = len(a.cats)
				a.idx[s] = j
				a.cats = append(a.cats, s)
			}
			out[i] = float64(j)
		}
		return out
	}
	return nil
}

func (a *axisProj) observe(xs []float64) {
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < a.min || math.IsNaN(a.min) {
			a.min = v
		}
		if v > a.max || math.IsNaN(a.max) {
			a.max = v
		}
	}
}

func (a *axisProj) fixDegenerate() {
	if math.IsNaN(a.min) {
		a.min, a.max = 0, 1
	} else if a.min == a.max {
		a.min, a.max = a.min-1, a.max+1
	}
	if a.cats != nil {
		// Pad so the outermost categories sit inside the frame.
		a.min, a.max = a.min-0.5, a.max+0.5
	}
}

func (a *axisProj) px(v float64) float64 {
	return a.r0 + (v-a.min)/(a.max-a.min)*(a.r1-a.r0)
}

// ticks returns tick positions and labels for a: the ones the figure
// fixed, if any, and computed ones otherwise.
func (a *axisProj) ticks(ax *ply.Axis) (vals []float64, labels []string) {
	if ax != nil && ax.TickVals != nil {
		return ax.TickVals, ax.TickText
	}
	if a.cats != nil {
		vals = make([]float64, len(a.cats))
		for i := range vals {
			vals[i] = float64(i)
		}
		return vals, a.cats
	}
	ls := scale.Linear{Min: a.min, Max: a.max}
	vals, _ = ls.Ticks(scale.TickOptions{Max: 6})
	labels = make([]string, len(vals))
	for i, v := range vals {
		labels[i] = fmt.Sprintf("%.6g", v)
	}
	return
}

func drawFrame(canvas *svg.SVG, fig *ply.Figure, p *projection, width, height int) {
	lay := fig.Layout
	const frameStyle = "stroke:#444;fill:none"

	canvas.Line(marginL, height-marginB, width-marginR, height-marginB, frameStyle)
	canvas.Line(marginL, marginT, marginL, height-marginB, frameStyle)

	if lay.Title != "" {
		canvas.Text((marginL+width-marginR)/2, marginT/2, lay.Title,
			`text-anchor="middle" font-size="16px"`)
	}

	xvals, xlabels := p.x.ticks(lay.XAxis)
	for i, v := range xvals {
		px := int(p.x.px(v))
		canvas.Line(px, height-marginB, px, height-marginB+4, frameStyle)
		if i < len(xlabels) {
			canvas.Text(px, height-marginB+16, xlabels[i], `text-anchor="middle"`)
		}
	}
	yvals, ylabels := p.y.ticks(lay.YAxis)
	for i, v := range yvals {
		py := int(p.y.px(v))
		canvas.Line(marginL-4, py, marginL, py, frameStyle)
		if i < len(ylabels) {
			canvas.Text(marginL-6, py+4, ylabels[i], `text-anchor="end"`)
		}
	}

	if lay.XAxis != nil && lay.XAxis.Title != "" {
		canvas.Text((marginL+width-marginR)/2, height-8, lay.XAxis.Title, `text-anchor="middle"`)
	}
	if lay.YAxis != nil && lay.YAxis.Title != "" {
		py := (marginT + height - marginB) / 2
		canvas.Text(14, py, lay.YAxis.Title,
			fmt.Sprintf(`text-anchor="middle" transform="rotate(-90 14 %d)"`, py))
	}
}

// drawPath draws one path through (xs, ys), starting a new subpath at
// each non-finite coordinate so separator rows render as gaps.
func drawPath(canvas *svg.SVG, p *projection, xs, ys []float64, color string) {
	var path []byte
	inLine := false
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			inLine = false
			continue
		}
		if !inLine {
			path = append(path, 'M')
			inLine = true
		} else {
			path = append(path, 'L')
		}
		path = appendPair(path, p.x.px(xs[i]), p.y.px(ys[i]))
	}
	if len(path) == 0 {
		return
	}
	canvas.Path(string(path), "stroke:"+color+";fill:none;stroke-width:2")
}

// drawFilled draws the closed polygon through (xs, ys), one subpath
// per separator-delimited run.
func drawFilled(canvas *svg.SVG, p *projection, xs, ys []float64, color string) {
	var path []byte
	inLine := false
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			if inLine {
				path = append(path, 'Z')
			}
			inLine = false
			continue
		}
		if !inLine {
			path = append(path, 'M')
			inLine = true
		} else {
			path = append(path, 'L')
		}
		path = appendPair(path, p.x.px(xs[i]), p.y.px(ys[i]))
	}
	if len(path) == 0 {
		return
	}
	canvas.Path(string(path)+"Z", "fill:"+color+";stroke:none")
}

func drawMarkers(canvas *svg.SVG, p *projection, tr *ply.Trace, xs, ys []float64, ti int) {
	var perPoint []string
	color := ""
	if tr.Marker != nil {
		switch c := tr.Marker.Color.(type) {
		case string:
			color = c
		case []string:
			perPoint = c
		}
	}
	if color == "" {
		color = defaultColor(ti)
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			continue
		}
		c := color
		if perPoint != nil && i < len(perPoint) {
			c = perPoint[i]
		}
		canvas.Circle(int(p.x.px(xs[i])), int(p.y.px(ys[i])), 3, "fill:"+c)
	}
}

func drawBars(canvas *svg.SVG, p *projection, xs, ys []float64, color string) {
	// Bar width: a fraction of the smallest gap between bar
	// centers, so adjacent bars don't overlap.
	gap := math.Inf(1)
	for i := 1; i < len(xs); i++ {
		if d := math.Abs(xs[i] - xs[i-1]); d > 0 && d < gap {
			gap = d
		}
	}
	if math.IsInf(gap, 0) {
		gap = (p.x.max - p.x.min) / 2
	}
	halfW := math.Abs(p.x.px(gap)-p.x.px(0)) * 0.4

	y0 := p.y.px(0)
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			continue
		}
		px, py := p.x.px(xs[i]), p.y.px(ys[i])
		top, h := py, y0-py
		if h < 0 {
			top, h = y0, -h
		}
		canvas.Rect(int(px-halfW), int(top), int(2*halfW), int(h), "fill:"+color)
	}
}

func drawTexts(canvas *svg.SVG, p *projection, tr *ply.Trace, xs, ys []float64) {
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) || i >= len(tr.Text) {
			continue
		}
		canvas.Text(int(p.x.px(xs[i])), int(p.y.px(ys[i])), tr.Text[i], `text-anchor="middle"`)
	}
}

func appendPair(path []byte, x, y float64) []byte {
	path = append(path, ' ')
	path = strconv.AppendFloat(path, x, 'g', 6, 64)
	path = append(path, ' ')
	path = strconv.AppendFloat(path, y, 'g', 6, 64)
	return path
}

func isFinite(x float64) bool {
	return !(math.IsNaN(x) || math.IsInf(x, 0))
}
