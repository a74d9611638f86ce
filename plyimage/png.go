// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plyimage

import (
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/aclements/go-ply/ply"
)

// Options configures PNG rendering.
type Options struct {
	// Width and Height are the image dimensions in pixels. Zero
	// values are treated as 800 and 500.
	Width, Height int

	// Supersample, if greater than 1, renders the figure at
	// Supersample times the pixel density and downscales to the
	// requested size, smoothing mark edges.
	Supersample int
}

// PNG writes a static rendering of fig to w as a PNG image. It covers
// the same trace types as SVG; interactive features of the figure are
// ignored.
func PNG(w io.Writer, fig *ply.Figure, o Options) error {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 500
	}

	p, err := buildPlot(fig)
	if err != nil {
		return err
	}

	if o.Supersample > 1 {
		return writeScaled(w, p, o)
	}
	wt, err := p.WriterTo(pixels(o.Width), pixels(o.Height), "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// pixels converts a pixel count to a vg length at the 96 DPI of the
// png canvas.
func pixels(px int) vg.Length {
	return vg.Length(px) / 96 * vg.Inch
}

// writeScaled renders p at o.Supersample times the pixel density of
// the requested size and downscales the result.
func writeScaled(w io.Writer, p *plot.Plot, o Options) error {
	c := vgimg.NewWith(
		vgimg.UseWH(pixels(o.Width), pixels(o.Height)),
		vgimg.UseDPI(96*o.Supersample))
	p.Draw(vgdraw.New(c))

	src := c.Image()
	dst := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return png.Encode(w, dst)
}

func buildPlot(fig *ply.Figure) (*plot.Plot, error) {
	p := plot.New()
	lay := fig.Layout
	p.Title.Text = lay.Title
	if ax := lay.XAxis; ax != nil {
		p.X.Label.Text = ax.Title
		if len(ax.Range) == 2 {
			p.X.Min, p.X.Max = ax.Range[0], ax.Range[1]
		}
	}
	if ax := lay.YAxis; ax != nil {
		p.Y.Label.Text = ax.Title
		if len(ax.Range) == 2 {
			p.Y.Min, p.Y.Max = ax.Range[0], ax.Range[1]
		}
	}

	for i, tr := range fig.Data {
		var err error
		switch {
		case tr.Type == "bar":
			err = addBars(p, tr, i)
		case tr.Mode == "markers":
			err = addScatter(p, tr, i)
		case tr.Mode == "text":
			err = addLabels(p, tr)
		default:
			err = addLines(p, tr, i)
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// traceFloats returns the coordinates of tr as floats. Category
// columns come back as their dense index, plus the category labels.
func traceFloats(tr *ply.Trace) (xs, ys []float64, xcats []string) {
	num := func(col interface{}) ([]float64, []string) {
		switch col := col.(type) {
		case ply.Values:
			return col, nil
		case []string:
			out := make([]float64, len(col))
			idx := map[string]int{}
			var cats []string
			for i, s := range col {
				j, ok := idx[s]
				if !ok {
					j = len(cats)
					idx[s] = j
					cats = append(cats, s)
				}
				out[i] = float64(j)
			}
			return out, cats
		}
		return nil, nil
	}
	xs, xcats = num(tr.X)
	ys, _ = num(tr.Y)
	return
}

// addLines adds tr as line plotters, one per separator-delimited run
// so separator rows render as gaps. Only the first run carries the
// legend entry.
func addLines(p *plot.Plot, tr *ply.Trace, ti int) error {
	xs, ys, _ := traceFloats(tr)
	c := parseColor(traceColor(tr, ti))

	var seg plotter.XYs
	inLegend := false
	flush := func() error {
		if len(seg) < 2 {
			seg = nil
			return nil
		}
		l, err := plotter.NewLine(seg)
		if err != nil {
			return err
		}
		l.Color = c
		l.Width = vg.Points(1.5)
		p.Add(l)
		if tr.Name != "" && !inLegend {
			p.Legend.Add(tr.Name, l)
			inLegend = true
		}
		seg = nil
		return nil
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		seg = append(seg, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return flush()
}

func addScatter(p *plot.Plot, tr *ply.Trace, ti int) error {
	xs, ys, _ := traceFloats(tr)
	var xys plotter.XYs
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			continue
		}
		xys = append(xys, plotter.XY{X: xs[i], Y: ys[i]})
	}
	if len(xys) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = parseColor(traceColor(tr, ti))
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(s)
	if tr.Name != "" {
		p.Legend.Add(tr.Name, s)
	}
	return nil
}

func addBars(p *plot.Plot, tr *ply.Trace, ti int) error {
	xs, ys, xcats := traceFloats(tr)
	vals := make(plotter.Values, 0, len(ys))
	var labels []string
	for i := range ys {
		if !isFinite(ys[i]) {
			continue
		}
		vals = append(vals, ys[i])
		if xcats != nil {
			labels = append(labels, xcats[int(xs[i])])
		} else if i < len(xs) && isFinite(xs[i]) {
			labels = append(labels, fmt.Sprintf("%.4g", xs[i]))
		} else {
			labels = append(labels, "")
		}
	}
	if len(vals) == 0 {
		return nil
	}
	bc, err := plotter.NewBarChart(vals, vg.Points(12))
	if err != nil {
		return err
	}
	bc.Color = parseColor(traceColor(tr, ti))
	bc.LineStyle.Width = 0
	p.Add(bc)
	p.NominalX(labels...)
	if tr.Name != "" {
		p.Legend.Add(tr.Name, bc)
	}
	return nil
}

func addLabels(p *plot.Plot, tr *ply.Trace) error {
	xs, ys, _ := traceFloats(tr)
	var xys plotter.XYs
	var labels []string
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) || i >= len(tr.Text) {
			continue
		}
		xys = append(xys, plotter.XY{X: xs[i], Y: ys[i]})
		labels = append(labels, tr.Text[i])
	}
	if len(xys) == 0 {
		return nil
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}
