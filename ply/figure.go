// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
)

// A Figure is the renderer's view of a scene: an ordered list of
// traces plus a layout. Its JSON form is exactly the figure object
// plotly.js consumes.
type Figure struct {
	Data   []*Trace `json:"data"`
	Layout *Layout  `json:"layout"`
}

// A Trace is one renderable series of a figure. Layers construct
// traces; once constructed, a trace is never modified.
type Trace struct {
	// Type is the renderer's trace type, such as "scatter" or
	// "bar".
	Type string `json:"type"`

	// Mode selects what scatter traces draw: "lines", "markers",
	// or "text".
	Mode string `json:"mode,omitempty"`

	// Name is the legend name of the trace.
	Name string `json:"name,omitempty"`

	// X and Y hold the coordinate columns: Values for numeric
	// data, or []string for categories and timestamps.
	X interface{} `json:"x,omitempty"`
	Y interface{} `json:"y,omitempty"`

	// Text holds per-row hover text, or the displayed label for
	// text traces.
	Text []string `json:"text,omitempty"`

	// HoverInfo restricts what the renderer shows on hover, such
	// as "text" or "x+y".
	HoverInfo string `json:"hoverinfo,omitempty"`

	Line   *LineStyle   `json:"line,omitempty"`
	Marker *MarkerStyle `json:"marker,omitempty"`

	// Fill selects area filling for scatter traces. Ribbon layers
	// use "toself".
	Fill      string `json:"fill,omitempty"`
	FillColor string `json:"fillcolor,omitempty"`

	ShowLegend *bool `json:"showlegend,omitempty"`
}

// Rows returns the number of rows in the trace's coordinate columns,
// including any separator rows.
func (t *Trace) Rows() int {
	for _, c := range []interface{}{t.X, t.Y} {
		switch c := c.(type) {
		case Values:
			return len(c)
		case []string:
			return len(c)
		}
	}
	return 0
}

// Values is a numeric data column of a trace. NaN and infinite
// values marshal as JSON null, which the renderer treats as a missing
// point and hence a break in line-drawing traces.
type Values []float64

func (vs Values) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 1+8*len(vs))
	buf = append(buf, '[')
	for i, v := range vs {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf = append(buf, "null"...)
		} else {
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
	}
	return append(buf, ']'), nil
}

// A LineStyle styles the stroke of line-drawing traces.
type LineStyle struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`

	// Shape selects the interpolation between successive points:
	// "linear", "spline", or the step shapes "hv", "vh", "hvh",
	// and "vhv".
	Shape string `json:"shape,omitempty"`
}

// A MarkerStyle styles point markers. Color may be a single CSS
// color string or a []string of per-point colors.
type MarkerStyle struct {
	Color  interface{} `json:"color,omitempty"`
	Size   float64     `json:"size,omitempty"`
	Symbol string      `json:"symbol,omitempty"`
}

// A Layout holds the figure-wide presentation settings. Layout edit
// steps merge into it field-wise, so later edits win field by field
// and re-applying an edit changes nothing.
type Layout struct {
	Title string `json:"title,omitempty"`

	// BarMode arranges bar traces that share positions: "group",
	// "stack", or "overlay".
	BarMode string `json:"barmode,omitempty"`

	// DragMode sets what dragging on the plot does, such as
	// "zoom", "pan", or "select".
	DragMode string `json:"dragmode,omitempty"`

	// HoverMode sets how the renderer picks hover targets, such
	// as "closest", "x", or "y".
	HoverMode string `json:"hovermode,omitempty"`

	XAxis *Axis `json:"xaxis,omitempty"`
	YAxis *Axis `json:"yaxis,omitempty"`

	ShowLegend *bool `json:"showlegend,omitempty"`
}

func (l *Layout) xAxis() *Axis {
	if l.XAxis == nil {
		l.XAxis = new(Axis)
	}
	return l.XAxis
}

func (l *Layout) yAxis() *Axis {
	if l.YAxis == nil {
		l.YAxis = new(Axis)
	}
	return l.YAxis
}

// An Axis holds the presentation settings of one axis.
type Axis struct {
	Title string `json:"title,omitempty"`

	// Range fixes the axis to [Range[0], Range[1]]. A nil Range
	// leaves the axis to fit the data.
	Range []float64 `json:"range,omitempty"`

	// Type overrides the renderer's axis type inference:
	// "linear", "log", "category", or "date".
	Type string `json:"type,omitempty"`

	TickVals Values   `json:"tickvals,omitempty"`
	TickText []string `json:"ticktext,omitempty"`

	RangeSlider *RangeSlider `json:"rangeslider,omitempty"`

	// maxTicks asks Figure to compute at most this many tick
	// positions from the axis domain. 0 leaves ticks to the
	// renderer.
	maxTicks int
}

// A RangeSlider is the miniature drag control the renderer shows
// below the X axis.
type RangeSlider struct {
	Visible bool `json:"visible"`
}

// Figure captures the scene as a Figure. Traces appear in layer
// order. Tick positions requested through XAxis.MaxTicks or
// YAxis.MaxTicks are computed here, from the axis range if fixed and
// from the extent of the layered data otherwise.
func (s *Scene) Figure() *Figure {
	lay := s.layout
	if lay.XAxis != nil {
		ax := *lay.XAxis
		finishAxis(&ax, &s.xdom)
		lay.XAxis = &ax
	}
	if lay.YAxis != nil {
		ax := *lay.YAxis
		finishAxis(&ax, &s.ydom)
		lay.YAxis = &ax
	}
	return &Figure{Data: s.traces, Layout: &lay}
}

// finishAxis computes tick positions for ax if they were requested
// and the axis has a usable numeric domain.
func finishAxis(ax *Axis, dom *domain) {
	if ax.maxTicks <= 0 || ax.TickVals != nil {
		return
	}
	min, max := dom.min, dom.max
	if len(ax.Range) == 2 {
		min, max = ax.Range[0], ax.Range[1]
	}
	if math.IsNaN(min) || math.IsNaN(max) || !(min < max) {
		return
	}

	ls := scale.Linear{Min: min, Max: max}
	major, _ := ls.Ticks(scale.TickOptions{Max: ax.maxTicks})
	labels := make([]string, len(major))
	for i, x := range major {
		labels[i] = fmt.Sprintf("%.6g", x)
	}
	ax.TickVals = major
	ax.TickText = labels
}

// WriteJSON writes the figure to w as JSON.
func (f *Figure) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(f)
}
