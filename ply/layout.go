// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

// Title is a Step that sets the figure title.
type Title string

func (t Title) Apply(s *Scene) {
	s.layout.Title = string(t)
}

// XLabel is a Step that sets the X axis title.
type XLabel string

func (l XLabel) Apply(s *Scene) {
	s.layout.xAxis().Title = string(l)
}

// YLabel is a Step that sets the Y axis title.
type YLabel string

func (l YLabel) Apply(s *Scene) {
	s.layout.yAxis().Title = string(l)
}

// DragMode is a Step that sets what dragging on the figure does.
type DragMode string

const (
	DragZoom   DragMode = "zoom"
	DragPan    DragMode = "pan"
	DragSelect DragMode = "select"
)

func (m DragMode) Apply(s *Scene) {
	s.layout.DragMode = string(m)
}

// HoverMode is a Step that sets how the renderer picks hover targets.
type HoverMode string

const (
	// HoverClosest shows the point nearest the cursor.
	HoverClosest HoverMode = "closest"

	// HoverX shows one point per trace, compared by X position.
	// This is the mode for reading several series at a shared
	// position.
	HoverX HoverMode = "x"

	// HoverY shows one point per trace, compared by Y position.
	HoverY HoverMode = "y"
)

func (m HoverMode) Apply(s *Scene) {
	s.layout.HoverMode = string(m)
}

// BarMode is a Step that sets how bar traces that share positions
// arrange themselves.
type BarMode string

const (
	BarGroup   BarMode = "group"
	BarStack   BarMode = "stack"
	BarOverlay BarMode = "overlay"
)

func (m BarMode) Apply(s *Scene) {
	s.layout.BarMode = string(m)
}

// Legend is a Step that shows or hides the legend. Without it the
// renderer shows a legend exactly when the figure has more than one
// legend-worthy trace.
type Legend bool

func (l Legend) Apply(s *Scene) {
	v := bool(l)
	s.layout.ShowLegend = &v
}

// XAxis is a Step that merges settings into the X axis. Zero fields
// leave the corresponding settings unchanged, so edits compose
// field-wise, later edits win, and re-applying an edit changes
// nothing.
type XAxis struct {
	// Label is the axis title.
	Label string

	// Range fixes the axis to [Range[0], Range[1]]. It must have
	// exactly two elements. A nil Range leaves the axis to fit
	// the data.
	Range []float64

	// Type overrides the renderer's axis type inference: "linear",
	// "log", "category", or "date".
	Type string

	// MaxTicks, if positive, asks for at most this many computed
	// tick positions instead of the renderer's own ticks. The
	// positions are computed when the scene is captured as a
	// Figure, from Range if fixed and from the extent of the
	// layered data otherwise.
	MaxTicks int

	// RangeSlider shows a miniature drag control below the axis.
	RangeSlider bool
}

func (a XAxis) Apply(s *Scene) {
	ax := s.layout.xAxis()
	mergeAxis(ax, a.Label, a.Range, a.Type, a.MaxTicks)
	if a.RangeSlider {
		ax.RangeSlider = &RangeSlider{Visible: true}
	}
}

// YAxis is a Step that merges settings into the Y axis. It follows
// the same field-wise merge rule as XAxis.
type YAxis struct {
	// Label is the axis title.
	Label string

	// Range fixes the axis to [Range[0], Range[1]]. It must have
	// exactly two elements. A nil Range leaves the axis to fit
	// the data.
	Range []float64

	// Type overrides the renderer's axis type inference: "linear",
	// "log", "category", or "date".
	Type string

	// MaxTicks, if positive, asks for at most this many computed
	// tick positions instead of the renderer's own ticks.
	MaxTicks int
}

func (a YAxis) Apply(s *Scene) {
	mergeAxis(s.layout.yAxis(), a.Label, a.Range, a.Type, a.MaxTicks)
}

func mergeAxis(ax *Axis, label string, rng []float64, typ string, maxTicks int) {
	if label != "" {
		ax.Title = label
	}
	if rng != nil {
		if len(rng) != 2 {
			panic("axis Range must have exactly two elements")
		}
		ax.Range = []float64{rng[0], rng[1]}
	}
	if typ != "" {
		ax.Type = typ
	}
	if maxTicks > 0 {
		ax.maxTicks = maxTicks
	}
}
