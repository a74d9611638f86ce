// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/table"
)

// LayerLines is like LayerPaths, but connects data points in order by
// the "x" property.
type LayerLines LayerPaths

func (l LayerLines) Apply(s *Scene) {
	LayerPaths(l).apply(s, true, "", "lines")
}

// StepMode controls how LayerSteps connects subsequent points.
type StepMode int

const (
	// StepHV makes LayerSteps connect subsequent points with a
	// horizontal segment and then a vertical segment.
	StepHV StepMode = iota

	// StepVH makes LayerSteps connect subsequent points with a
	// vertical segment and then a horizontal segment.
	StepVH

	// StepHMid makes LayerSteps connect subsequent points A and B
	// with three segments: a horizontal segment from A to the
	// midpoint between A and B, followed by a vertical segment,
	// followed by a horizontal segment from the midpoint to B.
	StepHMid

	// StepVMid makes LayerSteps connect subsequent points A and B
	// with three segments: a vertical segment from A to the
	// midpoint between A and B, followed by a horizontal segment,
	// followed by a vertical segment from the midpoint to B.
	StepVMid
)

// stepShape maps a StepMode to the renderer's line shape name.
func stepShape(m StepMode) string {
	switch m {
	case StepVH:
		return "vh"
	case StepHMid:
		return "hvh"
	case StepVMid:
		return "vhv"
	}
	return "hv"
}

// LayerSteps is like LayerLines, but connects data points with a
// path consisting only of horizontal and vertical segments.
type LayerSteps struct {
	LayerPaths

	Step StepMode
}

func (l LayerSteps) Apply(s *Scene) {
	l.LayerPaths.apply(s, true, stepShape(l.Step), "steps")
}

// LayerPaths connects successive data points in each group with a
// path. By default the groups of the working dataset merge into a
// single trace with a separator row between consecutive groups, so
// the figure stays one renderer object no matter how many groups
// there are. A Color mapping divides the layer into one trace per
// distinct color value instead, and Split divides it into one trace
// per group.
type LayerPaths struct {
	Mapping

	// Name is the legend name of the merged trace. Traces emitted
	// per group or per color value are named after the group or
	// value instead.
	Name string

	// Split emits one trace per group, named after the group.
	// This gives each group its own legend entry and hover
	// target, at the cost of one renderer object per group.
	Split bool

	// HoverInfo restricts what the renderer shows on hover, such
	// as "text" or "x+y". If it is "", the renderer shows its
	// default hover text.
	HoverInfo string
}

func (l LayerPaths) Apply(s *Scene) {
	l.apply(s, false, "", "paths")
}

func (l LayerPaths) apply(s *Scene, sortByX bool, shape, kind string) {
	m := s.defaults.merge(l.Mapping)
	data := s.layerData()
	checkNonEmpty(data, kind)
	defaultCols(data, &m.X, &m.Y)
	if sortByX {
		checkColumn(data, "x", m.X)
		data = table.SortBy(data, m.X)
	}

	add := func(tr *Trace) {
		tr.HoverInfo = l.HoverInfo
		s.addPathTrace(tr)
	}

	style := func(color string) *LineStyle {
		if shape == "" && color == "" {
			return nil
		}
		return &LineStyle{Color: color, Shape: shape}
	}

	switch {
	case m.Color != "":
		checkColumn(data, "color", m.Color)
		data = table.GroupBy(data, m.Color)
		if l.Split {
			level := levelIndexer()
			for _, gid := range data.Tables() {
				t := data.Table(gid)
				v, ok := t.Const(m.Color)
				if !ok {
					continue
				}
				xs, ys, texts := s.mergePath([]*table.Table{t}, m)
				add(&Trace{
					Type: "scatter", Mode: "lines",
					Name: groupLabel(gid),
					X:    xs, Y: ys, Text: texts,
					Line: &LineStyle{Color: cssColor(levelColor(level(v))), Shape: shape},
				})
			}
			return
		}
		vals, tables := levelTables(data, m.Color)
		for i, v := range vals {
			xs, ys, texts := s.mergePath(tables[i], m)
			add(&Trace{
				Type: "scatter", Mode: "lines",
				Name: fmt.Sprint(v),
				X:    xs, Y: ys, Text: texts,
				Line: &LineStyle{Color: cssColor(levelColor(i)), Shape: shape},
			})
		}

	case l.Split:
		for _, gid := range data.Tables() {
			xs, ys, texts := s.mergePath([]*table.Table{data.Table(gid)}, m)
			add(&Trace{
				Type: "scatter", Mode: "lines",
				Name: groupLabel(gid),
				X:    xs, Y: ys, Text: texts,
				Line: style(""),
			})
		}

	default:
		xs, ys, texts := s.mergePath(groupTables(data), m)
		add(&Trace{
			Type: "scatter", Mode: "lines",
			Name: l.Name,
			X:    xs, Y: ys, Text: texts,
			Line: style(""),
		})
	}
}

// addPathTrace appends a line-drawing trace, warning if it cannot
// form a single segment.
func (s *Scene) addPathTrace(tr *Trace) {
	if tr.Rows() == 1 {
		Warning.Print("path through 1 point renders as empty; consider LayerPoints")
	}
	s.traces = append(s.traces, tr)
}

// mergePath concatenates the x, y, and text columns of tables,
// inserting one separator row between consecutive tables. Separator
// rows have NaN coordinates, which serialize as null and render as
// breaks in the path.
func (s *Scene) mergePath(tables []*table.Table, m Mapping) (xs, ys Values, texts []string) {
	withText := m.Text != ""
	for i, t := range tables {
		if i > 0 {
			xs = append(xs, math.NaN())
			ys = append(ys, math.NaN())
			if withText {
				texts = append(texts, "")
			}
		}
		xs = append(xs, floatColumn(t, "x", m.X)...)
		ys = append(ys, floatColumn(t, "y", m.Y)...)
		if withText {
			texts = append(texts, textColumn(t, "text", m.Text)...)
		}
	}
	s.xdom.observe(xs)
	s.ydom.observe(ys)
	return
}

// groupTables returns the tables of g in group order.
func groupTables(g table.Grouping) []*table.Table {
	var ts []*table.Table
	for _, gid := range g.Tables() {
		ts = append(ts, g.Table(gid))
	}
	return ts
}

// levelTables collects the tables of data by distinct value of
// column col, preserving group order within each value and the order
// in which values first appear. col must be constant within each
// group.
func levelTables(data table.Grouping, col string) (vals []interface{}, tables [][]*table.Table) {
	index := map[interface{}]int{}
	for _, gid := range data.Tables() {
		t := data.Table(gid)
		v, ok := t.Const(col)
		if !ok {
			continue
		}
		i, seen := index[v]
		if !seen {
			i = len(vals)
			index[v] = i
			vals = append(vals, v)
			tables = append(tables, nil)
		}
		tables[i] = append(tables[i], t)
	}
	return
}

// levelIndexer returns a function that assigns dense indexes to
// distinct values in order of first use.
func levelIndexer() func(v interface{}) int {
	index := map[interface{}]int{}
	return func(v interface{}) int {
		i, ok := index[v]
		if !ok {
			i = len(index)
			index[v] = i
		}
		return i
	}
}

// discreteColor reports whether color column col of g divides the
// layer into traces rather than coloring marks individually. Numeric
// columns color individually; everything else divides.
func discreteColor(g table.Grouping, col string) bool {
	gids := g.Tables()
	if len(gids) == 0 {
		return true
	}
	c := g.Table(gids[0]).Column(col)
	if c == nil {
		panic(&MappingError{Property: "color", Column: col})
	}
	switch reflect.TypeOf(c).Elem().Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return false
	}
	return true
}

// LayerPoints lays a point mark at each data point. Points from all
// groups merge into a single trace with one marker per row; point
// marks never need separator rows. A discrete Color mapping divides
// the layer into one trace per distinct value, a numeric Color
// mapping colors each marker through a continuous palette, and Split
// divides the layer into one trace per group.
type LayerPoints struct {
	Mapping

	// Name is the legend name of the merged trace. Traces emitted
	// per group or per color value are named after the group or
	// value instead.
	Name string

	// Split emits one trace per group, named after the group.
	Split bool

	// HoverInfo restricts what the renderer shows on hover, such
	// as "text" or "x+y".
	HoverInfo string
}

func (l LayerPoints) Apply(s *Scene) {
	applyRowMarks(s, l.Mapping, rowMarks{
		kind: "points", typ: "scatter", mode: "markers",
		name: l.Name, split: l.Split, hover: l.HoverInfo,
	})
}

// LayerBars lays a vertical bar at each data point. Bars follow the
// same trace-splitting rules as LayerPoints. How bar traces that
// share positions arrange themselves is controlled by BarMode.
type LayerBars struct {
	Mapping

	// Name is the legend name of the merged trace. Traces emitted
	// per group or per color value are named after the group or
	// value instead.
	Name string

	// Split emits one trace per group, named after the group.
	Split bool

	// HoverInfo restricts what the renderer shows on hover, such
	// as "text" or "x+y".
	HoverInfo string
}

func (l LayerBars) Apply(s *Scene) {
	applyRowMarks(s, l.Mapping, rowMarks{
		kind: "bars", typ: "bar",
		name: l.Name, split: l.Split, hover: l.HoverInfo,
	})
}

// LayerText draws the text mapping's value at each data point. It is
// the annotation layer: bind Text to a column of labels, typically
// produced by a transform, and it draws them at the mapped
// positions. Text traces get no legend entry.
type LayerText struct {
	Mapping

	// Name is the legend name of the merged trace.
	Name string

	// Split emits one trace per group, named after the group.
	Split bool

	// HoverInfo restricts what the renderer shows on hover, such
	// as "text" or "x+y".
	HoverInfo string
}

func (l LayerText) Apply(s *Scene) {
	m := s.defaults.merge(l.Mapping)
	if m.Text == "" {
		panic(&MappingError{Property: "text"})
	}
	applyRowMarks(s, m, rowMarks{
		kind: "text", typ: "scatter", mode: "text",
		name: l.Name, split: l.Split, hover: l.HoverInfo,
		noLegend: true,
	})
}

// rowMarks describes a layer that draws one independent mark per
// row.
type rowMarks struct {
	kind, typ, mode string
	name            string
	hover           string
	split           bool
	noLegend        bool
}

func applyRowMarks(s *Scene, m0 Mapping, rm rowMarks) {
	m := s.defaults.merge(m0)
	data := s.layerData()
	checkNonEmpty(data, rm.kind)
	defaultCols(data, &m.X, &m.Y)

	emit := func(tables []*table.Table, name string, marker *MarkerStyle) {
		x, y, texts := s.mergeRows(tables, m)
		tr := &Trace{
			Type: rm.typ, Mode: rm.mode, Name: name,
			X: x, Y: y, Text: texts, Marker: marker,
			HoverInfo: rm.hover,
		}
		if rm.noLegend {
			f := false
			tr.ShowLegend = &f
		}
		s.traces = append(s.traces, tr)
	}

	switch {
	case m.Color != "" && discreteColor(data, m.Color):
		data = table.GroupBy(data, m.Color)
		if rm.split {
			level := levelIndexer()
			for _, gid := range data.Tables() {
				t := data.Table(gid)
				v, ok := t.Const(m.Color)
				if !ok {
					continue
				}
				emit([]*table.Table{t}, groupLabel(gid),
					&MarkerStyle{Color: cssColor(levelColor(level(v)))})
			}
			return
		}
		vals, tables := levelTables(data, m.Color)
		for i, v := range vals {
			emit(tables[i], fmt.Sprint(v),
				&MarkerStyle{Color: cssColor(levelColor(i))})
		}

	case m.Color != "":
		var cvals []float64
		for _, t := range groupTables(data) {
			cvals = append(cvals, floatColumn(t, "color", m.Color)...)
		}
		emit(groupTables(data), rm.name, &MarkerStyle{Color: continuousColors(cvals)})

	case rm.split:
		for _, gid := range data.Tables() {
			emit([]*table.Table{data.Table(gid)}, groupLabel(gid), nil)
		}

	default:
		emit(groupTables(data), rm.name, nil)
	}
}

// mergeRows concatenates the x, y, and text columns of tables with
// no separator rows.
func (s *Scene) mergeRows(tables []*table.Table, m Mapping) (x, y interface{}, texts []string) {
	var xs, ys Values
	var xcats, ycats []string
	withText := m.Text != ""
	for _, t := range tables {
		vx, cx := axisColumn(t, "x", m.X)
		vy, cy := axisColumn(t, "y", m.Y)
		if cx != nil {
			xcats = append(xcats, cx...)
		} else {
			xs = append(xs, vx...)
		}
		if cy != nil {
			ycats = append(ycats, cy...)
		} else {
			ys = append(ys, vy...)
		}
		if withText {
			texts = append(texts, textColumn(t, "text", m.Text)...)
		}
	}
	if xcats != nil {
		x = xcats
	} else {
		s.xdom.observe(xs)
		x = xs
	}
	if ycats != nil {
		y = ycats
	} else {
		s.ydom.observe(ys)
		y = ys
	}
	return
}

// LayerRibbon shades the area between two columns with a filled
// band. It is useful in conjunction with aggregating transforms such
// as plystat.AggMin and plystat.AggMax for drawing the extents of
// data. Bands from all groups merge into a single trace by default,
// with a separator row between consecutive groups splitting the
// fill into one polygon per group.
type LayerRibbon struct {
	// X names the column that defines the input of each point. If
	// X is empty it defaults to the first column.
	X string

	// Upper and Lower name columns that define the vertical
	// bounds of the band. If either is "", that bound is constant
	// 0.
	Upper, Lower string

	// Color names a column that divides the band into one trace
	// per distinct value. It must be constant within each group.
	Color string

	// Name is the legend name of the merged trace.
	Name string

	// Split emits one trace per group, named after the group.
	Split bool
}

// ribbonAlpha is the fill opacity of color-divided ribbons.
const ribbonAlpha = 0.5

func (l LayerRibbon) Apply(s *Scene) {
	data := s.layerData()
	checkNonEmpty(data, "ribbon")
	defaultCols(data, &l.X)
	checkColumn(data, "x", l.X)
	data = table.SortBy(data, l.X)

	band := func(tables []*table.Table, name, fill string) {
		var xs, ys Values
		for i, t := range tables {
			if i > 0 {
				xs = append(xs, math.NaN())
				ys = append(ys, math.NaN())
			}
			px, py := ribbonPolygon(t, l.X, l.Upper, l.Lower)
			xs = append(xs, px...)
			ys = append(ys, py...)
		}
		s.xdom.observe(xs)
		s.ydom.observe(ys)
		s.traces = append(s.traces, &Trace{
			Type: "scatter", Mode: "none", Fill: "toself",
			FillColor: fill, Name: name, X: xs, Y: ys,
		})
	}

	switch {
	case l.Color != "":
		checkColumn(data, "color", l.Color)
		data = table.GroupBy(data, l.Color)
		vals, tables := levelTables(data, l.Color)
		for i, v := range vals {
			band(tables[i], fmt.Sprint(v), cssColorAlpha(levelColor(i), ribbonAlpha))
		}

	case l.Split:
		for _, gid := range data.Tables() {
			band([]*table.Table{data.Table(gid)}, groupLabel(gid), "")
		}

	default:
		band(groupTables(data), l.Name, "")
	}
}

// ribbonPolygon builds the closed outline of one band: the upper
// bound left to right, then the lower bound right to left.
func ribbonPolygon(t *table.Table, xcol, upper, lower string) (xs, ys Values) {
	gx := floatColumn(t, "x", xcol)
	up := boundColumn(t, "upper", upper, len(gx))
	lo := boundColumn(t, "lower", lower, len(gx))

	xs = append(xs, gx...)
	ys = append(ys, up...)
	for i := len(gx) - 1; i >= 0; i-- {
		xs = append(xs, gx[i])
		ys = append(ys, lo[i])
	}
	return
}

// boundColumn resolves a ribbon bound: the named column, or constant
// 0 if col is "".
func boundColumn(t *table.Table, prop, col string, n int) []float64 {
	if col == "" {
		return make([]float64, n)
	}
	return floatColumn(t, prop, col)
}

// LayerSegments draws an independent line segment for each row, from
// (x, y) to (xend, yend). All segments merge into a single trace
// with a separator row between consecutive segments.
type LayerSegments struct {
	Mapping

	// XEnd and YEnd name columns that give the far endpoint of
	// each segment. Both are required.
	XEnd, YEnd string

	// Name is the legend name of the merged trace.
	Name string

	// Split emits one trace per group, named after the group.
	Split bool
}

func (l LayerSegments) Apply(s *Scene) {
	m := s.defaults.merge(l.Mapping)
	if l.XEnd == "" {
		panic(&MappingError{Property: "xend"})
	}
	if l.YEnd == "" {
		panic(&MappingError{Property: "yend"})
	}
	data := s.layerData()
	checkNonEmpty(data, "segments")
	defaultCols(data, &m.X, &m.Y)

	emit := func(tables []*table.Table, name string, color string) {
		xs, ys, texts := segmentPath(tables, m, l.XEnd, l.YEnd)
		s.xdom.observe(xs)
		s.ydom.observe(ys)
		tr := &Trace{
			Type: "scatter", Mode: "lines", Name: name,
			X: xs, Y: ys, Text: texts,
		}
		if color != "" {
			tr.Line = &LineStyle{Color: color}
		}
		s.traces = append(s.traces, tr)
	}

	switch {
	case m.Color != "":
		checkColumn(data, "color", m.Color)
		data = table.GroupBy(data, m.Color)
		vals, tables := levelTables(data, m.Color)
		for i, v := range vals {
			emit(tables[i], fmt.Sprint(v), cssColor(levelColor(i)))
		}

	case l.Split:
		for _, gid := range data.Tables() {
			emit([]*table.Table{data.Table(gid)}, groupLabel(gid), "")
		}

	default:
		emit(groupTables(data), l.Name, "")
	}
}

// segmentPath builds one path visiting every segment of tables, with
// a separator row between consecutive segments.
func segmentPath(tables []*table.Table, m Mapping, xend, yend string) (xs, ys Values, texts []string) {
	withText := m.Text != ""
	first := true
	for _, t := range tables {
		x0 := floatColumn(t, "x", m.X)
		y0 := floatColumn(t, "y", m.Y)
		x1 := floatColumn(t, "xend", xend)
		y1 := floatColumn(t, "yend", yend)
		var labels []string
		if withText {
			labels = textColumn(t, "text", m.Text)
		}
		for i := range x0 {
			if !first {
				xs = append(xs, math.NaN())
				ys = append(ys, math.NaN())
				if withText {
					texts = append(texts, "")
				}
			}
			first = false
			xs = append(xs, x0[i], x1[i])
			ys = append(ys, y0[i], y1[i])
			if withText {
				texts = append(texts, labels[i], labels[i])
			}
		}
	}
	return
}
