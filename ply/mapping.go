// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// A Mapping binds visual properties of a layer to columns of the
// working dataset. The zero Mapping binds nothing; empty fields
// inherit from the scene's default mapping and, for X and Y, default
// to the leading columns of the dataset. Literal values enter a
// mapping through Scene.Const, which turns a value into a column.
type Mapping struct {
	// X and Y name columns that give the horizontal and vertical
	// position of each mark. If these are empty, they default to
	// the first and second columns, respectively.
	X, Y string

	// Color names a column that gives the color of each mark. If
	// Color is "", marks get the renderer's default trace colors.
	// Otherwise, a column of strings (or other discrete values)
	// divides the layer into one trace per distinct value, and a
	// numeric column colors point marks through a continuous
	// palette.
	Color string

	// Text names a column that gives the hover text of each mark.
	// For text layers this is the displayed label. If Text is "",
	// the renderer's default hover text is used.
	Text string
}

// merge returns m with the non-empty fields of over overriding the
// corresponding fields of m.
func (m Mapping) merge(over Mapping) Mapping {
	if over.X != "" {
		m.X = over.X
	}
	if over.Y != "" {
		m.Y = over.Y
	}
	if over.Color != "" {
		m.Color = over.Color
	}
	if over.Text != "" {
		m.Text = over.Text
	}
	return m
}

// defaultCols fills empty mapping columns from the leading columns of
// g in order: the first name gets column 0, the second column 1. It
// panics with *MappingError if g has too few columns.
func defaultCols(g table.Grouping, cols ...*string) {
	dcols := g.Columns()
	props := [...]string{"x", "y"}
	for i, colp := range cols {
		if *colp == "" {
			if i >= len(dcols) {
				panic(&MappingError{Property: props[i]})
			}
			*colp = dcols[i]
		}
	}
}

// checkColumn panics with *MappingError if col is not a column of g.
func checkColumn(g table.Grouping, prop, col string) {
	for _, col2 := range g.Columns() {
		if col == col2 {
			return
		}
	}
	panic(&MappingError{Property: prop, Column: col})
}

// floatColumn returns column col of t converted to []float64. It
// panics with *MappingError if the column does not exist and with
// *generic.TypeError if it cannot convert to float64.
func floatColumn(t *table.Table, prop, col string) []float64 {
	c := t.Column(col)
	if c == nil {
		panic(&MappingError{Property: prop, Column: col})
	}
	var xs []float64
	slice.Convert(&xs, c)
	return xs
}

// axisColumn returns column col of t as either numeric values or
// category strings. String columns come back as categories.
// time.Time columns come back as categories in RFC 3339 form, which
// the renderer parses as dates. Everything else must convert to
// float64.
func axisColumn(t *table.Table, prop, col string) (vals []float64, cats []string) {
	c := t.Column(col)
	if c == nil {
		panic(&MappingError{Property: prop, Column: col})
	}
	switch c := c.(type) {
	case []string:
		return nil, c
	case []time.Time:
		cats = make([]string, len(c))
		for i, v := range c {
			cats[i] = v.Format(time.RFC3339)
		}
		return nil, cats
	}
	var xs []float64
	slice.Convert(&xs, c)
	return xs, nil
}

// textColumn returns column col of t rendered as strings.
func textColumn(t *table.Table, prop, col string) []string {
	c := t.Column(col)
	if c == nil {
		panic(&MappingError{Property: prop, Column: col})
	}
	if ss, ok := c.([]string); ok {
		return ss
	}
	rv := reflect.ValueOf(c)
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return out
}

// rowCount returns the total number of rows across the groups of g.
func rowCount(g table.Grouping) int {
	n := 0
	for _, gid := range g.Tables() {
		n += g.Table(gid).Len()
	}
	return n
}

// checkNonEmpty panics with *EmptyDataError if g has no rows.
func checkNonEmpty(g table.Grouping, layer string) {
	if rowCount(g) == 0 {
		panic(&EmptyDataError{Layer: layer})
	}
}

// groupLabel returns a legend name for the group gid.
func groupLabel(gid table.GroupID) string {
	return strings.TrimPrefix(gid.String(), "/")
}
