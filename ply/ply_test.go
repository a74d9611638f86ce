// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"testing"

	"github.com/aclements/go-gg/table"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func shouldPanic(t *testing.T, re string, f func()) {
	t.Helper()
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("panic %q does not match %q", err, re)
		}
	}()
	f()
}

// groupedXY returns a dataset with the given number of groups of
// rowsPer rows each, grouped by column "g".
func groupedXY(groups, rowsPer int) table.Grouping {
	n := groups * rowsPer
	xs := make([]float64, n)
	ys := make([]float64, n)
	gs := make([]string, n)
	for i := range xs {
		xs[i] = float64(i % rowsPer)
		ys[i] = float64(i)
		gs[i] = fmt.Sprintf("g%d", i/rowsPer)
	}
	tab := new(table.Builder).Add("x", xs).Add("y", ys).Add("g", gs).Done()
	return table.GroupBy(tab, "g")
}

// reflectSlice returns s[i:j] for a slice of any element type.
func reflectSlice(s interface{}, i, j int) interface{} {
	return reflect.ValueOf(s).Slice(i, j).Interface()
}

// equalData reports whether g1 and g2 hold the same groups, columns,
// and values.
func equalData(g1, g2 table.Grouping) bool {
	if !de(g1.Columns(), g2.Columns()) || !de(g1.Tables(), g2.Tables()) {
		return false
	}
	for _, gid := range g1.Tables() {
		for _, col := range g1.Columns() {
			if !de(g1.Table(gid).Column(col), g2.Table(gid).Column(col)) {
				return false
			}
		}
	}
	return true
}

// seps returns the indexes of the separator rows of vs.
func seps(vs Values) []int {
	var out []int
	for i, v := range vs {
		if math.IsNaN(v) {
			out = append(out, i)
		}
	}
	return out
}
