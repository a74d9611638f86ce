// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply_test

import (
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-ply/ply"
)

// Example builds a figure with one line per operation and prints the
// renderer's view of it. The two groups merge into a single trace
// with a null separator row between them.
func Example() {
	tab := new(table.Builder).
		Add("op", []string{"read", "read", "write", "write"}).
		Add("ms", []float64{1, 2, 3, 4}).
		Add("day", []float64{0, 1, 0, 1}).
		Done()

	s := ply.NewScene(table.GroupBy(tab, "op"))
	s.Add(
		ply.LayerLines{Mapping: ply.Mapping{X: "day", Y: "ms"}},
		ply.Title("latency"),
	)
	s.Figure().WriteJSON(os.Stdout)
	// Output:
	// {"data":[{"type":"scatter","mode":"lines","x":[0,1,null,0,1],"y":[1,2,null,3,4]}],"layout":{"title":"latency"}}
}
