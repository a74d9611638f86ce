// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/aclements/go-gg/table"
)

// Warning is a logger for reporting conditions that don't prevent the
// production of a figure, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[ply] ", log.Lshortfile)

// A Scene carries the state of one plot pipeline: the working
// dataset, the traces built by layers so far, and the figure layout.
// There is exactly one layout per scene.
type Scene struct {
	env      *sceneEnv
	defaults Mapping
	statData bool

	traces []*Trace
	layout Layout

	xdom, ydom domain

	constNonce int
}

type sceneEnv struct {
	parent *sceneEnv
	data   table.Grouping

	// stat is the output of the most recent transform, not yet
	// consumed by a layer. It is nil if there is no pending
	// transform output.
	stat table.Grouping
}

// Config configures the construction of a Scene.
type Config struct {
	// Mapping is the scene-level default mapping. Layers that
	// leave a mapping field empty inherit it from here.
	Mapping Mapping

	// StatData, if true, makes the output of each transform the
	// working dataset for all downstream steps. By default only
	// the next layer consumes a transform's output and other
	// steps keep seeing the pre-transform data. Set StatData to
	// feed transform results to several steps, such as a bar
	// layer plus a text layer labeling the same bins.
	StatData bool
}

// NewScene returns a new Scene backed by data, configured by c.
func (c Config) NewScene(data table.Grouping) *Scene {
	return &Scene{
		env:      &sceneEnv{data: data},
		defaults: c.Mapping,
		statData: c.StatData,
		xdom:     domain{math.NaN(), math.NaN()},
		ydom:     domain{math.NaN(), math.NaN()},
	}
}

// NewScene returns a new Scene backed by data with a default
// configuration. It has no traces and a default layout.
func NewScene(data table.Grouping) *Scene {
	return Config{}.NewScene(data)
}

// SetData sets s's working dataset. The caller must not modify data
// in this table after this point.
func (s *Scene) SetData(data table.Grouping) *Scene {
	s.env.data = data
	return s
}

// Data returns s's working dataset.
func (s *Scene) Data() table.Grouping {
	return s.env.data
}

// layerData returns the dataset a layer should consume: the pending
// transform output if there is one, and the working dataset
// otherwise. The pending output is consumed by the call.
func (s *Scene) layerData() table.Grouping {
	if out := s.env.stat; out != nil {
		s.env.stat = nil
		return out
	}
	return s.env.data
}

// Const creates a new constant column bound to val in all groups and
// returns the generated column name. This is how literal values enter
// a mapping: bind the returned name to the visual property.
func (s *Scene) Const(val interface{}) string {
	tab := s.Data()

retry:
	col := fmt.Sprintf("[ply-const-%d]", s.constNonce)
	s.constNonce++
	for _, col2 := range tab.Columns() {
		if col == col2 {
			goto retry
		}
	}

	s.SetData(table.MapTables(tab, func(_ table.GroupID, t *table.Table) *table.Table {
		return table.NewBuilder(t).AddConst(col, val).Done()
	}))

	return col
}

// Save saves the current working dataset of s to a stack.
func (s *Scene) Save() *Scene {
	s.env = &sceneEnv{
		parent: s.env,
		data:   s.env.data,
		stat:   s.env.stat,
	}
	return s
}

// Restore restores the working dataset of s from the save stack.
func (s *Scene) Restore() *Scene {
	if s.env.parent == nil {
		panic("unbalanced Save/Restore")
	}
	s.env = s.env.parent
	return s
}

// A Step is an operation that can modify a Scene.
type Step interface {
	Apply(*Scene)
}

// Add applies each of steps to s in order. Steps panic with the error
// types of this package on misuse; see Apply for the recovering form.
func (s *Scene) Add(steps ...Step) *Scene {
	for _, step := range steps {
		step.Apply(s)
	}
	return s
}

// Apply applies each of steps to s in order. If a step fails with a
// *MappingError, *GroupKeyError, or *EmptyDataError, Apply stops and
// returns it. Panics of other types propagate.
func Apply(s *Scene, steps ...Step) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(pipelineError); ok {
			err = e.(error)
			return
		}
		panic(r)
	}()
	s.Add(steps...)
	return nil
}

// A Stat transforms a table.Grouping.
type Stat interface {
	F(table.Grouping) table.Grouping
}

// Stat applies each of stats in order to s's data. The result becomes
// the pending transform output, which the next layer consumes. If s
// was configured with StatData, the result also becomes the working
// dataset.
func (s *Scene) Stat(stats ...Stat) *Scene {
	data := s.env.stat
	if data == nil {
		data = s.env.data
	}
	for _, stat := range stats {
		data = stat.F(data)
	}
	s.env.stat = data
	if s.statData {
		s.env.data = data
	}
	return s
}

// Transform returns a Step that applies each of stats in order to the
// scene's data. It is the Step form of Scene.Stat.
func Transform(stats ...Stat) Step {
	return transformStep{stats}
}

type transformStep struct {
	stats []Stat
}

func (t transformStep) Apply(s *Scene) {
	s.Stat(t.stats...)
}

// Fork returns a Step that runs f on a branch of the scene. The
// branch starts with the caller's working dataset and pending
// transform output; traces and layout edits made by f accumulate into
// the scene, but changes to the working dataset are discarded when f
// returns.
func Fork(f func(*Scene)) Step {
	return forkStep{f}
}

type forkStep struct {
	f func(*Scene)
}

func (k forkStep) Apply(s *Scene) {
	defer s.Save().Restore()
	k.f(s)
}

// GroupBy sub-divides all groups such that all of the rows in each
// group have equal values for all of the named columns. GroupBy
// panics with *GroupKeyError if a named column does not exist.
func (s *Scene) GroupBy(cols ...string) *Scene {
	checkGroupCols(s.Data(), "GroupBy", cols)
	return s.SetData(table.GroupBy(s.Data(), cols...))
}

// SortBy sorts each group of s's data by the named columns. If more
// than one column is given, rows that are equal in the first column
// are sorted by the second column, and so on. SortBy panics with
// *GroupKeyError if a named column does not exist.
func (s *Scene) SortBy(cols ...string) *Scene {
	checkGroupCols(s.Data(), "SortBy", cols)
	return s.SetData(table.SortBy(s.Data(), cols...))
}

// Ungroup concatenates the groups of s's data into a single group.
func (s *Scene) Ungroup() *Scene {
	return s.SetData(table.Ungroup(s.Data()))
}

func checkGroupCols(g table.Grouping, op string, cols []string) {
	have := g.Columns()
	for _, col := range cols {
		found := false
		for _, col2 := range have {
			if col == col2 {
				found = true
				break
			}
		}
		if !found {
			panic(&GroupKeyError{Op: op, Column: col})
		}
	}
}

// domain tracks the extent of the finite values bound to an axis.
type domain struct {
	min, max float64
}

func (d *domain) observe(xs []float64) {
	min, max := d.min, d.max
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
	d.min, d.max = min, max
}

func (d *domain) ok() bool {
	return !math.IsNaN(d.min)
}
