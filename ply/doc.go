// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ply builds interactive plots as declarative pipelines.
//
// ply turns tabular data into figures for plotly.js, the JavaScript
// plotting library. Unlike typical plotting packages, ply does not
// render anything itself. A pipeline of steps transforms a data table
// into a Figure, which is a direct Go representation of the JSON
// object plotly.js consumes: a sequence of traces plus a layout. The
// figure can be serialized as JSON, embedded in a self-contained HTML
// page, or handed to a static rasterizer (see package plyimage).
//
// Data model
//
// The input to a pipeline is a table.Grouping from
// github.com/aclements/go-gg/table: an ordered table with named,
// typed columns whose rows may be divided into ordered groups. ply
// expects regularized data, where each column is a distinct variable
// and each row an observation. To plot several series on the same
// axes, the series live in the same columns and a grouping column
// tells them apart.
//
// Scenes and steps
//
// A Scene carries the state of one pipeline: a working dataset, the
// traces built so far, and a single layout. Steps transform the
// scene. There are four kinds:
//
// Transforms (Transform, or the Scene.Stat method) apply statistical
// transformations such as binning or density estimation to the
// working dataset. Any value with an
//
//	F(table.Grouping) table.Grouping
//
// method can serve as a transformation, so the stats in package
// plystat and in github.com/aclements/go-gg/ggstat both qualify.
//
// Layers (LayerLines, LayerPaths, LayerPoints, LayerBars,
// LayerRibbon, LayerText, LayerSegments, LayerSteps) map columns of the working
// dataset to the visual properties of a mark and append the resulting
// traces to the scene. A layer resolves its columns immediately:
// traces are snapshots, and later changes to the working dataset
// never alter traces that have already been built.
//
// Layout edits (Title, XLabel, YLabel, XAxis, YAxis, DragMode,
// HoverMode, BarMode, Legend) merge settings into the scene's layout. Each merge is
// field-wise and last-write-wins, so layout edits are idempotent and
// order matters only between edits of the same field.
//
// Fork runs a sub-pipeline on a branch of the scene. The branch sees
// the current working dataset and may transform it freely; traces it
// builds accumulate into the scene, but the caller's working dataset
// is untouched. This is how several differently-transformed views of
// the same data land in one figure.
//
// Grouped data and traces
//
// Layers consume grouped data. For marks that connect their points
// (lines, steps, ribbons, segments), emitting one trace per group
// would make large figures slow: the renderer pays per trace. Instead
// these layers default to a single trace containing every group's
// rows in group order, with one separator row between consecutive
// groups. A separator row has NaN coordinates, which serialize as
// JSON null, which the renderer treats as a break in the path. A
// layer's Split field opts out of this and emits one trace per group,
// named after the group, at the cost of a legend entry and a hit-test
// target per group. Point and bar marks draw one primitive per row
// and need no separators.
//
// Errors
//
// Pipeline steps validate eagerly and panic with one of the error
// types in this package: *MappingError when a visual property names a
// column the working dataset does not have, *GroupKeyError when a
// grouping operation names an absent column, and *EmptyDataError when
// a layer consumes a dataset with no rows. Apply runs a pipeline and
// converts these panics into returned errors; the chainable Scene
// methods let the panics propagate, which is convenient at top level
// and in tests.
package ply
