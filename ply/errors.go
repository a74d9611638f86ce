// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import "fmt"

// pipelineError is implemented by the error types that pipeline steps
// panic with. Apply recovers exactly these.
type pipelineError interface {
	pipelineError()
}

// A MappingError reports a visual property bound to a column that
// does not exist in the working dataset.
type MappingError struct {
	// Property is the visual property being bound, such as "x" or
	// "color".
	Property string

	// Column is the column name that was not found. It is "" if
	// the property was left to default and the dataset had too
	// few columns to default from.
	Column string
}

func (e *MappingError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("mapping %s: no column to default to", e.Property)
	}
	return fmt.Sprintf("mapping %s: unknown column %q", e.Property, e.Column)
}

func (e *MappingError) pipelineError() {}

// A GroupKeyError reports a grouping operation that names a column
// that does not exist in the working dataset.
type GroupKeyError struct {
	// Op is the operation that required the column, such as
	// "GroupBy" or "Agg".
	Op string

	// Column is the column name that was not found.
	Column string
}

func (e *GroupKeyError) Error() string {
	return fmt.Sprintf("%s: unknown column %q", e.Op, e.Column)
}

func (e *GroupKeyError) pipelineError() {}

// An EmptyDataError reports a layer applied to a dataset with no
// rows.
type EmptyDataError struct {
	// Layer is the kind of layer that found the dataset empty,
	// such as "lines".
	Layer string
}

func (e *EmptyDataError) Error() string {
	return fmt.Sprintf("layer %s: dataset has no rows", e.Layer)
}

func (e *EmptyDataError) pipelineError() {}
