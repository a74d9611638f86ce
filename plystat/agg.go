// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plystat

import (
	"reflect"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// Agg constructs an aggregation transform. Within each group, it
// collapses the rows that share a combination of the named key
// columns to a single row, computing the other columns of that row
// with the given aggregators. The combinations keep the order in
// which they first appear in the data.
//
// For example,
//
//	Agg("bench")(AggMean("ns/op"), AggMax("ns/op"))
//
// produces one row per distinct "bench" value, with columns "bench",
// "mean ns/op", and "max ns/op".
//
// The result keeps the key columns and constant columns from the
// input; all other input columns are replaced by the aggregators'
// output columns.
func Agg(keys ...string) func(aggs ...Aggregator) Aggregate {
	return func(aggs ...Aggregator) Aggregate {
		return Aggregate{keys, aggs}
	}
}

// Aggregate is the transform constructed by Agg.
type Aggregate struct {
	keys []string
	aggs []Aggregator
}

// An Aggregator computes one or more summary columns over the groups
// of input and adds them to output, with one row per group of input.
type Aggregator func(input table.Grouping, output *table.Builder)

func (a Aggregate) F(g table.Grouping) table.Grouping {
	checkColumns(g, "Agg", a.keys...)

	return table.MapTables(g, func(gid table.GroupID, t *table.Table) *table.Table {
		sub := table.GroupBy(t, a.keys...)
		nt := new(table.Builder)

		// Each subgroup is constant in the key columns; collect
		// those constants into the key columns of the output,
		// one row per subgroup.
		for _, key := range a.keys {
			vs := reflect.MakeSlice(reflect.TypeOf(t.Column(key)), 0, len(sub.Tables()))
			for _, sgid := range sub.Tables() {
				kv, _ := sub.Table(sgid).Const(key)
				vs = reflect.Append(vs, reflect.ValueOf(kv))
			}
			nt.Add(key, vs.Interface())
		}

		for _, agg := range a.aggs {
			agg(sub, nt)
		}
		keepConsts(nt, t)
		return nt.Done()
	})
}

// aggFn returns an Aggregator that computes f over each of cols,
// naming the output columns "<label> <col>".
func aggFn(f func([]float64) float64, label string, cols []string) Aggregator {
	return func(input table.Grouping, output *table.Builder) {
		for _, col := range cols {
			out := make([]float64, 0, len(input.Tables()))
			for _, gid := range input.Tables() {
				xs := numColumn(input.Table(gid), "Agg", col)
				out = append(out, f(xs))
			}
			output.Add(label+" "+col, out)
		}
	}
}

// AggCount returns an aggregator that computes the number of rows
// aggregated into each output row, in column "count".
func AggCount() Aggregator {
	return func(input table.Grouping, output *table.Builder) {
		out := make([]float64, 0, len(input.Tables()))
		for _, gid := range input.Tables() {
			out = append(out, float64(input.Table(gid).Len()))
		}
		output.Add("count", out)
	}
}

// AggMean returns an aggregator that computes the mean of each of
// cols, in columns "mean <col>".
func AggMean(cols ...string) Aggregator {
	return aggFn(stats.Mean, "mean", cols)
}

// AggGeoMean returns an aggregator that computes the geometric mean
// of each of cols, in columns "geomean <col>".
func AggGeoMean(cols ...string) Aggregator {
	return aggFn(stats.GeoMean, "geomean", cols)
}

// AggMin returns an aggregator that computes the minimum of each of
// cols, in columns "min <col>".
func AggMin(cols ...string) Aggregator {
	return aggFn(func(xs []float64) float64 {
		min, _ := stats.Bounds(xs)
		return min
	}, "min", cols)
}

// AggMax returns an aggregator that computes the maximum of each of
// cols, in columns "max <col>".
func AggMax(cols ...string) Aggregator {
	return aggFn(func(xs []float64) float64 {
		_, max := stats.Bounds(xs)
		return max
	}, "max", cols)
}

// AggSum returns an aggregator that computes the sum of each of cols,
// in columns "sum <col>".
func AggSum(cols ...string) Aggregator {
	return aggFn(vec.Sum, "sum", cols)
}
