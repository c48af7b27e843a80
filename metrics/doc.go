/*
Package metrics provides some pre-manufactured metrics on flat trees.

All metrics are computed by scanning the slices of a tree once, front to back.
No auxiliary structures are built apart from the per-level counters.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flattree'
func tracer() tracing.Trace {
	return tracing.Select("flattree")
}
