/*
Package formatter outputs flat trees to consoles with fixed-width fonts.

Trees are printed in tree-art format, one node per line, with every level in
its own color. Node labels which do not fit into the line width are cut off.
Widths are measured in fixed-width positions according to UAX#11, so wide
characters (e.g., CJK) and ambiguous ones are handled correctly.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flattree'
func tracer() tracing.Trace {
	return tracing.Select("flattree")
}
