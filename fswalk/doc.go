/*
Package fswalk builds flat trees from directory hierarchies.

A directory walk visits entries in pre-order, which is exactly the order a
flat tree has to be built in. Two flavours are offered: Walk consumes the
flat sequence of entries produced by fs.WalkDir and appends them with
explicit levels, while WalkRecursive descends into directories and pushes
children through builder cursors. Both create equal trees.

Clients interested in the progress of a long walk may subscribe to a Walker
and will receive a Progress message for every node added to the tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package fswalk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flattree'
func tracer() tracing.Trace {
	return tracing.Select("flattree")
}
