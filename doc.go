/*
Package flattree offers a flat, pre-order tree for hierarchies which are built
top-down, one node at a time.

Flat Trees

Instead of a graph of nodes linked by pointers, a flat tree stores its
nodes in three parallel slices: the payload, the depth (level) of every
node and the index of its parent. The tree

	. Users
	├── jhon_doe
	│   ├── file1.rs
	│   └── file2.rs
	└── jane_doe
	    └── cat.jpg

is held as

	values:  Users  jhon_doe  file1.rs  file2.rs  jane_doe  cat.jpg
	levels:  0      1         2         2         1         2
	parents: 0      0         1         1         0         4

This gives slice performance for the most common operations, appending nodes
and iterating over all of them, and it makes walking ancestors, descendants
and same-level nodes a matter of scanning the slices.

The price is flexibility: nodes have to be added in depth-first pre-order and
can never be moved, re-parented or removed. Whenever a node is pushed, every
node after its parent must belong to the parent's subtree. The descendants of
a node p are exactly the contiguous run of nodes following p with a level
greater than level(p). Clients which violate this will get bogus traversal
results, but no error.

Inspired by the talk “High-performance Tree Wrangling, the APL Way” by Aaron Hsu.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package flattree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flattree'
func tracer() tracing.Trace {
	return tracing.Select("flattree")
}

// TreeError is an error type for the flattree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrNotPreOrder is flagged by Check if the slices of a tree do not describe
// a tree built in pre-order.
const ErrNotPreOrder = TreeError("tree is not in pre-order")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
