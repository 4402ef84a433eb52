/*
Package segtree implements a generic associative range-query tree, often called
a segment tree.

Segment Trees

A segment tree organizes a fixed number of values in an implicit, complete
binary tree. Every inner node stores the aggregate of its two children, as
computed by a client-supplied associative operation with a neutral element
(a monoid). This lets clients replace single values and aggregate arbitrary
contiguous ranges of values, both in logarithmic time.

	tree := segtree.New(0, 4, func(x, y int) int { return x + y })
	tree.Update(0, 2)
	tree.Update(1, 4)
	tree.Update(2, 3)
	sum := tree.Query(0, 2)   // sum == 6

The combining operation has to be associative, but it need not be
commutative: ranges are always folded left to right. Package monoids offers
some pre-manufactured monoids (sum, min, max, gcd, affine maps, …) and a
helper to check the monoid laws for custom operations.

Trees have a fixed capacity, padded to the next power of two. Leaves which
have never been updated hold the identity element and do not contribute to
aggregates.

Index violations are programmer errors. Update, Query and friends panic with
an error wrapping ErrIndexOutOfBounds instead of clamping ranges.

Trees are not safe for concurrent use. Clients which share a tree between
goroutines have to guard the whole tree by a lock.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

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
package segtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
