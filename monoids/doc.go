/*
Package monoids provides some pre-manufactured monoids for segment trees.

All monoid types in this package implement interface segtree.Monoid for
their value type. Some of them are not commutative (Affine, First, Last),
which is fine for segment trees, as these always fold ranges from left to
right.

Clients using their own combining operations may use Verify to test them for
the monoid laws on a set of sample values.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package monoids

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
