package monoids

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of types supporting + and *.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Sum adds numbers. Zero is 0.
type Sum[N Number] struct{}

func (Sum[N]) Zero() N             { return 0 }
func (Sum[N]) Add(left, right N) N { return left + right }

// Product multiplies numbers. Zero is 1.
type Product[N Number] struct{}

func (Product[N]) Zero() N             { return 1 }
func (Product[N]) Add(left, right N) N { return left * right }

// ---------------------------------------------------------------------------

// Min selects the smaller of two values. Sentinel has to be greater than or
// equal to every value stored in a tree; it is returned for empty ranges.
type Min[N constraints.Ordered] struct {
	Sentinel N
}

func (m Min[N]) Zero() N { return m.Sentinel }

func (Min[N]) Add(left, right N) N {
	if right < left {
		return right
	}
	return left
}

// Max selects the greater of two values. Sentinel has to be less than or
// equal to every value stored in a tree; it is returned for empty ranges.
type Max[N constraints.Ordered] struct {
	Sentinel N
}

func (m Max[N]) Zero() N { return m.Sentinel }

func (Max[N]) Add(left, right N) N {
	if right > left {
		return right
	}
	return left
}

// MinOf returns a Min monoid with the largest value of N as its sentinel.
func MinOf[N constraints.Integer]() Min[N] {
	return Min[N]{Sentinel: maxValue[N]()}
}

// MaxOf returns a Max monoid with the smallest value of N as its sentinel.
func MaxOf[N constraints.Integer]() Max[N] {
	return Max[N]{Sentinel: minValue[N]()}
}

func maxValue[N constraints.Integer]() N {
	m := N(1)
	for m<<1|1 > m {
		m = m<<1 | 1
	}
	return m
}

func minValue[N constraints.Integer]() N {
	var x N
	x--
	if x > 0 { // unsigned
		return 0
	}
	return -maxValue[N]() - 1
}

// ---------------------------------------------------------------------------

// GCD computes the greatest common divisor, which is always non-negative.
// Zero is 0.
type GCD[N constraints.Integer] struct{}

func (GCD[N]) Zero() N { return 0 }

func (GCD[N]) Add(left, right N) N {
	a, b := abs(left), abs(right)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs[N constraints.Integer](n N) N {
	if n < 0 {
		return -n
	}
	return n
}

// Xor combines integers by bitwise exclusive or. Zero is 0.
type Xor[N constraints.Integer] struct{}

func (Xor[N]) Zero() N             { return 0 }
func (Xor[N]) Add(left, right N) N { return left ^ right }

// Or combines integers by bitwise or. Zero is 0.
type Or[N constraints.Integer] struct{}

func (Or[N]) Zero() N             { return 0 }
func (Or[N]) Add(left, right N) N { return left | right }

// And combines integers by bitwise and. Zero has all bits set.
type And[N constraints.Integer] struct{}

func (And[N]) Zero() N             { return ^N(0) }
func (And[N]) Add(left, right N) N { return left & right }

// ModSum adds non-negative integers modulo M. Values stored in a tree have
// to be in [0, M), and M must not exceed 1<<63.
type ModSum struct {
	M uint64
}

func (ModSum) Zero() uint64 { return 0 }

func (m ModSum) Add(left, right uint64) uint64 {
	return (left + right) % m.M
}

// ---------------------------------------------------------------------------

// Map is the affine map x ↦ A·x + B.
type Map[N Number] struct {
	A, B N
}

// Apply applies the map to x.
func (m Map[N]) Apply(x N) N {
	return m.A*x + m.B
}

// Affine composes affine maps. Folding maps f₁, f₂, …, fₙ results in the map
// which applies f₁ first and fₙ last. Zero is the identity map.
//
// Affine is not commutative.
type Affine[N Number] struct{}

func (Affine[N]) Zero() Map[N] {
	return Map[N]{A: 1, B: 0}
}

func (Affine[N]) Add(first, then Map[N]) Map[N] {
	return Map[N]{
		A: first.A * then.A,
		B: then.A*first.B + then.B,
	}
}

// ---------------------------------------------------------------------------

// Indexed is a value together with its position. Index < 0 denotes the
// absence of a value.
type Indexed[N constraints.Ordered] struct {
	Index int
	Value N
}

// At creates an indexed value.
func At[N constraints.Ordered](index int, value N) Indexed[N] {
	return Indexed[N]{Index: index, Value: value}
}

// ArgMin selects the smallest value and its position. Of equal values, the
// leftmost one wins.
type ArgMin[N constraints.Ordered] struct{}

func (ArgMin[N]) Zero() Indexed[N] { return Indexed[N]{Index: -1} }

func (ArgMin[N]) Add(left, right Indexed[N]) Indexed[N] {
	if left.Index < 0 || (right.Index >= 0 && right.Value < left.Value) {
		return right
	}
	return left
}

// ArgMax selects the greatest value and its position. Of equal values, the
// leftmost one wins.
type ArgMax[N constraints.Ordered] struct{}

func (ArgMax[N]) Zero() Indexed[N] { return Indexed[N]{Index: -1} }

func (ArgMax[N]) Add(left, right Indexed[N]) Indexed[N] {
	if left.Index < 0 || (right.Index >= 0 && right.Value > left.Value) {
		return right
	}
	return left
}

// ---------------------------------------------------------------------------

// Option is an optional value.
type Option[V any] struct {
	Value V
	Valid bool
}

// Some wraps a present value.
func Some[V any](v V) Option[V] {
	return Option[V]{Value: v, Valid: true}
}

// First selects the leftmost present value.
type First[V any] struct{}

func (First[V]) Zero() Option[V] { return Option[V]{} }

func (First[V]) Add(left, right Option[V]) Option[V] {
	if left.Valid {
		return left
	}
	return right
}

// Last selects the rightmost present value.
type Last[V any] struct{}

func (Last[V]) Zero() Option[V] { return Option[V]{} }

func (Last[V]) Add(left, right Option[V]) Option[V] {
	if right.Valid {
		return right
	}
	return left
}
