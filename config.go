package segtree

import "fmt"

// Monoid defines how values are aggregated up the tree.
//
// For values s, t, u, Add has to be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero has to be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Add need not be commutative. The tree always calls it with the left range
// as the first argument.
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}

// funcMonoid adapts an identity element and a combining function to Monoid.
type funcMonoid[T any] struct {
	identity T
	combine  func(T, T) T
}

func (m funcMonoid[T]) Zero() T {
	return m.identity
}

func (m funcMonoid[T]) Add(left, right T) T {
	return m.combine(left, right)
}

// MonoidFunc creates a Monoid from an identity element and an associative
// combining function. combine must not be nil.
func MonoidFunc[T any](identity T, combine func(T, T) T) Monoid[T] {
	if combine == nil {
		fail(ErrIllegalArguments, "combining function is nil")
	}
	return funcMonoid[T]{identity: identity, combine: combine}
}

// Config configures a segment tree.
type Config[T any] struct {
	// Monoid aggregates values up the tree.
	Monoid Monoid[T]
	// Size is the number of logical leaves. It will be padded up to the next
	// power of two.
	Size int
}

func (cfg Config[T]) normalized() Config[T] {
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if cfg.Size < 0 {
		return fmt.Errorf("%w: size must be >= 0, is %d", ErrInvalidConfig, cfg.Size)
	}
	return nil
}

// leafCount returns the smallest power of two >= size, and 1 for size 0.
func leafCount(size int) int {
	n := 1
	for n < size {
		n *= 2
	}
	return n
}
