package segtree

import "fmt"

// CheckFunc validates structural tree invariants, using equal to compare
// values: the leaf count is a power of two covering Len(), the slot count
// matches the leaf count, and every inner slot holds the monoid sum of its
// children.
//
// This checker is intended to be used in tests.
func (t *Tree[V]) CheckFunc(equal func(a, b V) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if equal == nil {
		return fmt.Errorf("%w: equality is nil", ErrIllegalArguments)
	}
	if t.monoid == nil {
		return fmt.Errorf("%w: tree has no monoid", ErrInvalidConfig)
	}
	if t.nLeaves < 1 || t.nLeaves&(t.nLeaves-1) != 0 {
		return fmt.Errorf("%w: leaf count %d is not a power of two", ErrInvalidConfig, t.nLeaves)
	}
	if t.size < 0 || t.size > t.nLeaves || (t.size > 1 && t.nLeaves >= 2*t.size) {
		return fmt.Errorf("%w: leaf count %d does not fit size %d", ErrInvalidConfig, t.nLeaves, t.size)
	}
	if len(t.values) != 2*t.nLeaves-1 {
		return fmt.Errorf("%w: slot count mismatch (%d != %d)", ErrInvalidConfig,
			len(t.values), 2*t.nLeaves-1)
	}
	for node := t.nLeaves - 2; node >= 0; node-- {
		sum := t.monoid.Add(t.values[2*node+1], t.values[2*node+2])
		if !equal(t.values[node], sum) {
			return fmt.Errorf("%w: slot %d does not aggregate its children", ErrInvalidConfig, node)
		}
	}
	return nil
}

// Check is CheckFunc for comparable values.
func Check[V comparable](t *Tree[V]) error {
	return t.CheckFunc(func(a, b V) bool { return a == b })
}
