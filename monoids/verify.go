package monoids

import (
	"errors"
	"fmt"
)

// ErrLawViolated is returned by Verify if a monoid violates the monoid laws.
var ErrLawViolated = errors.New("monoids: monoid law violated")

// Laws is the shape of monoids checked by Verify. It matches segtree.Monoid.
type Laws[T any] interface {
	Zero() T
	Add(left, right T) T
}

// Verify checks the identity law for every sample and the associativity law
// for every triple of samples. Run time is cubic in the number of samples,
// so clients should keep the sample small.
//
// Every violation is traced. The returned error wraps ErrLawViolated and
// describes the first violation found.
func Verify[T comparable](m Laws[T], samples []T) error {
	if m == nil {
		return fmt.Errorf("%w: monoid is nil", ErrLawViolated)
	}
	var first error
	count := 0
	violated := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		tracer().Debugf("monoid law: %s", msg)
		if first == nil {
			first = errors.New(msg)
		}
		count++
	}
	zero := m.Zero()
	if z := m.Add(zero, zero); z != zero {
		violated("zero + zero = %v, expected %v", z, zero)
	}
	for _, s := range samples {
		if got := m.Add(zero, s); got != s {
			violated("zero + %v = %v", s, got)
		}
		if got := m.Add(s, zero); got != s {
			violated("%v + zero = %v", s, got)
		}
	}
	for _, s := range samples {
		for _, t := range samples {
			st := m.Add(s, t)
			for _, u := range samples {
				if l, r := m.Add(st, u), m.Add(s, m.Add(t, u)); l != r {
					violated("(%v + %v) + %v = %v, but %v + (%v + %v) = %v", s, t, u, l, s, t, u, r)
				}
			}
		}
	}
	if count > 0 {
		return fmt.Errorf("%w: %d violation(s), first: %w", ErrLawViolated, count, first)
	}
	return nil
}
