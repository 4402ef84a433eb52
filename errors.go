package segtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig signals an invalid tree configuration or a tree in
	// an inconsistent state.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid leaf index or range.
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")
	// ErrIllegalArguments is flagged whenever function parameters are invalid.
	ErrIllegalArguments = errors.New("segtree: illegal arguments")
	// ErrInvalidPredicate signals a search predicate which rejects the
	// identity element.
	ErrInvalidPredicate = errors.New("segtree: predicate rejects identity")
)

// fail traces a contract violation and panics with it.
func fail(err error, format string, args ...any) {
	err = fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
	tracer().Errorf("%s", err.Error())
	panic(err)
}
