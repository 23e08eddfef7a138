// Package walk defines the iterator contract, tunable options, and error
// sentinels for tree traversal.
package walk

import (
	"errors"
	"fmt"
)

// Sentinel errors for traversal construction.
var (
	// ErrNilDef is returned when a nil tree definition is passed.
	ErrNilDef = errors.New("walk: tree definition is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
)

// Iterator is the pull contract every traversal satisfies: Next returns the
// following node and true, or the zero value and false once exhausted.
// After the first false, every subsequent call returns false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Option configures traversal behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation by the traversal factory.
type Option[T any] func(*Options[T])

// Options holds parameters customizing a traversal.
type Options[T any] struct {
	// MaxDepth, if > 0, stops descending past this depth (root is depth 0).
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNode prunes a child — and its whole subtree — when it returns
	// false. The start node itself is never filtered.
	FilterNode func(node T) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all children kept).
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		MaxDepth:   0,
		FilterNode: func(T) bool { return true },
		err:        nil,
	}
}

// WithMaxDepth stops descent below the given depth.
//
//	d > 0:  yield nodes at depth ≤ d only
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth[T any](d int) Option[T] {
	return func(o *Options[T]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNode prunes children (and their subtrees) when fn returns false.
func WithFilterNode[T any](fn func(node T) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.FilterNode = fn
		}
	}
}

// buildOptions folds opts over the defaults and surfaces any violation.
func buildOptions[T any](opts []Option[T]) (Options[T], error) {
	o := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.err
}

// Collect drains it into a slice. Handy for tests and for queries that need
// the whole sequence at once; do not call it on an unbounded traversal.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}

	return out
}
