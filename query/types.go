// Package query defines tunable rendering options and error sentinels
// for the tree query layer.
package query

import (
	"errors"
	"fmt"
)

// Default rendering parameters.
const (
	// DefaultDelimiter joins path segments in Path.
	DefaultDelimiter = "/"

	// DefaultIndent is the per-level indent unit in Sprint.
	DefaultIndent = " "
)

// Sentinel errors for query execution.
var (
	// ErrNilDef is returned when a nil tree definition is passed.
	ErrNilDef = errors.New("query: tree definition is nil")

	// ErrAncestorNotFound is returned by ToParent when the ascent reaches a
	// root without meeting the requested ancestor. This signals a caller
	// contract violation, not a recoverable state.
	ErrAncestorNotFound = errors.New("query: ancestor not found on the path to root")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("query: invalid option supplied")
)

// Option configures rendering queries via functional arguments.
// If an Option is invalid (e.g. an empty delimiter), it is recorded
// internally and surfaced as ErrOptionViolation when the query runs.
type Option[T any] func(*Options[T])

// Options holds rendering parameters for Path and Sprint.
type Options[T any] struct {
	// Label converts a node to its string form.
	Label func(node T) string

	// Delimiter separates path segments in Path output.
	Delimiter string

	// Indent is written once per depth level in Sprint output.
	Indent string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Label: fmt.Sprint (the node's natural string form)
//   - Delimiter: "/"
//   - Indent: a single space.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Label:     func(node T) string { return fmt.Sprint(node) },
		Delimiter: DefaultDelimiter,
		Indent:    DefaultIndent,
		err:       nil,
	}
}

// WithLabel sets the node-to-string function used by Path and Sprint.
func WithLabel[T any](fn func(node T) string) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.Label = fn
		}
	}
}

// WithDelimiter sets the Path segment separator.
// An empty delimiter would glue segments together ambiguously → ErrOptionViolation.
func WithDelimiter[T any](d string) Option[T] {
	return func(o *Options[T]) {
		if d == "" {
			o.err = fmt.Errorf("%w: delimiter must not be empty", ErrOptionViolation)
			return
		}
		o.Delimiter = d
	}
}

// WithIndent sets the Sprint indent unit.
// An empty unit would collapse all depth levels → ErrOptionViolation.
func WithIndent[T any](unit string) Option[T] {
	return func(o *Options[T]) {
		if unit == "" {
			o.err = fmt.Errorf("%w: indent unit must not be empty", ErrOptionViolation)
			return
		}
		o.Indent = unit
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
