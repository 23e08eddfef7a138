// Package core declares the TreeDef and Parented capability contracts
// and their closure adapters.
package core

// TreeDef describes a tree over an arbitrary node type T: a pure mapping
// from a node to its ordered children.
//
// The returned slice may be empty (or nil) for a leaf. Implementations must
// be deterministic — the slice order is semantically significant, as every
// traversal preserves it. Implementations must not retain or mutate the
// slice after returning it to a caller that treats it as read-only.
type TreeDef[T any] interface {
	// ChildrenOf returns the ordered children of node.
	ChildrenOf(node T) []T
}

// Parented refines TreeDef with the inverse capability: parent lookup.
//
// ParentOf returns (parent, true) for any non-root node, and
// (zero, false) when node is a root. The comma-ok form replaces a
// nullable parent so the root case is unambiguous.
type Parented[T any] interface {
	TreeDef[T]

	// ParentOf returns node's parent, or ok == false if node is a root.
	ParentOf(node T) (T, bool)
}

// ChildrenFunc adapts a plain function to the TreeDef contract.
type ChildrenFunc[T any] func(node T) []T

// ChildrenOf implements TreeDef.
func (f ChildrenFunc[T]) ChildrenOf(node T) []T { return f(node) }

// Def wraps a children function as a TreeDef.
// A nil children function yields a definition of all-leaf trees.
func Def[T any](children func(node T) []T) TreeDef[T] {
	if children == nil {
		children = func(T) []T { return nil }
	}

	return ChildrenFunc[T](children)
}

// parentedDef pairs a children function with a parent function.
type parentedDef[T any] struct {
	children func(node T) []T
	parent   func(node T) (T, bool)
}

// ChildrenOf implements TreeDef.
func (d *parentedDef[T]) ChildrenOf(node T) []T { return d.children(node) }

// ParentOf implements Parented.
func (d *parentedDef[T]) ParentOf(node T) (T, bool) { return d.parent(node) }

// NewParented wraps a children function and a parent function as a Parented
// definition. A nil children function yields all-leaf trees; a nil parent
// function makes every node a root.
func NewParented[T any](children func(node T) []T, parent func(node T) (T, bool)) Parented[T] {
	if children == nil {
		children = func(T) []T { return nil }
	}
	if parent == nil {
		parent = func(T) (zero T, ok bool) { return zero, false }
	}

	return &parentedDef[T]{children: children, parent: parent}
}
