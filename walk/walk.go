// Package walk implements the three traversal producers: breadth-first,
// depth-first pre-order, and ascent-to-root.
package walk

import (
	"github.com/katalvlaran/lvltree/core"
)

// frontierItem pairs a pending node with its depth from the start.
type frontierItem[T any] struct {
	node  T
	depth int
}

// BreadthIterator yields nodes in level order (classic FIFO BFS).
type BreadthIterator[T any] struct {
	def   core.TreeDef[T]
	opts  Options[T]
	queue []frontierItem[T]
}

// BreadthFirst builds a breadth-first iterator rooted at root.
// The starting frontier is [root]; each Next dequeues the head, yields it,
// and enqueues its children in ChildrenOf order, so nodes come out in
// non-decreasing depth with siblings in discovery order.
// Returns ErrNilDef or ErrOptionViolation for invalid input.
func BreadthFirst[T any](def core.TreeDef[T], root T, opts ...Option[T]) (*BreadthIterator[T], error) {
	if def == nil {
		return nil, ErrNilDef
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &BreadthIterator[T]{
		def:   def,
		opts:  o,
		queue: []frontierItem[T]{{node: root, depth: 0}},
	}, nil
}

// Next implements Iterator.
func (it *BreadthIterator[T]) Next() (T, bool) {
	if len(it.queue) == 0 {
		var zero T
		return zero, false
	}

	head := it.queue[0]
	it.queue = it.queue[1:]

	childDepth := head.depth + 1
	if it.opts.MaxDepth == 0 || childDepth <= it.opts.MaxDepth {
		for _, c := range core.Filtered(it.def.ChildrenOf(head.node), it.opts.FilterNode) {
			it.queue = append(it.queue, frontierItem[T]{node: c, depth: childDepth})
		}
	}

	return head.node, true
}

// DepthIterator yields nodes in pre-order (parent before children,
// left-to-right sibling order preserved).
type DepthIterator[T any] struct {
	def   core.TreeDef[T]
	opts  Options[T]
	stack []frontierItem[T]
}

// DepthFirst builds a depth-first pre-order iterator rooted at root.
// The starting frontier is [root] as a stack; each Next pops the top,
// yields it, and pushes its children in reverse emission order so the
// first child is processed next.
// Returns ErrNilDef or ErrOptionViolation for invalid input.
func DepthFirst[T any](def core.TreeDef[T], root T, opts ...Option[T]) (*DepthIterator[T], error) {
	if def == nil {
		return nil, ErrNilDef
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &DepthIterator[T]{
		def:   def,
		opts:  o,
		stack: []frontierItem[T]{{node: root, depth: 0}},
	}, nil
}

// Next implements Iterator.
func (it *DepthIterator[T]) Next() (T, bool) {
	n := len(it.stack)
	if n == 0 {
		var zero T
		return zero, false
	}

	top := it.stack[n-1]
	it.stack = it.stack[:n-1]

	childDepth := top.depth + 1
	if it.opts.MaxDepth == 0 || childDepth <= it.opts.MaxDepth {
		kids := core.Filtered(it.def.ChildrenOf(top.node), it.opts.FilterNode)
		// reverse push: first child ends up on top of the stack
		for i := len(kids) - 1; i >= 0; i-- {
			it.stack = append(it.stack, frontierItem[T]{node: kids[i], depth: childDepth})
		}
	}

	return top.node, true
}

// AscentIterator yields node, parent, grandparent, ... up to a root.
type AscentIterator[T any] struct {
	def  core.Parented[T]
	cur  T
	done bool
}

// ToParent builds the ascent iterator starting at node, inclusive.
// The sequence ends after the first node whose ParentOf reports no parent.
// Returns ErrNilDef if def is nil.
func ToParent[T any](def core.Parented[T], node T) (*AscentIterator[T], error) {
	if def == nil {
		return nil, ErrNilDef
	}

	return &AscentIterator[T]{def: def, cur: node}, nil
}

// Next implements Iterator.
func (it *AscentIterator[T]) Next() (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}

	n := it.cur
	if p, ok := it.def.ParentOf(n); ok {
		it.cur = p
	} else {
		it.done = true
	}

	return n, true
}
