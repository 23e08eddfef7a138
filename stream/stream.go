// Package stream adapts walk iterators into restartable iter.Seq sequences.
package stream

import (
	"iter"

	"github.com/katalvlaran/lvltree/core"
	"github.com/katalvlaran/lvltree/walk"
)

// BreadthFirst returns the level-order traversal of def from root as a
// restartable sequence. See walk.BreadthFirst for ordering and options.
func BreadthFirst[T any](def core.TreeDef[T], root T, opts ...walk.Option[T]) (iter.Seq[T], error) {
	// validate eagerly so the sequence itself cannot fail
	if _, err := walk.BreadthFirst(def, root, opts...); err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		it, _ := walk.BreadthFirst(def, root, opts...)
		drain(it, yield)
	}, nil
}

// DepthFirst returns the pre-order traversal of def from root as a
// restartable sequence. See walk.DepthFirst for ordering and options.
func DepthFirst[T any](def core.TreeDef[T], root T, opts ...walk.Option[T]) (iter.Seq[T], error) {
	if _, err := walk.DepthFirst(def, root, opts...); err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		it, _ := walk.DepthFirst(def, root, opts...)
		drain(it, yield)
	}, nil
}

// ToParent returns the ascent from node (inclusive) to its root as a
// restartable sequence. See walk.ToParent.
func ToParent[T any](def core.Parented[T], node T) (iter.Seq[T], error) {
	if _, err := walk.ToParent(def, node); err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		it, _ := walk.ToParent(def, node)
		drain(it, yield)
	}, nil
}

// drain pumps it into yield until either side stops.
func drain[T any](it walk.Iterator[T], yield func(T) bool) {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if !yield(v) {
			return
		}
	}
}
