// Package walk provides lazy, restartable traversal producers over any
// core.TreeDef: breadth-first, depth-first (pre-order), and ascent-to-root.
//
// What
//
//   - BreadthFirst(def, root): level order. A FIFO frontier starts at root;
//     each pull dequeues one node, yields it, and enqueues its children in
//     the order ChildrenOf returns them.
//   - DepthFirst(def, root): pre-order, parent before children, sibling
//     order preserved. A LIFO frontier; children are pushed in reverse so
//     the first child is processed next.
//   - ToParent(def, node): the ascent sequence from node (inclusive) up
//     through successive parents until ParentOf reports a root.
//   - Every factory returns a fresh iterator with independent state — call
//     it again and you traverse again; the TreeDef is never mutated.
//
// Why
//
//   - Nodes are produced one Next() at a time, with no upfront
//     materialization: consuming a prefix of a very large (or unbounded)
//     tree costs only that prefix. Stopping early wastes nothing beyond
//     the already-yielded nodes.
//
// Determinism
//
//	ChildrenOf order is traversal order. Given a deterministic TreeDef,
//	every traversal is fully reproducible.
//
// Complexity (n = nodes yielded, w = widest frontier, d = depth)
//
//   - Time:   O(n) pulls overall; each pull is O(children of the node).
//   - Memory: O(w) for breadth-first, O(d · max fan-out) for depth-first,
//     O(1) for ascent.
//
// Usage
//
//	it, err := walk.BreadthFirst(def, root,
//	    walk.WithMaxDepth[string](3),
//	    walk.WithFilterNode(func(n string) bool { return n != "skip" }),
//	)
//	if err != nil {
//	    // ErrNilDef or ErrOptionViolation
//	}
//	for n, ok := it.Next(); ok; n, ok = it.Next() {
//	    // ...
//	}
//
// Options
//
//   - WithMaxDepth(d):    do not descend past depth d (>0); 0 means no limit.
//   - WithFilterNode(fn): children for which fn returns false are pruned,
//     together with their entire subtrees. The start node is never filtered.
//
// Errors
//
//   - ErrNilDef          if the tree definition is nil.
//   - ErrOptionViolation if an invalid Option was supplied (e.g. negative depth).
//
// Trees are assumed finite and acyclic; a cyclic definition makes a
// traversal non-terminating. That precondition is the caller's, not checked
// here.
package walk
