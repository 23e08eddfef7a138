// Package lvltree is a lazy toolkit for working with *your* trees —
// it never stores a tree of its own, it only asks you how to read one.
//
// 🌳 What is lvltree?
//
//	A small, generic library that separates "what a tree is" from
//	"what we do with it":
//		• core/   — the TreeDef capability contracts: ChildrenOf, and the
//		  richer Parented contract adding ParentOf, plus a copy-avoiding
//		  slice filter for building pruned views
//		• walk/   — restartable, pull-based traversal producers:
//		  breadth-first, depth-first (pre-order) and ascent-to-root
//		• stream/ — the same traversals exposed as composable iter.Seq
//		  sequences for range-over-func consumption
//		• query/  — ancestor chains, lowest common ancestor (pairwise and
//		  N-ary), path rendering, and whole-tree string dumps
//
// ✨ Why choose lvltree?
//
//   - Bring your own tree – describe any structure (filesystem, AST, org
//     chart, pointer graph) with two closures; no conversion step
//   - Lazy by construction – nodes are produced one pull at a time, so a
//     prefix of a huge (even unbounded) tree costs only that prefix
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors, errors.Is-friendly, no panics
//
// Quick ASCII example:
//
//	    R
//	   ╱ ╲
//	  x   y
//	  │
//	  z
//
//	def := core.Def(children)            // you explain the tree
//	seq, _ := stream.DepthFirst(def, R)  // lvltree walks it: R, x, z, y
//
// Trees are assumed finite and acyclic; lvltree never mutates them and
// holds no state across calls. Dive into each package's doc.go for
// contracts, complexity notes, and examples.
//
//	go get github.com/katalvlaran/lvltree
package lvltree
