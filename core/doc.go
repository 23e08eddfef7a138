// Package core defines the capability contracts that describe a tree,
// plus a small copy-avoiding filter for building pruned child views.
//
// What
//
//   - TreeDef[T]: the minimal contract — given a node, return its ordered
//     children. Implement it to describe *any* tree-shaped data you already
//     own: a filesystem, an AST, an org chart, a pointer graph.
//   - Parented[T]: extends TreeDef with the inverse capability — given a
//     node, return its parent, or report that the node is a root.
//   - Def / NewParented: closure adapters, so a tree definition is two
//     function literals away; no new types required.
//   - Filtered / FilterDef: prune children by predicate without copying
//     slices that the predicate leaves untouched.
//
// Why
//
//   - Walks and queries (packages walk, stream, query) should not care how
//     a tree is stored. A TreeDef is a *view*, not a container: the same
//     logical tree may be described by several definitions, and the library
//     never creates, copies, mutates, or destroys nodes.
//
// Contract
//
//	ChildrenOf must be pure and deterministic: calling it twice on the same
//	node yields an equivalent slice, and the slice order is the traversal
//	order downstream. For a Parented definition, if ParentOf(x) = (p, true)
//	then x must appear among ChildrenOf(p). Consistency and acyclicity are
//	caller obligations; they are documented preconditions, not runtime
//	checks (a cyclic definition makes traversal non-terminating).
//
// Usage
//
//	// A complete binary tree over ints, defined in two closures:
//	def := core.NewParented(
//	    func(n int) []int {
//	        if 2*n+1 > 15 { return nil }
//	        return []int{2 * n, 2*n + 1}
//	    },
//	    func(n int) (int, bool) { return n / 2, n > 1 },
//	)
//
// Errors
//
//	None. The contracts are infallible by design: a failing caller
//	implementation should panic or be wrapped by the caller before use.
package core
