// Package query implements ancestor-chain extraction, lowest common
// ancestor (pairwise and N-ary), hierarchical path rendering, and
// whole-tree string dumps over core tree definitions.
//
// What
//
//   - ToRoot(def, node): the ancestor chain — node first, root last.
//   - ToParent(def, node, ancestor): the same ascent, stopping at (and
//     including) a specified ancestor; reaching a root without meeting it
//     is a caller error, reported as ErrAncestorNotFound.
//   - LowestCommonAncestor(def, a, b): the deepest node that is an ancestor
//     of (or equal to) both, or ok == false when the nodes live in disjoint
//     trees.
//   - LowestCommonAncestorOf(def, nodes...): the pairwise LCA folded
//     left-to-right; an empty list — or any prefix with no common
//     ancestor — yields ok == false.
//   - Path(def, node): the root-first chain rendered as a string, labels
//     joined by a delimiter ("/" by default).
//   - Sprint(def, root): a pre-order dump of the whole subtree, one node
//     per line, indented one unit per depth. Needs ChildrenOf only — the
//     single query here that works on a plain TreeDef.
//
// LCA algorithm
//
//	Two ascent cursors, one per input, each with its own visited set. The
//	cursors advance alternately, one parent-step at a time; after every
//	step the new position is checked against the *other* cursor's set, and
//	the first hit is the answer. Total work is O(depth(a) + depth(b)) with
//	no pre-pass to measure depths, and the interleaving stays correct when
//	the two inputs sit at very different depths. Equal inputs — and the
//	ancestor case where one input sits on the other's chain — resolve as
//	early as possible, returning the shallower node.
//
// Determinism
//
//	All queries are pure functions of the definition and inputs; running a
//	query twice yields identical results.
//
// Usage
//
//	lca, ok, err := query.LowestCommonAncestor(def, a, b)
//	if err != nil {
//	    // ErrNilDef
//	}
//	if !ok {
//	    // disjoint trees: no common ancestor
//	}
//
//	s, err := query.Path(def, node,
//	    query.WithDelimiter[string]("."),
//	    query.WithLabel(strings.ToUpper),
//	)
//
// Options (rendering queries only)
//
//   - WithLabel(fn):     node → string; default fmt.Sprint.
//   - WithDelimiter(s):  Path separator; default "/"; empty → ErrOptionViolation.
//   - WithIndent(s):     Sprint indent unit per depth level; default a
//     single space; empty → ErrOptionViolation.
//
// Errors
//
//   - ErrNilDef           if the definition is nil.
//   - ErrAncestorNotFound if ToParent never meets the given ancestor.
//   - ErrOptionViolation  if an invalid Option is supplied.
//
// Degenerate inputs are answers, not errors: LCA of no nodes is "none",
// and so is the LCA of nodes from two separate trees. Acyclic ancestry is
// a documented precondition — a cyclic ParentOf makes the ascents loop.
package query
