package core

// Filtered returns the elements of list for which keep reports true,
// avoiding allocation wherever the answer is already at hand:
//
//   - every element passes  → list itself is returned, no copy;
//   - no element passes     → the shared empty slice (nil) is returned;
//   - mixed                 → a fresh slice sized exactly to the number of
//     passing elements, in their original order.
//
// Time O(n), memory O(1) except in the mixed case.
func Filtered[T any](list []T, keep func(T) bool) []T {
	// First pass: count survivors.
	pass := 0
	for _, v := range list {
		if keep(v) {
			pass++
		}
	}

	switch pass {
	case len(list):
		return list
	case 0:
		return nil
	}

	// Mixed case: exact-capacity copy of the survivors.
	out := make([]T, 0, pass)
	for _, v := range list {
		if keep(v) {
			out = append(out, v)
		}
	}

	return out
}

// filterDef is a TreeDef view that prunes children failing keep.
type filterDef[T any] struct {
	def  TreeDef[T]
	keep func(T) bool
}

// ChildrenOf implements TreeDef, filtering the underlying children.
func (d *filterDef[T]) ChildrenOf(node T) []T {
	return Filtered(d.def.ChildrenOf(node), d.keep)
}

// FilterDef returns a view of def in which children failing keep — and
// therefore their entire subtrees — are invisible. The underlying
// definition is consulted lazily; nothing is precomputed.
//
// A nil keep returns def unchanged.
func FilterDef[T any](def TreeDef[T], keep func(T) bool) TreeDef[T] {
	if keep == nil {
		return def
	}

	return &filterDef[T]{def: def, keep: keep}
}
