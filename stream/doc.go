// Package stream exposes the walk traversals as composable iter.Seq
// sequences, ready for range-over-func consumption.
//
// What
//
//   - BreadthFirst / DepthFirst / ToParent: the exact traversals of package
//     walk — same ordering, same termination, same options — returned as an
//     iter.Seq[T] instead of a pull iterator.
//   - Each returned sequence is restartable: every range statement builds a
//     fresh walk iterator underneath, so two loops over the same sequence
//     see identical output.
//
// Why
//
//   - iter.Seq composes with slices.Collect, maps-building loops, and any
//     sequence combinator; breaking out of the range is the natural
//     early-termination signal, with no wasted work beyond the yielded
//     prefix.
//
// Semantics
//
//	Thin adapter only: no buffering, strictly sequential emission, the input
//	TreeDef is never mutated. Input validation (nil definition, bad options)
//	happens eagerly at construction, so the sequence itself cannot fail.
//
// Usage
//
//	seq, err := stream.DepthFirst(def, root)
//	if err != nil {
//	    // walk.ErrNilDef or walk.ErrOptionViolation
//	}
//	for n := range seq {
//	    if enough(n) {
//	        break // lazy: nothing past this point is computed
//	    }
//	}
//
// Errors
//
//	Construction surfaces the walk sentinels unchanged: walk.ErrNilDef,
//	walk.ErrOptionViolation.
package stream
