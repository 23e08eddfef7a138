// Package query implements the ancestor, LCA, and rendering queries.
package query

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvltree/core"
	"github.com/katalvlaran/lvltree/walk"
)

// ToRoot returns the ancestor chain of node: node itself first, then each
// successive parent, ending with the root. Its length is node's depth + 1.
// Returns ErrNilDef if def is nil.
func ToRoot[T any](def core.Parented[T], node T) ([]T, error) {
	if def == nil {
		return nil, ErrNilDef
	}

	it, err := walk.ToParent(def, node)
	if err != nil {
		return nil, err
	}

	return walk.Collect[T](it), nil
}

// ToParent returns the ascent from node up to ancestor, inclusive of both.
// Reaching a root without meeting ancestor is a caller contract violation
// reported as ErrAncestorNotFound. Returns ErrNilDef if def is nil.
func ToParent[T comparable](def core.Parented[T], node, ancestor T) ([]T, error) {
	if def == nil {
		return nil, ErrNilDef
	}

	chain := []T{node}
	for cur := node; cur != ancestor; {
		p, ok := def.ParentOf(cur)
		if !ok {
			return nil, fmt.Errorf("%w: %v is not above %v", ErrAncestorNotFound, ancestor, node)
		}
		chain = append(chain, p)
		cur = p
	}

	return chain, nil
}

// LowestCommonAncestor returns the nearest node that is an ancestor of (or
// equal to) both a and b, or ok == false when the two inputs share no
// ancestor (disjoint trees). Returns ErrNilDef if def is nil.
//
// The search interleaves two ascent cursors, each with its own visited set,
// advancing one parent-step at a time and checking every new position
// against the other cursor's set. Total work is O(depth(a) + depth(b));
// neither depth is measured in advance, so wildly unbalanced inputs cost no
// extra pass, and when one input lies on the other's chain the shallower
// node is returned as soon as the climbing cursor reaches it.
func LowestCommonAncestor[T comparable](def core.Parented[T], a, b T) (T, bool, error) {
	var zero T
	if def == nil {
		return zero, false, ErrNilDef
	}
	if a == b {
		return a, true, nil
	}

	seenA := map[T]struct{}{a: {}}
	seenB := map[T]struct{}{b: {}}
	curA, curB := a, b
	liveA, liveB := true, true

	for liveA || liveB {
		if liveA {
			if p, ok := def.ParentOf(curA); ok {
				curA = p
				if _, hit := seenB[curA]; hit {
					return curA, true, nil
				}
				seenA[curA] = struct{}{}
			} else {
				liveA = false
			}
		}
		if liveB {
			if p, ok := def.ParentOf(curB); ok {
				curB = p
				if _, hit := seenA[curB]; hit {
					return curB, true, nil
				}
				seenB[curB] = struct{}{}
			} else {
				liveB = false
			}
		}
	}

	// both cursors hit a root without crossing: disjoint trees
	return zero, false, nil
}

// LowestCommonAncestorOf folds LowestCommonAncestor left-to-right over
// nodes. A single node is its own LCA; an empty list has none; once any
// prefix has no common ancestor the fold short-circuits to none.
// Returns ErrNilDef if def is nil.
func LowestCommonAncestorOf[T comparable](def core.Parented[T], nodes ...T) (T, bool, error) {
	var zero T
	if def == nil {
		return zero, false, ErrNilDef
	}
	if len(nodes) == 0 {
		return zero, false, nil
	}

	acc := nodes[0]
	for _, n := range nodes[1:] {
		next, ok, err := LowestCommonAncestor(def, acc, n)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			return zero, false, nil
		}
		acc = next
	}

	return acc, true, nil
}

// Path renders node's chain root-first, each node mapped through the label
// function and joined with the delimiter:
//
//	Path(def, "b")  →  "root/a/b"
//
// Returns ErrNilDef or ErrOptionViolation for invalid input.
func Path[T any](def core.Parented[T], node T, opts ...Option[T]) (string, error) {
	if def == nil {
		return "", ErrNilDef
	}
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}

	chain, err := ToRoot(def, node)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := len(chain) - 1; i >= 0; i-- { // root first
		sb.WriteString(o.Label(chain[i]))
		if i > 0 {
			sb.WriteString(o.Delimiter)
		}
	}

	return sb.String(), nil
}

// Sprint dumps the whole subtree under root in pre-order, one node per
// line, indented by one indent unit per depth level, children in ChildrenOf
// order. Only the ChildrenOf capability is needed:
//
//	R
//	 x
//	  z
//	 y
//
// Returns ErrNilDef or ErrOptionViolation for invalid input.
func Sprint[T any](def core.TreeDef[T], root T, opts ...Option[T]) (string, error) {
	if def == nil {
		return "", ErrNilDef
	}
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var dump func(node T, depth int)
	dump = func(node T, depth int) {
		sb.WriteString(strings.Repeat(o.Indent, depth))
		sb.WriteString(o.Label(node))
		sb.WriteByte('\n')
		for _, c := range def.ChildrenOf(node) {
			dump(c, depth+1)
		}
	}
	dump(root, 0)

	return sb.String(), nil
}
