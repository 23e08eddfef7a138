package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvltree/core"
)

// mapTree is a tiny map-backed tree used across core tests:
//
//	R ─ x ─ z
//	  └ y
var mapTree = map[string][]string{
	"R": {"x", "y"},
	"x": {"z"},
}

// mapParent inverts mapTree.
var mapParent = map[string]string{
	"x": "R",
	"y": "R",
	"z": "x",
}

func newMapDef() core.Parented[string] {
	return core.NewParented(
		func(n string) []string { return mapTree[n] },
		func(n string) (string, bool) {
			p, ok := mapParent[n]
			return p, ok
		},
	)
}

func TestChildrenFunc_Adapts(t *testing.T) {
	def := core.ChildrenFunc[int](func(n int) []int { return []int{n + 1} })
	assert.Equal(t, []int{4}, def.ChildrenOf(3))
}

func TestDef_NilChildrenMeansLeaves(t *testing.T) {
	def := core.Def[string](nil)
	assert.Empty(t, def.ChildrenOf("anything"))
}

func TestNewParented_Wiring(t *testing.T) {
	def := newMapDef()

	assert.Equal(t, []string{"x", "y"}, def.ChildrenOf("R"))
	assert.Empty(t, def.ChildrenOf("y"), "leaf has no children")

	p, ok := def.ParentOf("z")
	assert.True(t, ok)
	assert.Equal(t, "x", p)

	_, ok = def.ParentOf("R")
	assert.False(t, ok, "root must report no parent")
}

func TestNewParented_NilFuncs(t *testing.T) {
	def := core.NewParented[string](nil, nil)
	assert.Empty(t, def.ChildrenOf("n"))
	_, ok := def.ParentOf("n")
	assert.False(t, ok, "nil parent func makes every node a root")
}

// ChildrenOf must be repeatable: two calls on the same node agree.
func TestTreeDef_Deterministic(t *testing.T) {
	def := newMapDef()
	assert.Equal(t, def.ChildrenOf("R"), def.ChildrenOf("R"))
}

// Parent/child consistency of the shared fixture itself.
func TestFixture_ParentChildConsistency(t *testing.T) {
	def := newMapDef()
	for child, parent := range mapParent {
		assert.Contains(t, def.ChildrenOf(parent), child)
	}
}
