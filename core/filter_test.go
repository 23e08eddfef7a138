package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvltree/core"
)

func TestFiltered_AllPassReturnsSameSlice(t *testing.T) {
	in := []string{"a", "b", "c"}
	got := core.Filtered(in, func(string) bool { return true })

	assert.Equal(t, in, got)
	// Same backing array, not a copy.
	assert.Same(t, &in[0], &got[0])
}

func TestFiltered_NonePassReturnsEmpty(t *testing.T) {
	in := []string{"a", "b", "c"}
	got := core.Filtered(in, func(string) bool { return false })

	assert.Nil(t, got)
	assert.Empty(t, got)
}

func TestFiltered_MixedCopiesExactly(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	got := core.Filtered(in, func(n int) bool { return n%2 == 1 })

	assert.Equal(t, []int{1, 3, 5}, got)
	assert.Equal(t, 3, cap(got), "mixed result is sized exactly to the survivors")
}

func TestFiltered_EmptyInput(t *testing.T) {
	got := core.Filtered(nil, func(int) bool { return true })
	assert.Empty(t, got)
}

func TestFilterDef_PrunesSubtrees(t *testing.T) {
	def := newMapDef()
	// Hide "x": its subtree (z) must become unreachable too.
	view := core.FilterDef[string](def, func(n string) bool { return n != "x" })

	assert.Equal(t, []string{"y"}, view.ChildrenOf("R"))
	// Asking for x's children still works — the view filters, it does not forbid.
	assert.Equal(t, []string{"z"}, view.ChildrenOf("x"))
}

func TestFilterDef_NilKeepIsIdentity(t *testing.T) {
	def := newMapDef()
	assert.Same(t, def, core.FilterDef[string](def, nil))
}
