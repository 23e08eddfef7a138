package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvltree/core"
)

// ExampleDef describes a complete binary tree over ints with one closure:
// node n has children 2n and 2n+1, capped at 7.
func ExampleDef() {
	def := core.Def(func(n int) []int {
		if 2*n+1 > 7 {
			return nil
		}
		return []int{2 * n, 2*n + 1}
	})

	fmt.Println(def.ChildrenOf(1))
	fmt.Println(def.ChildrenOf(3))
	fmt.Println(def.ChildrenOf(4))
	// Output:
	// [2 3]
	// [6 7]
	// []
}

// ExampleFiltered shows the three filtering outcomes: untouched, pruned, empty.
func ExampleFiltered() {
	list := []string{"keep", "drop", "keep"}

	fmt.Println(core.Filtered(list, func(s string) bool { return s == "keep" }))
	fmt.Println(core.Filtered(list, func(string) bool { return true }))
	fmt.Println(len(core.Filtered(list, func(string) bool { return false })))
	// Output:
	// [keep keep]
	// [keep drop keep]
	// 0
}
