package walk_test

import (
	"fmt"

	"github.com/katalvlaran/lvltree/core"
	"github.com/katalvlaran/lvltree/walk"
)

// ExampleBreadthFirst walks a small org chart level by level.
func ExampleBreadthFirst() {
	reports := map[string][]string{
		"CEO": {"CTO", "CFO"},
		"CTO": {"Dev1", "Dev2"},
		"CFO": {"Acct"},
	}
	def := core.Def(func(n string) []string { return reports[n] })

	it, err := walk.BreadthFirst[string](def, "CEO")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(walk.Collect[string](it))
	// Output:
	// [CEO CTO CFO Dev1 Dev2 Acct]
}

// ExampleDepthFirst shows pre-order on the same chart, truncated to one level.
func ExampleDepthFirst() {
	reports := map[string][]string{
		"CEO": {"CTO", "CFO"},
		"CTO": {"Dev1", "Dev2"},
		"CFO": {"Acct"},
	}
	def := core.Def(func(n string) []string { return reports[n] })

	it, _ := walk.DepthFirst[string](def, "CEO", walk.WithMaxDepth[string](1))
	fmt.Println(walk.Collect[string](it))
	// Output:
	// [CEO CTO CFO]
}

// ExampleToParent ascends a filesystem-shaped tree from a leaf to its root.
func ExampleToParent() {
	parent := map[string]string{
		"/usr/local/bin": "/usr/local",
		"/usr/local":     "/usr",
		"/usr":           "/",
	}
	def := core.NewParented[string](nil, func(n string) (string, bool) {
		p, ok := parent[n]
		return p, ok
	})

	it, _ := walk.ToParent[string](def, "/usr/local/bin")
	fmt.Println(walk.Collect[string](it))
	// Output:
	// [/usr/local/bin /usr/local /usr /]
}
