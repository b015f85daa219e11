package solver_test

import (
	"fmt"

	"github.com/katalvlaran/cranes/grid"
	"github.com/katalvlaran/cranes/solver"
)

// ExampleSolve solves a 3×3 harbor with the default DP solver.
//
// Scenario:
//
//	..c
//	.X.
//	c.c
//
// Two paths collect two cranes each; DP keeps the one arriving from above
// at the bottom-right corner.
func ExampleSolve() {
	g, err := grid.Parse("..c\n.X.\nc.c")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := solver.Solve(g, solver.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cranes:", res.Path.TotalCranes())
	fmt.Println(res.Path)
	fmt.Print(res.Path.Render())

	// Output:
	// cranes: 2
	// [start east east south south]
	// S*@
	// .X*
	// c.@
}

// ExampleCompare checks both solvers on the same grid.
func ExampleCompare() {
	g, _ := grid.Parse(".X\n.c")
	ex, dp, err := solver.Compare(g, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ex.Algorithm, ex.Path.TotalCranes(), ex.Path)
	fmt.Println(dp.Algorithm, dp.Path.TotalCranes(), dp.Path)

	// Output:
	// exhaustive 1 [start south east]
	// dynprog 1 [start south east]
}
