package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvfrac/grid"
)

// ExampleUniform builds the equispaced grid used by the stationary samplers.
func ExampleUniform() {
	g, err := grid.Uniform(4, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Points())
	fmt.Println(g.Spacings())
	// Output:
	// [0.25 0.5 0.75 1]
	// [0.25 0.25 0.25 0.25]
}
