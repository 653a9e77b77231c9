// SPDX-License-Identifier: MIT

package fbm_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvfrac/fbm"
	"github.com/katalvlaran/lvfrac/grid"
)

// ExampleNew samples one Hosking path and reports its shape.
func ExampleNew() {
	g, _ := grid.Uniform(256, 1)
	s, err := fbm.New(fbm.MethodHosking, g, 0.6)
	if err != nil {
		fmt.Println(err)
		return
	}
	path, _ := s.Sample(rand.New(rand.NewSource(42)), nil)
	fmt.Println(len(path), s.Hurst())

	_, err = fbm.New(fbm.MethodDaviesHarte, mustWarped(), 0.6)
	fmt.Println(err)
	// Output:
	// 256 0.6
	// DaviesHarte: grid is not equispaced from the origin: lvfrac: invalid grid
}

func mustWarped() *grid.Grid {
	g, err := grid.Warped(16, 1, 0.5)
	if err != nil {
		panic(err)
	}

	return g
}
