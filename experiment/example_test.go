// SPDX-License-Identifier: MIT

package experiment_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfrac/experiment"
)

// ExampleRun prints the deterministic references of the default scenario.
func ExampleRun() {
	p := experiment.DefaultParams()
	p.Paths = 50
	res, err := experiment.Run(context.Background(), p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("H=%.1f eps=%.2f\n", res.Hurst, res.Bandwidth)
	fmt.Printf("expected local time %.6f\n", res.Analytical)
	fmt.Printf("smoothed            %.6f\n", res.Smoothed)
	fmt.Printf("riemann-liouville   %.6f\n", res.RiemannLiouville)
	// Output:
	// H=0.6 eps=0.05
	// expected local time 1.567273
	// smoothed            1.435174
	// riemann-liouville   2.737147
}
