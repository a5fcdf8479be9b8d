// SPDX-License-Identifier: MIT

// Command lietool evaluates lietensor kernels from the command line.
//
//	lietool exp se3 0 0 1 0 0 1.5707963267948966
//	lietool log SO3 0 0 0.7071067811865476 0.7071067811865476
//	lietool randn Sim3 --sigma 0.1,0.2,0.05 --batch 4 --seed 7
//
// Engine and logging settings come from the LIE_* and LOG_* environment
// variables (see package config).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
