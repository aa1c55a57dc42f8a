// SPDX-License-Identifier: MIT

// Command sketchsolve solves 2D constraint sketches written as YAML.
//
//	sketchsolve solve sketch.yaml --png out.png
//	sketchsolve shape polygon --sides 6 --radius 10 --seed 3 > hex.yaml
//	sketchsolve kinds
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
