// SPDX-License-Identifier: MIT

package main

import (
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var noColor bool
	root := &cobra.Command{
		Use:   "sketchsolve",
		Short: "A 2D geometric constraint solver",
		Long: `sketchsolve moves the free parameters of a sketch (points, radii, angles)
until its geometric constraints hold: tangency, angles, distances, symmetry
and more. Sketches are YAML documents; see "sketchsolve kinds" for the
supported constraints.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	colors := func() aurora.Aurora { return aurora.NewAurora(!noColor) }
	root.AddCommand(newSolveCmd(colors), newShapeCmd(), newKindsCmd())

	return root
}
