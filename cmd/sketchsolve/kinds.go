// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sketchsolve/constraint"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the constraint kinds a sketch may use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, k := range constraint.Kinds() {
				fmt.Fprintln(out, k)
			}
			fmt.Fprintln(out, "aliases: coincident, distance, tangent")
		},
	}
}
