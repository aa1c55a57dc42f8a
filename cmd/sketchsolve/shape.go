// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sketchsolve/shapes"
	"github.com/katalvlaran/sketchsolve/sketchfile"
)

type shapeFlags struct {
	seed   int64
	jitter float64
	out    string
}

func newShapeCmd() *cobra.Command {
	var f shapeFlags
	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Generate a canonical sketch as YAML",
		Long: `Shape writes a generated sketch whose free points start displaced from the
ideal layout (use --seed 0 for the ideal layout). Solve the result with
"sketchsolve solve".`,
	}
	pf := cmd.PersistentFlags()
	pf.Int64Var(&f.seed, "seed", 1, "jitter seed; 0 disables jitter")
	pf.Float64Var(&f.jitter, "jitter", 0.1, "displacement bound relative to the shape size")
	pf.StringVarP(&f.out, "out", "o", "", "output file (default stdout)")

	var (
		sides  int
		radius float64
	)
	polygon := &cobra.Command{
		Use:   "polygon",
		Short: "Regular polygon tangent to a circle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return emitShape(cmd.OutOrStdout(), f, shapes.Circumscribed(sides, radius))
		},
	}
	polygon.Flags().IntVarP(&sides, "sides", "n", 4, "number of sides")
	polygon.Flags().Float64VarP(&radius, "radius", "r", 10, "inscribed circle radius")

	var width, height float64
	rect := &cobra.Command{
		Use:   "rectangle",
		Short: "Axis-aligned rectangle with fixed side lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return emitShape(cmd.OutOrStdout(), f, shapes.Rectangle(width, height))
		},
	}
	rect.Flags().Float64Var(&width, "width", 20, "width")
	rect.Flags().Float64Var(&height, "height", 10, "height")

	cmd.AddCommand(polygon, rect)

	return cmd
}

func emitShape(stdout io.Writer, f shapeFlags, c shapes.Constructor) error {
	if !(f.jitter >= 0) || math.IsInf(f.jitter, 1) {
		return fmt.Errorf("negative jitter %g", f.jitter)
	}
	opts := []shapes.Option{shapes.WithJitter(f.jitter)}
	if f.seed != 0 {
		opts = append(opts, shapes.WithSeed(f.seed))
	}
	doc, err := shapes.BuildDocument(opts, c)
	if err != nil {
		return err
	}
	if f.out == "" {
		return sketchfile.Encode(stdout, doc)
	}

	return writeFile(f.out, func(w io.Writer) error { return sketchfile.Encode(w, doc) })
}
