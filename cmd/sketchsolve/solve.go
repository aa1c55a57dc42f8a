// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sketchsolve/optimize"
	"github.com/katalvlaran/sketchsolve/render"
	"github.com/katalvlaran/sketchsolve/sketchfile"
	"github.com/katalvlaran/sketchsolve/solver"
)

var errNotConverged = errors.New("sketch did not converge")

type solveFlags struct {
	tolerance     float64
	seed          int64
	maxIterations int
	minimizer     string
	difference    string
	bounds        bool
	png           string
	out           string
	verbose       bool
}

func newSolveCmd(colors func() aurora.Aurora) *cobra.Command {
	var f solveFlags
	def := solver.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a YAML sketch and print the resulting points",
		Long: `Solve loads a sketch, minimizes the total constraint error and prints the
final state, error and point positions. The command fails when the error
stays above the tolerance after every retry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.OutOrStdout(), cmd.ErrOrStderr(), colors(), args[0], f)
		},
	}
	fl := cmd.Flags()
	fl.Float64VarP(&f.tolerance, "tolerance", "t", def.Tolerance, "accepted total error")
	fl.Int64Var(&f.seed, "seed", def.Seed, "perturbation seed (0 selects the default)")
	fl.IntVar(&f.maxIterations, "max-iterations", def.MaxIterations, "perturbed retries after the first attempt")
	fl.StringVarP(&f.minimizer, "minimizer", "m", "lagrangian", "lagrangian, bfgs, newton or descent")
	fl.StringVar(&f.difference, "difference", def.Difference.String(), "central or forward finite differences")
	fl.BoolVar(&f.bounds, "bounds", def.EnforceBounds, "keep every parameter inside its [min, max] bounds")
	fl.StringVar(&f.png, "png", "", "write a PNG snapshot of the solved sketch")
	fl.StringVarP(&f.out, "out", "o", "", "write the solved sketch as YAML")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log every attempt to stderr")

	return cmd
}

func parseMinimizer(name string) (optimize.Minimizer, error) {
	switch strings.ToLower(name) {
	case "lagrangian", "":
		return nil, nil
	case "bfgs":
		return optimize.BFGS{}, nil
	case "newton":
		return optimize.Newton{}, nil
	case "descent":
		return optimize.GradientDescent{}, nil
	}

	return nil, fmt.Errorf("unknown minimizer %q", name)
}

func parseDifference(name string) (optimize.DifferenceMode, error) {
	switch strings.ToLower(name) {
	case optimize.Central.String():
		return optimize.Central, nil
	case optimize.Forward.String():
		return optimize.Forward, nil
	}

	return 0, fmt.Errorf("unknown difference mode %q", name)
}

func runSolve(out, errOut io.Writer, au aurora.Aurora, path string, f solveFlags) error {
	sk, err := sketchfile.LoadFile(path)
	if err != nil {
		return err
	}

	opts := solver.DefaultOptions()
	opts.Tolerance = f.tolerance
	opts.Seed = f.seed
	opts.MaxIterations = f.maxIterations
	opts.EnforceBounds = f.bounds
	if opts.Minimizer, err = parseMinimizer(f.minimizer); err != nil {
		return err
	}
	if opts.Difference, err = parseDifference(f.difference); err != nil {
		return err
	}
	if f.verbose {
		opts.Logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	res, err := solver.SolveWithOptions(sk.Store, sk.Constraints, opts)
	if err != nil {
		return err
	}
	printResult(out, au, sk, res)

	if f.out != "" {
		if err = writeFile(f.out, func(w io.Writer) error { return sketchfile.Encode(w, sk.Document()) }); err != nil {
			return err
		}
	}
	if f.png != "" {
		if err = writeFile(f.png, func(w io.Writer) error { return render.PNG(w, sk, render.DefaultOptions()) }); err != nil {
			return err
		}
	}
	if res.State != solver.Converged {
		return fmt.Errorf("error %g > tolerance %g: %w", res.Error, f.tolerance, errNotConverged)
	}

	return nil
}

func printResult(out io.Writer, au aurora.Aurora, sk *sketchfile.Sketch, res solver.Result) {
	state := au.Green(res.State)
	if res.State != solver.Converged {
		state = au.Red(res.State)
	}
	fmt.Fprintf(out, "state:       %s\n", state)
	fmt.Fprintf(out, "error:       %.3e\n", res.Error)
	fmt.Fprintf(out, "attempts:    %d\n", res.Attempts)
	fmt.Fprintf(out, "free params: %d\n", len(res.FreeParams))
	fmt.Fprintf(out, "evaluations: %d\n", res.Evaluations)
	fmt.Fprintln(out, "points:")
	for _, name := range sk.PointNames() {
		p := sk.Store.Pos(sk.Points[name])
		fmt.Fprintf(out, "  %-8s (%.6f, %.6f)\n", au.Cyan(name), p.X, p.Y)
	}
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = fn(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
