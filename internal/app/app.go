// Package app implements the wos command.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/mcpde/wos"
	"github.com/mcpde/wos/internal/cli"
	"github.com/mcpde/wos/render"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.Silence(cli.NewFlagSet("wos"))
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return ExitUsage
	}

	if err := run(ctx, opts, outw, stderr); err != nil {
		_, _ = fmt.Fprintf(stderr, "wos: %v\n", err)
		return ExitFailure
	}
	return ExitOK
}

func run(ctx context.Context, opts cli.Options, stdout, stderr io.Writer) error {
	boundary, err := Boundary(opts.Shape)
	if err != nil {
		return err
	}
	if opts.Fit > 0 {
		if boundary, err = fit(boundary, opts.Fit); err != nil {
			return err
		}
	}
	fn, err := BoundaryFunc(opts.Func)
	if err != nil {
		return err
	}

	solverOpts := []wos.Option{wos.WithWorkers(opts.Workers)}
	if opts.Seeded {
		solverOpts = append(solverOpts, wos.WithSeed(opts.Seed))
	}
	solver, err := wos.NewSolver(wos.Config{
		Width:         opts.Width,
		Height:        opts.Height,
		WalksPerCell:  opts.Walks,
		MaxWalkLength: opts.MaxSteps,
		StopTolerance: opts.Tolerance,
	}, solverOpts...)
	if err != nil {
		return err
	}

	if !opts.Quiet {
		cfg := solver.Config()
		_, _ = fmt.Fprintf(stderr, "solving %s/%s on a %dx%d grid, %d walks per cell\n",
			opts.Shape, opts.Func, cfg.Width, cfg.Height, cfg.WalksPerCell)
	}
	start := time.Now()
	grid, err := solver.SolveContext(ctx, boundary, fn)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if opts.Out != "" {
		canvas, err := render.Render(grid, boundary, render.Options{LineWidth: opts.Stroke})
		if err != nil {
			return err
		}
		if err := writeFile(opts.Out, canvas.WritePNG); err != nil {
			return err
		}
	}
	if opts.SVG != "" {
		err := writeFile(opts.SVG, func(w io.Writer) error {
			return render.WriteSVG(w, boundary, opts.Width, opts.Height, opts.Stroke, color.Black)
		})
		if err != nil {
			return err
		}
	}

	if !opts.Quiet {
		printSummary(stdout, grid, elapsed)
	}
	return nil
}

func printSummary(w io.Writer, grid *wos.Grid, elapsed time.Duration) {
	lo, hi := grid.Range()
	st := grid.Stats
	var meanSteps float64
	if st.Walks > 0 {
		meanSteps = float64(st.Steps) / float64(st.Walks)
	}
	_, _ = fmt.Fprintf(w, "cells:      %d (%dx%d)\n", len(grid.Values), grid.Width, grid.Height)
	_, _ = fmt.Fprintf(w, "walks:      %d (%d stopped, %d exhausted)\n", st.Walks, st.Stopped, st.Exhausted)
	_, _ = fmt.Fprintf(w, "mean steps: %.2f\n", meanSteps)
	_, _ = fmt.Fprintf(w, "range:      [%g, %g]\n", lo, hi)
	_, _ = fmt.Fprintf(w, "elapsed:    %v\n", elapsed.Round(time.Millisecond))
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}
