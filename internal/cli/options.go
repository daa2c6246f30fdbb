// Package cli parses the wos command line.
package cli

import (
	"flag"
	"fmt"
	"io"
)

// Options holds the parsed command line.
type Options struct {
	Width     int
	Height    int
	Walks     int
	MaxSteps  int
	Tolerance float64
	Seed      uint64
	Seeded    bool // Seed was given explicitly
	Workers   int

	Shape string
	Func  string
	Fit   float64

	Out    string
	SVG    string
	Stroke float64
	Quiet  bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}
		_, _ = fmt.Fprintf(out, "%s – walk-on-spheres Laplace solver\n\n", name)
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options]\n", name)

		_, _ = fmt.Fprintln(out, "\nDomain:")
		_, _ = fmt.Fprintf(out, "  -shape string       Boundary: square | letter-a | triangle | house [%s]\n", def("shape"))
		_, _ = fmt.Fprintf(out, "  -fit float          Refit the boundary into the unit square with this margin (0=off) [%s]\n", def("fit"))
		_, _ = fmt.Fprintf(out, "  -fn string          Boundary values: linear | constant | x | saddle | sin [%s]\n", def("fn"))

		_, _ = fmt.Fprintln(out, "\nMonte Carlo:")
		_, _ = fmt.Fprintf(out, "  -width int          Grid width [%s]\n", def("width"))
		_, _ = fmt.Fprintf(out, "  -height int         Grid height [%s]\n", def("height"))
		_, _ = fmt.Fprintf(out, "  -walks int          Walks per cell [%s]\n", def("walks"))
		_, _ = fmt.Fprintf(out, "  -max-steps int      Maximum jumps per walk [%s]\n", def("max-steps"))
		_, _ = fmt.Fprintf(out, "  -tol float          Stop tolerance [%s]\n", def("tol"))
		_, _ = fmt.Fprintln(out, "  -seed uint          Seed for reproducible output [random]")
		_, _ = fmt.Fprintf(out, "  -workers int        Concurrent rows (0=all CPUs) [%s]\n", def("workers"))

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintln(out, "  -o file             Write the result as PNG")
		_, _ = fmt.Fprintln(out, "  -svg file           Write the boundary as SVG")
		_, _ = fmt.Fprintf(out, "  -stroke float       Boundary stroke width in pixels (0=none) [%s]\n", def("stroke"))
		_, _ = fmt.Fprintf(out, "  -q                  Suppress the summary [%s]\n", def("q"))
		_, _ = fmt.Fprintln(out, "  -h                  Show this help and exit")
	}
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	fs.IntVar(&o.Width, "width", 200, "grid width")
	fs.IntVar(&o.Height, "height", 200, "grid height")
	fs.IntVar(&o.Walks, "walks", 64, "walks per cell")
	fs.IntVar(&o.MaxSteps, "max-steps", 100, "maximum jumps per walk")
	fs.Float64Var(&o.Tolerance, "tol", 1.0/1024, "stop tolerance")
	fs.Uint64Var(&o.Seed, "seed", 0, "seed for reproducible output")
	fs.IntVar(&o.Workers, "workers", 0, "concurrent rows (0=all CPUs)")
	fs.StringVar(&o.Shape, "shape", "square", "boundary shape")
	fs.StringVar(&o.Func, "fn", "linear", "boundary values")
	fs.Float64Var(&o.Fit, "fit", 0, "refit margin (0=off)")
	fs.StringVar(&o.Out, "o", "", "PNG output file")
	fs.StringVar(&o.SVG, "svg", "", "SVG output file")
	fs.Float64Var(&o.Stroke, "stroke", 2, "boundary stroke width in pixels")
	fs.BoolVar(&o.Quiet, "q", false, "suppress the summary")
	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.Seeded = true
		}
	})
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return o, fmt.Errorf("-width and -height must be positive, got %dx%d", o.Width, o.Height)
	case o.Walks <= 0:
		return o, fmt.Errorf("-walks must be positive, got %d", o.Walks)
	case o.MaxSteps <= 0:
		return o, fmt.Errorf("-max-steps must be positive, got %d", o.MaxSteps)
	case !(o.Tolerance > 0):
		return o, fmt.Errorf("-tol must be positive, got %g", o.Tolerance)
	case !(o.Fit >= 0 && o.Fit < 0.5):
		return o, fmt.Errorf("-fit must lie in [0, 0.5), got %g", o.Fit)
	case o.Stroke < 0:
		return o, fmt.Errorf("-stroke must not be negative, got %g", o.Stroke)
	}
	return o, nil
}

// Silence returns fs with its output discarded, for callers that print
// usage themselves.
func Silence(fs *flag.FlagSet) *flag.FlagSet {
	fs.SetOutput(io.Discard)
	return fs
}
