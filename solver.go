package wos

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// BoundaryFunc assigns the Dirichlet boundary value to a point near the
// boundary. It must be pure: the solver calls it concurrently from many
// goroutines, only with terminal points of walks.
type BoundaryFunc func(Point) float64

// Config holds the Monte Carlo parameters of a [Solver]. All values must be
// positive.
type Config struct {
	// Width and Height are the grid resolution.
	Width  int
	Height int
	// WalksPerCell is the number of independent walks averaged per cell.
	WalksPerCell int
	// MaxWalkLength caps the number of jumps per walk.
	MaxWalkLength int
	// StopTolerance is the distance to the boundary below which a walk
	// stops.
	StopTolerance float64
}

func (cfg Config) validate() error {
	switch {
	case cfg.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalidConfig, cfg.Width)
	case cfg.Height <= 0:
		return fmt.Errorf("%w: height %d", ErrInvalidConfig, cfg.Height)
	case cfg.WalksPerCell <= 0:
		return fmt.Errorf("%w: walks per cell %d", ErrInvalidConfig, cfg.WalksPerCell)
	case cfg.MaxWalkLength <= 0:
		return fmt.Errorf("%w: max walk length %d", ErrInvalidConfig, cfg.MaxWalkLength)
	case !(cfg.StopTolerance > 0) || math.IsInf(cfg.StopTolerance, 1):
		return fmt.Errorf("%w: stop tolerance %g", ErrInvalidConfig, cfg.StopTolerance)
	}
	return nil
}

// Option configures optional behavior of a [Solver].
type Option func(*Solver)

// WithSeed makes solves reproducible. Every cell draws from its own random
// stream derived from seed and the cell's index, so results don't depend on
// scheduling or the number of workers.
//
// Without WithSeed, each solve picks a fresh seed.
func WithSeed(seed uint64) Option {
	return func(s *Solver) {
		s.seed = seed
		s.seeded = true
	}
}

// WithWorkers bounds the number of rows solved concurrently. Values below 1
// select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(s *Solver) {
		s.workers = n
	}
}

// Solver estimates the solution of the Laplace equation on a grid using
// walk on spheres. A Solver is immutable and safe for concurrent use.
type Solver struct {
	cfg     Config
	seed    uint64
	seeded  bool
	workers int
}

// NewSolver returns a solver for cfg. It fails with [ErrInvalidConfig] if
// any parameter isn't positive.
func NewSolver(cfg Config, opts ...Option) (*Solver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &Solver{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	return s, nil
}

// Config returns the solver's configuration.
func (s *Solver) Config() Config {
	return s.cfg
}

// Solve is like [Solver.SolveContext] with a background context.
func (s *Solver) Solve(boundary *Composite, fn BoundaryFunc) (*Grid, error) {
	return s.SolveContext(context.Background(), boundary, fn)
}

// SolveContext estimates the harmonic function with boundary values fn inside
// boundary, at every cell of the configured grid.
//
// Each cell averages Config.WalksPerCell walks (see [Solver.Walk]) started
// at the cell's domain coordinate. Cells are independent and solved in
// parallel. boundary and fn are shared by all workers and must not be
// modified during the call.
//
// A solve against an empty boundary fails with [ErrEmptyBoundary]. If any
// walk fails to find a closest boundary point, the whole solve fails with a
// [*WalkError] and no grid is returned. Cancelling ctx aborts the solve with
// ctx's error.
func (s *Solver) SolveContext(ctx context.Context, boundary *Composite, fn BoundaryFunc) (*Grid, error) {
	if boundary.Len() == 0 {
		return nil, ErrEmptyBoundary
	}
	if fn == nil {
		return nil, ErrNilBoundaryFunc
	}
	seed := s.seed
	if !s.seeded {
		seed = rand.Uint64()
	}

	grid := newGrid(s.cfg.Width, s.cfg.Height)
	var stats statsCounter
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for row := range grid.Height {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return s.solveRow(gctx, grid, row, boundary, fn, seed, &stats)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	grid.Stats = stats.load()
	return grid, nil
}

// solveRow fills one row of grid. It only writes to that row's values.
func (s *Solver) solveRow(
	ctx context.Context,
	grid *Grid,
	row int,
	boundary *Composite,
	fn BoundaryFunc,
	seed uint64,
	stats *statsCounter,
) error {
	var local WalkStats
	n := float64(s.cfg.WalksPerCell)
	for col := range grid.Width {
		if err := ctx.Err(); err != nil {
			return err
		}
		i := grid.Index(col, row)
		rng := rand.New(rand.NewPCG(seed, uint64(i)))
		start := grid.Coord(i)
		var sum float64
		for k := range s.cfg.WalksPerCell {
			res, err := s.Walk(boundary, start, rng)
			if err != nil {
				return &WalkError{
					Col:   col,
					Row:   row,
					Walk:  k,
					Step:  res.Steps,
					Point: res.Terminal,
					Err:   err,
				}
			}
			local.record(res)
			sum += fn(res.Terminal)
		}
		grid.Values[i] = sum / n
	}
	stats.add(local)
	return nil
}

type statsCounter struct {
	walks     atomic.Int64
	stopped   atomic.Int64
	exhausted atomic.Int64
	steps     atomic.Int64
}

func (c *statsCounter) add(st WalkStats) {
	c.walks.Add(st.Walks)
	c.stopped.Add(st.Stopped)
	c.exhausted.Add(st.Exhausted)
	c.steps.Add(st.Steps)
}

func (c *statsCounter) load() WalkStats {
	return WalkStats{
		Walks:     c.walks.Load(),
		Stopped:   c.stopped.Load(),
		Exhausted: c.exhausted.Load(),
		Steps:     c.steps.Load(),
	}
}
