package wos_test

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcpde/wos"
)

func unitSquare(t *testing.T) *wos.Composite {
	t.Helper()
	c, err := wos.Polygon(wos.Pt(0, 0), wos.Pt(1, 0), wos.Pt(1, 1), wos.Pt(0, 1))
	require.NoError(t, err)
	return c
}

func linear(p wos.Point) float64 { return p.X + p.Y }

// nanCurve answers every query with a NaN point.
type nanCurve struct{}

func (nanCurve) Eval(float64) wos.Point { return wos.Pt(math.NaN(), math.NaN()) }
func (nanCurve) ClosestPoint(wos.Point) (wos.Point, bool) {
	return wos.Pt(math.NaN(), math.NaN()), true
}
func (nanCurve) Start() wos.Point { return wos.Pt(math.NaN(), math.NaN()) }
func (nanCurve) End() wos.Point   { return wos.Pt(math.NaN(), math.NaN()) }

func TestNewSolverRejectsInvalidConfig(t *testing.T) {
	valid := wos.Config{Width: 4, Height: 3, WalksPerCell: 2, MaxWalkLength: 10, StopTolerance: 1e-3}
	solver, err := wos.NewSolver(valid)
	require.NoError(t, err)
	require.Equal(t, valid, solver.Config())

	cases := map[string]func(*wos.Config){
		"zero width":         func(c *wos.Config) { c.Width = 0 },
		"negative height":    func(c *wos.Config) { c.Height = -1 },
		"zero walks":         func(c *wos.Config) { c.WalksPerCell = 0 },
		"zero walk length":   func(c *wos.Config) { c.MaxWalkLength = 0 },
		"zero tolerance":     func(c *wos.Config) { c.StopTolerance = 0 },
		"negative tolerance": func(c *wos.Config) { c.StopTolerance = -1 },
		"NaN tolerance":      func(c *wos.Config) { c.StopTolerance = math.NaN() },
		"inf tolerance":      func(c *wos.Config) { c.StopTolerance = math.Inf(1) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			mutate(&cfg)
			s, err := wos.NewSolver(cfg)
			require.ErrorIs(t, err, wos.ErrInvalidConfig)
			require.Nil(t, s)
		})
	}
}

// SolverSuite exercises complete solves.
type SolverSuite struct {
	suite.Suite
	square *wos.Composite
}

func (s *SolverSuite) SetupTest() {
	s.square = unitSquare(s.T())
}

func (s *SolverSuite) newSolver(cfg wos.Config, opts ...wos.Option) *wos.Solver {
	solver, err := wos.NewSolver(cfg, opts...)
	require.NoError(s.T(), err)
	return solver
}

// TestGridLength: the result always has Width*Height values.
func (s *SolverSuite) TestGridLength() {
	var a wos.Composite
	require.NoError(s.T(), a.PushLine(wos.Pt(0.1, 0), wos.Pt(0.5, 1)))
	require.NoError(s.T(), a.PushLine(wos.Pt(0.3, 0.5), wos.Pt(0.7, 0.5)))
	require.NoError(s.T(), a.PushLine(wos.Pt(0.5, 1), wos.Pt(0.9, 0)))

	for _, res := range [][2]int{{1, 1}, {7, 3}, {3, 7}, {20, 10}} {
		for _, boundary := range []*wos.Composite{s.square, &a} {
			solver := s.newSolver(wos.Config{
				Width: res[0], Height: res[1],
				WalksPerCell: 3, MaxWalkLength: 20, StopTolerance: 1e-3,
			})
			grid, err := solver.Solve(boundary, linear)
			require.NoError(s.T(), err)
			require.Len(s.T(), grid.Values, res[0]*res[1])
			require.Equal(s.T(), res[0], grid.Width)
			require.Equal(s.T(), res[1], grid.Height)
			require.Equal(s.T(), int64(3*res[0]*res[1]), grid.Stats.Walks)
			require.Equal(s.T(), grid.Stats.Walks, grid.Stats.Stopped+grid.Stats.Exhausted)
		}
	}
}

// TestConstantBoundary: constant boundary data has the constant solution.
func (s *SolverSuite) TestConstantBoundary() {
	const c = 3.25
	solver := s.newSolver(wos.Config{
		Width: 10, Height: 10,
		WalksPerCell: 200, MaxWalkLength: 100, StopTolerance: 1e-3,
	})
	grid, err := solver.Solve(s.square, func(wos.Point) float64 { return c })
	require.NoError(s.T(), err)
	for i, v := range grid.Values {
		require.InDelta(s.T(), c, v, 0.05, "cell %d", i)
	}
}

// TestLinearBoundary: the harmonic extension of x+y is x+y itself.
func (s *SolverSuite) TestLinearBoundary() {
	solver := s.newSolver(wos.Config{
		Width: 50, Height: 50,
		WalksPerCell: 200, MaxWalkLength: 100, StopTolerance: math.Pow(2, -10),
	}, wos.WithSeed(1))
	grid, err := solver.Solve(s.square, linear)
	require.NoError(s.T(), err)
	require.Len(s.T(), grid.Values, 2500)

	center := grid.Index(25, 25)
	require.Equal(s.T(), wos.Pt(0.5, 0.5), grid.Coord(center))

	// A single cell at 200 walks has a standard deviation of about 0.04, so
	// compare the mean residual of the 7×7 block around the centre.
	var sum float64
	var n int
	for row := 22; row <= 28; row++ {
		for col := 22; col <= 28; col++ {
			i := grid.Index(col, row)
			sum += grid.Values[i] - linear(grid.Coord(i))
			n++
		}
	}
	require.InDelta(s.T(), 0, sum/float64(n), 0.05)
	require.InDelta(s.T(), 1.0, grid.Values[center], 0.2)
}

// TestLinearBoundaryCenter: with enough walks a single cell converges.
func (s *SolverSuite) TestLinearBoundaryCenter() {
	solver := s.newSolver(wos.Config{
		Width: 2, Height: 2,
		WalksPerCell: 4000, MaxWalkLength: 100, StopTolerance: math.Pow(2, -10),
	}, wos.WithSeed(7))
	grid, err := solver.Solve(s.square, linear)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 1.0, grid.At(1, 1), 0.05)
	// Cell (0, 0) sits on the boundary corner and stops immediately.
	require.Equal(s.T(), 0.0, grid.At(0, 0))
}

// TestEmptyBoundary: no boundary, no grid.
func (s *SolverSuite) TestEmptyBoundary() {
	solver := s.newSolver(wos.Config{Width: 4, Height: 4, WalksPerCell: 1, MaxWalkLength: 10, StopTolerance: 1e-3})
	grid, err := solver.Solve(&wos.Composite{}, linear)
	require.ErrorIs(s.T(), err, wos.ErrEmptyBoundary)
	require.Nil(s.T(), grid)

	grid, err = solver.Solve(nil, linear)
	require.ErrorIs(s.T(), err, wos.ErrEmptyBoundary)
	require.Nil(s.T(), grid)
}

// TestNilBoundaryFunc is rejected before any walk runs.
func (s *SolverSuite) TestNilBoundaryFunc() {
	solver := s.newSolver(wos.Config{Width: 2, Height: 2, WalksPerCell: 1, MaxWalkLength: 10, StopTolerance: 1e-3})
	_, err := solver.Solve(s.square, nil)
	require.ErrorIs(s.T(), err, wos.ErrNilBoundaryFunc)
}

// TestMissingClosestPointIsFatal: one failing query fails the whole solve.
func (s *SolverSuite) TestMissingClosestPointIsFatal() {
	var broken wos.Composite
	broken.Push(nanCurve{})
	solver := s.newSolver(wos.Config{Width: 8, Height: 8, WalksPerCell: 4, MaxWalkLength: 10, StopTolerance: 1e-3})
	grid, err := solver.Solve(&broken, linear)
	require.Nil(s.T(), grid)
	require.ErrorIs(s.T(), err, wos.ErrNoClosestPoint)

	var werr *wos.WalkError
	require.True(s.T(), errors.As(err, &werr))
	require.Equal(s.T(), 0, werr.Step)
	require.Equal(s.T(), 0, werr.Walk)
}

// TestSeedIsReproducible: seeded solves don't depend on the worker count.
func (s *SolverSuite) TestSeedIsReproducible() {
	cfg := wos.Config{Width: 12, Height: 9, WalksPerCell: 5, MaxWalkLength: 50, StopTolerance: 1e-3}
	a, err := s.newSolver(cfg, wos.WithSeed(42), wos.WithWorkers(1)).Solve(s.square, linear)
	require.NoError(s.T(), err)
	b, err := s.newSolver(cfg, wos.WithSeed(42), wos.WithWorkers(8)).Solve(s.square, linear)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Values, b.Values)
	require.Equal(s.T(), a.Stats, b.Stats)

	c, err := s.newSolver(cfg, wos.WithSeed(43)).Solve(s.square, linear)
	require.NoError(s.T(), err)
	require.NotEqual(s.T(), a.Values, c.Values)
}

// TestCancelledContext aborts without a grid.
func (s *SolverSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	solver := s.newSolver(wos.Config{Width: 16, Height: 16, WalksPerCell: 10, MaxWalkLength: 100, StopTolerance: 1e-3})
	grid, err := solver.SolveContext(ctx, s.square, linear)
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Nil(s.T(), grid)
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func TestWalkStops(t *testing.T) {
	solver, err := wos.NewSolver(wos.Config{Width: 1, Height: 1, WalksPerCell: 1, MaxWalkLength: 1000, StopTolerance: 1e-4})
	require.NoError(t, err)
	square := unitSquare(t)
	rng := rand.New(rand.NewPCG(1, 2))
	stopped := 0
	for range 100 {
		res, err := solver.Walk(square, wos.Pt(0.3, 0.6), rng)
		require.NoError(t, err)
		if res.State != wos.Stopped {
			continue
		}
		stopped++
		p, ok := square.ClosestPoint(res.Terminal)
		require.True(t, ok)
		require.Less(t, p.Distance(res.Terminal), 1e-4)
		require.Greater(t, res.Steps, 0)
	}
	require.Greater(t, stopped, 0)
}

func TestWalkStartsOnBoundary(t *testing.T) {
	solver, err := wos.NewSolver(wos.Config{Width: 1, Height: 1, WalksPerCell: 1, MaxWalkLength: 10, StopTolerance: 1e-6})
	require.NoError(t, err)
	res, err := solver.Walk(unitSquare(t), wos.Pt(0.5, 0), rand.New(rand.NewPCG(0, 0)))
	require.NoError(t, err)
	require.Equal(t, wos.WalkResult{Terminal: wos.Pt(0.5, 0), Steps: 0, State: wos.Stopped}, res)
}

func TestWalkExhausted(t *testing.T) {
	// No walk gets within 1e-300 of the boundary in three jumps.
	solver, err := wos.NewSolver(wos.Config{Width: 1, Height: 1, WalksPerCell: 1, MaxWalkLength: 3, StopTolerance: 1e-300})
	require.NoError(t, err)
	res, err := solver.Walk(unitSquare(t), wos.Pt(0.5, 0.5), rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	require.Equal(t, wos.Exhausted, res.State)
	require.Equal(t, 3, res.Steps)
	require.Equal(t, "exhausted", res.State.String())
}

func TestWalkNoBoundary(t *testing.T) {
	solver, err := wos.NewSolver(wos.Config{Width: 1, Height: 1, WalksPerCell: 1, MaxWalkLength: 10, StopTolerance: 1e-3})
	require.NoError(t, err)
	res, err := solver.Walk(&wos.Composite{}, wos.Pt(0.2, 0.2), rand.New(rand.NewPCG(0, 0)))
	require.ErrorIs(t, err, wos.ErrNoClosestPoint)
	require.Equal(t, wos.Walking, res.State)
	require.Equal(t, wos.Pt(0.2, 0.2), res.Terminal)
}
