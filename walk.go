package wos

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// WalkState is the state of a single walk.
type WalkState int

const (
	// Walking is the state of a walk that hasn't terminated. A walk that
	// failed reports this state together with its error.
	Walking WalkState = iota
	// Stopped walks came within the stop tolerance of the boundary.
	Stopped
	// Exhausted walks took the maximum number of steps without stopping.
	Exhausted
)

func (s WalkState) String() string {
	switch s {
	case Walking:
		return "walking"
	case Stopped:
		return "stopped"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("WalkState(%d)", int(s))
	}
}

// WalkResult describes how a walk ended.
type WalkResult struct {
	// Terminal is the walk's last position. The boundary function is
	// evaluated here.
	Terminal Point
	// Steps is the number of jumps taken.
	Steps int
	State WalkState
}

// Walk runs a single walk on spheres from start, drawing angles from rng.
//
// Each step jumps to a uniformly random point on the circle around the
// current position whose radius is the distance to the nearest boundary
// point. The walk stops once that distance drops below the stop tolerance,
// or after the configured maximum number of jumps, in which case the last
// position is used as is.
//
// If the boundary has no closest point for the current position, Walk
// returns [ErrNoClosestPoint] along with the position and step count at
// which it happened.
func (s *Solver) Walk(boundary *Composite, start Point, rng *rand.Rand) (WalkResult, error) {
	cur := start
	steps := 0
	for {
		cp, ok := boundary.ClosestPoint(cur)
		if !ok {
			return WalkResult{Terminal: cur, Steps: steps, State: Walking}, ErrNoClosestPoint
		}
		radius := cur.Distance(cp)
		if radius < s.cfg.StopTolerance {
			return WalkResult{Terminal: cur, Steps: steps, State: Stopped}, nil
		}
		th := rng.Float64() * 2 * math.Pi
		cur = cur.Translate(VecFromAngle(th).Mul(radius))
		steps++
		if steps >= s.cfg.MaxWalkLength {
			return WalkResult{Terminal: cur, Steps: steps, State: Exhausted}, nil
		}
	}
}
