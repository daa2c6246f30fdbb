// Package wos estimates solutions of the Laplace equation on planar domains
// using the walk-on-spheres Monte Carlo method.
//
// A caller describes the domain's boundary as a [Composite] of curves,
// supplies Dirichlet boundary values as a [BoundaryFunc], and asks a [Solver]
// for a [Grid] of estimates, one per cell of a rectangular grid covering the
// unit square.
//
// # Geometry
//
// [Curve] describes a single parametric piece of the boundary. Curves are
// evaluated at t ∈ [0, 1] and answer closest-point queries. The only curve
// currently provided is the [Line] segment, whose evaluation is a clamped
// linear interpolation between its end points.
//
// A [Composite] is an ordered collection of curves. Its
// [Composite.ClosestPoint] queries every curve and returns the nearest
// candidate, preferring earlier curves on exact ties and skipping candidates
// whose distance is NaN. Composites are built with [Composite.PushLine] or
// [Polygon] and can be written as SVG path data with [Composite.WriteSVG].
//
// # Walk on spheres
//
// The value of a harmonic function at a point equals its average over any
// circle around that point that doesn't cross the boundary. The largest such
// circle has the distance to the nearest boundary point as its radius. A walk
// repeatedly jumps to a uniformly random point on that circle until it comes
// within a tolerance of the boundary, then reports the boundary value there.
// Averaging many walks estimates the solution.
//
// Walks are capped at a maximum number of jumps; a walk that hits the cap
// reports the boundary value at its last position, wherever that is.
//
// # Concurrency
//
// A solve distributes the grid's rows over a bounded number of goroutines.
// The composite and boundary function are shared read-only; every cell draws
// from its own random stream. [WithSeed] makes those streams, and therefore
// the result, reproducible.
//
// Any walk that cannot find a closest boundary point fails the entire solve.
package wos
