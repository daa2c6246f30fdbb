package wos

// Curve is a single parametric piece of a boundary.
//
// Curves are evaluated at t ∈ [0, 1]. Implementations must be immutable, as a
// [Composite] shares its curves with every concurrently running walk.
//
// [Line] is currently the only implementation. New primitives extend the
// closest-point capability by implementing this interface; the [Solver] only
// ever talks to a [Composite].
type Curve interface {
	// Eval returns the point at parameter t. Values of t outside [0, 1] are
	// clamped to the curve's end points.
	Eval(t float64) Point
	// ClosestPoint returns the point on the curve nearest to pt. It returns
	// false if no answer can be computed, for example because pt is not
	// finite.
	ClosestPoint(pt Point) (Point, bool)
	// Start returns the point at t = 0.
	Start() Point
	// End returns the point at t = 1.
	End() Point
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
