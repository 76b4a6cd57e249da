package prob

import "fmt"

// Promote widens two Values to a common Tag (Scalar -> Interval -> Pbox) so
// they can be combined by Mul/Comp/Add/Sub even when constructed with
// different concrete types. belief.Compute never calls Promote itself (all
// inputs to one Compute call must share a Tag, per ErrMixedProbabilityTags);
// Promote exists for collaborators (tests, the Loader) that may need to
// compare or combine Values of different tags ad hoc.
func Promote(a, b Value) (Value, Value) {
	wa, wb := widest(a.Tag(), b.Tag())
	return widenTo(a, wa), widenTo(b, wb)
}

func widest(a, b Tag) (Tag, Tag) {
	if a > b {
		return a, a
	}
	return b, b
}

func widenTo(v Value, tag Tag) Value {
	if v.Tag() == tag {
		return v
	}
	switch tag {
	case TagInterval:
		lo, hi := v.Bounds()
		return NewInterval(lo, hi)
	case TagPbox:
		switch x := v.(type) {
		case Scalar:
			return NewDegeneratePbox(float64(x), DefaultGrid)
		case Interval:
			return NewIntervalPbox(x, DefaultGrid)
		}
	}
	return v
}

// Degenerate builds the certain-true (x=1) or certain-false (x=0) Value of
// the given Tag, used by belief's diamond conditioning to force a
// highest_nodes member to a fixed state (spec.md §4.5).
func Degenerate(tag Tag, one bool) Value {
	x := 0.0
	if one {
		x = 1.0
	}
	switch tag {
	case TagInterval:
		return NewInterval(x, x)
	case TagPbox:
		return NewDegeneratePbox(x, DefaultGrid)
	default:
		return Scalar(x)
	}
}

// CheckRange validates v against [-epsilon, 1+epsilon], returning
// ErrOutOfRange (wrapped with context) if it escapes those bounds.
func CheckRange(op string, v Value, epsilon float64) error {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	if !v.InRange(epsilon) {
		lo, hi := v.Bounds()
		return outOfRangeBounds(op, lo, hi, epsilon)
	}
	return nil
}

func outOfRangeBounds(op string, lo, hi, epsilon float64) error {
	return fmt.Errorf("%w: %s produced [%.17g, %.17g] (epsilon=%.3g)", ErrOutOfRange, op, lo, hi, epsilon)
}
