package prob

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by CheckRange when a value's bounds leave [0,1]
// by more than epsilon. Mul, Comp, Add and Sub do not check their operands'
// range and never return it.
var ErrOutOfRange = errors.New("prob: value out of range")

// DefaultEpsilon bounds how far a value may drift outside [0,1] before
// CheckRange rejects it as ErrOutOfRange.
const DefaultEpsilon = 1e-9

// Tag identifies which concrete representation a Value holds.
type Tag int

const (
	// TagScalar marks a single exact probability.
	TagScalar Tag = iota
	// TagInterval marks a dependency-free [Lo,Hi] bound.
	TagInterval
	// TagPbox marks a full probability-box (bounding CDF pair + moments).
	TagPbox
)

// String renders a Tag for diagnostics and error messages.
func (t Tag) String() string {
	switch t {
	case TagScalar:
		return "Scalar"
	case TagInterval:
		return "Interval"
	case TagPbox:
		return "Pbox"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// Value is the uniform probability algebra contract implemented by Scalar,
// Interval, and Pbox. All ops are type-preserving: combining two Values of
// the same Tag returns a Value of that Tag. See Promote for mixed-tag use.
type Value interface {
	// Tag reports which concrete representation this Value holds.
	Tag() Tag

	// Mul computes the independent-AND of two Values of the same Tag.
	Mul(other Value) (Value, error)

	// Comp computes 1-a.
	Comp() Value

	// Add computes a componentwise numeric sum (used by belief's diamond
	// enumeration to accumulate weighted terms; the result is not clamped).
	Add(other Value) (Value, error)

	// Sub computes a-b componentwise.
	Sub(other Value) (Value, error)

	// IsZeroOrOne reports whether this Value is exactly 0 or exactly 1
	// (both bounds coincide at the same end of [0,1]).
	IsZeroOrOne() bool

	// InRange reports whether this Value's bounds lie within
	// [-epsilon, 1+epsilon].
	InRange(epsilon float64) bool

	// Bounds returns the [lo,hi] envelope of this Value, interpreted per tag:
	// Scalar returns (x,x), Interval returns (Lo,Hi), Pbox returns the widest
	// quantile bound across the whole grid.
	Bounds() (lo, hi float64)
}

func tagMismatch(op string, a, b Value) error {
	return fmt.Errorf("prob: %s: tag mismatch (%s vs %s)", op, a.Tag(), b.Tag())
}
