package prob

// Scalar is an exact probability in [0,1], backed by IEEE-754 double arithmetic.
type Scalar float64

// Tag identifies Scalar as TagScalar.
func (s Scalar) Tag() Tag { return TagScalar }

// Mul computes s*other for two Scalars (independent AND).
func (s Scalar) Mul(other Value) (Value, error) {
	o, ok := other.(Scalar)
	if !ok {
		return nil, tagMismatch("Scalar.Mul", s, other)
	}
	return Scalar(float64(s) * float64(o)), nil
}

// Comp computes 1-s.
func (s Scalar) Comp() Value { return Scalar(1 - float64(s)) }

// Add computes s+other.
func (s Scalar) Add(other Value) (Value, error) {
	o, ok := other.(Scalar)
	if !ok {
		return nil, tagMismatch("Scalar.Add", s, other)
	}
	return Scalar(float64(s) + float64(o)), nil
}

// Sub computes s-other.
func (s Scalar) Sub(other Value) (Value, error) {
	o, ok := other.(Scalar)
	if !ok {
		return nil, tagMismatch("Scalar.Sub", s, other)
	}
	return Scalar(float64(s) - float64(o)), nil
}

// IsZeroOrOne reports whether s is exactly 0 or exactly 1.
func (s Scalar) IsZeroOrOne() bool { return float64(s) == 0 || float64(s) == 1 }

// InRange reports whether s lies within [-epsilon, 1+epsilon].
func (s Scalar) InRange(epsilon float64) bool {
	return float64(s) >= -epsilon && float64(s) <= 1+epsilon
}

// Bounds returns (s,s); a Scalar has no width.
func (s Scalar) Bounds() (lo, hi float64) { return float64(s), float64(s) }
