package prob

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultGrid is the number of quantile steps used when a Pbox is built
// without an explicit grid resolution.
const DefaultGrid = 64

// Pbox bounds an unknown distribution on [0,1] by a pair of quantile
// staircases sampled at a fixed probability grid: Left[k] <= Q(p_k) <= Right[k]
// for increasing p_k, plus an envelope on the first two moments. Representing
// the bound in quantile space (rather than CDF space) is what lets Mul/Add/Sub
// use the Williamson-Downs discrete convolution algorithm directly.
type Pbox struct {
	Left  []float64 // ascending lower quantile bound, len == Grid
	Right []float64 // ascending upper quantile bound, len == Grid

	MeanLo, MeanHi float64
	VarLo, VarHi   float64
}

// NewDegeneratePbox builds a Pbox representing an exact scalar x, with a
// flat Left==Right==x quantile function and zero-width moment envelope.
func NewDegeneratePbox(x float64, grid int) Pbox {
	if grid <= 0 {
		grid = DefaultGrid
	}
	left := make([]float64, grid)
	right := make([]float64, grid)
	for i := range left {
		left[i] = x
		right[i] = x
	}
	return Pbox{Left: left, Right: right, MeanLo: x, MeanHi: x, VarLo: 0, VarHi: 0}
}

// NewIntervalPbox builds a Pbox representing an Interval [lo,hi] with no
// further distributional information: every quantile level is bounded by
// [lo,hi], and the mean/variance envelope is the widest consistent with that.
func NewIntervalPbox(iv Interval, grid int) Pbox {
	if grid <= 0 {
		grid = DefaultGrid
	}
	left := make([]float64, grid)
	right := make([]float64, grid)
	for i := range left {
		left[i] = iv.Lo
		right[i] = iv.Hi
	}
	width := iv.Hi - iv.Lo
	return Pbox{
		Left: left, Right: right,
		MeanLo: iv.Lo, MeanHi: iv.Hi,
		VarLo: 0, VarHi: width * width / 4,
	}
}

// Tag identifies Pbox as TagPbox.
func (p Pbox) Tag() Tag { return TagPbox }

func resample(src []float64, n int) []float64 {
	if len(src) == n {
		return src
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		// Nearest-neighbour resample onto the new grid; adequate because the
		// staircases are piecewise constant quantile bounds, not smooth curves.
		srcIdx := i * len(src) / n
		if srcIdx >= len(src) {
			srcIdx = len(src) - 1
		}
		out[i] = src[srcIdx]
	}
	return out
}

func commonGrid(a, b Pbox) (aL, aR, bL, bR []float64, n int) {
	n = len(a.Left)
	if len(b.Left) > n {
		n = len(b.Left)
	}
	return resample(a.Left, n), resample(a.Right, n), resample(b.Left, n), resample(b.Right, n), n
}

// discreteConv applies the Williamson-Downs discrete convolution to combine
// two quantile staircases under independence via the binary operator op.
// zU (upper bound) takes the min over anti-diagonal i+j==k+n; zL (lower
// bound) takes the max over anti-diagonal i+j==k+1 (1-indexed).
func discreteConv(aL, aU, bL, bU []float64, n int, op func(x, y float64) float64) (zL, zU []float64) {
	zL = make([]float64, n)
	zU = make([]float64, n)
	for k := 1; k <= n; k++ {
		minV := math.Inf(1)
		for i := 1; i <= n; i++ {
			j := k + n - i
			if j < 1 || j > n {
				continue
			}
			if v := op(aU[i-1], bU[j-1]); v < minV {
				minV = v
			}
		}
		zU[k-1] = minV

		maxV := math.Inf(-1)
		for i := 1; i <= n; i++ {
			j := k + 1 - i
			if j < 1 || j > n {
				continue
			}
			if v := op(aL[i-1], bL[j-1]); v > maxV {
				maxV = v
			}
		}
		zL[k-1] = maxV
	}
	floats.Sort(zL)
	floats.Sort(zU)
	return zL, zU
}

// Mul computes the independence convolution a*b (spec.md §4.1 Pbox row).
func (p Pbox) Mul(other Value) (Value, error) {
	o, ok := other.(Pbox)
	if !ok {
		return nil, tagMismatch("Pbox.Mul", p, other)
	}
	aL, aR, bL, bR, n := commonGrid(p, o)
	zL, zU := discreteConv(aL, aR, bL, bR, n, func(x, y float64) float64 { return x * y })

	meanLo := p.MeanLo * o.MeanLo
	meanHi := p.MeanHi * o.MeanHi
	varHi := o.MeanHi*o.MeanHi*p.VarHi + p.MeanHi*p.MeanHi*o.VarHi + p.VarHi*o.VarHi

	return Pbox{Left: zL, Right: zU, MeanLo: meanLo, MeanHi: meanHi, VarLo: 0, VarHi: varHi}, nil
}

// Comp reflects the Pbox: Y=1-X has quantile Q_Y(p) = 1 - Q_X(1-p), so the
// bound arrays reverse order and are subtracted from 1.
func (p Pbox) Comp() Value {
	n := len(p.Left)
	left := make([]float64, n)
	right := make([]float64, n)
	for k := 0; k < n; k++ {
		left[k] = 1 - p.Right[n-1-k]
		right[k] = 1 - p.Left[n-1-k]
	}
	return Pbox{
		Left: left, Right: right,
		MeanLo: 1 - p.MeanHi, MeanHi: 1 - p.MeanLo,
		VarLo: p.VarLo, VarHi: p.VarHi,
	}
}

// Add computes the independence convolution a+b. The result is not clamped
// into [0,1]; belief's enumerateFull and enumeratePIE call Add on partial sums.
func (p Pbox) Add(other Value) (Value, error) {
	o, ok := other.(Pbox)
	if !ok {
		return nil, tagMismatch("Pbox.Add", p, other)
	}
	aL, aR, bL, bR, n := commonGrid(p, o)
	zL, zU := discreteConv(aL, aR, bL, bR, n, func(x, y float64) float64 { return x + y })
	return Pbox{
		Left: zL, Right: zU,
		MeanLo: p.MeanLo + o.MeanLo, MeanHi: p.MeanHi + o.MeanHi,
		VarLo: p.VarLo + o.VarLo, VarHi: p.VarHi + o.VarHi,
	}, nil
}

// Sub computes a-b as the convolution with the subtraction operator directly,
// rather than routing through Add and Comp (which reflects about 1, not 0).
func (p Pbox) Sub(other Value) (Value, error) {
	o, ok := other.(Pbox)
	if !ok {
		return nil, tagMismatch("Pbox.Sub", p, other)
	}
	aL, aR, bL, bR, n := commonGrid(p, o)
	zL, zU := discreteConv(aL, aR, bL, bR, n, func(x, y float64) float64 { return x - y })
	return Pbox{
		Left: zL, Right: zU,
		MeanLo: p.MeanLo - o.MeanHi, MeanHi: p.MeanHi - o.MeanLo,
		VarLo: 0, VarHi: p.VarHi + o.VarHi,
	}, nil
}

// IsZeroOrOne reports whether the entire quantile staircase collapses to 0 or to 1.
func (p Pbox) IsZeroOrOne() bool {
	lo, hi := p.Bounds()
	return (lo == 0 && hi == 0) || (lo == 1 && hi == 1)
}

// InRange reports whether every sample in Left/Right lies within [-epsilon, 1+epsilon].
func (p Pbox) InRange(epsilon float64) bool {
	lo, hi := p.Bounds()
	return lo >= -epsilon && hi <= 1+epsilon
}

// Bounds returns the widest [lo,hi] envelope across the whole grid.
func (p Pbox) Bounds() (lo, hi float64) {
	lo = floats.Min(p.Left)
	hi = floats.Max(p.Right)
	return lo, hi
}

// ApproxMean estimates E[X] from the quantile staircases via the midpoint
// Riemann-sum identity E[X] = integral_0^1 Q(p) dp, approximated as the
// unweighted sample mean of each bound array.
func (p Pbox) ApproxMean() (lo, hi float64) {
	return stat.Mean(p.Left, nil), stat.Mean(p.Right, nil)
}

// String renders a compact diagnostic summary.
func (p Pbox) String() string {
	lo, hi := p.Bounds()
	return fmt.Sprintf("Pbox[grid=%d, bounds=[%.4f,%.4f], mean=[%.4f,%.4f]]", len(p.Left), lo, hi, p.MeanLo, p.MeanHi)
}
