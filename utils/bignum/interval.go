package bignum

import (
	"math/big"
)

// Interval is a struct storing information about an interpolation interval.
// Nodes: the number of points used for the interpolation.
// [A, B]: the domain of the interpolation.
type Interval struct {
	Nodes int
	A, B  big.Float
}

// NewInterval returns the Interval [a, b] with nodes points at prec bits of precision.
func NewInterval(a, b float64, nodes int, prec uint) Interval {
	return Interval{
		Nodes: nodes,
		A:     *NewFloat(a, prec),
		B:     *NewFloat(b, prec),
	}
}

// UniformNodes returns interval.Nodes equally spaced points from A to B, both included.
// A single node is placed at A.
func UniformNodes(interval Interval) (nodes []*big.Float) {

	prec := interval.A.Prec()

	n := interval.Nodes

	nodes = make([]*big.Float, n)

	if n == 0 {
		return
	}

	nodes[0] = new(big.Float).Set(&interval.A)

	if n == 1 {
		return
	}

	step := new(big.Float).SetPrec(prec).Sub(&interval.B, &interval.A)
	step.Quo(step, new(big.Float).SetInt64(int64(n-1)))

	for i := 1; i < n-1; i++ {
		xi := new(big.Float).SetPrec(prec).SetInt64(int64(i))
		xi.Mul(xi, step)
		xi.Add(xi, &interval.A)
		nodes[i] = xi
	}

	nodes[n-1] = new(big.Float).Set(&interval.B)

	return
}

// ChebyshevNodes returns the interval.Nodes roots of the Chebyshev polynomial
// of the first kind mapped on [A, B], in increasing order.
func ChebyshevNodes(interval Interval) (nodes []*big.Float) {

	prec := interval.A.Prec()

	n := interval.Nodes

	nodes = make([]*big.Float, n)

	if n == 0 {
		return
	}

	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)

	x := new(big.Float).SetPrec(prec).Add(&interval.A, &interval.B)
	x.Mul(x, half)
	y := new(big.Float).SetPrec(prec).Sub(&interval.B, &interval.A)
	y.Mul(y, half)

	PiOverN := Pi(prec)
	PiOverN.Quo(PiOverN, new(big.Float).SetInt64(int64(n)))

	for k := 1; k < n+1; k++ {
		up := new(big.Float).SetPrec(prec).SetFloat64(float64(k) - 0.5)
		up.Mul(up, PiOverN)
		up = Cos(up)
		up.Mul(up, y)
		up.Add(up, x)
		nodes[n-k] = up
	}

	return
}
