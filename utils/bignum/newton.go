package bignum

import (
	"fmt"
	"math/big"
)

// NewtonPolynomial is the arbitrary precision Newton form
// P(X) = sum_i Coeffs[i] * prod_{j<i} (X - Nodes[j]).
type NewtonPolynomial struct {
	Nodes  []*big.Float
	Coeffs []*big.Float
}

// DividedDifferences returns the divided differences f[x_0], f[x_0, x_1], ..., f[x_0, ..., x_n]
// of the points (x[i], y[i]). The inputs are not modified.
// The nodes must be distinct, which is not checked.
func DividedDifferences(x, y []*big.Float) (coeffs []*big.Float) {

	if len(x) != len(y) {
		panic(fmt.Errorf("cannot DividedDifferences: len(x)=%d != len(y)=%d", len(x), len(y)))
	}

	n := len(x)

	coeffs = make([]*big.Float, n)

	if n == 0 {
		return
	}

	f := make([]*big.Float, n)
	for i := range y {
		f[i] = new(big.Float).Set(y[i])
	}

	coeffs[0] = new(big.Float).Set(f[0])

	num, den := new(big.Float), new(big.Float)

	for i := 1; i < n; i++ {
		for k := 0; k < n-i; k++ {
			num.Sub(f[k+1], f[k])
			den.Sub(x[i+k], x[k])
			f[k].Quo(num, den)
		}
		coeffs[i] = new(big.Float).Set(f[0])
	}

	return
}

// NewNewtonPolynomial returns the Newton form of the polynomial interpolating (x[i], y[i]).
func NewNewtonPolynomial(x, y []*big.Float) NewtonPolynomial {
	nodes := make([]*big.Float, len(x))
	for i := range x {
		nodes[i] = new(big.Float).Set(x[i])
	}
	return NewtonPolynomial{
		Nodes:  nodes,
		Coeffs: DividedDifferences(x, y),
	}
}

// Evaluate returns P(x), summing the terms from the lowest to the highest degree.
func (p NewtonPolynomial) Evaluate(x *big.Float) (y *big.Float) {

	prec := x.Prec()

	y = new(big.Float).SetPrec(prec)
	prod := new(big.Float).SetPrec(prec).SetInt64(1)
	tmp := new(big.Float).SetPrec(prec)

	for i := range p.Coeffs {
		y.Add(y, tmp.Mul(p.Coeffs[i], prod))
		prod.Mul(prod, tmp.Sub(x, p.Nodes[i]))
	}

	return
}

// NewFloats returns the big.Float representation of x with prec bits of precision.
func NewFloats(x []float64, prec uint) (y []*big.Float) {
	y = make([]*big.Float, len(x))
	for i := range x {
		y[i] = NewFloat(x[i], prec)
	}
	return
}

// Float64s returns the nearest float64 of every element of x.
func Float64s(x []*big.Float) (y []float64) {
	y = make([]float64, len(x))
	for i := range x {
		y[i], _ = x[i].Float64()
	}
	return
}
