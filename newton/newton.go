// Package newton implements polynomial interpolation in Newton form.
//
// The coefficients of the interpolant of (x[0], y[0]), ..., (x[n], y[n]) are the
// divided differences f[x_0], f[x_0, x_1], ..., f[x_0, ..., x_n], computed in O(n^2)
// with the forward-overwrite recurrence
//
//	f[k] <- (f[k+1] - f[k]) / (x[i+k] - x[k]),  i = 1...n, k = 0...n-i,
//
// and the interpolant is evaluated in O(n) as
//
//	P(X) = sum_{i=0}^{n} c[i] * prod_{j<i} (X - x[j]).
package newton

import (
	"fmt"
	"math"

	"github.com/kirillov-n-s/polynomial-interpolation/utils"
	"github.com/kirillov-n-s/polynomial-interpolation/utils/structs"
)

// Polynomial is an interpolation polynomial in Newton form.
// It owns copies of its nodes and coefficients and is never modified after creation,
// so a *Polynomial can be evaluated concurrently.
type Polynomial struct {
	nodes  structs.Vector[float64]
	coeffs structs.Vector[float64]

	// tail[k] = f[x_k, ..., x_n], the last diagonal of the divided-difference table.
	tail structs.Vector[float64]
}

// DividedDifferences returns the divided differences f[x_0], ..., f[x_0, ..., x_n]
// of the points (x[i], y[i]). y is not modified.
//
// The inputs are not validated: len(x) must equal len(y) and the nodes must be
// distinct, else the result contains infinities or NaN. Use NewPolynomial for
// validated inputs.
func DividedDifferences(x, y []float64) (coeffs []float64) {
	coeffs, _ = dividedDifferences(x, y)
	return
}

func dividedDifferences(x, y []float64) (coeffs, tail []float64) {

	n := len(y) - 1

	if n < 0 {
		return []float64{}, []float64{}
	}

	f := utils.CopyNew(y)

	coeffs = make([]float64, n+1)
	tail = make([]float64, n+1)

	coeffs[0] = f[0]
	tail[n] = f[n]

	for i := 1; i <= n; i++ {
		for k := 0; k <= n-i; k++ {
			f[k] = (f[k+1] - f[k]) / (x[i+k] - x[k])
		}
		coeffs[i] = f[0]
		tail[n-i] = f[n-i]
	}

	return
}

// NewPolynomial returns the polynomial of degree at most len(x)-1 interpolating
// the points (x[i], y[i]). The inputs are copied and not modified.
//
// It returns an error wrapping ErrEmpty, ErrLengthMismatch, ErrNonFiniteNode or
// ErrDuplicateNode if the inputs do not define a unique interpolant.
func NewPolynomial(x, y []float64) (p *Polynomial, err error) {

	if err = validate(x, y); err != nil {
		return nil, fmt.Errorf("cannot NewPolynomial: %w", err)
	}

	coeffs, tail := dividedDifferences(x, y)

	return &Polynomial{
		nodes:  utils.CopyNew(x),
		coeffs: coeffs,
		tail:   tail,
	}, nil
}

func validate(x, y []float64) error {

	if len(x) == 0 {
		return ErrEmpty
	}

	if len(x) != len(y) {
		return fmt.Errorf("%w: len(x)=%d != len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}

	if !utils.AllFinite(x) {
		return ErrNonFiniteNode
	}

	if !utils.AllDistinct(x) {
		return ErrDuplicateNode
	}

	return nil
}

// Degree returns the degree bound n of the polynomial, that is, its number of nodes minus one.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Nodes returns a copy of the interpolation nodes.
func (p *Polynomial) Nodes() []float64 {
	return utils.CopyNew(p.nodes)
}

// Coefficients returns a copy of the Newton coefficients f[x_0, ..., x_i].
func (p *Polynomial) Coefficients() []float64 {
	return utils.CopyNew(p.coeffs)
}

// Evaluate returns P(x).
// The terms are summed from the lowest to the highest degree, and every product
// is rounded before being accumulated, so the result does not depend on whether
// the platform fuses multiply-adds.
func (p *Polynomial) Evaluate(x float64) float64 {

	prod, sum := 1.0, 0.0

	for i := range p.coeffs {
		sum += float64(p.coeffs[i] * prod)
		prod *= x - p.nodes[i]
	}

	return sum
}

// EvaluateSlice returns P(x[i]) for every x[i].
func (p *Polynomial) EvaluateSlice(x []float64) (y []float64) {
	y = make([]float64, len(x))
	for i := range x {
		y[i] = p.Evaluate(x[i])
	}
	return
}

// Extend returns the polynomial of degree n+1 interpolating the nodes of p and the
// additional point (x, fx), in O(n) operations. The receiver is not modified.
//
// The coefficients are bitwise equal to those NewPolynomial returns for the
// extended node sequence.
func (p *Polynomial) Extend(x, fx float64) (*Polynomial, error) {

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("cannot Extend: %w", ErrNonFiniteNode)
	}

	for _, xi := range p.nodes {
		if xi == x {
			return nil, fmt.Errorf("cannot Extend: %w: %v", ErrDuplicateNode, x)
		}
	}

	n := len(p.nodes)

	nodes := make([]float64, n+1)
	copy(nodes, p.nodes)
	nodes[n] = x

	// tail[k] = f[x_k, ..., x] from tail[k+1] = f[x_{k+1}, ..., x] and p.tail[k].
	tail := make([]float64, n+1)
	tail[n] = fx
	for k := n - 1; k >= 0; k-- {
		tail[k] = (tail[k+1] - p.tail[k]) / (x - p.nodes[k])
	}

	coeffs := make([]float64, n+1)
	copy(coeffs, p.coeffs)
	coeffs[n] = tail[0]

	return &Polynomial{
		nodes:  nodes,
		coeffs: coeffs,
		tail:   tail,
	}, nil
}
