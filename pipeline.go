package interpolation

import (
	"fmt"

	"github.com/kirillov-n-s/polynomial-interpolation/metrics"
	"github.com/kirillov-n-s/polynomial-interpolation/newton"
	"github.com/kirillov-n-s/polynomial-interpolation/split"
)

// Sample is a node sequence together with the function values at the nodes.
type Sample struct {
	X, Y []float64
}

// Generate places n+1 nodes on [a, b] with s, samples f at the nodes and
// builds the Newton interpolant of the sample.
func Generate(a, b float64, n int, s split.Split, f func(x float64) float64) (sample Sample, p *newton.Polynomial, err error) {

	sample.X = s(a, b, n)
	sample.Y = Apply(sample.X, f)

	if p, err = newton.NewPolynomial(sample.X, sample.Y); err != nil {
		return Sample{}, nil, fmt.Errorf("cannot Generate: %w", err)
	}

	return
}

// Refinement stores a refined node sequence X with the true values Y and the
// interpolant values P at the refined nodes.
type Refinement struct {
	X, Y, P []float64
}

// Subdivide refines x by inserting k nodes between consecutive nodes and
// evaluates both f and p on the refined nodes.
func Subdivide(x []float64, k int, f, p func(x float64) float64) (r Refinement) {
	r.X = split.Subsplit(x, k)
	r.Y = Apply(r.X, f)
	r.P = Apply(r.X, p)
	return
}

// Error returns the maximum absolute error of the interpolant over the refined nodes.
func (r Refinement) Error() (float64, error) {
	return metrics.Error(r.Y, r.P)
}

// Diff returns the pointwise absolute error of the interpolant over the refined nodes.
func (r Refinement) Diff() ([]float64, error) {
	return metrics.Diff(r.Y, r.P)
}

// Stats returns the summary statistics of the pointwise absolute error over the refined nodes.
func (r Refinement) Stats() (metrics.Stats, error) {
	return metrics.GetErrorStats(r.Y, r.P)
}

// Trace is the full data of a single interpolation run: the interpolation
// sample, its interpolant, the refinement and the pointwise error over the
// refined nodes.
type Trace struct {
	Strategy split.Strategy
	N        int

	Sample
	Polynomial *newton.Polynomial

	Refinement Refinement
	Diff       []float64
}

// NewTrace interpolates f on n+1 nodes placed with the given strategy over the
// interval of params, and measures the error on the refinement of the nodes with
// params.Subdivisions() inserted nodes per gap.
func NewTrace(params Parameters, f func(x float64) float64, strategy split.Strategy, n int) (t *Trace, err error) {

	s, err := strategy.Split()
	if err != nil {
		return nil, fmt.Errorf("cannot NewTrace: %w", err)
	}

	return newTrace(params, f, strategy, s, n)
}

// NewTraceWithSplit is identical to NewTrace but places the nodes with an
// arbitrary generator, such as split.NewRandom. The Strategy of the returned
// trace is split.CustomSplit.
func NewTraceWithSplit(params Parameters, f func(x float64) float64, s split.Split, n int) (t *Trace, err error) {
	return newTrace(params, f, split.CustomSplit, s, n)
}

func newTrace(params Parameters, f func(x float64) float64, strategy split.Strategy, s split.Split, n int) (t *Trace, err error) {

	t = &Trace{Strategy: strategy, N: n}

	if t.Sample, t.Polynomial, err = Generate(params.A(), params.B(), n, s, f); err != nil {
		return nil, fmt.Errorf("cannot NewTrace: %w", err)
	}

	x := t.Sample.X
	if params.Bounded() {
		x = split.Bounded(params.A(), params.B(), x)
	}

	t.Refinement = Subdivide(x, params.Subdivisions(), f, t.Polynomial.Evaluate)

	if t.Diff, err = t.Refinement.Diff(); err != nil {
		return nil, fmt.Errorf("cannot NewTrace: %w", err)
	}

	return
}

// Error returns the maximum of the pointwise error of the trace.
func (t *Trace) Error() (float64, error) {
	return t.Refinement.Error()
}
