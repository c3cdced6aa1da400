package interpolation

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/kirillov-n-s/polynomial-interpolation/split"
)

// Row is a line of an error table: the maximum interpolation error of a
// function on n+1 nodes for each deterministic node placement.
type Row struct {
	N         int
	Uniform   float64
	Chebyshev float64
}

// Get returns the error of the row for the given strategy.
func (r Row) Get(strategy split.Strategy) (float64, error) {
	switch strategy {
	case split.UniformSplit:
		return r.Uniform, nil
	case split.ChebyshevSplit:
		return r.Chebyshev, nil
	default:
		return 0, fmt.Errorf("cannot Get: invalid strategy %s", strategy)
	}
}

func (r Row) String() string {
	return fmt.Sprintf("%4d %24.17g %24.17g", r.N, r.Uniform, r.Chebyshev)
}

// TableSizes returns the number of segments of the rows of an error table
// reaching at most maxNodes: n = 1, then n += n/10 + 1. The step grows with n
// so that large tables stay short.
func TableSizes(maxNodes int) (sizes []int) {
	for n := 1; n <= maxNodes; n += n/10 + 1 {
		sizes = append(sizes, n)
	}
	return
}

// NewRow computes the row of the error table of f for n segments.
func NewRow(params Parameters, f func(x float64) float64, n int) (row Row, err error) {

	row.N = n

	for _, strategy := range split.Strategies {

		var t *Trace
		if t, err = NewTrace(params, f, strategy, n); err != nil {
			return Row{}, fmt.Errorf("cannot NewRow: %w", err)
		}

		var e float64
		if e, err = t.Error(); err != nil {
			return Row{}, fmt.Errorf("cannot NewRow: %w", err)
		}

		switch strategy {
		case split.UniformSplit:
			row.Uniform = e
		case split.ChebyshevSplit:
			row.Chebyshev = e
		}
	}

	return
}

// ErrorTable computes the rows of the error table of f for every size of
// TableSizes(params.MaxNodes()). Rows are computed concurrently on at most
// runtime.NumCPU() goroutines, hence f must be safe for concurrent use.
// The rows are ordered by n and do not depend on the scheduling.
func ErrorTable(params Parameters, f func(x float64) float64) (rows []Row, err error) {

	sizes := TableSizes(params.MaxNodes())
	rows = make([]Row, len(sizes))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, n := range sizes {
		i, n := i, n
		g.Go(func() (err error) {
			rows[i], err = NewRow(params, f, n)
			return
		})
	}

	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("cannot ErrorTable: %w", err)
	}

	return
}
