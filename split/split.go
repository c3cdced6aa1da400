// Package split implements the node generators feeding the interpolation engine:
// uniform and Chebyshev placement of n+1 abscissas on an interval, and the
// uniform refinement of an existing node sequence used to measure the error.
//
// Every generator returns a newly allocated, strictly increasing sequence.
// Generators do not guard against degenerate intervals: a == b with n >= 1
// yields repeated nodes, which the interpolation engine rejects.
package split

import (
	"fmt"
	"math"

	"github.com/kirillov-n-s/polynomial-interpolation/utils"
)

// Split maps the interval bounds and a node count n to n+1 abscissas.
type Split func(a, b float64, n int) []float64

var (
	_ Split = Uniform
	_ Split = Chebyshev
)

// Uniform returns the n+1 equally spaced abscissas lo + i*(hi-lo)/n, i = 0...n,
// where [lo, hi] is [a, b] normalized. The last node is exactly hi.
// n = 0 yields the single node a.
func Uniform(a, b float64, n int) (x []float64) {

	checkCount("Uniform", n)

	if n == 0 {
		return []float64{a}
	}

	lo, hi := utils.MinMaxFloat64(a, b)

	x = make([]float64, n+1)

	step := (hi - lo) / float64(n)

	for i := 0; i < n; i++ {
		x[i] = lo + float64(i)*step
	}

	x[n] = hi

	return
}

// Chebyshev returns the n+1 roots of the Chebyshev polynomial T_{n+1}
// mapped on [lo, hi] by 0.5(lo+hi) + 0.5(hi-lo)cos((k-0.5)pi/(n+1)), k = 1...n+1,
// in increasing order. All nodes lie strictly inside the interval and cluster
// near its endpoints. n = 0 yields the midpoint.
func Chebyshev(a, b float64, n int) (x []float64) {

	checkCount("Chebyshev", n)

	lo, hi := utils.MinMaxFloat64(a, b)

	m := n + 1

	x = make([]float64, m)

	mid := 0.5 * (lo + hi)
	half := 0.5 * (hi - lo)

	PiOverM := math.Pi / float64(m)

	for k := 1; k < m+1; k++ {
		x[m-k] = mid + half*math.Cos((float64(k)-0.5)*PiOverM)
	}

	return
}

func checkCount(name string, n int) {
	if n < 0 {
		panic(fmt.Errorf("cannot %s: n=%d < 0", name, n))
	}
}
