package split

import (
	"fmt"

	"github.com/kirillov-n-s/polynomial-interpolation/utils"
)

// Subsplit returns the refinement of x obtained by inserting k equally spaced
// nodes between every pair of consecutive nodes. The output has (len(x)-1)(k+1)+1
// nodes and contains every node of x. x must be strictly increasing.
//
// k = 0, or len(x) <= 1, returns a copy of x.
func Subsplit(x []float64, k int) (xsub []float64) {

	if k < 0 {
		panic(fmt.Errorf("cannot Subsplit: k=%d < 0", k))
	}

	if k == 0 || len(x) <= 1 {
		return utils.CopyNew(x)
	}

	step := k + 1

	xsub = make([]float64, (len(x)-1)*step+1)

	for i := 0; i < len(x)-1; i++ {

		x0, x1 := x[i], x[i+1]
		h := (x1 - x0) / float64(step)

		seg := xsub[i*step : (i+1)*step]

		seg[0] = x0
		for j := 1; j < step; j++ {
			seg[j] = x0 + float64(j)*h
		}
	}

	xsub[len(xsub)-1] = x[len(x)-1]

	return
}

// Bounded returns x with the bounds of [a, b] added in front and at the back
// when they are not already its first and last nodes. Refining the bounded
// sequence covers the whole interval, including the gaps between the endpoints
// and nodes placed strictly inside it.
func Bounded(a, b float64, x []float64) (xb []float64) {

	lo, hi := utils.MinMaxFloat64(a, b)

	if len(x) == 0 {
		if lo == hi {
			return []float64{lo}
		}
		return []float64{lo, hi}
	}

	xb = make([]float64, 0, len(x)+2)

	if x[0] > lo {
		xb = append(xb, lo)
	}

	xb = append(xb, x...)

	if x[len(x)-1] < hi {
		xb = append(xb, hi)
	}

	return
}
