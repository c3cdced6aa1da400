package split

import (
	"fmt"

	"github.com/kirillov-n-s/polynomial-interpolation/utils"
	"github.com/kirillov-n-s/polynomial-interpolation/utils/sampling"
)

// drawsPerNode bounds the number of draws of a random Split to drawsPerNode*(n+1).
const drawsPerNode = 64

// NewRandom returns a Split drawing n+1 distinct abscissas uniformly in [lo, hi)
// from s, sorted in increasing order. With a sampling.KeyedPRNG the sequence
// of node sets is reproducible.
//
// A degenerate interval lo == hi yields n+1 copies of lo. The returned Split
// panics if s fails, or if the interval holds too few floats to find n+1
// distinct draws.
func NewRandom(s sampling.Sampler) Split {
	return func(a, b float64, n int) (x []float64) {

		checkCount("Random", n)

		lo, hi := utils.MinMaxFloat64(a, b)

		x = make([]float64, 0, n+1)

		if lo == hi {
			for len(x) < n+1 {
				x = append(x, lo)
			}
			return
		}

		seen := make(map[float64]struct{}, n+1)

		for draws := 0; len(x) < n+1; draws++ {

			if draws == drawsPerNode*(n+1) {
				panic(fmt.Errorf("cannot Random: %d distinct nodes not found in [%v, %v) after %d draws", n+1, lo, hi, draws))
			}

			xi, err := s.Float64(lo, hi)
			if err != nil {
				panic(fmt.Errorf("cannot Random: %w", err))
			}

			if _, exists := seen[xi]; exists {
				continue
			}

			seen[xi] = struct{}{}
			x = append(x, xi)
		}

		utils.SortSlice(x)

		return
	}
}
