// Package metrics compares sampled ground truth against an interpolant
// evaluated at the same points.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

var (
	// ErrLengthMismatch is returned when the compared sequences differ in length.
	ErrLengthMismatch = errors.New("metrics: sequences differ in length")

	// ErrEmpty is returned when an aggregate is requested over empty sequences.
	ErrEmpty = errors.New("metrics: empty sequences")
)

// Diff returns the pointwise absolute differences |truth[i] - approx[i]|.
func Diff(truth, approx []float64) (diff []float64, err error) {

	if len(truth) != len(approx) {
		return nil, fmt.Errorf("cannot Diff: %w: len(truth)=%d != len(approx)=%d", ErrLengthMismatch, len(truth), len(approx))
	}

	diff = make([]float64, len(truth))
	for i := range truth {
		diff[i] = math.Abs(truth[i] - approx[i])
	}

	return
}

// Error returns the maximum of Diff(truth, approx), the worst-case absolute error
// over the sampled points. It is NaN if any difference is NaN.
func Error(truth, approx []float64) (max float64, err error) {

	var diff []float64
	if diff, err = Diff(truth, approx); err != nil {
		return 0, fmt.Errorf("cannot Error: %w", err)
	}

	if len(diff) == 0 {
		return 0, fmt.Errorf("cannot Error: %w", ErrEmpty)
	}

	for _, d := range diff {
		if math.IsNaN(d) {
			return math.NaN(), nil
		}
	}

	if max, err = stats.Max(diff); err != nil {
		return 0, fmt.Errorf("cannot Error: %w", err)
	}

	return
}
