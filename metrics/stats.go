package metrics

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Stats is a struct storing statistics about the pointwise absolute error
// of an interpolant.
type Stats struct {
	MINErr float64
	MAXErr float64
	AVGErr float64
	MEDErr float64
	STDErr float64

	// Log2MAXErr is log2(MAXErr), -Inf for an exact fit.
	Log2MAXErr float64

	Points int
}

func (s Stats) String() string {
	return fmt.Sprintf(`
┌─────────┬──────────────┐
│ Points  │ %12d │
├─────────┼──────────────┤
│MIN Err  │ %12.6e │
│MAX Err  │ %12.6e │
│AVG Err  │ %12.6e │
│MED Err  │ %12.6e │
│STD Err  │ %12.6e │
├─────────┼──────────────┤
│Log2 MAX │ %12.4f │
└─────────┴──────────────┘
`,
		s.Points,
		s.MINErr, s.MAXErr, s.AVGErr, s.MEDErr, s.STDErr,
		s.Log2MAXErr)
}

// GetErrorStats returns the statistics of Diff(truth, approx).
// The standard deviation is the population one.
func GetErrorStats(truth, approx []float64) (s Stats, err error) {

	var diff []float64
	if diff, err = Diff(truth, approx); err != nil {
		return Stats{}, fmt.Errorf("cannot GetErrorStats: %w", err)
	}

	if len(diff) == 0 {
		return Stats{}, fmt.Errorf("cannot GetErrorStats: %w", ErrEmpty)
	}

	data := stats.Float64Data(diff)

	if s.MINErr, err = data.Min(); err != nil {
		return Stats{}, fmt.Errorf("cannot GetErrorStats: %w", err)
	}

	if s.MAXErr, err = data.Max(); err != nil {
		return Stats{}, fmt.Errorf("cannot GetErrorStats: %w", err)
	}

	if s.AVGErr, err = data.Mean(); err != nil {
		return Stats{}, fmt.Errorf("cannot GetErrorStats: %w", err)
	}

	if s.MEDErr, err = data.Median(); err != nil {
		return Stats{}, fmt.Errorf("cannot GetErrorStats: %w", err)
	}

	if s.STDErr, err = data.StandardDeviation(); err != nil {
		return Stats{}, fmt.Errorf("cannot GetErrorStats: %w", err)
	}

	s.Log2MAXErr = math.Log2(s.MAXErr)
	s.Points = len(diff)

	return
}
