// Package utils implements generic helpers shared by the node generators,
// the interpolation engine and the error metrics.
package utils

import (
	"math"
)

// AllDistinct returns true if all elements in s are distinct, and false otherwise.
func AllDistinct[V comparable](s []V) bool {
	m := make(map[V]struct{}, len(s))
	for _, si := range s {
		if _, exists := m[si]; exists {
			return false
		}
		m[si] = struct{}{}
	}
	return true
}

// AllFinite returns true if no element of s is NaN or an infinity.
func AllFinite(s []float64) bool {
	for _, si := range s {
		if math.IsNaN(si) || math.IsInf(si, 0) {
			return false
		}
	}
	return true
}

// MinMaxFloat64 returns (min(a, b), max(a, b)).
func MinMaxFloat64(a, b float64) (min, max float64) {
	if a <= b {
		return a, b
	}
	return b, a
}
