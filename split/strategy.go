package split

import (
	"fmt"
)

// Strategy identifies a deterministic node placement.
type Strategy uint8

const (
	// CustomSplit marks nodes placed by a Split that is not a named
	// strategy, such as NewRandom. It has no generator.
	CustomSplit Strategy = iota
	UniformSplit
	ChebyshevSplit
)

var strategyToString = [3]string{"Custom", "Uniform", "Chebyshev"}

var strategyFromString = map[string]Strategy{
	"Uniform":   UniformSplit,
	"Chebyshev": ChebyshevSplit,
}

// Strategies lists the node placements compared by the error tables.
var Strategies = []Strategy{UniformSplit, ChebyshevSplit}

func (s Strategy) String() string {
	if int(s) >= len(strategyToString) {
		return "Unknown"
	}
	return strategyToString[int(s)]
}

// Split returns the generator of the strategy.
func (s Strategy) Split() (Split, error) {
	switch s {
	case CustomSplit:
		return nil, fmt.Errorf("cannot Split: strategy %s has no generator", s)
	case UniformSplit:
		return Uniform, nil
	case ChebyshevSplit:
		return Chebyshev, nil
	default:
		return nil, fmt.Errorf("cannot Split: invalid strategy %s", s)
	}
}

// MarshalText encodes the strategy by its name.
func (s Strategy) MarshalText() ([]byte, error) {
	if _, err := s.Split(); err != nil {
		return nil, fmt.Errorf("cannot MarshalText: %w", err)
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a strategy name.
func (s *Strategy) UnmarshalText(text []byte) error {
	strategy, exists := strategyFromString[string(text)]
	if !exists {
		return fmt.Errorf("cannot UnmarshalText: strategy %q does not exist", text)
	}
	*s = strategy
	return nil
}
