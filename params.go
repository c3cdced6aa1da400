package interpolation

import (
	"encoding/json"
	"fmt"
	"math"
)

// ParametersLiteral is a literal representation of the parameters of an experiment.
// It has public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The NewParametersFromLiteral function is used to
// generate the actual checked parameters from the literal representation.
//
// Users must set the interval [A, B], the largest number of interpolation
// segments MaxNodes reached by the error tables, and the number Subdivisions of
// nodes inserted between consecutive interpolation nodes to measure the error.
//
// If Bounded is set, the endpoints of [A, B] are added to the interpolation nodes
// before refinement, so that the error is also measured between the endpoints and
// node placements that stay strictly inside the interval.
type ParametersLiteral struct {
	A, B         float64
	MaxNodes     int
	Subdivisions int
	Bounded      bool `json:",omitempty"`
}

// Parameters represents a checked parameter set. Its fields are private and
// immutable. See ParametersLiteral for user-specified parameters.
type Parameters struct {
	a, b         float64
	maxNodes     int
	subdivisions int
	bounded      bool
}

// NewParametersFromLiteral instantiates a set of Parameters from a ParametersLiteral.
// It returns the empty parameters Parameters{} and a non-nil error if the specified parameters are invalid.
// An interval given with A > B is normalized.
func NewParametersFromLiteral(pl ParametersLiteral) (Parameters, error) {

	if math.IsNaN(pl.A) || math.IsInf(pl.A, 0) || math.IsNaN(pl.B) || math.IsInf(pl.B, 0) {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: interval [%v, %v] is not finite", pl.A, pl.B)
	}

	if pl.A == pl.B {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: interval [%v, %v] is degenerate", pl.A, pl.B)
	}

	if pl.MaxNodes < 1 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: MaxNodes=%d < 1", pl.MaxNodes)
	}

	if pl.Subdivisions < 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Subdivisions=%d < 0", pl.Subdivisions)
	}

	a, b := pl.A, pl.B
	if a > b {
		a, b = b, a
	}

	return Parameters{
		a:            a,
		b:            b,
		maxNodes:     pl.MaxNodes,
		subdivisions: pl.Subdivisions,
		bounded:      pl.Bounded,
	}, nil
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		A:            p.a,
		B:            p.b,
		MaxNodes:     p.maxNodes,
		Subdivisions: p.subdivisions,
		Bounded:      p.bounded,
	}
}

// A returns the lower bound of the interval.
func (p Parameters) A() float64 {
	return p.a
}

// B returns the upper bound of the interval.
func (p Parameters) B() float64 {
	return p.b
}

// MaxNodes returns the largest number of interpolation segments of the error tables.
func (p Parameters) MaxNodes() int {
	return p.maxNodes
}

// Subdivisions returns the number of nodes inserted between consecutive nodes to measure the error.
func (p Parameters) Subdivisions() int {
	return p.subdivisions
}

// Bounded returns true if the interval endpoints are added to the nodes before refinement.
func (p Parameters) Bounded() bool {
	return p.bounded
}

// Equal compares two sets of parameters for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return p == *other
}

// MarshalBinary returns a []byte representation of the parameter set.
// This representation corresponds to the one returned by MarshalJSON.
func (p Parameters) MarshalBinary() ([]byte, error) {
	return p.MarshalJSON()
}

// UnmarshalBinary decodes a []byte into a parameter set struct.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	return p.UnmarshalJSON(data)
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the encoding/json package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the encoding/json package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
