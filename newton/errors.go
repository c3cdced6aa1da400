package newton

import "errors"

// Validation errors returned by NewPolynomial and Polynomial.Extend.
// They are wrapped with the name of the failing operation; match them with errors.Is.
var (
	// ErrEmpty is returned when no interpolation node is given.
	ErrEmpty = errors.New("newton: empty node sequence")

	// ErrLengthMismatch is returned when the node and value sequences differ in length.
	ErrLengthMismatch = errors.New("newton: node and value sequences differ in length")

	// ErrNonFiniteNode is returned when a node is NaN or infinite.
	ErrNonFiniteNode = errors.New("newton: non-finite node")

	// ErrDuplicateNode is returned when two nodes are equal, for which the
	// divided differences are undefined.
	ErrDuplicateNode = errors.New("newton: duplicate node")
)
