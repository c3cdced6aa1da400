// Package structs implements typed vectors of reals and their serialization.
package structs

// BinarySizer is implemented by objects reporting the size of their binary form.
type BinarySizer interface {
	BinarySize() int
}

var _ BinarySizer = Vector[float64]{}
