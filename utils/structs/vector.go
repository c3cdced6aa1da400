package structs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/constraints"

	"github.com/kirillov-n-s/polynomial-interpolation/utils/buffer"
)

// Vector is a slice of reals. Node, value and coefficient sequences
// are serialized as Vector[float64].
//
// The binary form is the length as a little endian uint64 followed by
// every component as the little endian bits of a float64; float32
// components are widened on write and narrowed on read.
type Vector[T constraints.Float] []T

// readChunk is the number of components allocated at once when decoding.
const readChunk = 1 << 12

// CopyNew returns a deep copy of the object.
func (v Vector[T]) CopyNew() (vcpy Vector[T]) {
	vcpy = Vector[T](make([]T, len(v)))
	copy(vcpy, v)
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {
	return 8 + len(v)*8
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface, it will be wrapped
// into a bufio.Writer.
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteAsUint64[int](w, len(v)); err != nil {
			return inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteAsUint64Slice[float64](w, v.float64s()); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint64Slice[float64]: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface, it will be wrapped
// into a bufio.Reader.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size int
		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		if size < 0 {
			return n, fmt.Errorf("cannot ReadFrom: invalid vector size %d", size)
		}

		if b, ok := r.(*buffer.Buffer); ok && size > b.Buffered()>>3 {
			return n, fmt.Errorf("cannot ReadFrom: vector size %d exceeds the %d bytes left", size, b.Buffered())
		}

		// Streams do not tell how much is left, so the components
		// are read by chunks and a corrupt size fails on EOF.
		f64 := make([]float64, 0, min(size, readChunk))

		for len(f64) < size {

			m := min(size-len(f64), readChunk)
			f64 = append(f64, make([]float64, m)...)

			if inc, err = buffer.ReadAsUint64Slice[float64](r, f64[len(f64)-m:]); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadAsUint64Slice[float64]: %w", err)
			}

			n += inc
		}

		if cap(*v) < size {
			*v = make([]T, size)
		}

		*v = (*v)[:size]

		for i := range f64 {
			(*v)[i] = T(f64[i])
		}

		return n, nil

	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}

// Equal performs a deep equal. Nil and empty vectors are equal,
// NaN components are never equal.
func (v Vector[T]) Equal(other Vector[T]) bool {
	return cmp.Equal([]T(v), []T(other), cmpopts.EquateEmpty())
}

func (v Vector[T]) float64s() []float64 {
	if f64, ok := any([]T(v)).([]float64); ok {
		return f64
	}
	f64 := make([]float64, len(v))
	for i := range v {
		f64[i] = float64(v[i])
	}
	return f64
}
