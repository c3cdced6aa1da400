package newton

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/zeebo/blake3"

	"github.com/kirillov-n-s/polynomial-interpolation/utils/buffer"
	"github.com/kirillov-n-s/polynomial-interpolation/utils/structs"
)

var _ structs.BinarySizer = (*Polynomial)(nil)

// Equal returns true if p and other have the same nodes and coefficients.
func (p *Polynomial) Equal(other *Polynomial) bool {
	return cmp.Equal(p.nodes, other.nodes) && cmp.Equal(p.coeffs, other.coeffs)
}

// BinarySize returns the serialized size of the object in bytes.
func (p *Polynomial) BinarySize() int {
	return p.nodes.BinarySize() + p.coeffs.BinarySize() + p.tail.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface, it will be wrapped into a bufio.Writer.
func (p *Polynomial) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		for _, v := range []structs.Vector[float64]{p.nodes, p.coeffs, p.tail} {
			if inc, err = v.WriteTo(w); err != nil {
				return n + inc, fmt.Errorf("structs.Vector[float64].WriteTo: %w", err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface, it will be wrapped into a bufio.Reader.
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var nodes, coeffs, tail structs.Vector[float64]

		for _, v := range []*structs.Vector[float64]{&nodes, &coeffs, &tail} {
			if inc, err = v.ReadFrom(r); err != nil {
				return n + inc, fmt.Errorf("structs.Vector[float64].ReadFrom: %w", err)
			}
			n += inc
		}

		if err = validate(nodes, coeffs); err != nil {
			return n, fmt.Errorf("cannot ReadFrom: %w", err)
		}

		if len(tail) != len(nodes) {
			return n, fmt.Errorf("cannot ReadFrom: %w: %d nodes, %d tail values", ErrLengthMismatch, len(nodes), len(tail))
		}

		p.nodes, p.coeffs, p.tail = nodes, coeffs, tail

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p *Polynomial) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// Digest returns the BLAKE3 hash of the binary form of the polynomial.
// Polynomials built from the same nodes and values have the same digest.
func (p *Polynomial) Digest() (digest [32]byte, err error) {
	var data []byte
	if data, err = p.MarshalBinary(); err != nil {
		return digest, fmt.Errorf("cannot Digest: %w", err)
	}
	hasher := blake3.New()
	if _, err = hasher.Write(data); err != nil {
		return digest, fmt.Errorf("cannot Digest: %w", err)
	}
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}
