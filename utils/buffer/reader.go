package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"
)

// ReadAsUint64 reads an uint64 from r and stores the result into c with pointer type casting into type T.
func ReadAsUint64[T any](r io.Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- T is a 64-bit type, pointer type cast */
	return ReadUint64(r, (*uint64)(unsafe.Pointer(c)))
}

// ReadAsUint64Slice reads a slice of uint64 from r and stores the result into c with pointer type casting into type T.
func ReadAsUint64Slice[T any](r io.Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- T is a 64-bit type, pointer type cast */
	return ReadUint64Slice(r, *(*[]uint64)(unsafe.Pointer(&c)))
}

// ReadUint64 reads 8 little endian bytes from r into c.
func ReadUint64(r io.Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb [8]byte

	nint, err := io.ReadFull(r, bb[:])
	if err != nil {
		return int64(nint), fmt.Errorf("cannot ReadUint64: %w", err)
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadUint64Slice fills c with words of 8 little endian bytes read from r.
func ReadUint64Slice(r io.Reader, c []uint64) (n int64, err error) {

	var bb [chunk << 3]byte

	for len(c) > 0 {

		m := min(len(c), chunk)

		var inc int
		inc, err = io.ReadFull(r, bb[:m<<3])
		n += int64(inc)

		if err != nil {
			return n, fmt.Errorf("cannot ReadUint64Slice: %w", err)
		}

		for i := 0; i < m; i++ {
			c[i] = binary.LittleEndian.Uint64(bb[i<<3:])
		}

		c = c[m:]
	}

	return
}
