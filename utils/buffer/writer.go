package buffer

import (
	"encoding/binary"
	"io"
	"unsafe"
)

// chunk is the number of words staged per call to Write.
const chunk = 64

// WriteAsUint64 casts &T to an *uint64 and writes it to w.
// User must ensure that T can be stored in an uint64.
func WriteAsUint64[T any](w io.Writer, c T) (n int64, err error) {
	/* #nosec G103 -- T is a 64-bit type, pointer type cast */
	return WriteUint64(w, *(*uint64)(unsafe.Pointer(&c)))
}

// WriteAsUint64Slice casts &[]T into *[]uint64 and writes it to w.
// User must ensure that T can be stored in an uint64.
func WriteAsUint64Slice[T any](w io.Writer, c []T) (n int64, err error) {
	/* #nosec G103 -- T is a 64-bit type, pointer type cast */
	return WriteUint64Slice(w, *(*[]uint64)(unsafe.Pointer(&c)))
}

// WriteUint64 writes c into w as 8 little endian bytes.
func WriteUint64(w io.Writer, c uint64) (n int64, err error) {
	var bb [8]byte
	binary.LittleEndian.PutUint64(bb[:], c)
	nint, err := w.Write(bb[:])
	return int64(nint), err
}

// WriteUint64Slice writes every element of c into w as 8 little endian bytes.
func WriteUint64Slice(w io.Writer, c []uint64) (n int64, err error) {

	var bb [chunk << 3]byte

	for len(c) > 0 {

		m := min(len(c), chunk)

		for i := 0; i < m; i++ {
			binary.LittleEndian.PutUint64(bb[i<<3:], c[i])
		}

		var inc int
		inc, err = w.Write(bb[:m<<3])
		n += int64(inc)

		if err != nil {
			return
		}

		c = c[m:]
	}

	return
}
