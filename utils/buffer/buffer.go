// Package buffer implements a fixed-size in-memory buffer and the helpers
// writing and reading the little endian 64-bit words of the vector codec.
package buffer

import (
	"fmt"
	"io"
)

// Writer is a writer buffering its output until Flush.
// It is implemented by bufio.Writer and Buffer.
type Writer interface {
	io.Writer
	Flush() (err error)
}

// Reader is a reader reporting how many bytes it holds.
// It is implemented by bufio.Reader and Buffer. For a Buffer, Buffered is
// everything that is left to read.
type Reader interface {
	io.Reader
	Buffered() int
}

// Buffer is a []byte-based Writer and Reader with a fixed capacity:
// writes beyond it fail instead of growing the backing slice.
type Buffer struct {
	buf []byte
	n   int
	off int
}

// NewBuffer returns a Buffer reading data. Writes overwrite data from its start.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{buf: data}
}

// NewBufferSize returns an empty Buffer of size bytes.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// Write copies p at the write offset of b.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if left := len(b.buf) - b.n; len(p) > left {
		return 0, fmt.Errorf("cannot Write: %d bytes do not fit in the %d bytes left", len(p), left)
	}
	n = copy(b.buf[b.n:], p)
	b.n += n
	return
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return nil
}

// Bytes returns the backing slice.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Read copies the bytes at the read offset of b into p.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return
	}
	if b.off == len(b.buf) {
		return 0, io.EOF
	}
	n = copy(p, b.buf[b.off:])
	b.off += n
	return
}

// Buffered returns the number of bytes left to read.
func (b *Buffer) Buffered() int {
	return len(b.buf) - b.off
}
