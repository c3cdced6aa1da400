package buffer

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("Write/Overflow", func(t *testing.T) {
		b := NewBufferSize(4)
		_, err := b.Write([]byte{1, 2, 3, 4, 5})
		require.Error(t, err)
		n, err := b.Write([]byte{1, 2, 3, 4})
		require.NoError(t, err)
		require.Equal(t, 4, n)
		_, err = b.Write([]byte{5})
		require.Error(t, err)
		require.Equal(t, []byte{1, 2, 3, 4}, b.Bytes())
	})

	t.Run("Read", func(t *testing.T) {
		b := NewBuffer([]byte{1, 2, 3})
		require.Equal(t, 3, b.Buffered())

		p := make([]byte, 2)
		n, err := b.Read(p)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, 1, b.Buffered())

		n, err = b.Read(p)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		_, err = b.Read(p)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, 0, b.Buffered())
	})

	t.Run("Uint64", func(t *testing.T) {
		b := NewBufferSize(8)
		n, err := WriteUint64(b, 0x1122334455667788)
		require.NoError(t, err)
		require.Equal(t, int64(8), n)
		require.Equal(t, []byte{0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, b.Bytes())

		var c uint64
		_, err = ReadUint64(b, &c)
		require.NoError(t, err)
		require.Equal(t, uint64(0x1122334455667788), c)

		_, err = ReadUint64(b, nil)
		require.Error(t, err)

		_, err = ReadUint64(b, &c)
		require.Error(t, err)
	})

	t.Run("Float64Slice", func(t *testing.T) {
		values := []float64{-1, 0, 0.5, math.Pi, math.Inf(1)}
		b := NewBufferSize(len(values) << 3)
		n, err := WriteAsUint64Slice(b, values)
		require.NoError(t, err)
		require.Equal(t, int64(len(values)<<3), n)

		have := make([]float64, len(values))
		n, err = ReadAsUint64Slice(b, have)
		require.NoError(t, err)
		require.Equal(t, int64(len(values)<<3), n)
		require.Equal(t, values, have)
	})

	t.Run("Float64Slice/Overflow", func(t *testing.T) {
		b := NewBufferSize(16)
		_, err := WriteAsUint64Slice(b, []float64{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("Float64Slice/Truncated", func(t *testing.T) {
		b := NewBuffer([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
		n, err := ReadAsUint64Slice(b, make([]float64, 2))
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		require.Equal(t, int64(9), n)
	})

	t.Run("Float64Slice/Bufio", func(t *testing.T) {
		// more words than a chunk and than the bufio buffers hold
		values := make([]float64, 1024)
		for i := range values {
			values[i] = float64(i) / 3
		}

		out := new(bytes.Buffer)
		w := bufio.NewWriterSize(out, 64)
		_, err := WriteAsUint64Slice(w, values)
		require.NoError(t, err)
		require.NoError(t, w.Flush())

		have := make([]float64, len(values))
		_, err = ReadAsUint64Slice(bufio.NewReaderSize(out, 64), have)
		require.NoError(t, err)
		require.Equal(t, values, have)
	})
}
