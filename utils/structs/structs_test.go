package structs

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func TestStructs(t *testing.T) {
	t.Run("Vector/F64/Serialization&Equatable", func(t *testing.T) {
		testVector[float64](t)
	})

	t.Run("Vector/F32/Serialization&Equatable", func(t *testing.T) {
		testVector[float32](t)
	})

	t.Run("Vector/F64/Empty", func(t *testing.T) {
		v := Vector[float64]{}
		data, err := v.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, 8)
		vNew := Vector[float64]{1, 2, 3}
		require.NoError(t, vNew.UnmarshalBinary(data))
		require.Len(t, vNew, 0)
	})

	t.Run("Vector/F64/Stream", func(t *testing.T) {
		v := Vector[float64]{-5, -2.5, 0, 2.5, 5}
		buf := new(bytes.Buffer)
		n, err := v.WriteTo(buf)
		require.NoError(t, err)
		require.Equal(t, int64(v.BinarySize()), n)

		vNew := Vector[float64]{}
		n, err = vNew.ReadFrom(buf)
		require.NoError(t, err)
		require.Equal(t, int64(v.BinarySize()), n)
		require.True(t, v.Equal(vNew))
	})

	t.Run("Vector/F64/Truncated", func(t *testing.T) {
		v := Vector[float64]{1, 2, 3}
		data, err := v.MarshalBinary()
		require.NoError(t, err)
		vNew := Vector[float64]{}
		require.Error(t, vNew.UnmarshalBinary(data[:len(data)-8]))
	})

	t.Run("Vector/F64/CorruptSize", func(t *testing.T) {
		data := make([]byte, 16)
		binary.LittleEndian.PutUint64(data, 1<<62)

		vNew := Vector[float64]{}
		require.Error(t, vNew.UnmarshalBinary(data))

		// through a stream the size cannot be checked up front
		_, err := vNew.ReadFrom(bytes.NewReader(data))
		require.Error(t, err)

		binary.LittleEndian.PutUint64(data, math.MaxUint64)
		require.Error(t, vNew.UnmarshalBinary(data))
	})

	t.Run("Vector/F64/LargeStream", func(t *testing.T) {
		v := Vector[float64](make([]float64, 3*readChunk+5))
		for i := range v {
			v[i] = float64(i) - 0.5
		}
		buf := new(bytes.Buffer)
		_, err := v.WriteTo(buf)
		require.NoError(t, err)

		vNew := Vector[float64]{}
		_, err = vNew.ReadFrom(buf)
		require.NoError(t, err)
		require.True(t, v.Equal(vNew))
	})

	t.Run("Vector/F64/CopyNew", func(t *testing.T) {
		v := Vector[float64]{1, 2, 3}
		vcpy := v.CopyNew()
		vcpy[0] = 0
		require.Equal(t, 1.0, v[0])
	})

	t.Run("Vector/F64/NaN", func(t *testing.T) {
		v := Vector[float64]{math.NaN()}
		require.False(t, v.Equal(v.CopyNew()))
	})
}

func testVector[T constraints.Float](t *testing.T) {
	v := Vector[T](make([]T, 64))
	for i := range v {
		v[i] = T(i) / 8
	}
	data, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, v.BinarySize())
	vNew := Vector[T]{}
	require.NoError(t, vNew.UnmarshalBinary(data))
	require.True(t, cmp.Equal(v, vNew)) // also tests Equatable
	require.True(t, v.Equal(vNew))
}

func TestVectorEqualEmpty(t *testing.T) {
	var v Vector[float64]
	require.True(t, v.Equal(Vector[float64]{}))
}
