package newton

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kirillov-n-s/polynomial-interpolation/split"
	"github.com/kirillov-n-s/polynomial-interpolation/utils/bignum"
	"github.com/kirillov-n-s/polynomial-interpolation/utils/sampling"
	"github.com/kirillov-n-s/polynomial-interpolation/utils/structs"
)

func apply(x []float64, f func(float64) float64) (y []float64) {
	y = make([]float64, len(x))
	for i := range x {
		y[i] = f(x[i])
	}
	return
}

func maxAbsDiff(a, b []float64) (max float64) {
	for i := range a {
		max = math.Max(max, math.Abs(a[i]-b[i]))
	}
	return
}

func runge(x float64) float64 {
	return 1 / (1 + x*x)
}

func TestNewton(t *testing.T) {

	t.Run("Cubic", func(t *testing.T) {
		x := []float64{0, 1, 2, 3}
		y := []float64{0, 1, 8, 27}

		p, err := NewPolynomial(x, y)
		require.NoError(t, err)

		require.Equal(t, 3, p.Degree())
		require.Equal(t, []float64{0, 1, 3, 1}, p.Coefficients())

		for i := range x {
			require.Equal(t, y[i], p.Evaluate(x[i]))
		}

		require.Equal(t, 3.375, p.Evaluate(1.5))
		require.InDelta(t, -8.0, p.Evaluate(-2), 1e-12)
	})

	t.Run("Degree0", func(t *testing.T) {
		x := split.Uniform(-5, 5, 0)
		y := apply(x, math.Sin)

		p, err := NewPolynomial(x, y)
		require.NoError(t, err)
		require.Equal(t, 0, p.Degree())

		for _, X := range []float64{-5, -1, 0, 3.3, 1e6} {
			require.Equal(t, math.Sin(-5), p.Evaluate(X))
		}
	})

	t.Run("ExactFit", func(t *testing.T) {

		prng, err := sampling.NewKeyedPRNG([]byte{'n', 'e', 'w', 't', 'o', 'n'})
		require.NoError(t, err)

		splits := map[string]split.Split{
			"Uniform":   split.Uniform,
			"Chebyshev": split.Chebyshev,
		}

		for name, s := range splits {
			for _, n := range []int{0, 1, 2, 5, 10, 20} {
				t.Run(fmt.Sprintf("%s/N=%d", name, n), func(t *testing.T) {
					x := s(-1, 1, n)
					y := apply(x, math.Sin)
					p, err := NewPolynomial(x, y)
					require.NoError(t, err)
					require.LessOrEqual(t, maxAbsDiff(y, p.EvaluateSlice(x)), 1e-9)
				})
			}
		}

		random := split.NewRandom(prng)

		for _, n := range []int{0, 1, 2, 5} {
			t.Run(fmt.Sprintf("Random/N=%d", n), func(t *testing.T) {
				x := random(-1, 1, n)
				y := apply(x, math.Sin)
				p, err := NewPolynomial(x, y)
				require.NoError(t, err)
				require.LessOrEqual(t, maxAbsDiff(y, p.EvaluateSlice(x)), 1e-9)
			})
		}
	})

	t.Run("Reproduction", func(t *testing.T) {
		// A polynomial of degree d is reproduced by any d+1 or more nodes.
		f := func(x float64) float64 { return math.Pow(x, 5) + 3*math.Pow(x, 3) + 5*x*x + 1 }
		for _, n := range []int{5, 6, 8} {
			x := split.Chebyshev(-2, 2, n)
			p, err := NewPolynomial(x, apply(x, f))
			require.NoError(t, err)
			for _, X := range split.Subsplit(x, 7) {
				require.InDelta(t, f(X), p.Evaluate(X), 1e-9)
			}
		}
	})

	t.Run("Ownership", func(t *testing.T) {
		x := []float64{0, 1, 2, 3}
		y := []float64{0, 1, 8, 27}

		p, err := NewPolynomial(x, y)
		require.NoError(t, err)

		require.Equal(t, []float64{0, 1, 8, 27}, y, "should not modify the values")

		x[1], y[1] = 42, 42
		require.Equal(t, 3.375, p.Evaluate(1.5))

		nodes := p.Nodes()
		nodes[0] = 42
		coeffs := p.Coefficients()
		coeffs[0] = 42
		require.Equal(t, []float64{0, 1, 2, 3}, p.Nodes())
		require.Equal(t, []float64{0, 1, 3, 1}, p.Coefficients())
	})

	t.Run("DividedDifferences", func(t *testing.T) {
		y := []float64{0, 1, 8, 27}
		require.Equal(t, []float64{0, 1, 3, 1}, DividedDifferences([]float64{0, 1, 2, 3}, y))
		require.Equal(t, []float64{0, 1, 8, 27}, y)
		require.Equal(t, []float64{}, DividedDifferences(nil, nil))

		// Unvalidated repeated nodes yield non-finite coefficients.
		c := DividedDifferences([]float64{1, 1}, []float64{0, 1})
		require.True(t, math.IsInf(c[1], 1))
	})
}

func TestNewPolynomialErrors(t *testing.T) {

	testCases := []struct {
		name string
		x, y []float64
		want error
	}{
		{"Empty", nil, nil, ErrEmpty},
		{"LengthMismatch", []float64{0, 1}, []float64{0}, ErrLengthMismatch},
		{"NaN", []float64{0, math.NaN()}, []float64{0, 1}, ErrNonFiniteNode},
		{"Inf", []float64{math.Inf(-1), 0}, []float64{0, 1}, ErrNonFiniteNode},
		{"Duplicate", []float64{0, 1, 0}, []float64{0, 1, 2}, ErrDuplicateNode},
		{"SignedZero", []float64{0, math.Copysign(0, -1)}, []float64{0, 1}, ErrDuplicateNode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPolynomial(tc.x, tc.y)
			require.Nil(t, p)
			require.True(t, errors.Is(err, tc.want), err)
		})
	}
}

func TestExtend(t *testing.T) {

	x := split.Chebyshev(-5, 5, 12)
	y := apply(x, runge)

	p, err := NewPolynomial(x[:1], y[:1])
	require.NoError(t, err)

	for i := 1; i < len(x); i++ {

		var q *Polynomial
		q, err = p.Extend(x[i], y[i])
		require.NoError(t, err)

		want, err := NewPolynomial(x[:i+1], y[:i+1])
		require.NoError(t, err)

		require.Equal(t, want.Coefficients(), q.Coefficients())
		require.True(t, want.Equal(q))
		require.Equal(t, i-1, p.Degree(), "should not modify the receiver")

		p = q
	}

	_, err = p.Extend(x[3], 0)
	require.True(t, errors.Is(err, ErrDuplicateNode))

	_, err = p.Extend(math.NaN(), 0)
	require.True(t, errors.Is(err, ErrNonFiniteNode))
}

func TestCodec(t *testing.T) {

	x := split.Uniform(-5, 5, 10)
	p, err := NewPolynomial(x, apply(x, runge))
	require.NoError(t, err)

	t.Run("Binary", func(t *testing.T) {
		data, err := p.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, p.BinarySize())

		q := new(Polynomial)
		require.NoError(t, q.UnmarshalBinary(data))
		require.True(t, p.Equal(q))

		// A decoded polynomial can still be extended.
		pe, err := p.Extend(5.5, runge(5.5))
		require.NoError(t, err)
		qe, err := q.Extend(5.5, runge(5.5))
		require.NoError(t, err)
		require.True(t, pe.Equal(qe))
	})

	t.Run("Stream", func(t *testing.T) {
		buf := new(bytes.Buffer)
		n, err := p.WriteTo(buf)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)

		q := new(Polynomial)
		n, err = q.ReadFrom(buf)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)
		require.True(t, p.Equal(q))
	})

	t.Run("Malformed", func(t *testing.T) {
		data, err := p.MarshalBinary()
		require.NoError(t, err)
		require.Error(t, new(Polynomial).UnmarshalBinary(data[:len(data)-8]))

		// three empty vectors
		require.True(t, errors.Is(new(Polynomial).UnmarshalBinary(make([]byte, 24)), ErrEmpty))

		// a node count larger than the input
		corrupt := make([]byte, 8)
		binary.LittleEndian.PutUint64(corrupt, 1<<62)
		require.Error(t, new(Polynomial).UnmarshalBinary(corrupt))
	})

	encode := func(t *testing.T, vectors ...structs.Vector[float64]) (data []byte) {
		for _, v := range vectors {
			b, err := v.MarshalBinary()
			require.NoError(t, err)
			data = append(data, b...)
		}
		return
	}

	t.Run("Invalid", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			data []byte
			want error
		}{
			{"DuplicateNode", encode(t, structs.Vector[float64]{1, 1}, structs.Vector[float64]{0, 0}, structs.Vector[float64]{0, 0}), ErrDuplicateNode},
			{"NonFiniteNode", encode(t, structs.Vector[float64]{0, math.Inf(1)}, structs.Vector[float64]{0, 0}, structs.Vector[float64]{0, 0}), ErrNonFiniteNode},
			{"Coefficients", encode(t, structs.Vector[float64]{0, 1}, structs.Vector[float64]{0}, structs.Vector[float64]{0, 0}), ErrLengthMismatch},
			{"Tail", encode(t, structs.Vector[float64]{0, 1}, structs.Vector[float64]{0, 0}, structs.Vector[float64]{0}), ErrLengthMismatch},
		} {
			t.Run(tc.name, func(t *testing.T) {
				q := new(Polynomial)
				require.True(t, errors.Is(q.UnmarshalBinary(tc.data), tc.want))
				require.Nil(t, q.nodes)
			})
		}
	})

	t.Run("Digest", func(t *testing.T) {
		q, err := NewPolynomial(x, apply(x, runge))
		require.NoError(t, err)

		dp, err := p.Digest()
		require.NoError(t, err)
		dq, err := q.Digest()
		require.NoError(t, err)
		require.Equal(t, dp, dq)

		r, err := NewPolynomial(x, apply(x, math.Sin))
		require.NoError(t, err)
		dr, err := r.Digest()
		require.NoError(t, err)
		require.NotEqual(t, dp, dr)
	})
}

func TestBigReference(t *testing.T) {

	prec := uint(256)

	sigmoid := func(x *big.Float) (y *big.Float) {
		z := new(big.Float).Neg(x)
		z = bignum.Exp(z)
		z.Add(z, bignum.NewFloat(1, x.Prec()))
		return z.Quo(bignum.NewFloat(1, x.Prec()), z)
	}

	functions := []struct {
		name string
		f    func(x float64) float64
		fBig func(x *big.Float) *big.Float
	}{
		{"Sin", math.Sin, bignum.Sin},
		{"Sigmoid", func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }, sigmoid},
	}

	placements := []struct {
		name  string
		split split.Split
		nodes func(interval bignum.Interval) []*big.Float
	}{
		{"Uniform", split.Uniform, bignum.UniformNodes},
		{"Chebyshev", split.Chebyshev, bignum.ChebyshevNodes},
	}

	for _, pl := range placements {
		for _, fn := range functions {
			for _, n := range []int{4, 8, 16} {

				t.Run(fmt.Sprintf("%s/%s/N=%d", pl.name, fn.name, n), func(t *testing.T) {

					x := pl.split(-5, 5, n)

					xBig := pl.nodes(bignum.NewInterval(-5, 5, n+1, prec))
					require.InDeltaSlice(t, bignum.Float64s(xBig), x, 1e-14)

					yBig := make([]*big.Float, len(xBig))
					for i := range xBig {
						yBig[i] = fn.fBig(xBig[i])
					}

					ref := bignum.NewNewtonPolynomial(xBig, yBig)

					p, err := NewPolynomial(x, apply(x, fn.f))
					require.NoError(t, err)

					for _, X := range split.Subsplit(x, 10) {
						want, _ := ref.Evaluate(bignum.NewFloat(X, prec)).Float64()
						require.InDelta(t, want, p.Evaluate(X), 1e-10)
					}
				})
			}
		}
	}
}
