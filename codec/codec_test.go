package codec_test

import (
	"encoding/binary"
	"testing"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/codec"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var compressions = []codec.Compression{
	codec.CompressionNone,
	codec.CompressionZstd,
	codec.CompressionS2,
	codec.CompressionLZ4,
}

// sparse builds a mostly-zero multivector that every compressor shrinks.
func sparse(t *testing.T) *multivector.Real {
	t.Helper()
	ctx, err := algebra.New(10, 0b11)
	require.NoError(t, err)
	a, err := multivector.FromBlades(ctx,
		multivector.Blade{Index: 0, Value: 1.5},
		multivector.Blade{Index: 0b101, Value: -2},
		multivector.Blade{Index: 0b1111111111, Value: 0.25},
	)
	require.NoError(t, err)

	return a
}

func TestRoundTripReal(t *testing.T) {
	ctx, err := algebra.New(5, 0b10010)
	require.NoError(t, err)
	dense, err := sample.Normal(ctx, sample.NewSource(9))
	require.NoError(t, err)

	for _, c := range compressions {
		for name, a := range map[string]*multivector.Real{"dense": dense, "sparse": sparse(t)} {
			t.Run(c.String()+"/"+name, func(t *testing.T) {
				data, err := codec.Marshal(a, codec.WithCompression(c))
				require.NoError(t, err)

				got, err := codec.Unmarshal(data)
				require.NoError(t, err)
				assert.True(t, got.Context().Compatible(a.Context()))
				assert.Equal(t, a.Coefficients(), got.Coefficients())
			})
		}
	}
}

func TestCompressionRecordedInHeader(t *testing.T) {
	a := sparse(t)
	raw, err := codec.Marshal(a)
	require.NoError(t, err)

	for _, c := range compressions {
		data, err := codec.Marshal(a, codec.WithCompression(c))
		require.NoError(t, err)
		h, err := codec.Inspect(data)
		require.NoError(t, err)

		assert.Equal(t, c, h.Compression)
		assert.Equal(t, codec.KindReal, h.Kind)
		assert.Equal(t, 10, h.Dimensions)
		assert.Equal(t, uint64(0b11), h.Signature)
		assert.Equal(t, uint32(8*1024), h.RawLen)
		if c != codec.CompressionNone {
			assert.Less(t, len(data), len(raw), c.String())
		}
	}
}

func TestIncompressibleFallsBackToNone(t *testing.T) {
	ctx, err := algebra.Euclidean(2)
	require.NoError(t, err)
	a, err := multivector.FromCoefficients(ctx, []float64{0.7236067977, -1.3247179572, 2.5029078750, 4.6692016091})
	require.NoError(t, err)

	data, err := codec.Marshal(a, codec.WithCompression(codec.CompressionLZ4))
	require.NoError(t, err)
	h, err := codec.Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, codec.CompressionNone, h.Compression)

	got, err := codec.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, a.Coefficients(), got.Coefficients())
}

func TestRoundTripComplex(t *testing.T) {
	ctx, err := algebra.New(3, 0b100)
	require.NoError(t, err)
	re := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	im := []float64{-1, 0, 0, 0.5, 0, 0, 0, 9}
	c, err := multivector.ComplexFromParts(ctx, re, im)
	require.NoError(t, err)

	for _, comp := range compressions {
		data, err := codec.MarshalComplex(c, codec.WithCompression(comp))
		require.NoError(t, err)
		got, err := codec.UnmarshalComplex(data)
		require.NoError(t, err)
		assert.Equal(t, re, got.Real())
		assert.Equal(t, im, got.Imag())
		assert.True(t, got.Context().Compatible(ctx))
	}
}

func TestKindMismatch(t *testing.T) {
	a := sparse(t)
	data, err := codec.Marshal(a)
	require.NoError(t, err)
	_, err = codec.UnmarshalComplex(data)
	require.ErrorIs(t, err, codec.ErrBadKind)
}

func TestCorruption(t *testing.T) {
	a := sparse(t)
	data, err := codec.Marshal(a)
	require.NoError(t, err)

	mutate := func(f func(b []byte) []byte) []byte {
		b := append([]byte(nil), data...)
		return f(b)
	}

	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, codec.ErrTruncated},
		{"short header", data[:10], codec.ErrTruncated},
		{"short payload", data[:len(data)-1], codec.ErrTruncated},
		{"magic", mutate(func(b []byte) []byte { b[0] = 'X'; return b }), codec.ErrBadMagic},
		{"version", mutate(func(b []byte) []byte { b[4] = 9; return b }), codec.ErrBadVersion},
		{"kind", mutate(func(b []byte) []byte { b[5] = 7; return b }), codec.ErrBadKind},
		{"compression", mutate(func(b []byte) []byte { b[6] = 99; return b }), codec.ErrUnknownCompression},
		{"dimensions", mutate(func(b []byte) []byte { b[7] = 40; return b }), algebra.ErrBadDimensions},
		{"payload bit flip", mutate(func(b []byte) []byte { b[len(b)-1] ^= 0x01; return b }), codec.ErrChecksum},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.Unmarshal(tc.data)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCorruptCompressedPayload(t *testing.T) {
	a := sparse(t)
	for _, c := range compressions[1:] {
		data, err := codec.Marshal(a, codec.WithCompression(c))
		require.NoError(t, err)
		// Drop the payload tail and patch the stored length to match.
		data = data[:len(data)-4]
		binary.LittleEndian.PutUint32(data[20:24], uint32(len(data)-32))

		_, err = codec.Unmarshal(data)
		require.ErrorIs(t, err, codec.ErrBadPayload, c.String())
	}
}

func TestParseCompression(t *testing.T) {
	for _, c := range compressions {
		got, err := codec.ParseCompression(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := codec.ParseCompression("brotli")
	require.ErrorIs(t, err, codec.ErrUnknownCompression)
}

func TestNilInput(t *testing.T) {
	_, err := codec.Marshal(nil)
	require.ErrorIs(t, err, algebra.ErrNilContext)
	_, err = codec.MarshalComplex(nil)
	require.ErrorIs(t, err, algebra.ErrNilContext)
	assert.Panics(t, func() { codec.WithCompression(codec.Compression(42)) })
}
