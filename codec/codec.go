// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/multivector"
)

// DefaultCompression leaves payloads uncompressed.
const DefaultCompression = CompressionNone

const panicCompressionInvalid = "codec: WithCompression: unknown compression"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective encoder configuration.
type Options struct {
	compression Compression
}

// WithCompression selects the payload compressor.
// Panics on a value outside the Compression constants.
func WithCompression(c Compression) Option {
	if !c.valid() {
		panic(panicCompressionInvalid)
	}

	return func(o *Options) { o.compression = c }
}

func gatherOptions(opts []Option) Options {
	o := Options{compression: DefaultCompression}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Marshal encodes a as a real frame.
//
// Errors: ErrNilContext when a is nil.
func Marshal(a *multivector.Real, opts ...Option) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("Marshal: %w", algebra.ErrNilContext)
	}

	return encode(KindReal, a.Context(), appendFloats(nil, a.Coefficients()), gatherOptions(opts))
}

// MarshalComplex encodes c as a complex frame: real parts, then imaginary parts.
//
// Errors: ErrNilContext when c is nil.
func MarshalComplex(c *multivector.Complex, opts ...Option) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("MarshalComplex: %w", algebra.ErrNilContext)
	}
	raw := appendFloats(nil, c.Real())
	raw = appendFloats(raw, c.Imag())

	return encode(KindComplex, c.Context(), raw, gatherOptions(opts))
}

// Unmarshal decodes a real frame, rebuilding its algebra context.
//
// Errors: see Inspect, plus ErrBadKind, ErrBadPayload, ErrChecksum and
// algebra.ErrBadDimensions.
func Unmarshal(data []byte) (*multivector.Real, error) {
	ctx, raw, err := decode(data, KindReal)
	if err != nil {
		return nil, fmt.Errorf("Unmarshal: %w", err)
	}

	return multivector.FromCoefficients(ctx, readFloats(raw))
}

// UnmarshalComplex decodes a complex frame.
//
// Errors: as Unmarshal.
func UnmarshalComplex(data []byte) (*multivector.Complex, error) {
	ctx, raw, err := decode(data, KindComplex)
	if err != nil {
		return nil, fmt.Errorf("UnmarshalComplex: %w", err)
	}
	coeffs := readFloats(raw)
	half := len(coeffs) / 2

	return multivector.ComplexFromParts(ctx, coeffs[:half], coeffs[half:])
}

func encode(kind Kind, ctx *algebra.Context, raw []byte, o Options) ([]byte, error) {
	stored, ok, err := compress(o.compression, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.compression, err)
	}
	h := Header{
		Kind:        kind,
		Compression: o.compression,
		Dimensions:  ctx.Dimensions(),
		Signature:   ctx.Signature(),
		RawLen:      uint32(len(raw)),
		StoredLen:   uint32(len(stored)),
		Checksum:    xxhash.Sum64(raw),
	}
	if !ok {
		h.Compression = CompressionNone
	}
	out := make([]byte, 0, headerSize+len(stored))
	out = h.appendTo(out)

	return append(out, stored...), nil
}

func decode(data []byte, want Kind) (*algebra.Context, []byte, error) {
	h, err := Inspect(data)
	if err != nil {
		return nil, nil, err
	}
	if h.Kind != want {
		return nil, nil, fmt.Errorf("got %s, want %s: %w", h.Kind, want, ErrBadKind)
	}
	ctx, err := algebra.New(h.Dimensions, h.Signature)
	if err != nil {
		return nil, nil, err
	}
	size := ctx.BasisCount() * 8
	if want == KindComplex {
		size *= 2
	}
	if int(h.RawLen) != size {
		return nil, nil, fmt.Errorf("raw length %d, want %d: %w", h.RawLen, size, ErrBadPayload)
	}

	raw, err := decompress(h.Compression, data[headerSize:headerSize+int(h.StoredLen)], size)
	if err != nil {
		return nil, nil, err
	}
	if sum := xxhash.Sum64(raw); sum != h.Checksum {
		return nil, nil, fmt.Errorf("%#016x != %#016x: %w", sum, h.Checksum, ErrChecksum)
	}

	return ctx, raw, nil
}

func appendFloats(dst []byte, vs []float64) []byte {
	for _, v := range vs {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}

func readFloats(raw []byte) []float64 {
	out := make([]float64, len(raw)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}

	return out
}
