// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload compressor of a frame.
type Compression uint8

const (
	CompressionNone Compression = 0
	CompressionZstd Compression = 1
	CompressionS2   Compression = 2
	CompressionLZ4  Compression = 3
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression maps a name as printed by String back to its value.
func ParseCompression(name string) (Compression, error) {
	for c := CompressionNone; c <= CompressionLZ4; c++ {
		if c.String() == name {
			return c, nil
		}
	}

	return 0, fmt.Errorf("ParseCompression: %q: %w", name, ErrUnknownCompression)
}

func (c Compression) valid() bool { return c <= CompressionLZ4 }

// Encoders and decoders hold warmed-up state, so they are pooled.
var (
	zstdEncoders = sync.Pool{
		New: func() any {
			enc, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedDefault),
				zstd.WithEncoderCRC(false),
			)
			if err != nil {
				panic(fmt.Sprintf("codec: zstd encoder: %v", err))
			}
			return enc
		},
	}
	zstdDecoders = sync.Pool{
		New: func() any {
			dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
			if err != nil {
				panic(fmt.Sprintf("codec: zstd decoder: %v", err))
			}
			return dec
		},
	}
	lz4Compressors = sync.Pool{
		New: func() any { return &lz4.Compressor{} },
	}
)

// compress returns the stored form of raw. ok is false when the compressor
// could not shrink raw, in which case the caller stores raw uncompressed.
func compress(c Compression, raw []byte) (stored []byte, ok bool, err error) {
	switch c {
	case CompressionNone:
		return raw, false, nil
	case CompressionZstd:
		enc := zstdEncoders.Get().(*zstd.Encoder)
		defer zstdEncoders.Put(enc)
		stored = enc.EncodeAll(raw, nil)
	case CompressionS2:
		stored = s2.Encode(nil, raw)
	case CompressionLZ4:
		lc := lz4Compressors.Get().(*lz4.Compressor)
		defer lz4Compressors.Put(lc)
		dst := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lc.CompressBlock(raw, dst)
		if err != nil {
			return nil, false, err
		}
		if n == 0 { // incompressible
			return raw, false, nil
		}
		stored = dst[:n]
	default:
		return nil, false, ErrUnknownCompression
	}
	if len(stored) >= len(raw) {
		return raw, false, nil
	}

	return stored, true, nil
}

// decompress inverts compress; rawLen is the size recorded in the header.
func decompress(c Compression, stored []byte, rawLen int) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	switch c {
	case CompressionNone:
		raw = stored
	case CompressionZstd:
		dec := zstdDecoders.Get().(*zstd.Decoder)
		defer zstdDecoders.Put(dec)
		raw, err = dec.DecodeAll(stored, make([]byte, 0, rawLen))
	case CompressionS2:
		if n, lerr := s2.DecodedLen(stored); lerr == nil && n != rawLen {
			return nil, fmt.Errorf("%s: got %d bytes, want %d: %w", c, n, rawLen, ErrBadPayload)
		}
		raw, err = s2.Decode(nil, stored)
	case CompressionLZ4:
		buf := make([]byte, rawLen)
		var n int
		n, err = lz4.UncompressBlock(stored, buf)
		raw = buf[:n]
	default:
		return nil, ErrUnknownCompression
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", c, err, ErrBadPayload)
	}
	if len(raw) != rawLen {
		return nil, fmt.Errorf("%s: got %d bytes, want %d: %w", c, len(raw), rawLen, ErrBadPayload)
	}

	return raw, nil
}
