// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"
	"fmt"
)

// Frame layout, little endian:
//
//	offset size field
//	0      4    magic "CLMV"
//	4      1    version
//	5      1    kind
//	6      1    compression
//	7      1    dimensions
//	8      8    signature
//	16     4    raw payload length
//	20     4    stored payload length
//	24     8    xxhash64 of the raw payload
//	32     -    stored payload
const (
	magic      = "CLMV"
	version    = 1
	headerSize = 32
)

// Kind tells which multivector flavour a frame carries.
type Kind uint8

const (
	KindReal    Kind = 1
	KindComplex Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Header is the decoded fixed-size frame prefix.
type Header struct {
	Kind        Kind
	Compression Compression
	Dimensions  int
	Signature   uint64
	RawLen      uint32
	StoredLen   uint32
	Checksum    uint64
}

func (h Header) appendTo(dst []byte) []byte {
	le := binary.LittleEndian
	dst = append(dst, magic...)
	dst = append(dst, version, byte(h.Kind), byte(h.Compression), byte(h.Dimensions))
	dst = le.AppendUint64(dst, h.Signature)
	dst = le.AppendUint32(dst, h.RawLen)
	dst = le.AppendUint32(dst, h.StoredLen)

	return le.AppendUint64(dst, h.Checksum)
}

// Inspect decodes and validates the header of a frame without touching the
// payload. The payload itself must be present in full.
//
// Errors: ErrTruncated, ErrBadMagic, ErrBadVersion, ErrBadKind,
// ErrUnknownCompression.
func Inspect(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, fmt.Errorf("Inspect: %d bytes: %w", len(data), ErrTruncated)
	}
	if string(data[:4]) != magic {
		return Header{}, fmt.Errorf("Inspect: %w", ErrBadMagic)
	}
	if data[4] != version {
		return Header{}, fmt.Errorf("Inspect: version %d: %w", data[4], ErrBadVersion)
	}

	le := binary.LittleEndian
	h := Header{
		Kind:        Kind(data[5]),
		Compression: Compression(data[6]),
		Dimensions:  int(data[7]),
		Signature:   le.Uint64(data[8:16]),
		RawLen:      le.Uint32(data[16:20]),
		StoredLen:   le.Uint32(data[20:24]),
		Checksum:    le.Uint64(data[24:32]),
	}
	if h.Kind != KindReal && h.Kind != KindComplex {
		return Header{}, fmt.Errorf("Inspect: %s: %w", h.Kind, ErrBadKind)
	}
	if !h.Compression.valid() {
		return Header{}, fmt.Errorf("Inspect: %s: %w", h.Compression, ErrUnknownCompression)
	}
	if uint64(len(data)-headerSize) < uint64(h.StoredLen) {
		return Header{}, fmt.Errorf("Inspect: payload %d of %d bytes: %w", len(data)-headerSize, h.StoredLen, ErrTruncated)
	}

	return h, nil
}
