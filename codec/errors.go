// SPDX-License-Identifier: MIT
// Package codec: sentinel error set.
// Decoding never panics on malformed input; every rejection is one of these
// sentinels, wrapped with the operation name.

package codec

import "errors"

var (
	// ErrBadMagic indicates the input does not start with the frame magic.
	ErrBadMagic = errors.New("codec: bad magic")

	// ErrBadVersion indicates a frame written by an unknown format version.
	ErrBadVersion = errors.New("codec: unsupported version")

	// ErrBadKind indicates a real frame decoded as complex, or the reverse.
	ErrBadKind = errors.New("codec: unexpected frame kind")

	// ErrUnknownCompression indicates an unrecognized compression byte.
	ErrUnknownCompression = errors.New("codec: unknown compression")

	// ErrTruncated indicates the input ends before the frame does.
	ErrTruncated = errors.New("codec: truncated frame")

	// ErrChecksum indicates the decoded payload does not match its checksum.
	ErrChecksum = errors.New("codec: checksum mismatch")

	// ErrBadPayload indicates a payload that fails to decompress or whose
	// size disagrees with the header.
	ErrBadPayload = errors.New("codec: malformed payload")
)
