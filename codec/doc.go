// Package codec persists Real and Complex multivectors as compact binary
// frames.
//
// A frame is a 32-byte little-endian header (magic, version, kind,
// compression, dimension count, signature, payload sizes, xxhash64 of the raw
// payload) followed by the coefficients as IEEE-754 float64 values, optionally
// compressed with zstd, S2 or LZ4. The algebra context is rebuilt from the
// header on decode, so a frame is self-describing.
//
// When the selected compressor cannot shrink a payload, the payload is stored
// raw and the header records CompressionNone.
//
//	data, err := codec.Marshal(a, codec.WithCompression(codec.CompressionZstd))
//	...
//	b, err := codec.Unmarshal(data)
package codec
