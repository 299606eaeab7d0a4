// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

/*
Package lz4 implements the LZ4 block format with three interchangeable backends.

A block is a series of sequences. Each sequence is a token byte (literal length in
the high nibble, match length minus 4 in the low nibble, 15 meaning continuation
bytes follow), the literals, a 2-byte little-endian match offset and the match
length continuation. The last sequence is literals only, and after any match it
carries at least 5 literals. Blocks have no header, checksum or frame.

# Backends

  - Native validates in Go and delegates the byte work to github.com/pierrec/lz4/v4
    through the narrow Primitive interface.
  - Unchecked is pure Go with unsafe word loads and 8-byte match copies.
  - Checked is pure Go with every access bounds-checked by the runtime.

Unchecked and Checked run the same parsers and emit byte-identical blocks. Every
backend decodes what any other backend encodes.

	b, _ := lz4.BackendByName("checked")
	c := b.HighCompressor()
	dst := make([]byte, c.MaxCompressedLength(len(src)))
	n, err := c.Compress(src, 0, len(src), dst, 0, len(dst))

# Decompress

Two contracts exist. FastDecompressor knows the exact output length and returns the
number of input bytes consumed; SafeDecompressor knows the exact input length and
returns the number of bytes produced. Both reject malformed blocks with an error
matching errors.Is(err, ErrMalformedStream) and never read or write outside the given
ranges. Failures found by the Go decoders are *CorruptInputError values carrying the
input offset.

OutLen is required (use DecompressOptions). From a byte slice (safe contract,
OutLen is the capacity):

	out, err := lz4.Decompress(compressed, lz4.DefaultDecompressOptions(expectedLen))

To get the number of input bytes consumed (fast contract, OutLen is exact):

	out, nRead, err := lz4.DecompressN(compressed, lz4.DefaultDecompressOptions(expectedLen))
	// advance: compressed = compressed[nRead:]

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := lz4.DecompressInto(compressed, dst)
	out, nRead, err := lz4.DecompressNInto(compressed, dst)

From an io.Reader:

	out, err := lz4.DecompressFromReader(r, lz4.DefaultDecompressOptions(expectedLen))

# Compress

Options may be nil (level 1). Levels 0-2 use the greedy parser, 3-12 hash chains:

	out, err := lz4.Compress(data, nil)
	out, err := lz4.Compress(data, &lz4.CompressOptions{Level: 9, Backend: lz4.Native})

Buffers from package bytebuf are accepted by CompressBuffer and the
Decompress*Buffer functions; opaque regions without a backing array go through
copies with identical results.
*/
package lz4
