// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// Decompress decodes the LZ4 block src (all of it) into a buffer of capacity opts.OutLen.
// Returns ErrOptionsRequired if opts is nil; ErrEmptyInput if src is empty.
// On success returns the decompressed slice (length may be less than OutLen).
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	outLen := opts.OutLen
	if outLen < 0 {
		return nil, ErrOptionsRequired
	}

	dst := make([]byte, outLen)
	n, err := opts.backend().SafeDecompressor().Decompress(src, 0, len(src), dst, 0)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressN decodes exactly opts.OutLen bytes from the block at the start of src
// and returns the decoded slice, the number of input bytes consumed (nRead), and an error.
// Bytes after the block are ignored, so nRead can be used to walk back-to-back blocks.
// nRead is 0 on error.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil {
		return nil, 0, ErrOptionsRequired
	}

	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	outLen := opts.OutLen
	if outLen < 0 {
		return nil, 0, ErrOptionsRequired
	}

	dst := make([]byte, outLen)
	nRead, err := opts.backend().FastDecompressor().Decompress(src, 0, dst, 0, outLen)
	if err != nil {
		return nil, 0, err
	}

	return dst, nRead, nil
}

// DecompressInto decodes the block src into caller-managed dst (capacity len(dst))
// with the default backend and returns the decoded prefix of dst.
func DecompressInto(src, dst []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	n, err := Unchecked.SafeDecompressor().Decompress(src, 0, len(src), dst, 0)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressNInto decodes exactly len(dst) bytes from the block at the start of src
// into dst and returns dst and the number of input bytes consumed.
func DecompressNInto(src, dst []byte) ([]byte, int, error) {
	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	nRead, err := Unchecked.FastDecompressor().Decompress(src, 0, dst, 0, len(dst))
	if err != nil {
		return nil, 0, err
	}

	return dst, nRead, nil
}
