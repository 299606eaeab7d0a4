// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "github.com/cockroachdb/errors"

// MaxCompressedLength returns the largest block any compressor produces for an input
// of n bytes. It returns 0 when n is negative or larger than MaxInputSize.
func MaxCompressedLength(n int) int {
	if n < 0 || n > MaxInputSize {
		return 0
	}

	return n + n/255 + 16
}

// Compress compresses src into a new LZ4 block. opts may be nil (level 1, Unchecked backend).
// Levels 0-2 use the greedy parser; 3-12 use hash chains (higher = better ratio, slower).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	if len(src) > MaxInputSize {
		return nil, errors.Wrapf(ErrInputTooLarge, "%d bytes", len(src))
	}

	c := opts.backend().CompressorLevel(opts.Level)
	bound := c.MaxCompressedLength(len(src))
	dst := make([]byte, bound)

	n, err := c.Compress(src, 0, len(src), dst, 0, bound)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// compressBlock runs the parser selected by a clamped level over in and writes into out.
func compressBlock[M memAccess](m M, in, out []byte, level int) (int, error) {
	w := blockWriter{dst: out}

	var err error
	if level <= fastLevelMax {
		err = compressFastBlock(m, in, &w)
	} else {
		err = compressHCBlock(m, in, &w, levelParams(level))
	}

	if err != nil {
		return 0, err
	}

	return w.pos, nil
}

// checkCompressArgs validates the ranges of a Compress call.
func checkCompressArgs(src []byte, srcOff, srcLen int, dst []byte, dstOff, maxDstLen int) error {
	if err := checkRange(src, srcOff, srcLen); err != nil {
		return err
	}

	if err := checkRange(dst, dstOff, maxDstLen); err != nil {
		return err
	}

	if srcLen > MaxInputSize {
		return errors.Mark(invalidArgf("input length %d exceeds %d", srcLen, MaxInputSize), ErrInputTooLarge)
	}

	return nil
}
