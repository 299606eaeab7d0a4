// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"github.com/cockroachdb/errors"

	"github.com/woozymasta/lz4/bytebuf"
)

// CompressBuffer is Compressor.Compress over bytebuf buffers. Addressable buffers
// are used in place; opaque ones go through copies with identical results.
func CompressBuffer(c Compressor, src bytebuf.Buffer, srcOff, srcLen int, dst bytebuf.Buffer, dstOff, maxDstLen int) (int, error) {
	in, err := openSpan(src, srcOff, srcLen, true)
	if err != nil {
		return 0, err
	}

	out, err := openSpan(dst, dstOff, maxDstLen, false)
	if err != nil {
		return 0, err
	}

	n, err := c.Compress(in.Bytes(), 0, srcLen, out.Bytes(), 0, maxDstLen)
	if err != nil {
		return 0, err
	}

	return n, out.Commit(n)
}

// DecompressFastBuffer is FastDecompressor.Decompress over bytebuf buffers.
func DecompressFastBuffer(d FastDecompressor, src bytebuf.Buffer, srcOff int, dst bytebuf.Buffer, dstOff, dstLen int) (int, error) {
	return decompressFastBuffer(d.Decompress, src, srcOff, dst, dstOff, dstLen, 0)
}

// DecompressFastBufferWithPrefix64k is FastDecompressor.DecompressWithPrefix64k over
// bytebuf buffers.
func DecompressFastBufferWithPrefix64k(d FastDecompressor, src bytebuf.Buffer, srcOff int, dst bytebuf.Buffer, dstOff, dstLen int) (int, error) {
	return decompressFastBuffer(d.DecompressWithPrefix64k, src, srcOff, dst, dstOff, dstLen, prefixSize)
}

// DecompressSafeBuffer is SafeDecompressor.Decompress over bytebuf buffers.
func DecompressSafeBuffer(d SafeDecompressor, src bytebuf.Buffer, srcOff, srcLen int, dst bytebuf.Buffer, dstOff int) (int, error) {
	return decompressSafeBuffer(d.Decompress, src, srcOff, srcLen, dst, dstOff, 0)
}

// DecompressSafeBufferWithPrefix64k is SafeDecompressor.DecompressWithPrefix64k over
// bytebuf buffers.
func DecompressSafeBufferWithPrefix64k(d SafeDecompressor, src bytebuf.Buffer, srcOff, srcLen int, dst bytebuf.Buffer, dstOff int) (int, error) {
	return decompressSafeBuffer(d.DecompressWithPrefix64k, src, srcOff, srcLen, dst, dstOff, prefixSize)
}

type fastDecodeFunc func(src []byte, srcOff int, dst []byte, dstOff, dstLen int) (int, error)

type safeDecodeFunc func(src []byte, srcOff, srcLen int, dst []byte, dstOff int) (int, error)

// decompressFastBuffer maps the buffers to slices. The source span covers the rest
// of src since the block length is unknown; the destination span starts history
// bytes before dstOff so back-references into the prefix stay visible.
func decompressFastBuffer(decode fastDecodeFunc, src bytebuf.Buffer, srcOff int, dst bytebuf.Buffer, dstOff, dstLen, history int) (int, error) {
	if err := bytebufCheck(bytebuf.CheckRange(src, srcOff, 0)); err != nil {
		return 0, err
	}

	in, err := openSpan(src, srcOff, src.Cap()-srcOff, true)
	if err != nil {
		return 0, err
	}

	if err := bytebufCheck(bytebuf.CheckRange(dst, dstOff, dstLen)); err != nil {
		return 0, err
	}

	start := max(0, dstOff-history)
	out, err := openSpan(dst, start, dstOff+dstLen-start, history > 0)
	if err != nil {
		return 0, err
	}

	consumed, err := decode(in.Bytes(), 0, out.Bytes(), dstOff-start, dstLen)
	if err != nil {
		return 0, rebaseInputOffset(err, srcOff)
	}

	return consumed, out.CommitRange(dstOff-start, dstLen)
}

// decompressSafeBuffer maps the buffers to slices; the destination span runs to the
// end of dst since the output length is discovered while decoding.
func decompressSafeBuffer(decode safeDecodeFunc, src bytebuf.Buffer, srcOff, srcLen int, dst bytebuf.Buffer, dstOff, history int) (int, error) {
	in, err := openSpan(src, srcOff, srcLen, true)
	if err != nil {
		return 0, err
	}

	if err := bytebufCheck(bytebuf.CheckRange(dst, dstOff, 0)); err != nil {
		return 0, err
	}

	start := max(0, dstOff-history)
	out, err := openSpan(dst, start, dst.Cap()-start, history > 0)
	if err != nil {
		return 0, err
	}

	n, err := decode(in.Bytes(), 0, srcLen, out.Bytes(), dstOff-start)
	if err != nil {
		return 0, rebaseInputOffset(err, srcOff)
	}

	return n, out.CommitRange(dstOff-start, n)
}

// rebaseInputOffset moves a decoder error offset from the span to the source buffer.
func rebaseInputOffset(err error, srcOff int) error {
	var ce *CorruptInputError
	if errors.As(err, &ce) {
		ce.Offset += srcOff
	}

	return err
}

// openSpan opens a bytebuf span and classifies range errors as invalid arguments.
func openSpan(buf bytebuf.Buffer, off, n int, load bool) (*bytebuf.Span, error) {
	s, err := bytebuf.OpenSpan(buf, off, n, load)
	return s, bytebufCheck(err)
}

// checkRange validates off and n against b.
func checkRange(b []byte, off, n int) error {
	return bytebufCheck(bytebuf.CheckRangeSlice(b, off, n))
}

// bytebufCheck marks out-of-bounds errors as ErrInvalidArgument.
func bytebufCheck(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, bytebuf.ErrOutOfBounds) {
		return errors.Mark(err, ErrInvalidArgument)
	}

	return err
}
