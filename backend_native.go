// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "github.com/cockroachdb/errors"

// NewNativeBackend returns a backend delegating to p. Arguments, capacities and
// streams are validated in Go before p is called, so p only ever receives
// complete, well-formed blocks and bound-sized compression buffers.
//
// The safe decompressor of a native backend is lenient: a declared compressed
// length that cuts the final literal run short decodes the available prefix.
func NewNativeBackend(p Primitive) *Backend {
	var levels [hcLevelMax + 1]Compressor
	for level := 1; level <= hcLevelMax; level++ {
		levels[level] = nativeCompressor{prim: p, level: level}
	}

	return &Backend{
		kind:    KindNative,
		name:    KindNative.String(),
		lenient: true,
		compressor: func(level int) Compressor {
			return levels[level]
		},
		fast: nativeFastDecompressor{prim: p},
		safe: nativeSafeDecompressor{prim: p},
	}
}

// nativeCompressor compresses through a Primitive at one level.
type nativeCompressor struct {
	prim  Primitive
	level int
}

func (nativeCompressor) MaxCompressedLength(n int) int {
	return MaxCompressedLength(n)
}

// Compress hands the primitive a bound-sized buffer: the destination itself when it
// is large enough, a pooled scratch buffer otherwise.
func (c nativeCompressor) Compress(src []byte, srcOff, srcLen int, dst []byte, dstOff, maxDstLen int) (int, error) {
	if err := checkCompressArgs(src, srcOff, srcLen, dst, dstOff, maxDstLen); err != nil {
		return 0, err
	}

	in := src[srcOff : srcOff+srcLen]
	bound := MaxCompressedLength(srcLen)
	if maxDstLen >= bound {
		end := dstOff + bound
		return c.compressInto(in, dst[dstOff:end:end])
	}

	scratch := acquireScratch(bound)
	defer releaseScratch(scratch)

	n, err := c.compressInto(in, *scratch)
	if err != nil {
		return 0, err
	}

	if n > maxDstLen {
		return 0, errors.Wrapf(ErrDestinationTooSmall, "block needs %d bytes, have %d", n, maxDstLen)
	}

	return copy(dst[dstOff:dstOff+maxDstLen], (*scratch)[:n]), nil
}

// compressInto runs the primitive over a buffer of at least the bound size.
func (c nativeCompressor) compressInto(in, out []byte) (int, error) {
	n, err := c.prim.CompressLimited(in, out, c.level)
	if err != nil {
		return 0, errors.NewAssertionErrorWithWrappedErrf(err, "native compress of %d bytes", len(in))
	}

	if n <= 0 || n > len(out) {
		return 0, errors.AssertionFailedf("native compress of %d bytes returned %d", len(in), n)
	}

	return n, nil
}

// nativeFastDecompressor validates a block in Go and decodes it with the primitive.
type nativeFastDecompressor struct {
	prim Primitive
}

func (d nativeFastDecompressor) Decompress(src []byte, srcOff int, dst []byte, dstOff, dstLen int) (int, error) {
	if err := checkFastArgs(src, srcOff, dst, dstOff, dstLen); err != nil {
		return 0, err
	}

	return d.decompress(src, srcOff, dst, dstOff, dstOff, dstLen)
}

func (d nativeFastDecompressor) DecompressWithPrefix64k(src []byte, srcOff int, dst []byte, dstOff, dstLen int) (int, error) {
	if err := checkFastArgs(src, srcOff, dst, dstOff, dstLen); err != nil {
		return 0, err
	}

	return d.decompress(src, srcOff, dst, prefixStart(dstOff), dstOff, dstLen)
}

// decompress validates the block with the Go decoder, then lets the primitive decode
// exactly the validated bytes. When decoding stopped because the output was full
// while the last token still declared a match, the primitive gets a copy with that
// match nibble cleared so the block ends on a literals-only sequence.
func (d nativeFastDecompressor) decompress(src []byte, srcOff int, dst []byte, histStart, dstOff, dstLen int) (int, error) {
	consumed, lastToken, err := decodeFast(discardCopier{}, src, srcOff, dst, histStart, dstOff, dstLen)
	if err != nil {
		return 0, err
	}

	if dstLen == 0 {
		return consumed, nil
	}

	block := src[srcOff : srcOff+consumed]
	if tok := lastToken - srcOff; block[tok]&mlMask != 0 {
		scratch := acquireScratch(consumed)
		defer releaseScratch(scratch)

		copy(*scratch, block)
		(*scratch)[tok] &^= mlMask
		block = *scratch
	}

	out := dst[dstOff : dstOff+dstLen : dstOff+dstLen]

	var n int
	if histStart < dstOff {
		n, err = d.prim.DecompressFastPrefix(block, out, dst[histStart:dstOff])
	} else {
		n, err = d.prim.DecompressFast(block, out)
	}

	if err := checkNativeDecode(n, dstLen, srcOff, err); err != nil {
		return 0, err
	}

	return consumed, nil
}

// nativeSafeDecompressor validates a block in Go, decodes complete blocks with the
// primitive and falls back to the lenient Go decoder for truncated ones.
type nativeSafeDecompressor struct {
	prim Primitive
}

func (d nativeSafeDecompressor) Decompress(src []byte, srcOff, srcLen int, dst []byte, dstOff int) (int, error) {
	if err := checkSafeArgs(src, srcOff, srcLen, dst, dstOff); err != nil {
		return 0, err
	}

	return d.decompress(src, srcOff, srcLen, dst, dstOff, dstOff)
}

func (d nativeSafeDecompressor) DecompressWithPrefix64k(src []byte, srcOff, srcLen int, dst []byte, dstOff int) (int, error) {
	if err := checkSafeArgs(src, srcOff, srcLen, dst, dstOff); err != nil {
		return 0, err
	}

	return d.decompress(src, srcOff, srcLen, dst, prefixStart(dstOff), dstOff)
}

func (d nativeSafeDecompressor) decompress(src []byte, srcOff, srcLen int, dst []byte, histStart, dstOff int) (int, error) {
	n, err := decodeSafe(discardCopier{}, src, srcOff, srcLen, dst, histStart, dstOff, false)
	if err != nil {
		// Everything before the truncated run validated, so the lenient pass succeeds.
		if !isTruncatedLiterals(err) {
			return 0, err
		}

		return decodeSafe(checkedCopier{}, src, srcOff, srcLen, dst, histStart, dstOff, true)
	}

	if n == 0 {
		return 0, nil
	}

	block := src[srcOff : srcOff+srcLen]
	out := dst[dstOff : dstOff+n : dstOff+n]

	var produced int
	if histStart < dstOff {
		produced, err = d.prim.DecompressFastPrefix(block, out, dst[histStart:dstOff])
	} else {
		produced, err = d.prim.DecompressFast(block, out)
	}

	if err := checkNativeDecode(produced, n, srcOff, err); err != nil {
		return 0, err
	}

	return n, nil
}

// checkNativeDecode turns a primitive decode result into a package error.
func checkNativeDecode(n, want, srcOff int, err error) error {
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "native decode of block at input offset %d", srcOff), ErrMalformedStream)
	}

	if n != want {
		return errors.Mark(errors.Newf("native decode produced %d bytes, want %d", n, want), ErrMalformedStream)
	}

	return nil
}
