// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// newPureBackend builds a pure-Go backend from a memory accessor and a copier.
// Backends built from the same parser emit byte-identical blocks.
func newPureBackend[M memAccess, C blockCopier](kind Kind, m M, c C) *Backend {
	var levels [hcLevelMax + 1]Compressor
	for level := 1; level <= hcLevelMax; level++ {
		levels[level] = pureCompressor[M]{mem: m, level: level}
	}

	return &Backend{
		kind: kind,
		name: kind.String(),
		compressor: func(level int) Compressor {
			return levels[level]
		},
		fast: pureFastDecompressor[C]{copier: c},
		safe: pureSafeDecompressor[C]{copier: c},
	}
}

// pureCompressor compresses with the package parsers at one level.
type pureCompressor[M memAccess] struct {
	mem   M
	level int
}

func (pureCompressor[M]) MaxCompressedLength(n int) int {
	return MaxCompressedLength(n)
}

func (p pureCompressor[M]) Compress(src []byte, srcOff, srcLen int, dst []byte, dstOff, maxDstLen int) (int, error) {
	if err := checkCompressArgs(src, srcOff, srcLen, dst, dstOff, maxDstLen); err != nil {
		return 0, err
	}

	end := dstOff + maxDstLen
	return compressBlock(p.mem, src[srcOff:srcOff+srcLen], dst[dstOff:end:end], p.level)
}

// pureFastDecompressor decodes with a known output length.
type pureFastDecompressor[C blockCopier] struct {
	copier C
}

func (p pureFastDecompressor[C]) Decompress(src []byte, srcOff int, dst []byte, dstOff, dstLen int) (int, error) {
	if err := checkFastArgs(src, srcOff, dst, dstOff, dstLen); err != nil {
		return 0, err
	}

	n, _, err := decodeFast(p.copier, src, srcOff, dst, dstOff, dstOff, dstLen)
	return n, err
}

func (p pureFastDecompressor[C]) DecompressWithPrefix64k(src []byte, srcOff int, dst []byte, dstOff, dstLen int) (int, error) {
	if err := checkFastArgs(src, srcOff, dst, dstOff, dstLen); err != nil {
		return 0, err
	}

	n, _, err := decodeFast(p.copier, src, srcOff, dst, prefixStart(dstOff), dstOff, dstLen)
	return n, err
}

// pureSafeDecompressor decodes with a known input length.
type pureSafeDecompressor[C blockCopier] struct {
	copier C
}

func (p pureSafeDecompressor[C]) Decompress(src []byte, srcOff, srcLen int, dst []byte, dstOff int) (int, error) {
	if err := checkSafeArgs(src, srcOff, srcLen, dst, dstOff); err != nil {
		return 0, err
	}

	return decodeSafe(p.copier, src, srcOff, srcLen, dst, dstOff, dstOff, false)
}

func (p pureSafeDecompressor[C]) DecompressWithPrefix64k(src []byte, srcOff, srcLen int, dst []byte, dstOff int) (int, error) {
	if err := checkSafeArgs(src, srcOff, srcLen, dst, dstOff); err != nil {
		return 0, err
	}

	return decodeSafe(p.copier, src, srcOff, srcLen, dst, prefixStart(dstOff), dstOff, false)
}

// checkFastArgs validates the ranges of a fast Decompress call.
func checkFastArgs(src []byte, srcOff int, dst []byte, dstOff, dstLen int) error {
	if err := checkRange(src, srcOff, 0); err != nil {
		return err
	}

	return checkRange(dst, dstOff, dstLen)
}

// checkSafeArgs validates the ranges of a safe Decompress call.
func checkSafeArgs(src []byte, srcOff, srcLen int, dst []byte, dstOff int) error {
	if err := checkRange(src, srcOff, srcLen); err != nil {
		return err
	}

	return checkRange(dst, dstOff, 0)
}
