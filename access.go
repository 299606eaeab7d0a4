// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// memAccess is the word-load strategy of a pure-Go backend. The parsers are
// generic over it, so the checked and unchecked backends share one match finder
// and differ only in how they touch memory. Both return little-endian values.
type memAccess interface {
	load32(b []byte, i int) uint32
	load64(b []byte, i int) uint64
}

// checkedAccess loads through slice bounds checks.
type checkedAccess struct{}

func (checkedAccess) load32(b []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(b[i:])
}

func (checkedAccess) load64(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i:])
}

// uncheckedAccess loads words straight from the backing array. Callers keep i+8
// (or i+4) within len(b); nothing here verifies it.
type uncheckedAccess struct{}

func (uncheckedAccess) load32(b []byte, i int) uint32 {
	// #nosec G103 -- the parsers only load inside the validated input window.
	v := *(*uint32)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b)), i))
	if bigEndianHost {
		v = bits.ReverseBytes32(v)
	}

	return v
}

func (uncheckedAccess) load64(b []byte, i int) uint64 {
	// #nosec G103 -- the parsers only load inside the validated input window.
	v := *(*uint64)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b)), i))
	if bigEndianHost {
		v = bits.ReverseBytes64(v)
	}

	return v
}

// bigEndianHost is true when native word loads must be byte-swapped to match
// the little-endian values the parsers hash and compare.
var bigEndianHost = binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x1234

// commonLength counts equal bytes at a and b (b < a) without reading at or past limit.
func commonLength[M memAccess](m M, in []byte, a, b, limit int) int {
	start := a
	for a+8 <= limit {
		if x := m.load64(in, a) ^ m.load64(in, b); x != 0 {
			return a - start + bits.TrailingZeros64(x)>>3
		}

		a += 8
		b += 8
	}

	for a < limit && in[a] == in[b] {
		a++
		b++
	}

	return a - start
}

// blockCopier moves decoded bytes. The decoders validate every range before
// calling it, so implementations only differ in how they copy.
type blockCopier interface {
	literals(dst []byte, d int, src []byte, s, n int)
	match(dst []byte, d, offset, n int)
}

// checkedCopier copies through slice expressions.
type checkedCopier struct{}

func (checkedCopier) literals(dst []byte, d int, src []byte, s, n int) {
	copy(dst[d:d+n], src[s:s+n])
}

func (checkedCopier) match(dst []byte, d, offset, n int) {
	copyBackRef(dst, d, offset, n)
}

// uncheckedCopier moves matches eight bytes at a time when the offset allows it.
type uncheckedCopier struct{}

func (uncheckedCopier) literals(dst []byte, d int, src []byte, s, n int) {
	copy(dst[d:d+n], src[s:s+n])
}

func (uncheckedCopier) match(dst []byte, d, offset, n int) {
	if offset < 8 {
		copyBackRef(dst, d, offset, n)
		return
	}

	// #nosec G103 -- d+n and d-offset were validated against the output window.
	base := unsafe.Pointer(unsafe.SliceData(dst))
	p := d
	end := d + n
	for p+8 <= end {
		*(*uint64)(unsafe.Add(base, p)) = *(*uint64)(unsafe.Add(base, p-offset))
		p += 8
	}

	for ; p < end; p++ {
		*(*byte)(unsafe.Add(base, p)) = *(*byte)(unsafe.Add(base, p-offset))
	}
}

// discardCopier validates a stream without producing output.
type discardCopier struct{}

func (discardCopier) literals([]byte, int, []byte, int, int) {}

func (discardCopier) match([]byte, int, int, int) {}
