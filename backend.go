// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Compressor encodes raw bytes into an LZ4 block.
type Compressor interface {
	// MaxCompressedLength returns the worst-case block size for n input bytes.
	MaxCompressedLength(n int) int
	// Compress encodes src[srcOff:srcOff+srcLen] into dst[dstOff:], writing at most
	// maxDstLen bytes, and returns the block length. It fails with
	// ErrDestinationTooSmall when the block does not fit; bytes inside
	// dst[dstOff:dstOff+maxDstLen] are unspecified after a failure.
	Compress(src []byte, srcOff, srcLen int, dst []byte, dstOff, maxDstLen int) (int, error)
}

// FastDecompressor decodes a block whose decompressed length is known.
type FastDecompressor interface {
	// Decompress decodes exactly dstLen bytes into dst[dstOff:] from the block at
	// src[srcOff:] and returns the number of input bytes consumed. Trailing input
	// after that point is ignored.
	Decompress(src []byte, srcOff int, dst []byte, dstOff, dstLen int) (int, error)
	// DecompressWithPrefix64k is Decompress with up to 64 KiB of dst before dstOff
	// usable as match history.
	DecompressWithPrefix64k(src []byte, srcOff int, dst []byte, dstOff, dstLen int) (int, error)
}

// SafeDecompressor decodes a block whose compressed length is known.
type SafeDecompressor interface {
	// Decompress decodes the block of exactly srcLen bytes at src[srcOff:] into
	// dst[dstOff:] and returns the number of bytes produced.
	Decompress(src []byte, srcOff, srcLen int, dst []byte, dstOff int) (int, error)
	// DecompressWithPrefix64k is Decompress with up to 64 KiB of dst before dstOff
	// usable as match history.
	DecompressWithPrefix64k(src []byte, srcOff, srcLen int, dst []byte, dstOff int) (int, error)
}

// Kind identifies a backend implementation.
type Kind uint8

// Backend kinds.
const (
	// KindNative delegates to an external LZ4 primitive after validating in Go.
	KindNative Kind = iota + 1
	// KindUnchecked is pure Go with unsafe word loads and wide match copies.
	KindUnchecked
	// KindChecked is pure Go with every access bounds-checked by the runtime.
	KindChecked
)

// String returns the backend name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindUnchecked:
		return "unchecked"
	case KindChecked:
		return "checked"
	default:
		return "unknown"
	}
}

// Backend is an immutable set of compressors and decompressors sharing one
// implementation strategy. Backends hold no mutable state and are safe for
// concurrent use.
type Backend struct {
	kind       Kind
	name       string
	lenient    bool
	compressor func(level int) Compressor
	fast       FastDecompressor
	safe       SafeDecompressor
}

// Kind returns the backend kind.
func (b *Backend) Kind() Kind { return b.kind }

// Name returns the registered backend name.
func (b *Backend) Name() string { return b.name }

func (b *Backend) String() string { return b.name }

// FastCompressor returns the greedy compressor.
func (b *Backend) FastCompressor() Compressor {
	return b.compressor(1)
}

// HighCompressor returns the hash chain compressor at DefaultHighLevel.
func (b *Backend) HighCompressor() Compressor {
	return b.compressor(DefaultHighLevel)
}

// CompressorLevel returns the compressor for level. Levels below 3 select the
// greedy parser and levels above 12 are treated as 12.
func (b *Backend) CompressorLevel(level int) Compressor {
	return b.compressor(clampLevel(level))
}

// FastDecompressor returns the decompressor for a known output length.
func (b *Backend) FastDecompressor() FastDecompressor { return b.fast }

// SafeDecompressor returns the decompressor for a known input length.
func (b *Backend) SafeDecompressor() SafeDecompressor { return b.safe }

// LenientTruncation reports whether the safe decompressor accepts a block whose
// declared length cuts its final literal run short.
func (b *Backend) LenientTruncation() bool { return b.lenient }

// Registered backends.
var (
	// Native validates in Go and decodes with github.com/pierrec/lz4/v4.
	Native = NewNativeBackend(PierrecPrimitive{})
	// Unchecked is the pure-Go backend using unsafe loads and copies.
	Unchecked = newPureBackend(KindUnchecked, uncheckedAccess{}, uncheckedCopier{})
	// Checked is the pure-Go backend with runtime bounds checks on every access.
	Checked = newPureBackend(KindChecked, checkedAccess{}, checkedCopier{})
)

// Backends returns the registered backends in a stable order.
func Backends() []*Backend {
	return []*Backend{Native, Unchecked, Checked}
}

// BackendByName returns the backend registered under name (case-insensitive).
func BackendByName(name string) (*Backend, error) {
	for _, b := range Backends() {
		if strings.EqualFold(b.name, name) {
			return b, nil
		}
	}

	return nil, errors.Wrapf(ErrUnknownBackend, "%q", name)
}
