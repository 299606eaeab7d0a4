// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// LZ4 block format constants.

// Sequence layout.
const (
	minMatch     = 4  // shortest encodable match; the encoded length excludes it
	lastLiterals = 5  // the last 5 bytes of a block are always literals
	mfLimit      = 12 // the last match must start at least 12 bytes before the end
	minInputLen  = mfLimit + 1

	mlBits  = 4
	mlMask  = (1 << mlBits) - 1
	runMask = (1 << (8 - mlBits)) - 1

	// lengthContinue marks a continuation byte that does not terminate a length field.
	lengthContinue = 255
)

// Match distance bounds.
const (
	maxDistance = 0xffff
	prefixSize  = 1 << 16 // history visible to prefix-64k decoding
)

// MaxInputSize is the largest input accepted by the compressors.
const MaxInputSize = 0x7E000000

// Hash parameters for the match finders.
const (
	fastHashLog = 16
	hcHashLog   = 15
	hcChainSize = 1 << 16
	hcChainMask = hcChainSize - 1

	// skipTrigger controls how fast the greedy parser accelerates over incompressible data.
	skipTrigger = 6
)
