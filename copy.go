// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// copyBackRef copies length bytes from dst[pos-dist:] to dst[pos:] as if byte by byte
// in increasing order. When dist < length the source overlaps the destination and the
// pattern of the last dist bytes repeats (RLE); the built-in copy would move the
// original bytes instead, so the run is grown in chunks of already written output.
// Callers validate pos-dist >= 0 and pos+length <= len(dst).
func copyBackRef(dst []byte, pos, dist, length int) {
	from := pos - dist
	if dist >= length {
		copy(dst[pos:pos+length], dst[from:from+length])
		return
	}

	end := pos + length
	for pos < end {
		pos += copy(dst[pos:end], dst[from:pos])
	}
}
