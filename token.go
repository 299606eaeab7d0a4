// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// tokenByte packs the literal and match nibbles into a sequence token.
// Both arguments are already clamped to 15.
func tokenByte(lit, match int) byte {
	// #nosec G115 -- both nibbles are clamped to 4 bits by the caller.
	return byte(lit<<mlBits | match)
}

// lengthExtraBytes reports how many continuation bytes a length field needs
// once its nibble saturates at 15.
func lengthExtraBytes(n int) int {
	if n < runMask {
		return 0
	}

	return (n-runMask)/lengthContinue + 1
}

// sequenceSize is the exact encoded size of one sequence.
// matchLen is the true copied length (>= minMatch) or 0 for the final sequence.
func sequenceSize(litLen, matchLen int) int {
	size := 1 + lengthExtraBytes(litLen) + litLen
	if matchLen > 0 {
		size += 2 + lengthExtraBytes(matchLen-minMatch)
	}

	return size
}

// blockWriter serializes sequences into a bounded destination. Every call checks
// the exact size of what it is about to write, so a failed call leaves nothing
// past the previous sequence and never touches bytes beyond len(dst).
type blockWriter struct {
	dst []byte
	pos int
}

// sequence writes one literal run followed by a match of matchLen bytes at offset.
func (w *blockWriter) sequence(lit []byte, offset, matchLen int) error {
	if w.pos+sequenceSize(len(lit), matchLen) > len(w.dst) {
		return ErrDestinationTooSmall
	}

	ml := matchLen - minMatch
	w.dst[w.pos] = tokenByte(min(len(lit), runMask), min(ml, mlMask))
	w.pos++
	w.putLength(len(lit))
	w.pos += copy(w.dst[w.pos:], lit)

	// #nosec G115 -- offsets never exceed maxDistance.
	w.dst[w.pos] = byte(offset)
	w.dst[w.pos+1] = byte(offset >> 8)
	w.pos += 2
	w.putLength(ml)

	return nil
}

// last writes the final literals-only sequence.
func (w *blockWriter) last(lit []byte) error {
	if w.pos+sequenceSize(len(lit), 0) > len(w.dst) {
		return ErrDestinationTooSmall
	}

	w.dst[w.pos] = tokenByte(min(len(lit), runMask), 0)
	w.pos++
	w.putLength(len(lit))
	w.pos += copy(w.dst[w.pos:], lit)

	return nil
}

// putLength writes the continuation bytes for a length whose nibble is saturated.
func (w *blockWriter) putLength(n int) {
	if n < runMask {
		return
	}

	n -= runMask
	for n >= lengthContinue {
		w.dst[w.pos] = lengthContinue
		w.pos++
		n -= lengthContinue
	}

	// #nosec G115 -- n < 255 here.
	w.dst[w.pos] = byte(n)
	w.pos++
}

// readLength extends a saturated nibble with continuation bytes from src[s:srcEnd].
// It stops once the value exceeds limit, so a hostile run of 255 bytes is never
// consumed past the point where it is already known to be too long. ok is false
// when the input ends inside the length field.
func readLength(src []byte, s, srcEnd, n, limit int) (length, next int, ok bool) {
	for {
		if s >= srcEnd {
			return n, s, false
		}

		b := src[s]
		s++
		n += int(b)
		if b != lengthContinue || n > limit {
			return n, s, true
		}
	}
}
