// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// decodeSafe decodes exactly srcLen bytes of input at src[srcOff:] into dst[dstOff:],
// discovering the output length. The block must end exactly at srcOff+srcLen with a
// literals-only sequence; after any match that sequence carries at least
// lastLiterals bytes. Back-references may reach down to dst[histStart].
//
// In lenient mode a final literal run cut short by srcLen is accepted as long as
// at least one of its bytes is present; the decoded prefix is returned.
func decodeSafe[C blockCopier](c C, src []byte, srcOff, srcLen int, dst []byte, histStart, dstOff int, lenient bool) (int, error) {
	if srcLen == 0 {
		return 0, nil
	}

	srcEnd := srcOff + srcLen
	dstEnd := len(dst)
	inPos := srcOff
	outPos := dstOff
	matched := false

	for {
		token := src[inPos]
		inPos++

		litLen := int(token >> mlBits)
		if litLen == runMask {
			var ok bool
			litLen, inPos, ok = readLength(src, inPos, srcEnd, litLen, dstEnd-outPos)
			if !ok {
				return 0, corrupt(inPos, "truncated literal length")
			}
		}

		if litLen > dstEnd-outPos {
			return 0, overrun(inPos, "literal run exceeds destination")
		}

		if avail := srcEnd - inPos; litLen > avail {
			if avail == 0 {
				return 0, corrupt(inPos, "block ends before a literal run")
			}
			if !lenient {
				return 0, corrupt(inPos, reasonTruncatedLiterals)
			}

			c.literals(dst, outPos, src, inPos, avail)
			return outPos + avail - dstOff, nil
		}

		c.literals(dst, outPos, src, inPos, litLen)
		inPos += litLen
		outPos += litLen

		if inPos == srcEnd {
			if token&mlMask != 0 {
				return 0, corrupt(inPos, "block ends inside a sequence")
			}

			if matched && litLen < lastLiterals {
				return 0, corrupt(inPos, "fewer than 5 literals after the last match")
			}

			return outPos - dstOff, nil
		}

		if srcEnd-inPos < 2 {
			return 0, corrupt(inPos, "truncated match offset")
		}

		offset := int(src[inPos]) | int(src[inPos+1])<<8
		if offset == 0 {
			return 0, corrupt(inPos, "zero match offset")
		}

		if offset > outPos-histStart {
			return 0, corrupt(inPos, "match offset before start of history")
		}

		inPos += 2

		matchLen := int(token & mlMask)
		if matchLen == mlMask {
			var ok bool
			matchLen, inPos, ok = readLength(src, inPos, srcEnd, matchLen, dstEnd-outPos)
			if !ok {
				return 0, corrupt(inPos, "truncated match length")
			}
		}

		matchLen += minMatch
		if matchLen > dstEnd-outPos {
			return 0, overrun(inPos, "match exceeds destination")
		}

		c.match(dst, outPos, offset, matchLen)
		outPos += matchLen
		matched = true

		if inPos == srcEnd {
			return 0, corrupt(inPos, "block ends with a match")
		}
	}
}
