// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// decodeFast decodes the block at src[srcOff:] into dst[dstOff:dstOff+dstLen]. The
// output length is known, so decoding stops successfully as soon as a literal run
// fills it, even when that sequence still declares a match or input remains.
// Back-references may reach down to dst[histStart]. It returns the number of input
// bytes consumed and the input position of the last token read.
//
// Every read is checked against len(src) and every write against dstOff+dstLen;
// continuation loops stop at the end of input, so hostile input can neither
// escape the buffers nor loop.
func decodeFast[C blockCopier](c C, src []byte, srcOff int, dst []byte, histStart, dstOff, dstLen int) (consumed, lastToken int, err error) {
	srcEnd := len(src)
	dstEnd := dstOff + dstLen
	inPos := srcOff
	outPos := dstOff

	for {
		if inPos >= srcEnd {
			return 0, 0, corrupt(inPos, "missing token")
		}

		lastToken = inPos
		token := src[inPos]
		inPos++

		litLen := int(token >> mlBits)
		if litLen == runMask {
			var ok bool
			litLen, inPos, ok = readLength(src, inPos, srcEnd, litLen, dstEnd-outPos)
			if !ok {
				return 0, 0, corrupt(inPos, "truncated literal length")
			}
		}

		if litLen > dstEnd-outPos {
			return 0, 0, corrupt(inPos, "literal run exceeds output length")
		}

		if litLen > srcEnd-inPos {
			return 0, 0, corrupt(inPos, "truncated literal run")
		}

		c.literals(dst, outPos, src, inPos, litLen)
		inPos += litLen
		outPos += litLen

		if outPos == dstEnd {
			return inPos - srcOff, lastToken, nil
		}

		// A block never ends with a match, so after a non-final literal run there
		// must be room for a minimum match and the trailing literals.
		if dstEnd-outPos < minMatch+lastLiterals {
			return 0, 0, corrupt(inPos, "literal run leaves no room for a match and the last literals")
		}

		if srcEnd-inPos < 2 {
			return 0, 0, corrupt(inPos, "truncated match offset")
		}

		offset := int(src[inPos]) | int(src[inPos+1])<<8
		if offset == 0 {
			return 0, 0, corrupt(inPos, "zero match offset")
		}

		if offset > outPos-histStart {
			return 0, 0, corrupt(inPos, "match offset before start of history")
		}

		inPos += 2

		matchLen := int(token & mlMask)
		matchRoom := dstEnd - lastLiterals - outPos
		if matchLen == mlMask {
			var ok bool
			matchLen, inPos, ok = readLength(src, inPos, srcEnd, matchLen, matchRoom)
			if !ok {
				return 0, 0, corrupt(inPos, "truncated match length")
			}
		}

		matchLen += minMatch
		if matchLen > matchRoom {
			return 0, 0, corrupt(inPos, "match overruns the last literals")
		}

		c.match(dst, outPos, offset, matchLen)
		outPos += matchLen
	}
}

// prefixStart returns the lowest output position visible as history in
// prefix-64k mode.
func prefixStart(dstOff int) int {
	return max(0, dstOff-prefixSize)
}
