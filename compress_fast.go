// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// fastHash is the multiplicative hash of a 4-byte little-endian word.
func fastHash(v uint32) uint32 {
	return (v * 2654435761) >> (32 - fastHashLog)
}

// compressFastBlock is the greedy parser (levels 0-2). It takes the most recent
// position with the same 4-byte hash, extends the match in both directions and
// accelerates over input that keeps missing.
func compressFastBlock[M memAccess](m M, in []byte, w *blockWriter) error {
	inputLen := len(in)
	if inputLen < minInputLen {
		return w.last(in)
	}

	table := acquireFastTable()
	defer releaseFastTable(table)

	matchLimit := inputLen - lastLiterals // matches end at or before this position
	searchLimit := inputLen - mfLimit     // matches start at or before this position
	anchor := 0

	table[fastHash(m.load32(in, 0))] = 1
	inputPos := 1

	for inputPos <= searchLimit {
		ref := -1
		step, searchCount := 1, 1<<skipTrigger

		for {
			h := fastHash(m.load32(in, inputPos))
			candidate := int(table[h]) - 1
			table[h] = uint32(inputPos + 1) //nolint:gosec // G115: positions are below MaxInputSize

			if candidate >= 0 &&
				inputPos-candidate <= maxDistance &&
				m.load32(in, candidate) == m.load32(in, inputPos) {
				ref = candidate
				break
			}

			// Miss: step grows by one every 1<<skipTrigger misses.
			inputPos += step
			step = searchCount >> skipTrigger
			searchCount++
			if inputPos > searchLimit {
				break
			}
		}

		if ref < 0 {
			break
		}

		for inputPos > anchor && ref > 0 && in[inputPos-1] == in[ref-1] {
			inputPos--
			ref--
		}

		matchLen := minMatch + commonLength(m, in, inputPos+minMatch, ref+minMatch, matchLimit)
		if err := w.sequence(in[anchor:inputPos], inputPos-ref, matchLen); err != nil {
			return err
		}

		inputPos += matchLen
		anchor = inputPos
		if inputPos > searchLimit {
			break
		}

		// Seed the table inside the match so the next search can find it.
		table[fastHash(m.load32(in, inputPos-2))] = uint32(inputPos - 1) //nolint:gosec // G115: positions are below MaxInputSize
	}

	return w.last(in[anchor:])
}
