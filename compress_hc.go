// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// hcHash is the hash chain head index of a 4-byte little-endian word.
func hcHash(v uint32) uint32 {
	return (v * 2654435761) >> (32 - hcHashLog)
}

// hcMatchFinder walks hash chains over one input. Positions are inserted lazily:
// every search first links all positions between the previous search and the
// current one, so positions covered by an emitted match stay reachable.
type hcMatchFinder[M memAccess] struct {
	mem      M
	in       []byte
	table    *hcTable
	next     int // first position not yet linked into the chains
	limit    int // forward extension bound (input length - lastLiterals)
	attempts int
}

// insertUpTo links every position in [next, target) into its hash chain.
func (f *hcMatchFinder[M]) insertUpTo(target int) {
	for p := f.next; p < target; p++ {
		h := hcHash(f.mem.load32(f.in, p))
		delta := maxDistance
		if head := int(f.table.head[h]); head > 0 {
			delta = min(p-(head-1), maxDistance)
		}

		f.table.chain[p&hcChainMask] = uint16(delta) //nolint:gosec // G115: delta is capped at maxDistance
		f.table.head[h] = uint32(p + 1)              //nolint:gosec // G115: positions are below MaxInputSize
	}

	f.next = max(f.next, target)
}

// find returns the longest match for position s among at most attempts chain
// candidates. length is 0 when nothing of at least minMatch bytes was found.
func (f *hcMatchFinder[M]) find(s int) (ref, length int) {
	f.insertUpTo(s)

	v := f.mem.load32(f.in, s)
	best := f.limit - s
	candidate := int(f.table.head[hcHash(v)]) - 1

	for attempts := f.attempts; attempts > 0 && candidate >= 0 && s-candidate <= maxDistance; attempts-- {
		if f.mem.load32(f.in, candidate) == v {
			l := minMatch + commonLength(f.mem, f.in, s+minMatch, candidate+minMatch, f.limit)
			if l > length {
				ref, length = candidate, l
				if l == best {
					break
				}
			}
		}

		candidate -= int(f.table.chain[candidate&hcChainMask])
	}

	return ref, length
}

// compressHCBlock is the high-ratio parser (levels 3-12). It searches hash chains
// to the depth of the level and, for levels with lazy matching, moves the match
// start forward one byte at a time while that yields a strictly longer match.
func compressHCBlock[M memAccess](m M, in []byte, w *blockWriter, params compressLevelParams) error {
	inputLen := len(in)
	if inputLen < minInputLen {
		return w.last(in)
	}

	table := acquireHCTable()
	defer releaseHCTable(table)

	finder := hcMatchFinder[M]{
		mem:      m,
		in:       in,
		table:    table,
		limit:    inputLen - lastLiterals,
		attempts: params.maxAttempts,
	}

	searchLimit := inputLen - mfLimit
	anchor := 0
	inputPos := 0

	for inputPos <= searchLimit {
		ref, matchLen := finder.find(inputPos)
		if matchLen < minMatch {
			inputPos++
			continue
		}

		for params.lazy && inputPos+1 <= searchLimit {
			nextRef, nextLen := finder.find(inputPos + 1)
			if nextLen <= matchLen {
				break
			}

			inputPos, ref, matchLen = inputPos+1, nextRef, nextLen
		}

		if err := w.sequence(in[anchor:inputPos], inputPos-ref, matchLen); err != nil {
			return err
		}

		inputPos += matchLen
		anchor = inputPos
	}

	return w.last(in[anchor:])
}
