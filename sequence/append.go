package sequence

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// AppendSequence encodes seq at the end of dst. Only Literals, HasMatch, Offset and
// MatchLen are used; values are written as given, so invalid blocks (offset 0, a
// trailing match) can be built on purpose. MatchLen below MinMatch is treated as
// MinMatch.
func AppendSequence(dst []byte, seq Sequence) []byte {
	litLen := len(seq.Literals)
	token := byte(min(litLen, 15)) << 4

	matchLen := 0
	if seq.HasMatch {
		matchLen = max(seq.MatchLen, MinMatch) - MinMatch
		token |= byte(min(matchLen, 15))
	}

	dst = append(dst, token)
	dst = appendLength(dst, litLen)
	dst = append(dst, seq.Literals...)

	if !seq.HasMatch {
		return dst
	}

	dst = binary.LittleEndian.AppendUint16(dst, uint16(seq.Offset)) //nolint:gosec // G115: test blocks carry raw offsets
	return appendLength(dst, matchLen)
}

// AppendLiterals encodes a literals-only final sequence.
func AppendLiterals(dst, literals []byte) []byte {
	return AppendSequence(dst, Sequence{Literals: literals})
}

func appendLength(dst []byte, n int) []byte {
	if n < 15 {
		return dst
	}

	n -= 15
	for n >= 255 {
		dst = append(dst, 255)
		n -= 255
	}

	return append(dst, byte(n))
}

// Fingerprint hashes the shape of a sequence list (literal lengths, offsets and
// match lengths) with xxhash. Blocks with equal fingerprints made the same
// parsing decisions.
func Fingerprint(seqs []Sequence) uint64 {
	d := xxhash.New()

	var rec [25]byte
	for _, s := range seqs {
		binary.LittleEndian.PutUint64(rec[0:], uint64(s.LiteralLen)) //nolint:gosec // G115: lengths are non-negative
		binary.LittleEndian.PutUint64(rec[8:], uint64(s.Offset))     //nolint:gosec // G115: offsets are non-negative
		binary.LittleEndian.PutUint64(rec[16:], uint64(s.MatchLen))  //nolint:gosec // G115: lengths are non-negative
		rec[24] = 0
		if s.HasMatch {
			rec[24] = 1
		}

		_, _ = d.Write(rec[:])
	}

	return d.Sum64()
}
