// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

/*
Package sequence parses LZ4 blocks into their sequences without decoding them.

It is independent of the codec backends and is used to compare the exact token
streams two encoders produced, to validate block structure, and to build
hand-written blocks for decoder tests.

	seqs, err := sequence.Parse(block)
	stats, err := sequence.Validate(block, sequence.Options{})
	err = sequence.Equal(blockA, blockB) // *MismatchError on the first difference

# Block layout

	token        1 byte   literal length nibble (high), match length - 4 nibble (low)
	[lit ext]    0+ bytes present when the literal nibble is 15; 255 continues
	literals     literal length bytes
	offset       2 bytes  little-endian, absent on the last sequence
	[match ext]  0+ bytes present when the match nibble is 15; 255 continues
*/
package sequence

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Format constants.
const (
	MinMatch     = 4 // shortest match; encoded match lengths exclude it
	LastLiterals = 5 // literals required after the last match
)

// ErrMalformed is returned for blocks that are truncated or break a structural rule.
var ErrMalformed = errors.New("malformed block")

// Sequence is one literal run optionally followed by a match.
type Sequence struct {
	// Pos is the input offset of the token.
	Pos int
	// Token is the raw token byte.
	Token byte
	// LiteralLen is the number of literal bytes.
	LiteralLen int
	// Literals aliases the literal bytes of the parsed block.
	Literals []byte
	// HasMatch is false for the final literals-only sequence.
	HasMatch bool
	// Offset is the match distance; 0 is representable but never valid.
	Offset int
	// MatchLen is the copied match length (encoded length + MinMatch).
	MatchLen int
}

// String returns a compact description of the sequence.
func (s Sequence) String() string {
	if !s.HasMatch {
		return fmt.Sprintf("@%d lit=%d (last)", s.Pos, s.LiteralLen)
	}

	return fmt.Sprintf("@%d lit=%d off=%d match=%d", s.Pos, s.LiteralLen, s.Offset, s.MatchLen)
}

// DecodedLen returns the output bytes the sequence produces.
func (s Sequence) DecodedLen() int {
	if !s.HasMatch {
		return s.LiteralLen
	}

	return s.LiteralLen + s.MatchLen
}

// sameAs compares the encoded content of two sequences, ignoring their positions.
func (s Sequence) sameAs(o Sequence) bool {
	return s.Token == o.Token &&
		s.LiteralLen == o.LiteralLen &&
		string(s.Literals) == string(o.Literals) &&
		s.HasMatch == o.HasMatch &&
		s.Offset == o.Offset &&
		s.MatchLen == o.MatchLen
}

// malformed builds an ErrMalformed error at input offset pos.
func malformed(pos int, reason string) error {
	return errors.Mark(errors.Newf("input offset %d: %s", pos, reason), ErrMalformed)
}
