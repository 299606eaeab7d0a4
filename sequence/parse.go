package sequence

import "github.com/cockroachdb/errors"

// Parse splits block into sequences. It only fails when a field is cut off by the
// end of the block; a block ending right after a match parses, and Validate
// reports it. Every read is bounded by len(block).
func Parse(block []byte) ([]Sequence, error) {
	var seqs []Sequence
	pos := 0

	for pos < len(block) {
		seq := Sequence{Pos: pos, Token: block[pos]}
		pos++

		litLen, next, err := readLength(block, pos, int(seq.Token>>4))
		if err != nil {
			return seqs, err
		}

		pos = next
		if litLen > len(block)-pos {
			return seqs, malformed(pos, "truncated literal run")
		}

		seq.LiteralLen = litLen
		seq.Literals = block[pos : pos+litLen : pos+litLen]
		pos += litLen

		if pos == len(block) {
			seqs = append(seqs, seq)
			return seqs, nil
		}

		if len(block)-pos < 2 {
			return seqs, malformed(pos, "truncated match offset")
		}

		seq.HasMatch = true
		seq.Offset = int(block[pos]) | int(block[pos+1])<<8
		pos += 2

		matchLen, next, err := readLength(block, pos, int(seq.Token&0x0f))
		if err != nil {
			return seqs, err
		}

		pos = next
		seq.MatchLen = matchLen + MinMatch
		seqs = append(seqs, seq)
	}

	return seqs, nil
}

// readLength extends a nibble with continuation bytes when it is 15.
func readLength(block []byte, pos, n int) (int, int, error) {
	if n != 15 {
		return n, pos, nil
	}

	for {
		if pos >= len(block) {
			return 0, pos, malformed(pos, "truncated length")
		}

		b := block[pos]
		pos++
		n += int(b)
		if b != 255 {
			return n, pos, nil
		}

		// Lengths past the address space can only come from hostile input.
		if n > maxLength {
			return 0, pos, malformed(pos, "length overflow")
		}
	}
}

const maxLength = 1<<31 - 1

// Options configures Validate.
type Options struct {
	// Prefix is the number of history bytes available before the output (0-65536).
	Prefix int
}

// Stats summarizes a valid block.
type Stats struct {
	DecodedLen   int // output bytes
	Sequences    int // sequences including the final one
	Matches      int // sequences with a match
	LiteralBytes int // total literal bytes
	MatchBytes   int // total copied match bytes
}

// Validate parses block and checks the structural rules every decoder enforces:
// offsets are non-zero and stay within the produced output plus opts.Prefix, the
// block ends with a literals-only sequence whose token declares no match and,
// when any match precedes it, that sequence carries at least LastLiterals bytes.
func Validate(block []byte, opts Options) (Stats, error) {
	if opts.Prefix < 0 {
		return Stats{}, errors.Newf("negative prefix %d", opts.Prefix)
	}

	if len(block) == 0 {
		return Stats{}, malformed(0, "empty block")
	}

	seqs, err := Parse(block)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, seq := range seqs {
		st.Sequences++
		st.LiteralBytes += seq.LiteralLen
		st.DecodedLen += seq.LiteralLen
		if !seq.HasMatch {
			continue
		}

		if seq.Offset == 0 {
			return Stats{}, malformed(seq.Pos, "zero match offset")
		}

		if seq.Offset > st.DecodedLen+opts.Prefix {
			return Stats{}, malformed(seq.Pos, "match offset before start of history")
		}

		st.Matches++
		st.MatchBytes += seq.MatchLen
		st.DecodedLen += seq.MatchLen
	}

	last := seqs[len(seqs)-1]
	switch {
	case last.HasMatch:
		return Stats{}, malformed(len(block), "block ends with a match")
	case last.Token&0x0f != 0:
		return Stats{}, malformed(last.Pos, "last token declares a match")
	case st.Matches > 0 && last.LiteralLen < LastLiterals:
		return Stats{}, malformed(last.Pos, "fewer than 5 literals after the last match")
	}

	return st, nil
}
