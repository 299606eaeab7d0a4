package sequence

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// MismatchError reports the first sequence at which two blocks differ.
type MismatchError struct {
	Index     int       // sequence index
	OutputPos int       // decoded offset where the sequences start
	A, B      *Sequence // nil when that block has fewer sequences
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("sequence %d (output offset %d) differs: %s vs %s",
		e.Index, e.OutputPos, describe(e.A), describe(e.B))
}

func describe(s *Sequence) string {
	if s == nil {
		return "<none>"
	}

	return s.String()
}

// Equal parses both blocks and returns a *MismatchError for the first sequence
// that differs in its token, literals, offset or match length.
func Equal(a, b []byte) error {
	seqA, err := Parse(a)
	if err != nil {
		return errors.Wrap(err, "first block")
	}

	seqB, err := Parse(b)
	if err != nil {
		return errors.Wrap(err, "second block")
	}

	out := 0
	for i, n := 0, max(len(seqA), len(seqB)); i < n; i++ {
		if i >= len(seqA) || i >= len(seqB) || !seqA[i].sameAs(seqB[i]) {
			m := &MismatchError{Index: i, OutputPos: out}
			if i < len(seqA) {
				m.A = &seqA[i]
			}

			if i < len(seqB) {
				m.B = &seqB[i]
			}

			return m
		}

		out += seqA[i].DecodedLen()
	}

	return nil
}
