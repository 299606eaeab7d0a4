// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for compression and decompression.
var (
	// ErrInvalidArgument is returned for negative lengths or offsets and for ranges
	// that do not fit the supplied buffers. It is checked before any format work.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDestinationTooSmall is returned when the output does not fit the destination capacity.
	ErrDestinationTooSmall = errors.New("destination too small")
	// ErrMalformedStream is returned when a decoder meets input that is not a valid block.
	ErrMalformedStream = errors.New("malformed stream")

	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrOptionsRequired is returned when Decompress is called with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when the input exceeds MaxInputSize or DecompressOptions.MaxInputSize.
	ErrInputTooLarge = errors.New("input too large")
	// ErrUnknownBackend is returned by BackendByName for names that are not registered.
	ErrUnknownBackend = errors.New("unknown backend")
)

// CorruptInputError reports the input offset at which a decoder rejected a block.
// errors.Is matches it against ErrMalformedStream, or against ErrDestinationTooSmall
// when the safe decoder ran out of destination capacity.
type CorruptInputError struct {
	Offset int    // Offset is the input position (relative to the buffer start) where decoding failed.
	Reason string // Reason is a short description of the violated rule.
	kind   error
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("%v: %s at input offset %d", e.kind, e.Reason, e.Offset)
}

// Unwrap returns the sentinel describing the error class.
func (e *CorruptInputError) Unwrap() error {
	return e.kind
}

// reasonTruncatedLiterals marks a final literal run cut short by the declared input
// length with at least one of its bytes present.
const reasonTruncatedLiterals = "truncated literal run"

// isTruncatedLiterals reports whether err is a safe-decoder failure that lenient
// decoding would accept.
func isTruncatedLiterals(err error) bool {
	var ce *CorruptInputError
	return errors.As(err, &ce) && ce.Reason == reasonTruncatedLiterals
}

// corrupt builds a malformed-stream error for input offset off.
func corrupt(off int, reason string) error {
	return &CorruptInputError{Offset: off, Reason: reason, kind: ErrMalformedStream}
}

// overrun builds a capacity error for input offset off.
func overrun(off int, reason string) error {
	return &CorruptInputError{Offset: off, Reason: reason, kind: ErrDestinationTooSmall}
}

// invalidArgf wraps ErrInvalidArgument with a formatted detail.
func invalidArgf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
