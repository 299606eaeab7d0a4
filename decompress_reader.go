package lz4

import (
	"io"

	"github.com/cockroachdb/errors"
)

// DecompressFromReader reads the full block then calls Decompress. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	if opts.MaxInputSize > 0 {
		// One byte past the limit is enough to tell the stream is too large.
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read compressed block")
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, errors.Wrapf(ErrInputTooLarge, "more than %d bytes", opts.MaxInputSize)
	}

	return Decompress(src, opts)
}
