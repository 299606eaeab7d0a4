package bytebuf

import "github.com/cockroachdb/errors"

// CheckRange fails with ErrOutOfBounds unless off >= 0, n >= 0 and off+n <= buf.Cap().
func CheckRange(buf Buffer, off, n int) error {
	return checkRange(buf.Cap(), off, n)
}

// CheckRangeSlice is CheckRange for a plain slice.
func CheckRangeSlice(b []byte, off, n int) error {
	return checkRange(len(b), off, n)
}

// CheckOffset fails with ErrOutOfBounds unless 0 <= off < buf.Cap().
func CheckOffset(buf Buffer, off int) error {
	if off < 0 || off >= buf.Cap() {
		return errors.Wrapf(ErrOutOfBounds, "offset %d, capacity %d", off, buf.Cap())
	}

	return nil
}

func checkRange(capacity, off, n int) error {
	// off+n is compared as capacity-off to stay clear of overflow.
	if off < 0 || n < 0 || off > capacity || n > capacity-off {
		return errors.Wrapf(ErrOutOfBounds, "range [%d, %d+%d), capacity %d", off, off, n, capacity)
	}

	return nil
}
