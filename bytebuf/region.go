package bytebuf

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
)

// Region is a fixed-capacity byte range supplied by the caller. It is either backed
// by a slice (addressable) or by an io.ReaderAt / io.WriterAt pair (opaque).
type Region struct {
	array       []byte
	addressable bool
	r           io.ReaderAt
	w           io.WriterAt
	capacity    int
	order       binary.ByteOrder
}

// NewRegion returns an addressable region over b. Its capacity is len(b).
func NewRegion(b []byte) *Region {
	return &Region{array: b, addressable: true, capacity: len(b), order: defaultOrder}
}

// NewOpaqueRegion returns a region of the given capacity whose bytes are only
// reachable through r and w. Either may be nil for a write-only or read-only region.
func NewOpaqueRegion(r io.ReaderAt, w io.WriterAt, capacity int) *Region {
	return &Region{r: r, w: w, capacity: max(capacity, 0), order: defaultOrder}
}

// Cap returns the number of addressable bytes.
func (g *Region) Cap() int { return g.capacity }

// Order returns the default byte order.
func (g *Region) Order() binary.ByteOrder { return g.order }

// Array returns the backing slice of an addressable region.
func (g *Region) Array() ([]byte, bool) {
	return g.array, g.addressable
}

// ReadAt copies len(p) bytes at off into p.
func (g *Region) ReadAt(p []byte, off int64) (int, error) {
	if err := checkRange(g.capacity, int(off), len(p)); err != nil {
		return 0, err
	}

	if b, ok := g.Array(); ok {
		return copy(p, b[off:]), nil
	}

	if g.r == nil {
		return 0, ErrWriteOnly
	}

	n, err := g.r.ReadAt(p, off)
	if n == len(p) {
		// io.ReaderAt may report io.EOF together with a full read at the end.
		return n, nil
	}

	if err == nil {
		err = io.ErrUnexpectedEOF
	}

	return n, errors.Wrapf(err, "read %d bytes at %d", len(p), off)
}

// WriteAt copies p into the region at off.
func (g *Region) WriteAt(p []byte, off int64) (int, error) {
	if err := checkRange(g.capacity, int(off), len(p)); err != nil {
		return 0, err
	}

	if b, ok := g.Array(); ok {
		return copy(b[off:], p), nil
	}

	if g.w == nil {
		return 0, ErrReadOnly
	}

	n, err := g.w.WriteAt(p, off)
	if err != nil {
		return n, errors.Wrapf(err, "write %d bytes at %d", len(p), off)
	}

	return n, nil
}
