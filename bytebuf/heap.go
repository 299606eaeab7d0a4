package bytebuf

import "encoding/binary"

// Heap is owned, growable byte storage. Its backing array is always addressable.
type Heap struct {
	buf   []byte
	order binary.ByteOrder
}

// NewHeap returns a zeroed heap buffer of n bytes.
func NewHeap(n int) *Heap {
	return &Heap{buf: make([]byte, n), order: defaultOrder}
}

// Wrap returns a heap buffer over b without copying it.
func Wrap(b []byte) *Heap {
	return &Heap{buf: b, order: defaultOrder}
}

// Grow extends the buffer to at least n bytes, keeping its contents.
// New bytes are zero.
func (h *Heap) Grow(n int) {
	if n <= len(h.buf) {
		return
	}

	if n <= cap(h.buf) {
		tail := h.buf[len(h.buf):n]
		clear(tail)
		h.buf = h.buf[:n]
		return
	}

	grown := make([]byte, n, max(n, 2*cap(h.buf)))
	copy(grown, h.buf)
	h.buf = grown
}

// Bytes returns the backing slice.
func (h *Heap) Bytes() []byte { return h.buf }

// Cap returns the number of addressable bytes.
func (h *Heap) Cap() int { return len(h.buf) }

// Order returns the default byte order.
func (h *Heap) Order() binary.ByteOrder { return h.order }

// Array returns the backing slice.
func (h *Heap) Array() ([]byte, bool) { return h.buf, true }

// ReadAt copies h[off:off+len(p)] into p.
func (h *Heap) ReadAt(p []byte, off int64) (int, error) {
	if err := checkRange(len(h.buf), int(off), len(p)); err != nil {
		return 0, err
	}

	return copy(p, h.buf[off:]), nil
}

// WriteAt copies p into h[off:].
func (h *Heap) WriteAt(p []byte, off int64) (int, error) {
	if err := checkRange(len(h.buf), int(off), len(p)); err != nil {
		return 0, err
	}

	return copy(h.buf[off:], p), nil
}
