package bytebuf

// Slice returns buf[off:off+n] when the buffer is addressable. ok is false for
// opaque buffers; the range must already be checked.
func Slice(buf Buffer, off, n int) (b []byte, ok bool) {
	arr, ok := buf.Array()
	if !ok {
		return nil, false
	}

	return arr[off : off+n : off+n], true
}

// Span is a slice view of a buffer range. For addressable buffers it aliases the
// storage; for opaque ones it is a copy that Commit writes back.
type Span struct {
	buf    Buffer
	off    int
	b      []byte
	direct bool
}

// OpenSpan checks [off, off+n) against buf and returns a span over it. When the
// buffer is opaque and load is true the current contents are copied in;
// otherwise a copied span starts zeroed.
func OpenSpan(buf Buffer, off, n int, load bool) (*Span, error) {
	if err := CheckRange(buf, off, n); err != nil {
		return nil, err
	}

	if b, ok := Slice(buf, off, n); ok {
		return &Span{buf: buf, off: off, b: b, direct: true}, nil
	}

	s := &Span{buf: buf, off: off, b: make([]byte, n)}
	if load && n > 0 {
		if _, err := buf.ReadAt(s.b, int64(off)); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Bytes returns the span contents.
func (s *Span) Bytes() []byte { return s.b }

// Direct reports whether the span aliases the buffer storage.
func (s *Span) Direct() bool { return s.direct }

// Commit writes the first n span bytes back to the buffer.
func (s *Span) Commit(n int) error {
	return s.CommitRange(0, n)
}

// CommitRange writes span bytes [from, from+n) back to the buffer. It is a no-op
// for direct spans.
func (s *Span) CommitRange(from, n int) error {
	if err := checkRange(len(s.b), from, n); err != nil {
		return err
	}

	if s.direct || n == 0 {
		return nil
	}

	_, err := s.buf.WriteAt(s.b[from:from+n], int64(s.off+from))
	return err
}
