package lz4

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestBackendByName(t *testing.T) {
	tests := []struct {
		name string
		want *Backend
	}{
		{"native", Native},
		{"unchecked", Unchecked},
		{"checked", Checked},
		{"Checked", Checked},
		{"NATIVE", Native},
	}

	for _, tc := range tests {
		got, err := BackendByName(tc.name)
		if err != nil {
			t.Fatalf("BackendByName(%q) failed: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("BackendByName(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}

	if _, err := BackendByName("jni"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestBackend_KindsAndNames(t *testing.T) {
	want := []struct {
		kind Kind
		name string
	}{
		{KindNative, "native"},
		{KindUnchecked, "unchecked"},
		{KindChecked, "checked"},
	}

	backends := Backends()
	if len(backends) != len(want) {
		t.Fatalf("got %d backends, want %d", len(backends), len(want))
	}

	for i, b := range backends {
		if b.Kind() != want[i].kind || b.Name() != want[i].name || b.String() != want[i].name {
			t.Fatalf("backend %d: kind=%v name=%q", i, b.Kind(), b.Name())
		}
		if b.Kind().String() != b.Name() {
			t.Fatalf("backend %d: kind string %q != name %q", i, b.Kind(), b.Name())
		}
	}

	if Kind(0).String() != "unknown" {
		t.Fatalf("Kind(0) = %q", Kind(0))
	}
}

func TestBackend_CompressorLevelClamps(t *testing.T) {
	data := bytes.Repeat([]byte("clamp-me "), 500)

	for _, b := range Backends() {
		pairs := [][2]Compressor{
			{b.CompressorLevel(-5), b.FastCompressor()},
			{b.CompressorLevel(0), b.FastCompressor()},
			{b.CompressorLevel(DefaultHighLevel), b.HighCompressor()},
			{b.CompressorLevel(99), b.CompressorLevel(12)},
		}

		for i, p := range pairs {
			ga := compressWith(t, p[0], data)
			gb := compressWith(t, p[1], data)
			if !bytes.Equal(ga, gb) {
				t.Fatalf("%s pair %d: blocks differ", b, i)
			}
		}
	}
}

func compressWith(t *testing.T, c Compressor, data []byte) []byte {
	t.Helper()

	dst := make([]byte, c.MaxCompressedLength(len(data)))
	n, err := c.Compress(data, 0, len(data), dst, 0, len(dst))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	return dst[:n]
}

func TestBackend_ConcurrentUse(t *testing.T) {
	data := bytes.Repeat([]byte("concurrent backend use "), 2000)

	for _, b := range Backends() {
		done := make(chan error, 8)
		for w := 0; w < 8; w++ {
			w := w
			go func() {
				level := 1 + w
				for i := 0; i < 20; i++ {
					cmp, err := Compress(data, &CompressOptions{Level: level, Backend: b})
					if err != nil {
						done <- err
						return
					}

					out, err := Decompress(cmp, &DecompressOptions{OutLen: len(data), Backend: b})
					if err != nil {
						done <- err
						return
					}

					if !bytes.Equal(out, data) {
						done <- errors.Newf("level %d: round-trip mismatch", level)
						return
					}
				}
				done <- nil
			}()
		}

		for i := 0; i < 8; i++ {
			if err := <-done; err != nil {
				t.Fatalf("%s: %v", b, err)
			}
		}
	}
}

// stubPrimitive records calls and fails on demand.
type stubPrimitive struct {
	PierrecPrimitive
	calls   int
	failErr error
	short   bool
}

func (s *stubPrimitive) CompressLimited(src, dst []byte, level int) (int, error) {
	s.calls++
	if s.failErr != nil {
		return 0, s.failErr
	}

	n, err := s.PierrecPrimitive.CompressLimited(src, dst, level)
	if s.short {
		return len(dst) + 1, err
	}

	return n, err
}

func (s *stubPrimitive) DecompressFast(src, dst []byte) (int, error) {
	s.calls++
	if s.failErr != nil {
		return 0, s.failErr
	}

	n, err := s.PierrecPrimitive.DecompressFast(src, dst)
	if s.short {
		return n - 1, err
	}

	return n, err
}

func TestNativeBackend_PrimitiveNeverSeesInvalidInput(t *testing.T) {
	p := &stubPrimitive{}
	b := NewNativeBackend(p)

	bad := []byte{0x10, 42, 0, 0, 0x80, 1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]byte, 13)
	if _, err := b.FastDecompressor().Decompress(bad, 0, dst, 0, len(dst)); !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("expected ErrMalformedStream, got %v", err)
	}
	if _, err := b.SafeDecompressor().Decompress(bad, 0, len(bad), dst, 0); !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("expected ErrMalformedStream, got %v", err)
	}
	if _, err := b.FastDecompressor().Decompress(bad, 0, dst, 4, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	if p.calls != 0 {
		t.Fatalf("primitive called %d times for rejected input", p.calls)
	}
}

func TestNativeBackend_PrimitiveFailures(t *testing.T) {
	data := bytes.Repeat([]byte("primitive "), 50)
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	failing := NewNativeBackend(&stubPrimitive{failErr: errors.New("primitive broke")})
	out := make([]byte, len(data))
	if _, err := failing.FastDecompressor().Decompress(cmp, 0, out, 0, len(out)); !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("expected a primitive decode failure to be ErrMalformedStream, got %v", err)
	}

	dst := make([]byte, MaxCompressedLength(len(data)))
	_, err = failing.FastCompressor().Compress(data, 0, len(data), dst, 0, len(dst))
	if err == nil || !errors.HasAssertionFailure(err) {
		t.Fatalf("expected an assertion failure from a broken compressor, got %v", err)
	}

	short := NewNativeBackend(&stubPrimitive{short: true})
	if _, err := short.FastDecompressor().Decompress(cmp, 0, out, 0, len(out)); !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("expected a short primitive decode to be ErrMalformedStream, got %v", err)
	}

	_, err = short.FastCompressor().Compress(data, 0, len(data), dst, 0, len(dst))
	if err == nil || !errors.HasAssertionFailure(err) {
		t.Fatalf("expected an assertion failure for an oversized block length, got %v", err)
	}
}
