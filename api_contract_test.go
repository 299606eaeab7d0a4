package lz4

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestAPIContract_DecompressNAllowsTrailingBytes(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract"), 64)

	compressed, err := Compress(src, &CompressOptions{Level: 5})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	payload := append(append([]byte{}, compressed...), []byte("tail")...)
	out, nRead, err := DecompressN(payload, DefaultDecompressOptions(len(src)))
	if err != nil {
		t.Fatalf("DecompressN with trailing bytes failed: %v", err)
	}

	if nRead != len(compressed) {
		t.Fatalf("nRead = %d, want %d", nRead, len(compressed))
	}
	if !bytes.Equal(out, src) {
		t.Fatal("decoded output mismatch for trailing-byte input")
	}
}

func TestAPIContract_DecompressRejectsTrailingBytes(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract"), 64)

	compressed, err := Compress(src, &CompressOptions{Level: 5})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	payload := append(append([]byte{}, compressed...), []byte("tail")...)
	for _, b := range Backends() {
		_, err = Decompress(payload, &DecompressOptions{OutLen: len(src) + 64, Backend: b})
		if !errors.Is(err, ErrMalformedStream) {
			t.Fatalf("%s: expected ErrMalformedStream, got %v", b, err)
		}
	}
}

func TestAPIContract_DecompressCanReturnShorterThanOutLen(t *testing.T) {
	src := bytes.Repeat([]byte("short-output"), 32)

	compressed, err := Compress(src, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	out, err := Decompress(compressed, DefaultDecompressOptions(len(src)+256))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}

	if len(out) != len(src) {
		t.Fatalf("decoded length mismatch: got=%d want=%d", len(out), len(src))
	}

	if !bytes.Equal(out, src) {
		t.Fatal("decoded output mismatch")
	}
}

func TestAPIContract_DecompressNNeedsExactOutLen(t *testing.T) {
	src := bytes.Repeat([]byte("exact-length"), 32)

	compressed, err := Compress(src, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if _, _, err := DecompressN(compressed, DefaultDecompressOptions(len(src)+1)); !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("expected ErrMalformedStream for a larger OutLen, got %v", err)
	}
}

func TestAPIContract_DecompressCanonicalStream(t *testing.T) {
	// One zero literal, a 506-byte run at offset 1 and five trailing zeros:
	// 512 zero bytes in total.
	compressed := []byte{0x1F, 0x00, 0x01, 0x00, 0xFF, 0xE8, 0x50, 0x00, 0x00, 0x00, 0x00, 0x00}
	expected := make([]byte, 512)

	for _, b := range Backends() {
		out, err := Decompress(compressed, &DecompressOptions{OutLen: 512, Backend: b})
		if err != nil {
			t.Fatalf("%s: Decompress failed for canonical stream: %v", b, err)
		}

		if !bytes.Equal(out, expected) {
			t.Fatalf("%s: canonical stream decoded data mismatch", b)
		}

		outN, nRead, err := DecompressN(compressed, &DecompressOptions{OutLen: 512, Backend: b})
		if err != nil {
			t.Fatalf("%s: DecompressN failed for canonical stream: %v", b, err)
		}

		if nRead != len(compressed) || !bytes.Equal(outN, expected) {
			t.Fatalf("%s: DecompressN canonical stream mismatch (nRead=%d)", b, nRead)
		}
	}
}

func TestAPIContract_CompressNilOptionsUsesDefaults(t *testing.T) {
	src := bytes.Repeat([]byte("defaults "), 100)

	a, err := Compress(src, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	b, err := Unchecked.FastCompressor().Compress(src, 0, len(src), make([]byte, MaxCompressedLength(len(src))), 0, MaxCompressedLength(len(src)))
	if err != nil {
		t.Fatalf("FastCompressor failed: %v", err)
	}

	if len(a) != b {
		t.Fatalf("nil options produced %d bytes, unchecked level 1 produced %d", len(a), b)
	}
}
