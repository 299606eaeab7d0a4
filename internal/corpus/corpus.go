// Package corpus generates deterministic test and benchmark inputs.
//
// The generator state is evolved by rehashing it with xxhash, so a seed always
// yields the same bytes on every platform.
package corpus

import (
	"bytes"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// MaxDistance is the largest LZ4 match offset.
const MaxDistance = 65535

// Generator is a deterministic byte source. It is not safe for concurrent use.
type Generator struct {
	state uint64
	buf   [8]byte
}

// New returns a generator for seed.
func New(seed uint64) *Generator {
	return &Generator{state: seed}
}

// Uint64 advances the generator.
func (g *Generator) Uint64() uint64 {
	binary.LittleEndian.PutUint64(g.buf[:], g.state)
	g.state = xxhash.Sum64(g.buf[:])
	return g.state
}

// Intn returns a value in [0, n). n must be positive.
func (g *Generator) Intn(n int) int {
	return int(g.Uint64() % uint64(n)) //nolint:gosec // G115: n is a positive int
}

// Bytes returns n pseudo-random bytes.
func (g *Generator) Bytes(n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i += 8 {
		v := g.Uint64()
		for j := 0; j < 8 && i+j < n; j++ {
			out[i+j] = byte(v >> (8 * j))
		}
	}

	return out
}

// Alphabet returns n bytes drawn from the first size byte values. Small alphabets
// produce many short matches at varying offsets.
func (g *Generator) Alphabet(n, size int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(g.Intn(size))
	}

	return out
}

var words = []string{
	"block", "token", "literal", "match", "offset", "length", "stream", "window",
	"history", "prefix", "decoder", "encoder", "backend", "bound", "hash", "chain",
}

// Text returns roughly n bytes of space-separated words.
func (g *Generator) Text(n int) []byte {
	var b bytes.Buffer
	b.Grow(n + 16)
	for b.Len() < n {
		b.WriteString(words[g.Intn(len(words))])
		b.WriteByte(' ')
	}

	return b.Bytes()[:n]
}

// FarMatch returns data whose tail repeats its head exactly MaxDistance bytes later.
func (g *Generator) FarMatch(repeat int) []byte {
	head := g.Bytes(MaxDistance)
	out := make([]byte, 0, MaxDistance+repeat+16)
	out = append(out, head...)
	out = append(out, head[:repeat]...)
	out = append(out, g.Bytes(16)...)

	return out
}

// Input is a named test input.
type Input struct {
	Name string
	Data []byte
}

// Inputs returns the standard input set: boundary lengths around the minimum
// compressible size, runs, periodic data, text, random and small-alphabet data.
func Inputs(seed uint64) []Input {
	g := New(seed)

	return []Input{
		{Name: "nil", Data: nil},
		{Name: "empty", Data: []byte{}},
		{Name: "single-byte", Data: []byte{0xAB}},
		{Name: "twelve-bytes", Data: []byte("abcdabcdabcd")},
		{Name: "thirteen-bytes", Data: []byte("abcdabcdabcda")},
		{Name: "short-text", Data: []byte("hello world, lz4 test")},
		{Name: "repeated-pattern", Data: bytes.Repeat([]byte("abc123"), 2000)},
		{Name: "long-run", Data: bytes.Repeat([]byte{0xFF}, 12000)},
		{Name: "byte-cycle", Data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{Name: "text", Data: g.Text(20000)},
		{Name: "random", Data: g.Bytes(5000)},
		{Name: "alphabet-4", Data: g.Alphabet(30000, 4)},
		{Name: "alphabet-16", Data: g.Alphabet(10000, 16)},
		{Name: "long-literal-run", Data: append(g.Bytes(600), bytes.Repeat([]byte("x"), 600)...)},
	}
}
