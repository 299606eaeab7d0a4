// Command lz4tool encodes, decodes and inspects raw LZ4 blocks between stdin and stdout.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"

	"github.com/woozymasta/lz4"
	"github.com/woozymasta/lz4/sequence"
)

var (
	enc     = flag.Bool("e", false, "encode")
	dec     = flag.Bool("d", false, "decode")
	dump    = flag.Bool("dump", false, "print the sequences of the block on stdin")
	backend = flag.String("backend", "unchecked", "backend: native, unchecked or checked")
	level   = flag.Int("level", 1, "compression level (0-2 greedy, 3-12 hash chains)")
	size    = flag.Int("size", 0, "exact decoded size for -d (0 = discover, up to -max)")
	maxSize = flag.Int("max", 64<<20, "output capacity for -d when -size is 0")
	verify  = flag.Bool("verify", false, "with -e, decode the block again and report its xxhash64")
)

func run() int {
	flag.Parse()

	modes := 0
	for _, m := range []bool{*enc, *dec, *dump} {
		if m {
			modes++
		}
	}

	if modes != 1 {
		fmt.Fprintln(os.Stderr, "exactly one of -e, -d or -dump must be given")
		return 1
	}

	b, err := lz4.BackendByName(*backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	switch {
	case *enc:
		err = encode(b, in)
	case *dec:
		err = decode(b, in)
	default:
		err = dumpBlock(in)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func encode(b *lz4.Backend, in []byte) error {
	out, err := lz4.Compress(in, &lz4.CompressOptions{Level: *level, Backend: b})
	if err != nil {
		return err
	}

	if *verify {
		back, _, err := lz4.DecompressN(out, &lz4.DecompressOptions{OutLen: len(in), Backend: b})
		if err != nil {
			return errors.Wrap(err, "verify")
		}

		if !bytes.Equal(back, in) {
			return errors.New("verify: round trip mismatch")
		}

		fmt.Fprintf(os.Stderr, "%d -> %d bytes, xxhash64 %016x\n", len(in), len(out), xxhash.Sum64(back))
	}

	_, err = os.Stdout.Write(out)
	return err
}

func decode(b *lz4.Backend, in []byte) error {
	var (
		out []byte
		err error
	)

	if *size > 0 {
		out, _, err = lz4.DecompressN(in, &lz4.DecompressOptions{OutLen: *size, Backend: b})
	} else {
		out, err = lz4.Decompress(in, &lz4.DecompressOptions{OutLen: *maxSize, Backend: b})
	}

	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)
	return err
}

func dumpBlock(in []byte) error {
	seqs, err := sequence.Parse(in)
	for _, s := range seqs {
		fmt.Println(s)
	}

	if err != nil {
		return err
	}

	st, err := sequence.Validate(in, sequence.Options{})
	if err != nil {
		return err
	}

	fmt.Printf("sequences=%d matches=%d literals=%d matched=%d decoded=%d fingerprint=%016x\n",
		st.Sequences, st.Matches, st.LiteralBytes, st.MatchBytes, st.DecodedLen, sequence.Fingerprint(seqs))
	return nil
}

func main() {
	os.Exit(run())
}
