// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

// DecompressOptions configures decompression.
// OutLen is required (output capacity, or the exact decompressed size for DecompressN);
// MaxInputSize limits reads when using DecompressFromReader.
type DecompressOptions struct {
	// Backend selects the decoder implementation (nil = Unchecked).
	Backend *Backend
	// OutLen is the expected decompressed size (required for buffer allocation and safety).
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// backend returns the selected backend or the default one.
func (o *DecompressOptions) backend() *Backend {
	if o.Backend == nil {
		return Unchecked
	}

	return o.Backend
}

// CompressOptions configures compression (greedy vs hash chain levels).
type CompressOptions struct {
	// Backend selects the encoder implementation (nil = Unchecked).
	Backend *Backend
	// Level: 0-2 = greedy parser; 3-12 = hash chains (higher = better ratio, slower).
	Level int
}

// DefaultCompressOptions returns options for fast compression (level 1).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: 1}
}

// backend returns the selected backend or the default one.
func (o *CompressOptions) backend() *Backend {
	if o.Backend == nil {
		return Unchecked
	}

	return o.Backend
}
