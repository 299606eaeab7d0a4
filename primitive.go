// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"sync"

	"github.com/pierrec/lz4/v4"
)

// Primitive is the boundary to an external LZ4 block implementation used by the
// native backend. The backend validates all arguments and streams before calling
// it, so implementations only see well-formed input and exactly sized buffers.
type Primitive interface {
	// CompressLimited compresses src into dst at level (0-2 greedy, 3-12 high
	// ratio). dst is at least MaxCompressedLength(len(src)) bytes long.
	CompressLimited(src, dst []byte, level int) (int, error)
	// DecompressFast decodes a complete block into dst and returns the bytes produced.
	DecompressFast(src, dst []byte) (int, error)
	// DecompressFastPrefix is DecompressFast with dict as the history preceding dst.
	DecompressFastPrefix(src, dst, dict []byte) (int, error)
}

// PierrecPrimitive implements Primitive with github.com/pierrec/lz4/v4.
type PierrecPrimitive struct{}

// pierrecLevels maps levels 3-12 to the hash chain depths of the library.
var pierrecLevels = [hcLevelMax - hcLevelMin + 1]lz4.CompressionLevel{
	lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4, lz4.Level5,
	lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9, lz4.Level9,
}

// pierrecFastPool is a pool of greedy block compressors.
var pierrecFastPool = sync.Pool{
	New: func() any {
		return new(lz4.Compressor)
	},
}

// pierrecHCPool is a pool of hash chain block compressors.
var pierrecHCPool = sync.Pool{
	New: func() any {
		return new(lz4.CompressorHC)
	},
}

// CompressLimited compresses with lz4.Compressor or lz4.CompressorHC depending on level.
func (PierrecPrimitive) CompressLimited(src, dst []byte, level int) (int, error) {
	if level <= fastLevelMax {
		c := pierrecFastPool.Get().(*lz4.Compressor)
		defer pierrecFastPool.Put(c)

		return c.CompressBlock(src, dst)
	}

	c := pierrecHCPool.Get().(*lz4.CompressorHC)
	defer pierrecHCPool.Put(c)

	c.Level = pierrecLevels[min(level, hcLevelMax)-hcLevelMin]
	return c.CompressBlock(src, dst)
}

// DecompressFast decodes with lz4.UncompressBlock.
func (PierrecPrimitive) DecompressFast(src, dst []byte) (int, error) {
	return lz4.UncompressBlock(src, dst)
}

// DecompressFastPrefix decodes with lz4.UncompressBlockWithDict.
func (PierrecPrimitive) DecompressFastPrefix(src, dst, dict []byte) (int, error) {
	return lz4.UncompressBlockWithDict(src, dst, dict)
}
