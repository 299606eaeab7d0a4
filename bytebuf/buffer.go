// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

/*
Package bytebuf provides bounds-checked byte, 16, 32 and 64-bit access over two
kinds of storage with identical semantics: owned growable memory (Heap) and fixed
capacity regions supplied by the caller (Region).

A buffer may expose its backing array (Array). Callers prefer direct slice access
when it does and fall back to copies through ReadAt/WriteAt when it does not; both
paths observe the same bytes.

	h := bytebuf.NewHeap(64)
	_ = bytebuf.WriteIntLE(h, 0, 0xdeadbeef)
	v, _ := bytebuf.ReadIntLE(h, 0)

Every buffer carries a default byte order used by ReadShort/ReadInt/ReadLong and
their Write counterparts. The *LE helpers ignore it. InOrder returns a view with a
different default order over the same storage.
*/
package bytebuf

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// Sentinel errors.
var (
	// ErrOutOfBounds is returned when an offset or a range does not fit a buffer.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrReadOnly is returned when writing to a region without a writer.
	ErrReadOnly = errors.New("region is read-only")
	// ErrWriteOnly is returned when reading from a region without a reader.
	ErrWriteOnly = errors.New("region is write-only")
)

// Buffer is fixed-capacity random-access byte storage.
type Buffer interface {
	// Cap returns the number of addressable bytes.
	Cap() int
	// Order returns the default byte order of the multi-byte helpers.
	Order() binary.ByteOrder
	// ReadAt copies len(p) bytes starting at off into p. The whole range must fit.
	ReadAt(p []byte, off int64) (int, error)
	// WriteAt copies p into the buffer starting at off. The whole range must fit.
	WriteAt(p []byte, off int64) (int, error)
	// Array returns the backing storage when it is directly addressable.
	Array() ([]byte, bool)
}

// defaultOrder is the byte order of new buffers.
var defaultOrder binary.ByteOrder = binary.LittleEndian
