// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package bytebuf

import (
	"encoding/binary"
)

// load returns the n bytes at off, directly from the array when the buffer has one.
// tmp must hold at least n bytes.
func load(buf Buffer, off, n int, tmp []byte) ([]byte, error) {
	if err := CheckRange(buf, off, n); err != nil {
		return nil, err
	}

	if b, ok := buf.Array(); ok {
		return b[off : off+n], nil
	}

	if _, err := buf.ReadAt(tmp[:n], int64(off)); err != nil {
		return nil, err
	}

	return tmp[:n], nil
}

// store writes p at off, directly into the array when the buffer has one.
func store(buf Buffer, off int, p []byte) error {
	if err := CheckRange(buf, off, len(p)); err != nil {
		return err
	}

	if b, ok := buf.Array(); ok {
		copy(b[off:], p)
		return nil
	}

	_, err := buf.WriteAt(p, int64(off))
	return err
}

// ReadByte returns the byte at off.
func ReadByte(buf Buffer, off int) (byte, error) {
	var tmp [1]byte
	b, err := load(buf, off, 1, tmp[:])
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadShort reads a 16-bit value at off in the buffer's order.
func ReadShort(buf Buffer, off int) (uint16, error) {
	return readShort(buf, off, buf.Order())
}

// ReadInt reads a 32-bit value at off in the buffer's order.
func ReadInt(buf Buffer, off int) (uint32, error) {
	return readInt(buf, off, buf.Order())
}

// ReadLong reads a 64-bit value at off in the buffer's order.
func ReadLong(buf Buffer, off int) (uint64, error) {
	return readLong(buf, off, buf.Order())
}

// ReadShortLE reads a little-endian 16-bit value at off.
func ReadShortLE(buf Buffer, off int) (uint16, error) {
	return readShort(buf, off, binary.LittleEndian)
}

// ReadIntLE reads a little-endian 32-bit value at off.
func ReadIntLE(buf Buffer, off int) (uint32, error) {
	return readInt(buf, off, binary.LittleEndian)
}

// ReadLongLE reads a little-endian 64-bit value at off.
func ReadLongLE(buf Buffer, off int) (uint64, error) {
	return readLong(buf, off, binary.LittleEndian)
}

// WriteByte stores v at off.
func WriteByte(buf Buffer, off int, v byte) error {
	return store(buf, off, []byte{v})
}

// WriteShort writes a 16-bit value at off in the buffer's order.
func WriteShort(buf Buffer, off int, v uint16) error {
	var tmp [2]byte
	buf.Order().PutUint16(tmp[:], v)
	return store(buf, off, tmp[:])
}

// WriteInt writes a 32-bit value at off in the buffer's order.
func WriteInt(buf Buffer, off int, v uint32) error {
	var tmp [4]byte
	buf.Order().PutUint32(tmp[:], v)
	return store(buf, off, tmp[:])
}

// WriteLong writes a 64-bit value at off in the buffer's order.
func WriteLong(buf Buffer, off int, v uint64) error {
	var tmp [8]byte
	buf.Order().PutUint64(tmp[:], v)
	return store(buf, off, tmp[:])
}

// WriteShortLE writes a little-endian 16-bit value at off.
func WriteShortLE(buf Buffer, off int, v uint16) error {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return store(buf, off, tmp[:])
}

// WriteIntLE writes a little-endian 32-bit value at off.
func WriteIntLE(buf Buffer, off int, v uint32) error {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return store(buf, off, tmp[:])
}

// WriteLongLE writes a little-endian 64-bit value at off.
func WriteLongLE(buf Buffer, off int, v uint64) error {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return store(buf, off, tmp[:])
}

func readShort(buf Buffer, off int, order binary.ByteOrder) (uint16, error) {
	var tmp [2]byte
	b, err := load(buf, off, 2, tmp[:])
	if err != nil {
		return 0, err
	}

	return order.Uint16(b), nil
}

func readInt(buf Buffer, off int, order binary.ByteOrder) (uint32, error) {
	var tmp [4]byte
	b, err := load(buf, off, 4, tmp[:])
	if err != nil {
		return 0, err
	}

	return order.Uint32(b), nil
}

func readLong(buf Buffer, off int, order binary.ByteOrder) (uint64, error) {
	var tmp [8]byte
	b, err := load(buf, off, 8, tmp[:])
	if err != nil {
		return 0, err
	}

	return order.Uint64(b), nil
}
