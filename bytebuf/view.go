package bytebuf

import "encoding/binary"

// orderedView overrides the default byte order of a buffer.
type orderedView struct {
	Buffer
	order binary.ByteOrder
}

func (v orderedView) Order() binary.ByteOrder { return v.order }

// InOrder returns a view of buf whose default byte order is order. The view shares
// storage with buf.
func InOrder(buf Buffer, order binary.ByteOrder) Buffer {
	if v, ok := buf.(orderedView); ok {
		buf = v.Buffer
	}

	if buf.Order() == order {
		return buf
	}

	return orderedView{Buffer: buf, order: order}
}

// NativeOrder returns a view of buf in the host byte order.
func NativeOrder(buf Buffer) Buffer {
	return InOrder(buf, binary.NativeEndian)
}
