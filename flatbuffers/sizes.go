package flatbuffers

import "unsafe"

type (
	// UOffsetT is used for offsets pointing forward in the buffer. It is
	// always relative to the position it is stored at.
	UOffsetT uint32
	// SOffsetT is used by a table to point at its vtable. The vtable may
	// live on either side of the table.
	SOffsetT int32
	// VOffsetT is the width of a vtable entry.
	VOffsetT uint16
)

const (
	// SizeUint8 is the byte size of a uint8.
	SizeUint8 = 1
	// SizeUint16 is the byte size of a uint16.
	SizeUint16 = 2
	// SizeUint32 is the byte size of a uint32.
	SizeUint32 = 4
	// SizeUint64 is the byte size of a uint64.
	SizeUint64 = 8

	// SizeInt8 is the byte size of a int8.
	SizeInt8 = 1
	// SizeInt16 is the byte size of a int16.
	SizeInt16 = 2
	// SizeInt32 is the byte size of a int32.
	SizeInt32 = 4
	// SizeInt64 is the byte size of a int64.
	SizeInt64 = 8

	// SizeFloat32 is the byte size of a float32.
	SizeFloat32 = 4
	// SizeFloat64 is the byte size of a float64.
	SizeFloat64 = 8

	// SizeByte is the byte size of a byte.
	SizeByte = 1
	// SizeBool is the byte size of a bool.
	SizeBool = 1

	// SizeSOffsetT is the byte size of an SOffsetT.
	SizeSOffsetT = 4
	// SizeUOffsetT is the byte size of an UOffsetT.
	SizeUOffsetT = 4
	// SizeVOffsetT is the byte size of an VOffsetT.
	SizeVOffsetT = 2
)

const (
	// VtableMetadataFields is the count of leading vtable entries that
	// describe the vtable itself: its byte length and the byte length of
	// the table it belongs to.
	VtableMetadataFields = 2

	// FileIdentifierLength is the fixed width of a buffer identifier.
	FileIdentifierLength = 4

	// SizePrefixLength is the width of the optional length that precedes
	// the root offset of a size-prefixed buffer.
	SizePrefixLength = SizeUint32
)

// vtable 的前 2 个 entry 分别是 vtable 自身长度和 table 长度，
// 所以第 n 个字段对应的 entry 位于 vtable + 4 + 2n 处。

// VtableOffset converts a 0-based field slot, in schema declaration order,
// to the byte offset of its entry inside a vtable.
func VtableOffset(slot int) VOffsetT {
	return VOffsetT((VtableMetadataFields + slot) * SizeVOffsetT)
}

// FieldSlot is the inverse of VtableOffset.
func FieldSlot(vtableOffset VOffsetT) int {
	return int(vtableOffset)/SizeVOffsetT - VtableMetadataFields
}

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
