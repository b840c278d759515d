package flatbuffers

import (
	"encoding/binary"
	"math"

	"golang.org/x/exp/constraints"
)

// All scalars are stored least-significant byte first, whatever the host
// byte order is.
var order = binary.LittleEndian

func getUint(buf []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(order.Uint16(buf))
	case 4:
		return uint64(order.Uint32(buf))
	default:
		return order.Uint64(buf)
	}
}

func putUint(buf []byte, size int, n uint64) {
	switch size {
	case 1:
		buf[0] = byte(n)
	case 2:
		order.PutUint16(buf, uint16(n))
	case 4:
		order.PutUint32(buf, uint32(n))
	default:
		order.PutUint64(buf, n)
	}
}

// GetInteger decodes a little-endian integer of T's width from buf.
// Named integer types (enums, union tags) are accepted as-is.
func GetInteger[T constraints.Integer](buf []byte) T {
	return T(getUint(buf, sizeOf[T]()))
}

// WriteInteger encodes n in little-endian byte order into buf.
func WriteInteger[T constraints.Integer](buf []byte, n T) {
	putUint(buf, sizeOf[T](), uint64(n))
}

// GetFloat decodes a little-endian IEEE 754 value of T's width from buf.
func GetFloat[T constraints.Float](buf []byte) T {
	if sizeOf[T]() == SizeFloat32 {
		return T(math.Float32frombits(order.Uint32(buf)))
	}
	return T(math.Float64frombits(order.Uint64(buf)))
}

// WriteFloat encodes n in little-endian byte order into buf.
func WriteFloat[T constraints.Float](buf []byte, n T) {
	if sizeOf[T]() == SizeFloat32 {
		order.PutUint32(buf, math.Float32bits(float32(n)))
		return
	}
	order.PutUint64(buf, math.Float64bits(float64(n)))
}

// GetBool decodes a little-endian bool in a byte slice.
func GetBool(buf []byte) bool {
	return buf[0] != 0
}

// GetByte decodes a little-endian byte in a byte slice.
func GetByte(buf []byte) byte { return buf[0] }

// GetUint8 decodes a little-endian uint8 in a byte slice.
func GetUint8(buf []byte) uint8 { return buf[0] }

// GetUint16 decodes a little-endian uint16 in a byte slice.
func GetUint16(buf []byte) uint16 { return order.Uint16(buf) }

// GetUint32 decodes a little-endian uint32 in a byte slice.
func GetUint32(buf []byte) uint32 { return order.Uint32(buf) }

// GetUint64 decodes a little-endian uint64 in a byte slice.
func GetUint64(buf []byte) uint64 { return order.Uint64(buf) }

// GetInt8 decodes a little-endian int8 in a byte slice.
func GetInt8(buf []byte) int8 { return int8(buf[0]) }

// GetInt16 decodes a little-endian int16 in a byte slice.
func GetInt16(buf []byte) int16 { return int16(order.Uint16(buf)) }

// GetInt32 decodes a little-endian int32 in a byte slice.
func GetInt32(buf []byte) int32 { return int32(order.Uint32(buf)) }

// GetInt64 decodes a little-endian int64 in a byte slice.
func GetInt64(buf []byte) int64 { return int64(order.Uint64(buf)) }

// GetFloat32 decodes a little-endian float32 in a byte slice.
func GetFloat32(buf []byte) float32 { return GetFloat[float32](buf) }

// GetFloat64 decodes a little-endian float64 in a byte slice.
func GetFloat64(buf []byte) float64 { return GetFloat[float64](buf) }

// GetUOffsetT decodes a little-endian UOffsetT from a byte slice.
func GetUOffsetT(buf []byte) UOffsetT { return UOffsetT(order.Uint32(buf)) }

// GetSOffsetT decodes a little-endian SOffsetT from a byte slice.
func GetSOffsetT(buf []byte) SOffsetT { return SOffsetT(order.Uint32(buf)) }

// GetVOffsetT decodes a little-endian VOffsetT from a byte slice.
func GetVOffsetT(buf []byte) VOffsetT { return VOffsetT(order.Uint16(buf)) }

// WriteBool encodes a little-endian bool into a byte slice.
func WriteBool(buf []byte, b bool) {
	buf[0] = 0
	if b {
		buf[0] = 1
	}
}

// WriteByte encodes a little-endian byte into a byte slice.
func WriteByte(buf []byte, n byte) { buf[0] = n }

// WriteUint8 encodes a little-endian uint8 into a byte slice.
func WriteUint8(buf []byte, n uint8) { buf[0] = n }

// WriteUint16 encodes a little-endian uint16 into a byte slice.
func WriteUint16(buf []byte, n uint16) { order.PutUint16(buf, n) }

// WriteUint32 encodes a little-endian uint32 into a byte slice.
func WriteUint32(buf []byte, n uint32) { order.PutUint32(buf, n) }

// WriteUint64 encodes a little-endian uint64 into a byte slice.
func WriteUint64(buf []byte, n uint64) { order.PutUint64(buf, n) }

// WriteInt8 encodes a little-endian int8 into a byte slice.
func WriteInt8(buf []byte, n int8) { buf[0] = byte(n) }

// WriteInt16 encodes a little-endian int16 into a byte slice.
func WriteInt16(buf []byte, n int16) { order.PutUint16(buf, uint16(n)) }

// WriteInt32 encodes a little-endian int32 into a byte slice.
func WriteInt32(buf []byte, n int32) { order.PutUint32(buf, uint32(n)) }

// WriteInt64 encodes a little-endian int64 into a byte slice.
func WriteInt64(buf []byte, n int64) { order.PutUint64(buf, uint64(n)) }

// WriteFloat32 encodes a little-endian float32 into a byte slice.
func WriteFloat32(buf []byte, n float32) { WriteFloat(buf, n) }

// WriteFloat64 encodes a little-endian float64 into a byte slice.
func WriteFloat64(buf []byte, n float64) { WriteFloat(buf, n) }

// WriteUOffsetT encodes a little-endian UOffsetT into a byte slice.
func WriteUOffsetT(buf []byte, n UOffsetT) { order.PutUint32(buf, uint32(n)) }

// WriteSOffsetT encodes a little-endian SOffsetT into a byte slice.
func WriteSOffsetT(buf []byte, n SOffsetT) { order.PutUint32(buf, uint32(n)) }

// WriteVOffsetT encodes a little-endian VOffsetT into a byte slice.
func WriteVOffsetT(buf []byte, n VOffsetT) { order.PutUint16(buf, uint16(n)) }
