package flatbuffers

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Table wraps a byte slice and provides read access to its data.
//
// The variable `Pos` indicates the root of the FlatBuffers object therein.
// A Table never owns bytes: it is a position in a slice shared with every
// other accessor of the same buffer, and every read is checked against the
// slice bounds.
type Table struct {
	Bytes []byte
	Pos   UOffsetT // Always < 1<<31.
}

//	vtable:
//	+-------------------+-------------------+-------------------+-------------------+-----+
//	| vtable length (2B)| object length (2B)| field0 offset (2B)| field1 offset (2B)| ... |
//	+-------------------+-------------------+-------------------+-------------------+-----+
//
//	object:
//	+-------------------+-------------------+-------------------+-----+
//	| vtable soffset(4B)| data for field0   | data for field1   | ... |
//	+-------------------+-------------------+-------------------+-----+

// bytesAt returns the n bytes at off, or an error if they are not all
// inside the buffer.
func (t *Table) bytesAt(off UOffsetT, n int) ([]byte, error) {
	end := uint64(off) + uint64(n)
	if end > uint64(len(t.Bytes)) {
		return nil, malformedf("read of %d bytes at %d overruns buffer of %d bytes", n, off, len(t.Bytes))
	}
	return t.Bytes[off:end], nil
}

// vtable locates and validates the vtable of the table at t.Pos. It
// returns the vtable position, its byte length and the byte length of
// the table as recorded in the vtable.
func (t *Table) vtable() (vt UOffsetT, vtLen, objLen VOffsetT, err error) {
	soff, err := t.GetSOffsetT(t.Pos)
	if err != nil {
		return 0, 0, 0, err
	}
	// t.Pos 处的 4B 是有符号的 vtable 相对偏移，vtable = pos - soffset，可能在 table 前面也可能在后面。
	pos := int64(t.Pos) - int64(soff)
	if pos < 0 || pos > int64(len(t.Bytes)) {
		return 0, 0, 0, malformedf("vtable of table at %d lies at %d, outside buffer of %d bytes", t.Pos, pos, len(t.Bytes))
	}
	vt = UOffsetT(pos)
	header, err := t.bytesAt(vt, VtableMetadataFields*SizeVOffsetT)
	if err != nil {
		return 0, 0, 0, err
	}
	vtLen = GetVOffsetT(header)
	objLen = GetVOffsetT(header[SizeVOffsetT:])
	if vtLen < VtableMetadataFields*SizeVOffsetT || vtLen%SizeVOffsetT != 0 {
		return 0, 0, 0, malformedf("vtable at %d has invalid length %d", vt, vtLen)
	}
	if _, err := t.bytesAt(vt, int(vtLen)); err != nil {
		return 0, 0, 0, err
	}
	if objLen < SizeSOffsetT {
		return 0, 0, 0, malformedf("vtable at %d declares a table of %d bytes", vt, objLen)
	}
	if _, err := t.bytesAt(t.Pos, int(objLen)); err != nil {
		return 0, 0, 0, err
	}
	return vt, vtLen, objLen, nil
}

// Offset provides access into the Table's vtable.
//
// It returns the offset of the field described by vtableOffset relative to
// t.Pos, or 0 when the field is absent. Fields which are deprecated, or
// newer than the writer of the buffer, are ignored by checking against the
// vtable's length.
func (t *Table) Offset(vtableOffset VOffsetT) (VOffsetT, error) {
	vt, vtLen, objLen, err := t.vtable()
	if err != nil {
		return 0, err
	}
	if vtableOffset >= vtLen {
		return 0, nil
	}
	off := GetVOffsetT(t.Bytes[vt+UOffsetT(vtableOffset):])
	if off == 0 {
		return 0, nil
	}
	if off < SizeSOffsetT || off >= objLen {
		return 0, malformedf("field %d of table at %d has offset %d outside its %d bytes", FieldSlot(vtableOffset), t.Pos, off, objLen)
	}
	return off, nil
}

// Indirect retrieves the relative offset stored at `off` and resolves it to
// an absolute position.
func (t *Table) Indirect(off UOffsetT) (UOffsetT, error) {
	rel, err := t.GetUOffsetT(off)
	if err != nil {
		return 0, err
	}
	pos := uint64(off) + uint64(rel)
	if pos >= uint64(len(t.Bytes)) {
		return 0, malformedf("offset %d stored at %d points outside buffer of %d bytes", rel, off, len(t.Bytes))
	}
	return UOffsetT(pos), nil
}

// field resolves vtableOffset to an absolute position; ok is false when the
// field is absent.
func (t *Table) field(vtableOffset VOffsetT) (pos UOffsetT, ok bool, err error) {
	off, err := t.Offset(vtableOffset)
	if err != nil || off == 0 {
		return 0, false, err
	}
	return t.Pos + UOffsetT(off), true, nil
}

// SubTable resolves the table referenced by the field at vtableOffset.
// ok is false when the field is absent.
func (t *Table) SubTable(vtableOffset VOffsetT) (sub Table, ok bool, err error) {
	pos, ok, err := t.field(vtableOffset)
	if err != nil || !ok {
		return Table{}, false, err
	}
	return t.tableAt(pos)
}

// tableAt follows the offset stored at pos to a table and validates that
// table's vtable.
func (t *Table) tableAt(pos UOffsetT) (Table, bool, error) {
	target, err := t.Indirect(pos)
	if err != nil {
		return Table{}, false, err
	}
	sub := Table{Bytes: t.Bytes, Pos: target}
	if _, _, _, err := sub.vtable(); err != nil {
		return Table{}, false, err
	}
	return sub, true, nil
}

// Union initializes any Table-derived type to point to the union value
// stored in the field at vtableOffset. The field holds an offset to an
// offset: one hop is resolved here. ok is false when the field is absent;
// t2 is left untouched in that case.
func (t *Table) Union(t2 *Table, vtableOffset VOffsetT) (ok bool, err error) {
	sub, ok, err := t.SubTable(vtableOffset)
	if err != nil || !ok {
		return false, err
	}
	*t2 = sub
	return true, nil
}

// ByteVector gets a byte slice from data stored inside the flatbuffer. The
// slice aliases the buffer. An absent field yields nil.
func (t *Table) ByteVector(vtableOffset VOffsetT) ([]byte, error) {
	v, ok, err := t.Vector(vtableOffset, SizeByte)
	if err != nil || !ok {
		return nil, err
	}
	return v.Bytes[v.Start : v.Start+UOffsetT(v.Len)], nil
}

// String gets a string from data stored inside the flatbuffer without
// copying it. An absent field yields "".
func (t *Table) String(vtableOffset VOffsetT) (string, error) {
	b, err := t.ByteVector(vtableOffset)
	if err != nil {
		return "", err
	}
	return byteSliceToString(b), nil
}

func byteSliceToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// GetSOffsetT retrieves a SOffsetT at the given offset.
func (t *Table) GetSOffsetT(off UOffsetT) (SOffsetT, error) {
	b, err := t.bytesAt(off, SizeSOffsetT)
	if err != nil {
		return 0, err
	}
	return GetSOffsetT(b), nil
}

// GetUOffsetT retrieves a UOffsetT at the given offset.
func (t *Table) GetUOffsetT(off UOffsetT) (UOffsetT, error) {
	b, err := t.bytesAt(off, SizeUOffsetT)
	if err != nil {
		return 0, err
	}
	return GetUOffsetT(b), nil
}

// GetVOffsetT retrieves a VOffsetT at the given offset.
func (t *Table) GetVOffsetT(off UOffsetT) (VOffsetT, error) {
	b, err := t.bytesAt(off, SizeVOffsetT)
	if err != nil {
		return 0, err
	}
	return GetVOffsetT(b), nil
}

// GetBoolSlot retrieves the bool that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetBoolSlot(slot VOffsetT, d bool) (bool, error) {
	pos, ok, err := t.field(slot)
	if err != nil {
		return false, err
	}
	if !ok {
		return d, nil
	}
	b, err := t.bytesAt(pos, SizeBool)
	if err != nil {
		return false, err
	}
	return GetBool(b), nil
}

// GetIntegerSlot retrieves the integer that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func GetIntegerSlot[T constraints.Integer](t *Table, slot VOffsetT, d T) (T, error) {
	var zero T
	pos, ok, err := t.field(slot)
	if err != nil {
		return zero, err
	}
	if !ok {
		return d, nil
	}
	b, err := t.bytesAt(pos, sizeOf[T]())
	if err != nil {
		return zero, err
	}
	return GetInteger[T](b), nil
}

// GetFloatSlot retrieves the floating point value that the given vtable
// location points to. If the vtable value is zero, the default value `d`
// will be returned.
func GetFloatSlot[T constraints.Float](t *Table, slot VOffsetT, d T) (T, error) {
	var zero T
	pos, ok, err := t.field(slot)
	if err != nil {
		return zero, err
	}
	if !ok {
		return d, nil
	}
	b, err := t.bytesAt(pos, sizeOf[T]())
	if err != nil {
		return zero, err
	}
	return GetFloat[T](b), nil
}
