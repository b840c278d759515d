package flatbuffers

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"
)

// Vector is a read-only view of a length-prefixed vector.
//
//	+--------------+-----------+-----------+-----+
//	| length (4B)  | element 0 | element 1 | ... |
//	+--------------+-----------+-----------+-----+
//	               ^ Start
type Vector struct {
	Bytes []byte
	Start UOffsetT // position of the first element, just past the length
	Len   int
	Width int // byte width of one element
}

// Vector resolves the vector referenced by the field at vtableOffset. The
// element width is schema knowledge and has to be supplied by the caller.
// ok is false when the field is absent.
func (t *Table) Vector(vtableOffset VOffsetT, width int) (v Vector, ok bool, err error) {
	pos, ok, err := t.field(vtableOffset)
	if err != nil || !ok {
		return Vector{}, false, err
	}
	v, err = t.vectorAt(pos, width)
	if err != nil {
		return Vector{}, false, err
	}
	return v, true, nil
}

// vectorAt follows the offset stored at pos to a vector and checks that
// all of its elements are inside the buffer.
func (t *Table) vectorAt(pos UOffsetT, width int) (Vector, error) {
	start, err := t.Indirect(pos)
	if err != nil {
		return Vector{}, err
	}
	n, err := t.GetUOffsetT(start)
	if err != nil {
		return Vector{}, err
	}
	start += SizeUOffsetT
	if end := uint64(start) + uint64(n)*uint64(width); end > uint64(len(t.Bytes)) {
		return Vector{}, malformedf("vector of %d elements at %d overruns buffer of %d bytes", n, start, len(t.Bytes))
	}
	return Vector{Bytes: t.Bytes, Start: start, Len: int(n), Width: width}, nil
}

// VectorLen retrieves the length of the vector referenced by the field at
// vtableOffset, 0 when the field is absent.
func (t *Table) VectorLen(vtableOffset VOffsetT) (int, error) {
	v, _, err := t.Vector(vtableOffset, 0)
	return v.Len, err
}

// Element returns the position of element i.
func (v Vector) Element(i int) (UOffsetT, error) {
	if i < 0 || i >= v.Len {
		return 0, xerrors.Errorf("index %d of vector with %d elements: %w", i, v.Len, ErrIndexOutOfRange)
	}
	return v.Start + UOffsetT(i*v.Width), nil
}

// Table resolves element i of a vector of tables.
func (v Vector) Table(i int) (Table, error) {
	pos, err := v.Element(i)
	if err != nil {
		return Table{}, err
	}
	t := Table{Bytes: v.Bytes}
	sub, _, err := t.tableAt(pos)
	return sub, err
}

// String resolves element i of a vector of strings without copying it.
func (v Vector) String(i int) (string, error) {
	pos, err := v.Element(i)
	if err != nil {
		return "", err
	}
	t := Table{Bytes: v.Bytes}
	s, err := t.vectorAt(pos, SizeByte)
	if err != nil {
		return "", err
	}
	return byteSliceToString(s.Bytes[s.Start : s.Start+UOffsetT(s.Len)]), nil
}

// VectorInteger reads element i of a vector of integers.
func VectorInteger[T constraints.Integer](v Vector, i int) (T, error) {
	pos, err := v.Element(i)
	if err != nil {
		return 0, err
	}
	return GetInteger[T](v.Bytes[pos:]), nil
}

// VectorFloat reads element i of a vector of floating point values.
func VectorFloat[T constraints.Float](v Vector, i int) (T, error) {
	pos, err := v.Element(i)
	if err != nil {
		return 0, err
	}
	return GetFloat[T](v.Bytes[pos:]), nil
}

// UnionVector is a vector of unions, stored as two parallel vectors in two
// fields of the owning table: one of 1-byte tags and one of offsets to the
// variant tables. Both always hold the same number of elements.
type UnionVector struct {
	Types  Vector
	Values Vector
}

// UnionVector resolves the union vector whose tags live in the field at
// typesOffset and whose values live in the field at valuesOffset. ok is
// false when both fields are absent. An absent half counts as empty; a
// length mismatch between the halves is a malformed buffer.
func (t *Table) UnionVector(typesOffset, valuesOffset VOffsetT) (uv UnionVector, ok bool, err error) {
	types, typesOK, err := t.Vector(typesOffset, SizeByte)
	if err != nil {
		return UnionVector{}, false, err
	}
	values, valuesOK, err := t.Vector(valuesOffset, SizeUOffsetT)
	if err != nil {
		return UnionVector{}, false, err
	}
	if types.Len != values.Len {
		return UnionVector{}, false, malformedf("union vector of table at %d has %d types but %d values", t.Pos, types.Len, values.Len)
	}
	return UnionVector{Types: types, Values: values}, typesOK || valuesOK, nil
}

// Len returns the number of elements.
func (uv UnionVector) Len() int { return uv.Types.Len }

// Type returns the tag of element i.
func (uv UnionVector) Type(i int) (byte, error) {
	return VectorInteger[byte](uv.Types, i)
}

// Value resolves the variant table of element i. ok is false when the tag
// of the element is NONE, whatever the value vector holds at i.
func (uv UnionVector) Value(i int) (value Table, ok bool, err error) {
	tag, err := uv.Type(i)
	if err != nil || tag == 0 {
		return Table{}, false, err
	}
	pos, err := uv.Values.Element(i)
	if err != nil {
		return Table{}, false, err
	}
	t := Table{Bytes: uv.Values.Bytes}
	return t.tableAt(pos)
}
