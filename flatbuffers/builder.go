package flatbuffers

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/blastbao/flatcore/memory"
)

// Builder is a state machine for creating FlatBuffer objects.
// Use a Builder to construct object(s) starting from leaf nodes.
//
// A Builder constructs byte buffers in a last-first manner for simplicity and
// performance. It is not safe for concurrent use.
type Builder struct {
	// `Bytes` gives raw access to the buffer. Most users will want to use
	// FinishedBytes() instead.
	Bytes []byte

	mem memory.Allocator
	log *zap.Logger

	minalign  int
	vtable    []UOffsetT // 当前对象每个字段写入时的 Offset()，0 表示未设置
	objectEnd UOffsetT

	// vtables 以 vtable 字节内容的 xxhash 为 key，value 是内容相同（或哈希碰撞）的
	// vtable 的 Offset()。命中后还要做一次逐字节比较。
	vtables map[uint64][]UOffsetT
	scratch []byte

	sharedStrings map[string]UOffsetT

	head     UOffsetT
	nested   bool
	inVector bool
	finished bool

	vectorStart    UOffsetT
	vectorElemSize int
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithAllocator makes the Builder grow its buffer through mem.
func WithAllocator(mem memory.Allocator) BuilderOption {
	return func(b *Builder) { b.mem = mem }
}

// WithLogger makes the Builder report buffer growth and finishing at debug
// level.
func WithLogger(log *zap.Logger) BuilderOption {
	return func(b *Builder) { b.log = log }
}

// NewBuilder initializes a Builder of size `initial_size`.
// The internal buffer is grown as needed.
func NewBuilder(initialSize int, opts ...BuilderOption) *Builder {
	if initialSize <= 0 {
		initialSize = 0
	}

	b := &Builder{
		mem: memory.DefaultAllocator,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Bytes = b.mem.Allocate(initialSize)
	b.head = UOffsetT(initialSize)
	b.minalign = 1
	b.vtables = make(map[uint64][]UOffsetT, 16)

	return b
}

// Reset truncates the underlying Builder buffer, facilitating alloc-free
// reuse of a Builder. It also resets bookkeeping data.
func (b *Builder) Reset() {
	if b.Bytes != nil {
		b.Bytes = b.Bytes[:cap(b.Bytes)]
	}

	clear(b.vtables)
	clear(b.sharedStrings)

	if b.vtable != nil {
		b.vtable = b.vtable[:0]
	}

	b.head = UOffsetT(len(b.Bytes))
	b.minalign = 1
	b.nested = false
	b.inVector = false
	b.finished = false
}

// FinishedBytes returns a pointer to the written data in the byte buffer.
// Panics if the builder is not in a finished state (which is caused by calling
// `Finish()`).
func (b *Builder) FinishedBytes() []byte {
	b.assertFinished()
	return b.Bytes[b.Head():]
}

// Detach moves the finished bytes into a reference-counted Buffer and
// leaves the Builder empty and ready for reuse. The Buffer releases the
// storage through the Builder's allocator.
func (b *Builder) Detach() *Buffer {
	b.assertFinished()
	buf := newBuffer(b.mem, b.Bytes, b.Bytes[b.Head():])
	b.Bytes = nil
	b.Reset()
	return buf
}

// StartObject initializes bookkeeping for writing a new object.
func (b *Builder) StartObject(numfields int) {
	b.assertNotNested()
	b.assertNotFinished()
	b.nested = true

	// use 32-bit offsets so that arithmetic doesn't overflow.
	if cap(b.vtable) < numfields || b.vtable == nil {
		b.vtable = make([]UOffsetT, numfields)
	} else {
		b.vtable = b.vtable[:numfields]
		for i := 0; i < len(b.vtable); i++ {
			b.vtable[i] = 0
		}
	}

	b.objectEnd = b.Offset()
}

// WriteVtable serializes the vtable for the current object, if applicable.
//
// Before writing out the vtable, this checks pre-existing vtables for equality
// to this one. If an equal vtable is found, point the object to the existing
// vtable and return.
//
// A vtable has the following format:
//
//	<VOffsetT: size of the vtable in bytes, including this value>
//	<VOffsetT: size of the object in bytes, including the vtable offset>
//	<VOffsetT: offset for a field> * N, where N is the highest slot set + 1.
//
// An object has the following format:
//
//	<SOffsetT: offset to this object's vtable (may be negative)>
//	<byte: data>+
func (b *Builder) WriteVtable() (n UOffsetT) {
	// Prepend a zero scalar to the object. Later in this function we'll
	// write an offset here that points to the object's vtable:
	b.PrependSOffsetT(0)

	objectOffset := b.Offset()

	// Trim vtable of trailing zeroes.
	i := len(b.vtable) - 1
	for ; i >= 0 && b.vtable[i] == 0; i-- {
	}
	b.vtable = b.vtable[:i+1]

	// 先在 scratch 中按最终的字节布局拼出候选 vtable，用于哈希和比较。
	vtBytes := (len(b.vtable) + VtableMetadataFields) * SizeVOffsetT
	if cap(b.scratch) < vtBytes {
		b.scratch = make([]byte, vtBytes)
	}
	candidate := b.scratch[:vtBytes]
	WriteVOffsetT(candidate, VOffsetT(vtBytes))
	WriteVOffsetT(candidate[SizeVOffsetT:], VOffsetT(objectOffset-b.objectEnd))
	for i, fieldOffset := range b.vtable {
		var off VOffsetT
		if fieldOffset != 0 {
			off = VOffsetT(objectOffset - fieldOffset)
		}
		WriteVOffsetT(candidate[(VtableMetadataFields+i)*SizeVOffsetT:], off)
	}

	key := xxhash.Sum64(candidate)
	existingVtable := UOffsetT(0)
	for _, vt2Offset := range b.vtables[key] {
		vt2Start := len(b.Bytes) - int(vt2Offset)
		if int(GetVOffsetT(b.Bytes[vt2Start:])) != vtBytes {
			continue
		}
		if bytes.Equal(b.Bytes[vt2Start:vt2Start+vtBytes], candidate) {
			existingVtable = vt2Offset
			break
		}
	}

	objectStart := len(b.Bytes) - int(objectOffset)
	if existingVtable == 0 {
		// Did not find a vtable, so write this one to the buffer. The object
		// offset was just written, so the buffer is already 2-byte aligned.
		b.Prep(SizeVOffsetT, vtBytes-SizeVOffsetT)
		b.head -= UOffsetT(vtBytes)
		copy(b.Bytes[b.head:], candidate)

		// Prep may have grown the buffer; objectStart moves with it.
		objectStart = len(b.Bytes) - int(objectOffset)
		WriteSOffsetT(b.Bytes[objectStart:], SOffsetT(b.Offset())-SOffsetT(objectOffset))

		b.vtables[key] = append(b.vtables[key], b.Offset())
	} else {
		// Found a duplicate vtable. The object's offset points at it and
		// nothing else is written; the vtable lies behind the object.
		b.head = UOffsetT(objectStart)
		WriteSOffsetT(b.Bytes[b.head:], SOffsetT(existingVtable)-SOffsetT(objectOffset))
	}

	b.vtable = b.vtable[:0]
	return objectOffset
}

// EndObject writes data necessary to finish object construction.
func (b *Builder) EndObject() UOffsetT {
	b.assertNested()
	if b.inVector {
		misuse("EndObject called while a vector is open")
	}
	n := b.WriteVtable()
	b.nested = false
	return n
}

// Doubles the size of the byteslice, and copies the old data towards the
// end of the new byteslice (since we build the buffer backwards).
func (b *Builder) growByteBuffer() {
	if (int64(len(b.Bytes)) & int64(0xC0000000)) != 0 {
		panic("cannot grow buffer beyond 2 gigabytes")
	}
	oldLen := len(b.Bytes)
	newLen := oldLen * 2
	if newLen == 0 {
		newLen = 1
	}

	b.Bytes = b.mem.Reallocate(newLen, b.Bytes)
	copy(b.Bytes[newLen-oldLen:], b.Bytes[:oldLen])

	if ce := b.log.Check(zap.DebugLevel, "grew builder buffer"); ce != nil {
		ce.Write(zap.Int("from", oldLen), zap.Int("to", newLen))
	}
}

// Head gives the start of useful data in the underlying byte buffer.
// Note: unlike other functions, this value is interpreted as from the left.
func (b *Builder) Head() UOffsetT {
	return b.head
}

// Offset relative to the end of the buffer.
func (b *Builder) Offset() UOffsetT {
	return UOffsetT(len(b.Bytes)) - b.head
}

// Pad places zeros at the current offset.
func (b *Builder) Pad(n int) {
	for i := 0; i < n; i++ {
		b.PlaceByte(0)
	}
}

// Prep prepares to write an element of `size` after `additional_bytes`
// have been written, e.g. if you write a string, you need to align such
// the int length field is aligned to SizeInt32, and the string data follows it
// directly.
// If all you need to do is align, `additionalBytes` will be 0.
func (b *Builder) Prep(size, additionalBytes int) {
	b.assertNotFinished()

	// Track the biggest thing we've ever aligned to.
	if size > b.minalign {
		b.minalign = size
	}
	// Find the amount of alignment needed such that `size` is properly
	// aligned after `additionalBytes`:
	alignSize := (^(len(b.Bytes) - int(b.Head()) + additionalBytes)) + 1
	alignSize &= (size - 1)

	// Reallocate the buffer if needed:
	for int(b.head) <= alignSize+size+additionalBytes {
		oldBufSize := len(b.Bytes)
		b.growByteBuffer()
		b.head += UOffsetT(len(b.Bytes) - oldBufSize)
	}
	b.Pad(alignSize)
}

// PrependSOffsetT prepends an SOffsetT, relative to where it will be written.
func (b *Builder) PrependSOffsetT(off SOffsetT) {
	b.Prep(SizeSOffsetT, 0) // Ensure alignment is already done.
	if !(UOffsetT(off) <= b.Offset()) {
		misuse("offset %d refers to data not yet written (offset is %d)", off, b.Offset())
	}
	off2 := SOffsetT(b.Offset()) - off + SOffsetT(SizeSOffsetT)
	b.PlaceSOffsetT(off2)
}

// PrependUOffsetT prepends an UOffsetT, relative to where it will be written.
func (b *Builder) PrependUOffsetT(off UOffsetT) {
	b.Prep(SizeUOffsetT, 0) // Ensure alignment is already done.
	if !(off <= b.Offset()) {
		misuse("offset %d refers to data not yet written (offset is %d)", off, b.Offset())
	}
	off2 := b.Offset() - off + UOffsetT(SizeUOffsetT)
	b.PlaceUOffsetT(off2)
}

// StartVector initializes bookkeeping for writing a new vector.
//
// A vector has the following format:
//
//	<UOffsetT: number of elements in this vector>
//	<T: data>+, where T is the type of elements of this vector.
//
// Elements must be prepended last to first.
func (b *Builder) StartVector(elemSize, numElems, alignment int) UOffsetT {
	b.assertNotNested()
	b.nested = true
	b.inVector = true
	b.Prep(SizeUint32, elemSize*numElems)
	b.Prep(alignment, elemSize*numElems) // Just in case alignment > int.
	b.vectorStart = b.Offset()
	b.vectorElemSize = elemSize
	return b.Offset()
}

// EndVector writes data necessary to finish vector construction.
func (b *Builder) EndVector(vectorNumElems int) UOffsetT {
	b.assertNested()
	if !b.inVector {
		misuse("EndVector called while an object is open")
	}
	if written := int(b.Offset() - b.vectorStart); written != vectorNumElems*b.vectorElemSize {
		misuse("vector of %d elements of %d bytes holds %d bytes", vectorNumElems, b.vectorElemSize, written)
	}
	return b.endVector(vectorNumElems)
}

func (b *Builder) endVector(vectorNumElems int) UOffsetT {
	// we already made space for this, so write without PrependUint32
	b.PlaceUOffsetT(UOffsetT(vectorNumElems))

	b.nested = false
	b.inVector = false
	return b.Offset()
}

// CreateString writes a null-terminated string as a vector.
func (b *Builder) CreateString(s string) UOffsetT {
	b.assertNotNested()
	b.nested = true
	b.inVector = true

	b.Prep(int(SizeUOffsetT), (len(s)+1)*SizeByte)
	b.PlaceByte(0)

	l := UOffsetT(len(s))

	b.head -= l
	copy(b.Bytes[b.head:b.head+l], s)

	return b.endVector(len(s))
}

// CreateSharedString writes s once per build; later calls with the same
// content return the offset of the first copy.
func (b *Builder) CreateSharedString(s string) UOffsetT {
	b.assertNotFinished()
	if b.sharedStrings == nil {
		b.sharedStrings = make(map[string]UOffsetT)
	}
	if off, ok := b.sharedStrings[s]; ok {
		return off
	}
	off := b.CreateString(s)
	b.sharedStrings[s] = off
	return off
}

// CreateByteVector writes a ubyte vector
func (b *Builder) CreateByteVector(v []byte) UOffsetT {
	b.assertNotNested()
	b.nested = true
	b.inVector = true

	b.Prep(int(SizeUOffsetT), len(v)*SizeByte)

	l := UOffsetT(len(v))

	b.head -= l
	copy(b.Bytes[b.head:b.head+l], v)

	return b.endVector(len(v))
}

// CreateUOffsetVector writes a vector of offsets to objects that have
// already been written, e.g. a vector of tables or strings.
func (b *Builder) CreateUOffsetVector(offsets []UOffsetT) UOffsetT {
	b.StartVector(SizeUOffsetT, len(offsets), SizeUOffsetT)
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	return b.EndVector(len(offsets))
}

// UnionValue is one packed element of a union vector: the variant's tag
// and the offset of its already-written table. A zero Type is NONE and
// its Value is ignored.
type UnionValue struct {
	Type  byte
	Value UOffsetT
}

// 偏移 0 永远不会指向已写入的 table，tag 非 0 但 Value 为 0 的元素按 NONE 写入，
// 否则读取时会把 0 当成相对偏移解析到 buffer 末尾之外。
func (u UnionValue) isNone() bool { return u.Type == 0 || u.Value == 0 }

// CreateUnionVector writes the tag vector and the value vector of a union
// vector field. Both are built from the same slice and always have the
// same length. NONE elements store a zero offset; an element with a tag
// but no value (zero offset) is written as NONE.
func (b *Builder) CreateUnionVector(elems []UnionValue) (types, values UOffsetT) {
	b.StartVector(SizeUOffsetT, len(elems), SizeUOffsetT)
	for i := len(elems) - 1; i >= 0; i-- {
		if elems[i].isNone() {
			b.PrependUint32(0)
			continue
		}
		b.PrependUOffsetT(elems[i].Value)
	}
	values = b.EndVector(len(elems))

	b.StartVector(SizeByte, len(elems), SizeByte)
	for i := len(elems) - 1; i >= 0; i-- {
		if elems[i].isNone() {
			b.PrependByte(0)
			continue
		}
		b.PrependByte(elems[i].Type)
	}
	types = b.EndVector(len(elems))
	return types, values
}

func (b *Builder) assertNested() {
	// If you get this assert, you're in an object while trying to write
	// data that belongs outside of an object.
	// To fix this, write non-inline data (like vectors) before creating
	// objects.
	if !b.nested {
		misuse("incorrect creation order: must be inside object")
	}
}

func (b *Builder) assertNotNested() {
	// If you hit this, you're trying to construct a Table/Vector/String
	// during the construction of its parent table (between the MyTableBuilder
	// and builder.Finish()).
	// Move the creation of these sub-objects to above the MyTableBuilder to
	// not get this assert.
	// Ignoring this assert may appear to work in simple cases, but the reason
	// it is here is that storing objects in-line may cause vtable offsets
	// to not fit anymore. It also leads to vtable duplication.
	if b.nested {
		misuse("incorrect creation order: object must not be nested")
	}
}

func (b *Builder) assertFinished() {
	// If you get this assert, you're attempting to get access a buffer
	// which hasn't been finished yet. Be sure to call builder.Finish()
	// with your root table.
	// If you really need to access an unfinished buffer, use the Bytes
	// buffer directly.
	if !b.finished {
		misuse("incorrect use of FinishedBytes(): must call 'Finish' first")
	}
}

func (b *Builder) assertNotFinished() {
	if b.finished {
		misuse("buffer is finished; call Reset before writing again")
	}
}

// PrependBoolSlot prepends a bool onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependBoolSlot(o int, x, d bool) {
	if x != d {
		b.PrependBool(x)
		b.Slot(o)
	}
}

// PrependByteSlot prepends a byte onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependByteSlot(o int, x, d byte) { prependIntegerSlot(b, o, x, d) }

// PrependUint8Slot prepends a uint8 onto the object at vtable slot `o`.
func (b *Builder) PrependUint8Slot(o int, x, d uint8) { prependIntegerSlot(b, o, x, d) }

// PrependUint16Slot prepends a uint16 onto the object at vtable slot `o`.
func (b *Builder) PrependUint16Slot(o int, x, d uint16) { prependIntegerSlot(b, o, x, d) }

// PrependUint32Slot prepends a uint32 onto the object at vtable slot `o`.
func (b *Builder) PrependUint32Slot(o int, x, d uint32) { prependIntegerSlot(b, o, x, d) }

// PrependUint64Slot prepends a uint64 onto the object at vtable slot `o`.
func (b *Builder) PrependUint64Slot(o int, x, d uint64) { prependIntegerSlot(b, o, x, d) }

// PrependInt8Slot prepends a int8 onto the object at vtable slot `o`.
func (b *Builder) PrependInt8Slot(o int, x, d int8) { prependIntegerSlot(b, o, x, d) }

// PrependInt16Slot prepends a int16 onto the object at vtable slot `o`.
func (b *Builder) PrependInt16Slot(o int, x, d int16) { prependIntegerSlot(b, o, x, d) }

// PrependInt32Slot prepends a int32 onto the object at vtable slot `o`.
func (b *Builder) PrependInt32Slot(o int, x, d int32) { prependIntegerSlot(b, o, x, d) }

// PrependInt64Slot prepends a int64 onto the object at vtable slot `o`.
func (b *Builder) PrependInt64Slot(o int, x, d int64) { prependIntegerSlot(b, o, x, d) }

// PrependFloat32Slot prepends a float32 onto the object at vtable slot `o`.
func (b *Builder) PrependFloat32Slot(o int, x, d float32) { prependFloatSlot(b, o, x, d) }

// PrependFloat64Slot prepends a float64 onto the object at vtable slot `o`.
func (b *Builder) PrependFloat64Slot(o int, x, d float64) { prependFloatSlot(b, o, x, d) }

// PrependUOffsetTSlot prepends an UOffsetT onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependUOffsetTSlot(o int, x, d UOffsetT) {
	if x != d {
		b.PrependUOffsetT(x)
		b.Slot(o)
	}
}

// Slot sets the vtable key `voffset` to the current location in the buffer.
func (b *Builder) Slot(slotnum int) {
	if !b.nested || b.inVector {
		misuse("field added to slot %d outside of an open object", slotnum)
	}
	if slotnum < 0 || slotnum >= len(b.vtable) {
		misuse("slot %d out of range for an object of %d fields", slotnum, len(b.vtable))
	}
	b.vtable[slotnum] = UOffsetT(b.Offset())
}

// FinishWithFileIdentifier finalizes a buffer, pointing to the given `rootTable`
// as well as applys a file identifier
func (b *Builder) FinishWithFileIdentifier(rootTable UOffsetT, fid []byte) {
	b.finish(rootTable, fid, false)
}

// FinishSizePrefixed finalizes a buffer, pointing to the given `rootTable`.
// The buffer is prefixed with the size of the buffer, excluding the size
// of the prefix itself.
func (b *Builder) FinishSizePrefixed(rootTable UOffsetT) {
	b.finish(rootTable, nil, true)
}

// FinishSizePrefixedWithFileIdentifier finalizes a buffer, pointing to the given `rootTable`
// and applies a file identifier. The buffer is prefixed with the size of the buffer,
// excluding the size of the prefix itself.
func (b *Builder) FinishSizePrefixedWithFileIdentifier(rootTable UOffsetT, fid []byte) {
	b.finish(rootTable, fid, true)
}

// Finish finalizes a buffer, pointing to the given `rootTable`.
func (b *Builder) Finish(rootTable UOffsetT) {
	b.finish(rootTable, nil, false)
}

// finish 依次写入（从后往前）：可选的 4 字节 identifier、root offset、可选的 size 前缀。
// 读取时的布局为：[size] root_offset [identifier] ...
func (b *Builder) finish(rootTable UOffsetT, fid []byte, sizePrefix bool) {
	b.assertNotNested()

	prefixSize := 0
	if sizePrefix {
		prefixSize = SizePrefixLength
	}
	if fid != nil {
		if len(fid) != FileIdentifierLength {
			misuse("incorrect file identifier length %d", len(fid))
		}
		b.Prep(b.minalign, SizeUOffsetT+FileIdentifierLength+prefixSize)
		for i := FileIdentifierLength - 1; i >= 0; i-- {
			// place the file identifier
			b.PlaceByte(fid[i])
		}
	} else {
		b.Prep(b.minalign, SizeUOffsetT+prefixSize)
	}

	b.PrependUOffsetT(rootTable)
	if sizePrefix {
		b.PlaceUint32(uint32(b.Offset()))
	}
	b.finished = true

	if ce := b.log.Check(zap.DebugLevel, "finished buffer"); ce != nil {
		ce.Write(
			zap.Uint32("root", uint32(rootTable)),
			zap.Int("size", int(b.Offset())),
			zap.Bool("sizePrefixed", sizePrefix),
			zap.ByteString("identifier", fid),
		)
	}
}

func prependIntegerSlot[T constraints.Integer](b *Builder, o int, x, d T) {
	if x != d {
		prependInteger(b, x)
		b.Slot(o)
	}
}

func prependFloatSlot[T constraints.Float](b *Builder, o int, x, d T) {
	if x != d {
		size := sizeOf[T]()
		b.Prep(size, 0)
		b.head -= UOffsetT(size)
		WriteFloat(b.Bytes[b.head:], x)
		b.Slot(o)
	}
}

func prependInteger[T constraints.Integer](b *Builder, x T) {
	size := sizeOf[T]()
	b.Prep(size, 0)
	b.head -= UOffsetT(size)
	WriteInteger(b.Bytes[b.head:], x)
}

// PrependBool prepends a bool to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependBool(x bool) {
	b.Prep(SizeBool, 0)
	b.PlaceBool(x)
}

// PrependUint8 prepends a uint8 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependUint8(x uint8) { prependInteger(b, x) }

// PrependUint16 prepends a uint16 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependUint16(x uint16) { prependInteger(b, x) }

// PrependUint32 prepends a uint32 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependUint32(x uint32) { prependInteger(b, x) }

// PrependUint64 prepends a uint64 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependUint64(x uint64) { prependInteger(b, x) }

// PrependInt8 prepends a int8 to the Builder buffer.
func (b *Builder) PrependInt8(x int8) { prependInteger(b, x) }

// PrependInt16 prepends a int16 to the Builder buffer.
func (b *Builder) PrependInt16(x int16) { prependInteger(b, x) }

// PrependInt32 prepends a int32 to the Builder buffer.
func (b *Builder) PrependInt32(x int32) { prependInteger(b, x) }

// PrependInt64 prepends a int64 to the Builder buffer.
func (b *Builder) PrependInt64(x int64) { prependInteger(b, x) }

// PrependFloat32 prepends a float32 to the Builder buffer.
func (b *Builder) PrependFloat32(x float32) {
	b.Prep(SizeFloat32, 0)
	b.PlaceFloat32(x)
}

// PrependFloat64 prepends a float64 to the Builder buffer.
func (b *Builder) PrependFloat64(x float64) {
	b.Prep(SizeFloat64, 0)
	b.PlaceFloat64(x)
}

// PrependByte prepends a byte to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependByte(x byte) { prependInteger(b, x) }

// PrependVOffsetT prepends a VOffsetT to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependVOffsetT(x VOffsetT) { prependInteger(b, x) }

// PlaceBool prepends a bool to the Builder, without checking for space.
func (b *Builder) PlaceBool(x bool) {
	b.head -= UOffsetT(SizeBool)
	WriteBool(b.Bytes[b.head:], x)
}

// PlaceUint8 prepends a uint8 to the Builder, without checking for space.
func (b *Builder) PlaceUint8(x uint8) {
	b.head -= UOffsetT(SizeUint8)
	WriteUint8(b.Bytes[b.head:], x)
}

// PlaceUint16 prepends a uint16 to the Builder, without checking for space.
func (b *Builder) PlaceUint16(x uint16) {
	b.head -= UOffsetT(SizeUint16)
	WriteUint16(b.Bytes[b.head:], x)
}

// PlaceUint32 prepends a uint32 to the Builder, without checking for space.
func (b *Builder) PlaceUint32(x uint32) {
	b.head -= UOffsetT(SizeUint32)
	WriteUint32(b.Bytes[b.head:], x)
}

// PlaceUint64 prepends a uint64 to the Builder, without checking for space.
func (b *Builder) PlaceUint64(x uint64) {
	b.head -= UOffsetT(SizeUint64)
	WriteUint64(b.Bytes[b.head:], x)
}

// PlaceInt8 prepends a int8 to the Builder, without checking for space.
func (b *Builder) PlaceInt8(x int8) {
	b.head -= UOffsetT(SizeInt8)
	WriteInt8(b.Bytes[b.head:], x)
}

// PlaceInt16 prepends a int16 to the Builder, without checking for space.
func (b *Builder) PlaceInt16(x int16) {
	b.head -= UOffsetT(SizeInt16)
	WriteInt16(b.Bytes[b.head:], x)
}

// PlaceInt32 prepends a int32 to the Builder, without checking for space.
func (b *Builder) PlaceInt32(x int32) {
	b.head -= UOffsetT(SizeInt32)
	WriteInt32(b.Bytes[b.head:], x)
}

// PlaceInt64 prepends a int64 to the Builder, without checking for space.
func (b *Builder) PlaceInt64(x int64) {
	b.head -= UOffsetT(SizeInt64)
	WriteInt64(b.Bytes[b.head:], x)
}

// PlaceFloat32 prepends a float32 to the Builder, without checking for space.
func (b *Builder) PlaceFloat32(x float32) {
	b.head -= UOffsetT(SizeFloat32)
	WriteFloat32(b.Bytes[b.head:], x)
}

// PlaceFloat64 prepends a float64 to the Builder, without checking for space.
func (b *Builder) PlaceFloat64(x float64) {
	b.head -= UOffsetT(SizeFloat64)
	WriteFloat64(b.Bytes[b.head:], x)
}

// PlaceByte prepends a byte to the Builder, without checking for space.
func (b *Builder) PlaceByte(x byte) {
	b.head -= UOffsetT(SizeByte)   // 向前挪动 1 个位置，腾出一个 byte 的空间
	WriteByte(b.Bytes[b.head:], x) // 存入 1 byte 的 x
}

// PlaceVOffsetT prepends a VOffsetT to the Builder, without checking for space.
func (b *Builder) PlaceVOffsetT(x VOffsetT) {
	b.head -= UOffsetT(SizeVOffsetT)
	WriteVOffsetT(b.Bytes[b.head:], x)
}

// PlaceSOffsetT prepends a SOffsetT to the Builder, without checking for space.
func (b *Builder) PlaceSOffsetT(x SOffsetT) {
	b.head -= UOffsetT(SizeSOffsetT)
	WriteSOffsetT(b.Bytes[b.head:], x)
}

// PlaceUOffsetT prepends a UOffsetT to the Builder, without checking for space.
func (b *Builder) PlaceUOffsetT(x UOffsetT) {
	b.head -= UOffsetT(SizeUOffsetT)
	WriteUOffsetT(b.Bytes[b.head:], x)
}
