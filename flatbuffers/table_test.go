package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oneBoolBuffer is the finished buffer of a table holding a single true
// bool in slot 0.
func oneBoolBuffer() []byte {
	return []byte{
		12, 0, 0, 0,
		0, 0,
		6, 0, 8, 0, 7, 0,
		6, 0, 0, 0,
		0, 0, 0,
		1,
	}
}

// int32Table finishes a table whose slot i holds values[i].
func int32Table(values ...int32) []byte {
	b := NewBuilder(0)
	b.StartObject(len(values))
	for i, v := range values {
		b.PrependInt32Slot(i, v, 0)
	}
	b.Finish(b.EndObject())
	return b.FinishedBytes()
}

func TestGetRootMalformed(t *testing.T) {
	for _, tc := range []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"short root offset", []byte{1, 0}},
		{"root offset past end", []byte{100, 0, 0, 0}},
		{"truncated table", oneBoolBuffer()[:18]},
		{"vtable outside buffer", func() []byte {
			buf := oneBoolBuffer()
			WriteSOffsetT(buf[12:], -1000)
			return buf
		}()},
		{"odd vtable length", func() []byte {
			buf := oneBoolBuffer()
			buf[6] = 7
			return buf
		}()},
		{"vtable longer than buffer", func() []byte {
			buf := oneBoolBuffer()
			buf[6] = 200
			return buf
		}()},
		{"object shorter than its vtable offset", func() []byte {
			buf := oneBoolBuffer()
			buf[8] = 2
			return buf
		}()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GetRoot(tc.buf, 0)
			assert.ErrorIs(t, err, ErrMalformedBuffer)
		})
	}
}

func TestTableFieldOutsideObject(t *testing.T) {
	buf := oneBoolBuffer()
	buf[10] = 20 // slot 0 entry points past the 8-byte object

	tab, err := GetRoot(buf, 0)
	require.NoError(t, err)
	_, err = tab.GetBoolSlot(VtableOffset(0), false)
	assert.ErrorIs(t, err, ErrMalformedBuffer)
	_, err = GetIntegerSlot(&tab, VtableOffset(0), int32(3))
	assert.ErrorIs(t, err, ErrMalformedBuffer)
}

func TestTableForwardCompatibility(t *testing.T) {
	t.Run("newer writer", func(t *testing.T) {
		tab, err := GetRoot(int32Table(1, 2, 3), 0)
		require.NoError(t, err)
		for slot, want := range []int32{1, 2} {
			got, err := GetIntegerSlot(&tab, VtableOffset(slot), int32(0))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("older writer", func(t *testing.T) {
		tab, err := GetRoot(int32Table(1), 0)
		require.NoError(t, err)
		got, err := GetIntegerSlot(&tab, VtableOffset(0), int32(0))
		require.NoError(t, err)
		assert.Equal(t, int32(1), got)

		// slots beyond the writer's vtable read as their defaults
		got, err = GetIntegerSlot(&tab, VtableOffset(2), int32(42))
		require.NoError(t, err)
		assert.Equal(t, int32(42), got)
		f, err := GetFloatSlot(&tab, VtableOffset(5), float64(1.5))
		require.NoError(t, err)
		assert.Equal(t, 1.5, f)
		s, err := tab.String(VtableOffset(3))
		require.NoError(t, err)
		assert.Empty(t, s)
	})
}

func TestTableScalarSlots(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(6)
	b.PrependUint8Slot(0, 0xfe, 0)
	b.PrependInt16Slot(1, -2, 0)
	b.PrependUint32Slot(2, 1<<31, 0)
	b.PrependInt64Slot(3, -1<<40, 0)
	b.PrependFloat32Slot(4, 2.5, 0)
	b.PrependFloat64Slot(5, -0.125, 0)
	b.Finish(b.EndObject())

	tab, err := GetRoot(b.FinishedBytes(), 0)
	require.NoError(t, err)

	u8, err := GetIntegerSlot(&tab, VtableOffset(0), uint8(0))
	require.NoError(t, err)
	assert.Equal(t, uint8(0xfe), u8)
	i16, err := GetIntegerSlot(&tab, VtableOffset(1), int16(0))
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)
	u32, err := GetIntegerSlot(&tab, VtableOffset(2), uint32(0))
	require.NoError(t, err)
	assert.Equal(t, uint32(1<<31), u32)
	i64, err := GetIntegerSlot(&tab, VtableOffset(3), int64(0))
	require.NoError(t, err)
	assert.Equal(t, int64(-1<<40), i64)
	f32, err := GetFloatSlot(&tab, VtableOffset(4), float32(0))
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), f32)
	f64, err := GetFloatSlot(&tab, VtableOffset(5), float64(0))
	require.NoError(t, err)
	assert.Equal(t, -0.125, f64)
}

func TestTableSubTableAndUnion(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependInt32Slot(0, 77, 0)
	child := b.EndObject()

	b.StartObject(3)
	b.PrependUOffsetTSlot(2, child, 0)
	b.PrependByteSlot(1, 1, 0)
	b.PrependUOffsetTSlot(0, child, 0)
	b.Finish(b.EndObject())

	tab, err := GetRoot(b.FinishedBytes(), 0)
	require.NoError(t, err)

	sub, ok, err := tab.SubTable(VtableOffset(0))
	require.NoError(t, err)
	require.True(t, ok)
	v, err := GetIntegerSlot(&sub, VtableOffset(0), int32(0))
	require.NoError(t, err)
	assert.Equal(t, int32(77), v)

	var union Table
	ok, err = tab.Union(&union, VtableOffset(2))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sub.Pos, union.Pos)

	untouched := Table{Pos: 99}
	ok, err = tab.Union(&untouched, VtableOffset(7))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, UOffsetT(99), untouched.Pos)
}

func TestTableStringAliasesBuffer(t *testing.T) {
	b := NewBuilder(0)
	s := b.CreateString("zero copy")
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, s, 0)
	b.Finish(b.EndObject())
	buf := b.FinishedBytes()

	tab, err := GetRoot(buf, 0)
	require.NoError(t, err)
	raw, err := tab.ByteVector(VtableOffset(0))
	require.NoError(t, err)
	require.Len(t, raw, len("zero copy"))

	raw[0] = 'Z'
	got, err := tab.String(VtableOffset(0))
	require.NoError(t, err)
	assert.Equal(t, "Zero copy", got)
}

func TestTableVectorOverrun(t *testing.T) {
	tab := Table{Bytes: []byte{4, 0, 0, 0, 0xff, 0xff, 0, 0}}
	_, err := tab.vectorAt(0, SizeByte)
	assert.ErrorIs(t, err, ErrMalformedBuffer)

	// offset whose target lies past the end
	tab = Table{Bytes: []byte{8, 0, 0, 0, 0, 0, 0, 0}}
	_, err = tab.Indirect(0)
	assert.ErrorIs(t, err, ErrMalformedBuffer)
}
