package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoAllocatorAlignment(t *testing.T) {
	a := NewGoAllocator()
	for _, size := range []int{1, 7, 64, 100, 4096} {
		buf := a.Allocate(size)
		require.Len(t, buf, size)
		assert.Zero(t, addressOf(buf)%alignment, "size %d", size)
	}
	assert.Len(t, a.Allocate(0), 0)
}

func TestGoAllocatorReallocate(t *testing.T) {
	a := NewGoAllocator()
	buf := a.Allocate(4)
	copy(buf, []byte{1, 2, 3, 4})

	same := a.Reallocate(4, buf)
	assert.Same(t, &buf[0], &same[0])

	grown := a.Reallocate(8, buf)
	assert.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0}, grown)

	fromNil := a.Reallocate(2, nil)
	assert.Equal(t, []byte{0, 0}, fromNil)
}

func TestCheckedAllocator(t *testing.T) {
	a := NewCheckedAllocator(NewGoAllocator())
	buf := a.Allocate(16)
	a.AssertSize(t, 16)

	buf = a.Reallocate(64, buf)
	a.AssertSize(t, 64)

	a.Free(buf)
	a.AssertSize(t, 0)
}

func TestRoundUpToMultipleOf64(t *testing.T) {
	for in, want := range map[int]int{0: 0, 1: 64, 63: 64, 64: 64, 65: 128} {
		assert.Equal(t, want, roundUpToMultipleOf64(in), "in=%d", in)
	}
}
