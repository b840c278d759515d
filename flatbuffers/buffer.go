package flatbuffers

import (
	"go.uber.org/atomic"

	"github.com/blastbao/flatcore/memory"
)

// Buffer is a finished, immutable flatbuffer shared by any number of
// readers. Accessors derived from it alias its bytes, so it must outlive
// them; the reference count tracks that.
//
// Buffer 的引用计数从 1 开始，最后一次 Release 时把底层内存还给分配器。
type Buffer struct {
	refCount atomic.Int64
	mem      memory.Allocator
	buf      []byte // the whole allocation, returned to mem on release
	data     []byte // the finished bytes inside buf
}

// NewBuffer wraps finished bytes that are not owned by any allocator.
func NewBuffer(data []byte) *Buffer {
	return newBuffer(nil, nil, data)
}

func newBuffer(mem memory.Allocator, buf, data []byte) *Buffer {
	b := &Buffer{mem: mem, buf: buf, data: data}
	b.refCount.Store(1)
	return b
}

// Retain increases the reference count by 1.
// Retain may be called simultaneously from multiple goroutines.
func (b *Buffer) Retain() {
	b.refCount.Inc()
}

// Release decreases the reference count by 1.
// When the reference count goes to zero, the memory is freed.
// Release may be called simultaneously from multiple goroutines.
func (b *Buffer) Release() {
	switch n := b.refCount.Dec(); {
	case n == 0:
		if b.mem != nil {
			b.mem.Free(b.buf)
		}
		b.buf, b.data = nil, nil
	case n < 0:
		panic("flatbuffers: too many releases")
	}
}

// Bytes returns the finished bytes. The slice must not be modified.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the length of the finished bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Root resolves the root table.
func (b *Buffer) Root() (Table, error) { return GetRoot(b.data, 0) }

// RootWithIdentifier resolves the root table after checking the buffer
// identifier.
func (b *Buffer) RootWithIdentifier(id string) (Table, error) {
	return GetRootWithIdentifier(b.data, id)
}
