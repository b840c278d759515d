// Package flatbuffers reads and writes flatbuffers: tree-shaped records
// serialized into one little-endian byte slice that can be read field by
// field without parsing the whole buffer.
//
// A finished buffer looks like this:
//
//	[uint32 size]            only when size-prefixed
//	[uint32 root offset]
//	[4-byte identifier]      only when the format declares one
//	... vtables, tables, vectors, strings ...
//
// Every offset is relative to the position it is stored at. A table starts
// with an int32 pointing at its vtable; the vtable maps field slots to byte
// offsets inside the table, 0 meaning "absent, use the default".
//
// Writing goes through a Builder, which fills its buffer from the back so
// that children, written first, already have known positions when their
// parent records offsets to them. Reading goes through Table and Vector,
// which are positions into a shared slice. Reads never panic on hostile
// input: every offset is checked and bad ones are reported as
// ErrMalformedBuffer.
package flatbuffers

// 写入方向和读取方向不同：
//
// Builder 从 buffer 尾部向头部填充数据，自己维护 head 指针标记有效数据的起点，
// Offset() 表示距离 buffer 末尾的字节数，这个值在扩容（数据整体后移）时保持不变，
// 所以 builder 内部记录的位置都用 Offset() 表示。
//
// 读取时按正常的从左到右顺序：先读到 root offset，再跳到 root table，
// table 头部的 soffset 指向 vtable，vtable 给出每个字段在 table 内的偏移。
//
// 复杂类型（table、vector、string、union）在 table 中只存一个相对偏移，
// 访问时需要再做一次间接寻址。union 由两个字段组成：1 字节的类型 tag 和指向变体 table 的偏移；
// union vector 由两个等长的 vector 组成：tag vector 和 offset vector。
