package flatbuffers

import "golang.org/x/xerrors"

// GetRoot resolves the root table of a finished buffer. `offset` is the
// position of the root offset, normally 0. A root offset pointing outside
// the buffer, or at a table whose vtable does not fit, is reported as
// ErrMalformedBuffer.
func GetRoot(buf []byte, offset UOffsetT) (Table, error) {
	t := Table{Bytes: buf}
	root, _, err := t.tableAt(offset)
	if err != nil {
		return Table{}, xerrors.Errorf("root table: %w", err)
	}
	return root, nil
}

// GetSizePrefixedRoot resolves the root table of a size-prefixed buffer.
func GetSizePrefixedRoot(buf []byte, offset UOffsetT) (Table, error) {
	if _, err := GetSizePrefix(buf, offset); err != nil {
		return Table{}, err
	}
	return GetRoot(buf, offset+SizePrefixLength)
}

// GetSizePrefix reads the size prefix stored at offset and checks it
// against the bytes that follow it.
func GetSizePrefix(buf []byte, offset UOffsetT) (uint32, error) {
	t := Table{Bytes: buf}
	b, err := t.bytesAt(offset, SizePrefixLength)
	if err != nil {
		return 0, xerrors.Errorf("size prefix: %w", err)
	}
	size := GetUint32(b)
	if uint64(offset)+SizePrefixLength+uint64(size) > uint64(len(buf)) {
		return 0, malformedf("size prefix %d exceeds the %d bytes that follow it", size, len(buf)-int(offset)-SizePrefixLength)
	}
	return size, nil
}

// GetBufferIdentifier returns the identifier of a buffer, the 4 bytes that
// follow the root offset. It returns "" when the buffer is too short.
func GetBufferIdentifier(buf []byte) string {
	return identifierAt(buf, SizeUOffsetT)
}

// BufferHasIdentifier checks the identifier of a buffer against id.
func BufferHasIdentifier(buf []byte, id string) bool {
	return len(id) == FileIdentifierLength && GetBufferIdentifier(buf) == id
}

// SizePrefixedBufferHasIdentifier checks the identifier of a size-prefixed
// buffer against id.
func SizePrefixedBufferHasIdentifier(buf []byte, id string) bool {
	return len(id) == FileIdentifierLength && identifierAt(buf, SizePrefixLength+SizeUOffsetT) == id
}

func identifierAt(buf []byte, off int) string {
	if len(buf) < off+FileIdentifierLength {
		return ""
	}
	return string(buf[off : off+FileIdentifierLength])
}

// GetRootWithIdentifier rejects buffers that do not carry id before
// resolving the root table.
func GetRootWithIdentifier(buf []byte, id string) (Table, error) {
	if !BufferHasIdentifier(buf, id) {
		return Table{}, xerrors.Errorf("want %q, have %q: %w", id, GetBufferIdentifier(buf), ErrIdentifierMismatch)
	}
	return GetRoot(buf, 0)
}

// GetSizePrefixedRootWithIdentifier is GetRootWithIdentifier for
// size-prefixed buffers.
func GetSizePrefixedRootWithIdentifier(buf []byte, id string) (Table, error) {
	if !SizePrefixedBufferHasIdentifier(buf, id) {
		return Table{}, xerrors.Errorf("want %q, have %q: %w", id, identifierAt(buf, SizePrefixLength+SizeUOffsetT), ErrIdentifierMismatch)
	}
	return GetSizePrefixedRoot(buf, 0)
}
