package flatbuffers

import "golang.org/x/xerrors"

var (
	// ErrMalformedBuffer is returned when a buffer cannot be decoded: an
	// offset leaves the buffer, a vtable is inconsistent with its table, or
	// the two halves of a union vector disagree on their length.
	ErrMalformedBuffer = xerrors.New("flatbuffers: malformed buffer")

	// ErrIdentifierMismatch is returned before any field is read when a
	// buffer does not carry the expected file identifier.
	ErrIdentifierMismatch = xerrors.New("flatbuffers: file identifier mismatch")

	// ErrUnknownUnionTag marks a union tag outside the set known to the
	// reader. Decoders recover from it by treating the value as NONE.
	ErrUnknownUnionTag = xerrors.New("flatbuffers: unknown union tag")

	// ErrBuilderMisuse is the value (wrapped) that a Builder panics with
	// when its construction protocol is violated.
	ErrBuilderMisuse = xerrors.New("flatbuffers: builder misuse")

	// ErrIndexOutOfRange is returned for a vector index outside [0, Len).
	ErrIndexOutOfRange = xerrors.New("flatbuffers: vector index out of range")
)

func malformedf(format string, args ...interface{}) error {
	return xerrors.Errorf(format+": %w", append(args, ErrMalformedBuffer)...)
}

// misuse panics; the construction protocol is a programming contract and
// is not recovered at runtime.
func misuse(format string, args ...interface{}) {
	panic(xerrors.Errorf(format+": %w", append(args, ErrBuilderMisuse)...))
}
