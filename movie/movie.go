package movie

import (
	"golang.org/x/xerrors"

	flatbuffers "github.com/blastbao/flatcore/flatbuffers"
)

// MovieIdentifier is the file identifier of movie buffers.
const MovieIdentifier = "MOVI"

// MovieT is the object form of a Movie. A nil Characters slice is written
// as absent vectors and an empty one as present, zero-length vectors; both
// survive a round trip unchanged.
type MovieT struct {
	MainCharacter  CharacterT   `json:"main_character"`
	Characters     []CharacterT `json:"characters"`
	Title          string       `json:"title"`
	RuntimeMinutes uint16       `json:"runtime_minutes"`
}

// Pack writes t and all of its children, leaves first, and returns the
// offset of the Movie table.
func (t *MovieT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	mainCharacterType := t.MainCharacter.PackedType()
	mainCharacterOffset := t.MainCharacter.Pack(builder)

	charactersTypeOffset := flatbuffers.UOffsetT(0)
	charactersOffset := flatbuffers.UOffsetT(0)
	if t.Characters != nil {
		elems := make([]flatbuffers.UnionValue, len(t.Characters))
		for j, c := range t.Characters {
			elems[j] = flatbuffers.UnionValue{Type: byte(c.PackedType()), Value: c.Pack(builder)}
		}
		charactersTypeOffset, charactersOffset = builder.CreateUnionVector(elems)
	}

	titleOffset := flatbuffers.UOffsetT(0)
	if t.Title != "" {
		titleOffset = builder.CreateString(t.Title)
	}

	MovieStart(builder)
	MovieAddRuntimeMinutes(builder, t.RuntimeMinutes)
	MovieAddTitle(builder, titleOffset)
	MovieAddCharacters(builder, charactersOffset)
	MovieAddCharactersType(builder, charactersTypeOffset)
	MovieAddMainCharacter(builder, mainCharacterOffset)
	MovieAddMainCharacterType(builder, mainCharacterType)
	return MovieEnd(builder)
}

func (rcv *Movie) UnPackTo(t *MovieT) error {
	mainCharacterType, err := rcv.MainCharacterType()
	if err != nil {
		return err
	}
	t.MainCharacter, err = unpackCharacter(mainCharacterType, "main_character", -1, func() (flatbuffers.Table, bool, error) {
		var table flatbuffers.Table
		ok, err := rcv.MainCharacter(&table)
		return table, ok, err
	})
	if err != nil {
		return err
	}

	characters, ok, err := rcv.CharactersVector()
	if err != nil {
		return err
	}
	t.Characters = nil
	if ok {
		t.Characters = make([]CharacterT, characters.Len())
		for j := range t.Characters {
			tag, err := characters.Type(j)
			if err != nil {
				return err
			}
			t.Characters[j], err = unpackCharacter(Character(tag), "characters", j, func() (flatbuffers.Table, bool, error) {
				return characters.Value(j)
			})
			if err != nil {
				return err
			}
		}
	}

	title, err := rcv.Title()
	if err != nil {
		return err
	}
	t.Title = string(title)

	t.RuntimeMinutes, err = rcv.RuntimeMinutes()
	return err
}

func (rcv *Movie) UnPack() (*MovieT, error) {
	if rcv == nil {
		return nil, nil
	}
	t := &MovieT{}
	if err := rcv.UnPackTo(t); err != nil {
		return nil, xerrors.Errorf("unpack movie: %w", err)
	}
	return t, nil
}

type Movie struct {
	_tab flatbuffers.Table
}

// GetRootAsMovie resolves the Movie at the root of buf.
func GetRootAsMovie(buf []byte, offset flatbuffers.UOffsetT) (*Movie, error) {
	tab, err := flatbuffers.GetRoot(buf, offset)
	if err != nil {
		return nil, err
	}
	return &Movie{_tab: tab}, nil
}

// GetSizePrefixedRootAsMovie resolves the Movie at the root of a
// size-prefixed buf.
func GetSizePrefixedRootAsMovie(buf []byte, offset flatbuffers.UOffsetT) (*Movie, error) {
	tab, err := flatbuffers.GetSizePrefixedRoot(buf, offset)
	if err != nil {
		return nil, err
	}
	return &Movie{_tab: tab}, nil
}

func MovieBufferHasIdentifier(buf []byte) bool {
	return flatbuffers.BufferHasIdentifier(buf, MovieIdentifier)
}

func SizePrefixedMovieBufferHasIdentifier(buf []byte) bool {
	return flatbuffers.SizePrefixedBufferHasIdentifier(buf, MovieIdentifier)
}

// ReadMovie checks the identifier of buf and resolves its root Movie.
// Buffers written for another root type fail with
// flatbuffers.ErrIdentifierMismatch before any field is read.
func ReadMovie(buf []byte) (*Movie, error) {
	tab, err := flatbuffers.GetRootWithIdentifier(buf, MovieIdentifier)
	if err != nil {
		return nil, err
	}
	return &Movie{_tab: tab}, nil
}

// ReadSizePrefixedMovie is ReadMovie for size-prefixed buffers.
func ReadSizePrefixedMovie(buf []byte) (*Movie, error) {
	tab, err := flatbuffers.GetSizePrefixedRootWithIdentifier(buf, MovieIdentifier)
	if err != nil {
		return nil, err
	}
	return &Movie{_tab: tab}, nil
}

func (rcv *Movie) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Movie) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Movie) MainCharacterType() (Character, error) {
	return flatbuffers.GetIntegerSlot(&rcv._tab, 4, CharacterNONE)
}

func (rcv *Movie) MainCharacter(obj *flatbuffers.Table) (bool, error) {
	return rcv._tab.Union(obj, 6)
}

// CharactersType returns the tag of element j. An absent vector has no
// elements, so every j is out of range.
func (rcv *Movie) CharactersType(j int) (Character, error) {
	v, _, err := rcv._tab.Vector(8, flatbuffers.SizeByte)
	if err != nil {
		return CharacterNONE, err
	}
	return flatbuffers.VectorInteger[Character](v, j)
}

func (rcv *Movie) CharactersTypeLength() (int, error) {
	return rcv._tab.VectorLen(8)
}

func (rcv *Movie) Characters(obj *flatbuffers.Table, j int) (bool, error) {
	uv, ok, err := rcv.CharactersVector()
	if err != nil || !ok {
		return false, err
	}
	value, ok, err := uv.Value(j)
	if err != nil || !ok {
		return false, err
	}
	*obj = value
	return true, nil
}

func (rcv *Movie) CharactersLength() (int, error) {
	return rcv._tab.VectorLen(10)
}

// CharactersVector returns both halves of the characters union vector,
// checked to be of equal length.
func (rcv *Movie) CharactersVector() (flatbuffers.UnionVector, bool, error) {
	return rcv._tab.UnionVector(8, 10)
}

func (rcv *Movie) Title() ([]byte, error) {
	return rcv._tab.ByteVector(12)
}

func (rcv *Movie) RuntimeMinutes() (uint16, error) {
	return flatbuffers.GetIntegerSlot(&rcv._tab, 14, uint16(90))
}

func MovieStart(builder *flatbuffers.Builder) {
	builder.StartObject(6)
}
func MovieAddMainCharacterType(builder *flatbuffers.Builder, mainCharacterType Character) {
	builder.PrependByteSlot(0, byte(mainCharacterType), 0)
}
func MovieAddMainCharacter(builder *flatbuffers.Builder, mainCharacter flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, mainCharacter, 0)
}
func MovieAddCharactersType(builder *flatbuffers.Builder, charactersType flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, charactersType, 0)
}
func MovieStartCharactersTypeVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(1, numElems, 1)
}
func MovieAddCharacters(builder *flatbuffers.Builder, characters flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, characters, 0)
}
func MovieStartCharactersVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}
func MovieAddTitle(builder *flatbuffers.Builder, title flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(4, title, 0)
}
func MovieAddRuntimeMinutes(builder *flatbuffers.Builder, runtimeMinutes uint16) {
	builder.PrependUint16Slot(5, runtimeMinutes, 90)
}
func MovieEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

func FinishMovieBuffer(builder *flatbuffers.Builder, offset flatbuffers.UOffsetT) {
	builder.FinishWithFileIdentifier(offset, []byte(MovieIdentifier))
}

func FinishSizePrefixedMovieBuffer(builder *flatbuffers.Builder, offset flatbuffers.UOffsetT) {
	builder.FinishSizePrefixedWithFileIdentifier(offset, []byte(MovieIdentifier))
}

// Encode packs t into a new identified buffer.
func Encode(t *MovieT, opts ...flatbuffers.BuilderOption) []byte {
	builder := flatbuffers.NewBuilder(1024, opts...)
	FinishMovieBuffer(builder, t.Pack(builder))
	return builder.FinishedBytes()
}

// Decode reads an identified movie buffer into its object form.
func Decode(buf []byte) (*MovieT, error) {
	m, err := ReadMovie(buf)
	if err != nil {
		return nil, err
	}
	return m.UnPack()
}
