package movie

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	flatbuffers "github.com/blastbao/flatcore/flatbuffers"
)

func TestMovieRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		movie *MovieT
		want  *MovieT // nil when decoding gives back movie unchanged
	}{
		{name: "zero", movie: &MovieT{}},
		{name: "defaults", movie: &MovieT{RuntimeMinutes: 90}},
		{name: "title only", movie: &MovieT{Title: "Mulan", RuntimeMinutes: 88}},
		{name: "main character", movie: &MovieT{
			MainCharacter:  NewRapunzel(&RapunzelT{HairLength: 70}),
			RuntimeMinutes: 100,
		}},
		{name: "rapunzel default hair", movie: &MovieT{
			MainCharacter:  NewRapunzel(&RapunzelT{HairLength: 10}),
			RuntimeMinutes: 90,
		}},
		{name: "empty characters", movie: &MovieT{Characters: []CharacterT{}, RuntimeMinutes: 90}},
		{name: "all variants", movie: &MovieT{
			MainCharacter: NewMuLan(&AttackerT{SwordAttackDamage: 5}),
			Characters: []CharacterT{
				NewMuLan(&AttackerT{SwordAttackDamage: 7}),
				{},
				NewRapunzel(&RapunzelT{HairLength: 3}),
				NewBelle(&BookReaderT{BooksRead: 11}),
				NewBookFan(&BookReaderT{BooksRead: 12}),
				{},
			},
			Title:          "Disney heroes",
			RuntimeMinutes: 120,
		}},
		{name: "nil variant values", movie: &MovieT{
			MainCharacter: NewBelle(nil),
			Characters: []CharacterT{
				NewMuLan(nil),
				NewMuLan(&AttackerT{SwordAttackDamage: 1}),
				NewRapunzel(nil),
			},
			RuntimeMinutes: 90,
		}, want: &MovieT{
			Characters: []CharacterT{
				{},
				NewMuLan(&AttackerT{SwordAttackDamage: 1}),
				{},
			},
			RuntimeMinutes: 90,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Encode(tt.movie)
			assert.True(t, MovieBufferHasIdentifier(buf))

			got, err := Decode(buf)
			require.NoError(t, err)
			want := tt.want
			if want == nil {
				want = tt.movie
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMovieCharactersAccessors(t *testing.T) {
	buf := Encode(&MovieT{
		Characters: []CharacterT{
			NewMuLan(&AttackerT{SwordAttackDamage: 5}),
			{},
			NewMuLan(&AttackerT{SwordAttackDamage: 7}),
		},
		RuntimeMinutes: 90,
	})
	m, err := ReadMovie(buf)
	require.NoError(t, err)

	typesLen, err := m.CharactersTypeLength()
	require.NoError(t, err)
	valuesLen, err := m.CharactersLength()
	require.NoError(t, err)
	assert.Equal(t, 3, typesLen)
	assert.Equal(t, 3, valuesLen)

	for j, want := range []Character{CharacterMuLan, CharacterNONE, CharacterMuLan} {
		got, err := m.CharactersType(j)
		require.NoError(t, err)
		assert.Equal(t, want, got, "element %d", j)
	}

	var tab flatbuffers.Table
	ok, err := m.Characters(&tab, 1)
	require.NoError(t, err)
	assert.False(t, ok, "NONE element has no value")

	ok, err = m.Characters(&tab, 2)
	require.NoError(t, err)
	require.True(t, ok)
	attacker := &Attacker{}
	attacker.Init(tab.Bytes, tab.Pos)
	damage, err := attacker.SwordAttackDamage()
	require.NoError(t, err)
	assert.Equal(t, int32(7), damage)

	_, err = m.CharactersType(3)
	assert.ErrorIs(t, err, flatbuffers.ErrIndexOutOfRange)

	// absent main character
	tag, err := m.MainCharacterType()
	require.NoError(t, err)
	assert.Equal(t, CharacterNONE, tag)
	ok, err = m.MainCharacter(&tab)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMovieDefaultsAreNotWritten(t *testing.T) {
	m, err := ReadMovie(Encode(&MovieT{
		MainCharacter:  NewRapunzel(&RapunzelT{HairLength: 10}),
		RuntimeMinutes: 90,
	}))
	require.NoError(t, err)

	tab := m.Table()
	off, err := tab.Offset(flatbuffers.VtableOffset(5))
	require.NoError(t, err)
	assert.Zero(t, off, "runtime_minutes equal to its default is omitted")
	minutes, err := m.RuntimeMinutes()
	require.NoError(t, err)
	assert.Equal(t, uint16(90), minutes)

	// no characters vector: every index is out of range
	for _, j := range []int{0, 1} {
		_, err = m.CharactersType(j)
		assert.ErrorIs(t, err, flatbuffers.ErrIndexOutOfRange, "element %d", j)
	}

	var union flatbuffers.Table
	ok, err := m.MainCharacter(&union)
	require.NoError(t, err)
	require.True(t, ok)
	off, err = union.Offset(flatbuffers.VtableOffset(0))
	require.NoError(t, err)
	assert.Zero(t, off, "hair_length equal to its default is omitted")
	r := &Rapunzel{}
	r.Init(union.Bytes, union.Pos)
	hair, err := r.HairLength()
	require.NoError(t, err)
	assert.Equal(t, int32(10), hair)
}

func TestMovieUnknownTagDecodesAsNone(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	const futureTag = Character(9)

	b := flatbuffers.NewBuilder(0)
	a := (&AttackerT{SwordAttackDamage: 3}).Pack(b)
	types, values := b.CreateUnionVector([]flatbuffers.UnionValue{
		{Type: byte(futureTag), Value: a},
		{Type: byte(CharacterMuLan), Value: a},
	})
	MovieStart(b)
	MovieAddCharacters(b, values)
	MovieAddCharactersType(b, types)
	MovieAddMainCharacter(b, a)
	MovieAddMainCharacterType(b, futureTag)
	FinishMovieBuffer(b, MovieEnd(b))

	got, err := Decode(b.FinishedBytes())
	require.NoError(t, err)
	want := &MovieT{
		Characters: []CharacterT{
			{},
			NewMuLan(&AttackerT{SwordAttackDamage: 3}),
		},
		RuntimeMinutes: 90,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}

	entries := logs.FilterMessage("decoding union value with unknown tag as NONE").All()
	require.Len(t, entries, 2)
	first := entries[0].ContextMap()
	assert.Equal(t, "main_character", first["field"])
	assert.EqualValues(t, -1, first["index"])
	assert.Contains(t, first["error"], "unknown union tag")
	second := entries[1].ContextMap()
	assert.Equal(t, "characters", second["field"])
	assert.EqualValues(t, 0, second["index"])
}

func TestMovieIdentifierMismatch(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	MovieStart(b)
	b.FinishWithFileIdentifier(MovieEnd(b), []byte("NOPE"))
	buf := b.FinishedBytes()

	assert.False(t, MovieBufferHasIdentifier(buf))
	_, err := Decode(buf)
	assert.ErrorIs(t, err, flatbuffers.ErrIdentifierMismatch)

	// without the identifier check the buffer is a valid Movie
	m, err := GetRootAsMovie(buf, 0)
	require.NoError(t, err)
	minutes, err := m.RuntimeMinutes()
	require.NoError(t, err)
	assert.Equal(t, uint16(90), minutes)
}

func TestMovieSizePrefixed(t *testing.T) {
	want := &MovieT{
		MainCharacter:  NewBelle(&BookReaderT{BooksRead: 42}),
		Title:          "Beauty and the Beast",
		RuntimeMinutes: 84,
	}
	b := flatbuffers.NewBuilder(0)
	FinishSizePrefixedMovieBuffer(b, want.Pack(b))
	buf := b.FinishedBytes()

	assert.True(t, SizePrefixedMovieBufferHasIdentifier(buf))
	assert.False(t, MovieBufferHasIdentifier(buf))

	m, err := ReadSizePrefixedMovie(buf)
	require.NoError(t, err)
	got, err := m.UnPack()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	_, err = GetSizePrefixedRootAsMovie(buf[:len(buf)-1], 0)
	assert.ErrorIs(t, err, flatbuffers.ErrMalformedBuffer)
}

func TestMovieMalformed(t *testing.T) {
	buf := Encode(&MovieT{
		MainCharacter:  NewMuLan(&AttackerT{SwordAttackDamage: 9}),
		Characters:     []CharacterT{NewBookFan(&BookReaderT{BooksRead: 1})},
		Title:          "truncated",
		RuntimeMinutes: 90,
	})
	_, err := Decode(buf[:len(buf)-4])
	assert.ErrorIs(t, err, flatbuffers.ErrMalformedBuffer)

	_, err = Decode(nil)
	assert.ErrorIs(t, err, flatbuffers.ErrIdentifierMismatch)
}

func TestCharacterPackMismatchedValue(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	c := CharacterT{Type: CharacterMuLan, Value: &RapunzelT{HairLength: 1}}

	var err error
	func() {
		defer func() {
			err, _ = recover().(error)
		}()
		c.Pack(b)
	}()
	assert.ErrorIs(t, err, flatbuffers.ErrBuilderMisuse)
}

func TestCharacterNone(t *testing.T) {
	assert.True(t, CharacterT{}.IsNone())
	assert.True(t, CharacterT{Type: CharacterBelle}.IsNone())
	assert.Equal(t, CharacterNONE, CharacterT{Type: CharacterBelle}.PackedType())
	assert.Equal(t, CharacterBookFan, NewBookFan(&BookReaderT{}).PackedType())
	for _, c := range []CharacterT{NewMuLan(nil), NewRapunzel(nil), NewBelle(nil), NewBookFan(nil)} {
		assert.True(t, c.IsNone(), "%v holding a nil pointer", c.Type)
		assert.Equal(t, CharacterNONE, c.PackedType())
	}

	b := flatbuffers.NewBuilder(0)
	assert.Zero(t, CharacterT{}.Pack(b))

	assert.Equal(t, "BookFan", CharacterBookFan.String())
	assert.Equal(t, "Character(9)", Character(9).String())
	assert.False(t, Character(9).IsKnown())
	assert.Equal(t, CharacterRapunzel, EnumValuesCharacter["Rapunzel"])
}
