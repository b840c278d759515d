// Package movie holds the accessors, builders and object API of the movie
// schema:
//
//	table Attacker   { sword_attack_damage: int; }
//	table Rapunzel   { hair_length: int = 10; }
//	table BookReader { books_read: int; }
//	union Character  { MuLan: Attacker, Rapunzel, Belle: BookReader, BookFan: BookReader }
//	table Movie {
//	  main_character: Character;
//	  characters: [Character];
//	  title: string;
//	  runtime_minutes: ushort = 90;
//	}
//	root_type Movie;
//	file_identifier "MOVI";
package movie

import (
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	flatbuffers "github.com/blastbao/flatcore/flatbuffers"
)

type Character byte

const (
	CharacterNONE     Character = 0
	CharacterMuLan    Character = 1
	CharacterRapunzel Character = 2
	CharacterBelle    Character = 3
	CharacterBookFan  Character = 4
)

var EnumNamesCharacter = map[Character]string{
	CharacterNONE:     "NONE",
	CharacterMuLan:    "MuLan",
	CharacterRapunzel: "Rapunzel",
	CharacterBelle:    "Belle",
	CharacterBookFan:  "BookFan",
}

var EnumValuesCharacter = map[string]Character{
	"NONE":     CharacterNONE,
	"MuLan":    CharacterMuLan,
	"Rapunzel": CharacterRapunzel,
	"Belle":    CharacterBelle,
	"BookFan":  CharacterBookFan,
}

func (v Character) String() string {
	if s, ok := EnumNamesCharacter[v]; ok {
		return s
	}
	return "Character(" + strconv.FormatInt(int64(v), 10) + ")"
}

// IsKnown reports whether v is a tag this schema declares.
func (v Character) IsKnown() bool {
	_, ok := EnumNamesCharacter[v]
	return ok
}

// CharacterValue is implemented by the object types a Character union can
// hold: *AttackerT, *RapunzelT and *BookReaderT.
type CharacterValue interface {
	Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT
}

// CharacterT is one Character union value. The zero value is NONE.
// Belle and BookFan share a variant type, so the tag is kept alongside
// the value.
type CharacterT struct {
	Type  Character
	Value CharacterValue
}

func NewMuLan(v *AttackerT) CharacterT     { return CharacterT{Type: CharacterMuLan, Value: v} }
func NewRapunzel(v *RapunzelT) CharacterT  { return CharacterT{Type: CharacterRapunzel, Value: v} }
func NewBelle(v *BookReaderT) CharacterT   { return CharacterT{Type: CharacterBelle, Value: v} }
func NewBookFan(v *BookReaderT) CharacterT { return CharacterT{Type: CharacterBookFan, Value: v} }

// IsNone reports whether t holds no value. A typed nil variant pointer
// counts as no value.
func (t CharacterT) IsNone() bool {
	if t.Type == CharacterNONE {
		return true
	}
	switch v := t.Value.(type) {
	case nil:
		return true
	case *AttackerT:
		return v == nil
	case *RapunzelT:
		return v == nil
	case *BookReaderT:
		return v == nil
	}
	return false
}

// PackedType is the tag written for t: NONE when t holds no value.
func (t CharacterT) PackedType() Character {
	if t.IsNone() {
		return CharacterNONE
	}
	return t.Type
}

// Pack writes the variant table of t and returns its offset, 0 for NONE.
// A value whose Go type does not match its tag is a programming error and
// panics.
func (t CharacterT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t.IsNone() {
		return 0
	}
	var ok bool
	switch t.Type {
	case CharacterMuLan:
		_, ok = t.Value.(*AttackerT)
	case CharacterRapunzel:
		_, ok = t.Value.(*RapunzelT)
	case CharacterBelle, CharacterBookFan:
		_, ok = t.Value.(*BookReaderT)
	}
	if !ok {
		panic(xerrors.Errorf("character %v cannot hold %T: %w", t.Type, t.Value, flatbuffers.ErrBuilderMisuse))
	}
	return t.Value.Pack(builder)
}

// UnPack decodes the variant table of a union whose tag is rcv.
// Unknown tags decode to NONE.
func (rcv Character) UnPack(table flatbuffers.Table) (CharacterT, error) {
	switch rcv {
	case CharacterMuLan:
		x := Attacker{_tab: table}
		v, err := x.UnPack()
		if err != nil {
			return CharacterT{}, err
		}
		return CharacterT{Type: rcv, Value: v}, nil
	case CharacterRapunzel:
		x := Rapunzel{_tab: table}
		v, err := x.UnPack()
		if err != nil {
			return CharacterT{}, err
		}
		return CharacterT{Type: rcv, Value: v}, nil
	case CharacterBelle, CharacterBookFan:
		x := BookReader{_tab: table}
		v, err := x.UnPack()
		if err != nil {
			return CharacterT{}, err
		}
		return CharacterT{Type: rcv, Value: v}, nil
	}
	return CharacterT{}, nil
}

// unpackCharacter decodes one union value of field (index -1 for a single
// union field). value is only called for known tags, so a variant added by
// a newer schema is never interpreted as a table.
func unpackCharacter(tag Character, field string, index int, value func() (flatbuffers.Table, bool, error)) (CharacterT, error) {
	if tag == CharacterNONE {
		return CharacterT{}, nil
	}
	if !tag.IsKnown() {
		zap.L().Named("movie").Debug("decoding union value with unknown tag as NONE",
			zap.String("field", field),
			zap.Int("index", index),
			zap.Error(xerrors.Errorf("tag %d: %w", byte(tag), flatbuffers.ErrUnknownUnionTag)),
		)
		return CharacterT{}, nil
	}
	table, ok, err := value()
	if err != nil {
		return CharacterT{}, xerrors.Errorf("%s: %w", field, err)
	}
	if !ok {
		return CharacterT{}, nil
	}
	return tag.UnPack(table)
}
