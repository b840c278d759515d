package movie

import (
	flatbuffers "github.com/blastbao/flatcore/flatbuffers"
)

type RapunzelT struct {
	HairLength int32 `json:"hair_length"`
}

func (t *RapunzelT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	RapunzelStart(builder)
	RapunzelAddHairLength(builder, t.HairLength)
	return RapunzelEnd(builder)
}

func (rcv *Rapunzel) UnPackTo(t *RapunzelT) (err error) {
	t.HairLength, err = rcv.HairLength()
	return err
}

func (rcv *Rapunzel) UnPack() (*RapunzelT, error) {
	if rcv == nil {
		return nil, nil
	}
	t := &RapunzelT{}
	if err := rcv.UnPackTo(t); err != nil {
		return nil, err
	}
	return t, nil
}

type Rapunzel struct {
	_tab flatbuffers.Table
}

func (rcv *Rapunzel) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Rapunzel) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Rapunzel) HairLength() (int32, error) {
	return flatbuffers.GetIntegerSlot(&rcv._tab, 4, int32(10))
}

func RapunzelStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}
func RapunzelAddHairLength(builder *flatbuffers.Builder, hairLength int32) {
	builder.PrependInt32Slot(0, hairLength, 10)
}
func RapunzelEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
