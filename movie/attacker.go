package movie

import (
	flatbuffers "github.com/blastbao/flatcore/flatbuffers"
)

type AttackerT struct {
	SwordAttackDamage int32 `json:"sword_attack_damage"`
}

func (t *AttackerT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	AttackerStart(builder)
	AttackerAddSwordAttackDamage(builder, t.SwordAttackDamage)
	return AttackerEnd(builder)
}

func (rcv *Attacker) UnPackTo(t *AttackerT) (err error) {
	t.SwordAttackDamage, err = rcv.SwordAttackDamage()
	return err
}

func (rcv *Attacker) UnPack() (*AttackerT, error) {
	if rcv == nil {
		return nil, nil
	}
	t := &AttackerT{}
	if err := rcv.UnPackTo(t); err != nil {
		return nil, err
	}
	return t, nil
}

type Attacker struct {
	_tab flatbuffers.Table
}

func (rcv *Attacker) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Attacker) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Attacker) SwordAttackDamage() (int32, error) {
	return flatbuffers.GetIntegerSlot(&rcv._tab, 4, int32(0))
}

func AttackerStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}
func AttackerAddSwordAttackDamage(builder *flatbuffers.Builder, swordAttackDamage int32) {
	builder.PrependInt32Slot(0, swordAttackDamage, 0)
}
func AttackerEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
