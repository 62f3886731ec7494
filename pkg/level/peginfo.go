package level

import (
	"github.com/bgrewell/peggle-kit/pkg/bitstream"
	"github.com/bgrewell/peggle-kit/pkg/consts"
)

// PegInfo is the optional peg-specific record attached to a GenericData when
// GenericFlags.HasPegInfo is set. Flags is kept verbatim from the wire
// (preserving the presence bits for Unk0..Unk3) except for the Variable and
// Crumble bits, which are exposed as booleans and reinjected into Flags at
// encode time rather than trusted from the read-time copy.
type PegInfo struct {
	Type     uint8
	Flags    PegInfoFlags
	Variable bool
	Unk0     int32
	Crumble  bool
	Unk1     int32
	Unk2     uint8
	Unk3     uint8
}

func readPegInfo(bs *bitstream.BitStream) (PegInfo, error) {
	var p PegInfo
	t, err := bs.ReadUint8()
	if err != nil {
		return p, err
	}
	p.Type = t

	rawFlags, err := bs.ReadUint8()
	if err != nil {
		return p, err
	}
	p.Flags = NewPegInfoFlags(rawFlags)
	p.Variable = p.Flags.Variable()
	p.Crumble = p.Flags.Crumble()

	if p.Flags.V(consts.BitPegUnk0) {
		if p.Unk0, err = bs.ReadInt32(); err != nil {
			return p, err
		}
	}
	if p.Flags.V(consts.BitPegUnk1) {
		if p.Unk1, err = bs.ReadInt32(); err != nil {
			return p, err
		}
	}
	if p.Flags.V(consts.BitPegUnk2) {
		if p.Unk2, err = bs.ReadUint8(); err != nil {
			return p, err
		}
	}
	if p.Flags.V(consts.BitPegUnk3) {
		if p.Unk3, err = bs.ReadUint8(); err != nil {
			return p, err
		}
	}
	return p, nil
}

// writePegInfo re-injects the Variable/Crumble booleans into the flags byte
// before emitting it, matching the source's write-time behavior; the other
// preserved flag bits come from the original read.
func writePegInfo(bs *bitstream.BitStream, p PegInfo) {
	bs.WriteUint8(p.Type)

	flags := p.Flags
	flags.SetVariable(p.Variable)
	flags.SetCrumble(p.Crumble)
	bs.WriteUint8(flags.Raw())

	if flags.V(consts.BitPegUnk0) {
		bs.WriteInt32(p.Unk0)
	}
	if flags.V(consts.BitPegUnk1) {
		bs.WriteInt32(p.Unk1)
	}
	if flags.V(consts.BitPegUnk2) {
		bs.WriteUint8(p.Unk2)
	}
	if flags.V(consts.BitPegUnk3) {
		bs.WriteUint8(p.Unk3)
	}
}

func (p PegInfo) clone() PegInfo {
	return p
}
