package level

import "github.com/bgrewell/peggle-kit/pkg/bitstream"

// Teleport is the kind=8 payload. Its Inner field is the format's one
// genuinely recursive payload: an entire nested Element, present only when
// flag bit 4 is set.
type Teleport struct {
	Flags  Bits8
	Width  int32
	Height int32
	Unk0   int16
	Unk1   int32
	Unk2   int32
	Inner  *Element
	Pos    Point
	Unk3   float32
	Unk4   float32
}

func (Teleport) isPayload() {}

func readTeleport(bs *bitstream.BitStream, version uint32) (*Teleport, error) {
	raw, err := bs.ReadUint8()
	if err != nil {
		return nil, err
	}
	t := &Teleport{Flags: NewBits8(raw)}

	if t.Width, err = bs.ReadInt32(); err != nil {
		return nil, err
	}
	if t.Height, err = bs.ReadInt32(); err != nil {
		return nil, err
	}

	if t.Flags.V(1) {
		if t.Unk0, err = bs.ReadInt16(); err != nil {
			return nil, err
		}
	}
	if t.Flags.V(3) {
		if t.Unk1, err = bs.ReadInt32(); err != nil {
			return nil, err
		}
	}
	if t.Flags.V(5) {
		if t.Unk2, err = bs.ReadInt32(); err != nil {
			return nil, err
		}
	}
	if t.Flags.V(4) {
		inner, err := readElement(bs, version)
		if err != nil {
			return nil, err
		}
		t.Inner = inner
	}
	if t.Flags.V(2) {
		if t.Pos, err = readPoint(bs); err != nil {
			return nil, err
		}
	}
	if t.Flags.V(6) {
		if t.Unk3, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
		if t.Unk4, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func writeTeleport(bs *bitstream.BitStream, version uint32, t *Teleport) {
	bs.WriteUint8(t.Flags.Raw())
	bs.WriteInt32(t.Width)
	bs.WriteInt32(t.Height)

	if t.Flags.V(1) {
		bs.WriteInt16(t.Unk0)
	}
	if t.Flags.V(3) {
		bs.WriteInt32(t.Unk1)
	}
	if t.Flags.V(5) {
		bs.WriteInt32(t.Unk2)
	}
	if t.Flags.V(4) && t.Inner != nil {
		writeElement(bs, version, t.Inner)
	}
	if t.Flags.V(2) {
		writePoint(bs, t.Pos)
	}
	if t.Flags.V(6) {
		bs.WriteFloat32(t.Unk3)
		bs.WriteFloat32(t.Unk4)
	}
}

func (t *Teleport) clone() *Teleport {
	if t == nil {
		return nil
	}
	out := *t
	if t.Inner != nil {
		out.Inner = t.Inner.clone()
	}
	return &out
}
