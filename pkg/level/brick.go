package level

import (
	"github.com/bgrewell/peggle-kit/pkg/bitstream"
	"github.com/bgrewell/peggle-kit/pkg/consts"
)

// Brick is the kind=6 payload, the most heavily gated of the six: three
// separate flag words (two bytes, one u16) control which of a dozen optional
// fields are present.
type Brick struct {
	FlagsA Bits8
	FlagsB Bits8
	FlagsC Bits16

	Unk1 float32
	Unk2 float32
	Unk3 float32
	Unk4 uint8
	Pos  Point

	Unk5 uint8
	Unk6 int32
	Unk7 int16

	Unk8 float32
	Unk9 float32

	// Type is read only when FlagsC bit 2 is set. Curved mirrors !(Type==5)
	// for that case, and defaults true otherwise per the source's zero value.
	Type   uint8
	Curved bool

	// CurvedPoints is stored with the +2 bias already applied; writeBrick
	// subtracts it back out before emitting the raw byte.
	CurvedPoints uint8

	LeftAngle   float32
	RightAngle  float32
	Unk10       float32
	SectorAngle float32
	Width       float32

	// TextureFlip mirrors FlagsC bit 10; it is never stored independently.
	Length float32
	Angle  float32
	Unk12  uint32
}

func (Brick) isPayload() {}

// TextureFlip reports the derived flip bit.
func (b *Brick) TextureFlip() bool { return b.FlagsC.V(10) }

func readBrick(bs *bitstream.BitStream, version uint32) (*Brick, error) {
	rawA, err := bs.ReadUint8()
	if err != nil {
		return nil, err
	}
	b := &Brick{FlagsA: NewBits8(rawA), Curved: true}

	if version >= consts.BrickFlagsBMinVersion {
		rawB, err := bs.ReadUint8()
		if err != nil {
			return nil, err
		}
		b.FlagsB = NewBits8(rawB)
	}

	if b.FlagsA.V(2) {
		if b.Unk1, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if b.FlagsA.V(3) {
		if b.Unk2, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if b.FlagsA.V(5) {
		if b.Unk3, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if b.FlagsA.V(1) {
		if b.Unk4, err = bs.ReadUint8(); err != nil {
			return nil, err
		}
	}
	if b.FlagsA.V(4) {
		if b.Pos, err = readPoint(bs); err != nil {
			return nil, err
		}
	}

	if b.FlagsB.V(0) {
		if b.Unk5, err = bs.ReadUint8(); err != nil {
			return nil, err
		}
	}
	if b.FlagsB.V(1) {
		if b.Unk6, err = bs.ReadInt32(); err != nil {
			return nil, err
		}
	}
	if b.FlagsB.V(2) {
		if b.Unk7, err = bs.ReadInt16(); err != nil {
			return nil, err
		}
	}

	rawC, err := bs.ReadUint16()
	if err != nil {
		return nil, err
	}
	b.FlagsC = NewBits16(rawC)

	if b.FlagsC.V(8) {
		if b.Unk8, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if b.FlagsC.V(9) {
		if b.Unk9, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if b.FlagsC.V(2) {
		if b.Type, err = bs.ReadUint8(); err != nil {
			return nil, err
		}
		if b.Type == 5 {
			b.Curved = false
		}
	}
	if b.FlagsC.V(3) {
		raw, err := bs.ReadUint8()
		if err != nil {
			return nil, err
		}
		b.CurvedPoints = raw + 2
	}
	if b.FlagsC.V(5) {
		if b.LeftAngle, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if b.FlagsC.V(6) {
		if b.RightAngle, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
		if b.Unk10, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if b.FlagsC.V(4) {
		if b.SectorAngle, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if b.FlagsC.V(7) {
		if b.Width, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}

	if b.Length, err = bs.ReadFloat32(); err != nil {
		return nil, err
	}
	if b.Angle, err = bs.ReadFloat32(); err != nil {
		return nil, err
	}
	if b.Unk12, err = bs.ReadUint32(); err != nil {
		return nil, err
	}

	return b, nil
}

func writeBrick(bs *bitstream.BitStream, version uint32, b *Brick) {
	bs.WriteUint8(b.FlagsA.Raw())
	if version >= consts.BrickFlagsBMinVersion {
		bs.WriteUint8(b.FlagsB.Raw())
	}

	if b.FlagsA.V(2) {
		bs.WriteFloat32(b.Unk1)
	}
	if b.FlagsA.V(3) {
		bs.WriteFloat32(b.Unk2)
	}
	if b.FlagsA.V(5) {
		bs.WriteFloat32(b.Unk3)
	}
	if b.FlagsA.V(1) {
		bs.WriteUint8(b.Unk4)
	}
	if b.FlagsA.V(4) {
		writePoint(bs, b.Pos)
	}

	if b.FlagsB.V(0) {
		bs.WriteUint8(b.Unk5)
	}
	if b.FlagsB.V(1) {
		bs.WriteInt32(b.Unk6)
	}
	if b.FlagsB.V(2) {
		bs.WriteInt16(b.Unk7)
	}

	bs.WriteUint16(b.FlagsC.Raw())

	if b.FlagsC.V(8) {
		bs.WriteFloat32(b.Unk8)
	}
	if b.FlagsC.V(9) {
		bs.WriteFloat32(b.Unk9)
	}
	if b.FlagsC.V(2) {
		bs.WriteUint8(b.Type)
	}
	if b.FlagsC.V(3) {
		bs.WriteUint8(b.CurvedPoints - 2)
	}
	if b.FlagsC.V(5) {
		bs.WriteFloat32(b.LeftAngle)
	}
	if b.FlagsC.V(6) {
		bs.WriteFloat32(b.RightAngle)
		bs.WriteFloat32(b.Unk10)
	}
	if b.FlagsC.V(4) {
		bs.WriteFloat32(b.SectorAngle)
	}
	if b.FlagsC.V(7) {
		bs.WriteFloat32(b.Width)
	}

	bs.WriteFloat32(b.Length)
	bs.WriteFloat32(b.Angle)
	bs.WriteUint32(b.Unk12)
}

func (b *Brick) clone() *Brick {
	if b == nil {
		return nil
	}
	out := *b
	return &out
}
