package level

import "github.com/bgrewell/peggle-kit/pkg/bitstream"

// GenericData holds every optional field an Element's GenericFlags can gate.
// Presence is never inferred from a field's value: callers decide whether a
// field is meaningful by consulting the owning Element's Flags, which is
// preserved verbatim from the wire and used to drive both decode and encode.
type GenericData struct {
	Rolly             float32
	Bouncy            float32
	PegInfo           *PegInfo
	MovementLink      *MovementLink
	Unk0              int32
	SolidColor        ColorARGB
	OutlineColor      ColorARGB
	Image             string
	ImageDX           float32
	ImageDY           float32
	Rotation          float32
	Unk1              int32
	ID                string
	Unk2              int32
	Sound             uint8
	Logic             string
	MaxBounceVelocity float32
	SubID             float32
	FlipperFlags      uint8
}

// readGeneric decodes GenericData's optional fields in on-disk order. Note
// that PegInfo and MovementLink, despite being gated by the lowest-numbered
// bits (2 and 3), are read last: the wire format groups all scalar fields
// before the two nested records.
func readGeneric(bs *bitstream.BitStream, flags GenericFlags) (GenericData, error) {
	var g GenericData
	var err error

	if flags.IsRolly() {
		if g.Rolly, err = bs.ReadFloat32(); err != nil {
			return g, err
		}
	}
	if flags.IsBouncy() {
		if g.Bouncy, err = bs.ReadFloat32(); err != nil {
			return g, err
		}
	}
	if flags.HasUnk0() {
		if g.Unk0, err = bs.ReadInt32(); err != nil {
			return g, err
		}
	}
	if flags.HasSolidColor() {
		v, err := bs.ReadUint32()
		if err != nil {
			return g, err
		}
		g.SolidColor = ColorARGB(v)
	}
	if flags.HasOutlineColor() {
		v, err := bs.ReadUint32()
		if err != nil {
			return g, err
		}
		g.OutlineColor = ColorARGB(v)
	}
	if flags.HasImage() {
		if g.Image, err = bs.ReadString(); err != nil {
			return g, err
		}
	}
	if flags.HasImageDX() {
		if g.ImageDX, err = bs.ReadFloat32(); err != nil {
			return g, err
		}
	}
	if flags.HasImageDY() {
		if g.ImageDY, err = bs.ReadFloat32(); err != nil {
			return g, err
		}
	}
	if flags.HasRotation() {
		if g.Rotation, err = bs.ReadFloat32(); err != nil {
			return g, err
		}
	}
	if flags.HasUnk1() {
		if g.Unk1, err = bs.ReadInt32(); err != nil {
			return g, err
		}
	}
	if flags.HasID() {
		if g.ID, err = bs.ReadString(); err != nil {
			return g, err
		}
	}
	if flags.HasUnk2() {
		if g.Unk2, err = bs.ReadInt32(); err != nil {
			return g, err
		}
	}
	if flags.HasSound() {
		if g.Sound, err = bs.ReadUint8(); err != nil {
			return g, err
		}
	}
	if flags.HasLogic() {
		if g.Logic, err = bs.ReadString(); err != nil {
			return g, err
		}
	}
	if flags.HasMaxBounceVelocity() {
		if g.MaxBounceVelocity, err = bs.ReadFloat32(); err != nil {
			return g, err
		}
	}
	if flags.HasSubID() {
		if g.SubID, err = bs.ReadFloat32(); err != nil {
			return g, err
		}
	}
	if flags.HasFlipperFlags() {
		if g.FlipperFlags, err = bs.ReadUint8(); err != nil {
			return g, err
		}
	}

	if flags.HasPegInfo() {
		p, err := readPegInfo(bs)
		if err != nil {
			return g, err
		}
		g.PegInfo = &p
	}
	if flags.HasMovementInfo() {
		m, err := readMovementLink(bs)
		if err != nil {
			return g, err
		}
		g.MovementLink = m
	}

	return g, nil
}

func writeGeneric(bs *bitstream.BitStream, flags GenericFlags, g GenericData) {
	if flags.IsRolly() {
		bs.WriteFloat32(g.Rolly)
	}
	if flags.IsBouncy() {
		bs.WriteFloat32(g.Bouncy)
	}
	if flags.HasUnk0() {
		bs.WriteInt32(g.Unk0)
	}
	if flags.HasSolidColor() {
		bs.WriteUint32(uint32(g.SolidColor))
	}
	if flags.HasOutlineColor() {
		bs.WriteUint32(uint32(g.OutlineColor))
	}
	if flags.HasImage() {
		bs.WriteString(g.Image)
	}
	if flags.HasImageDX() {
		bs.WriteFloat32(g.ImageDX)
	}
	if flags.HasImageDY() {
		bs.WriteFloat32(g.ImageDY)
	}
	if flags.HasRotation() {
		bs.WriteFloat32(g.Rotation)
	}
	if flags.HasUnk1() {
		bs.WriteInt32(g.Unk1)
	}
	if flags.HasID() {
		bs.WriteString(g.ID)
	}
	if flags.HasUnk2() {
		bs.WriteInt32(g.Unk2)
	}
	if flags.HasSound() {
		bs.WriteUint8(g.Sound)
	}
	if flags.HasLogic() {
		bs.WriteString(g.Logic)
	}
	if flags.HasMaxBounceVelocity() {
		bs.WriteFloat32(g.MaxBounceVelocity)
	}
	if flags.HasSubID() {
		bs.WriteFloat32(g.SubID)
	}
	if flags.HasFlipperFlags() {
		bs.WriteUint8(g.FlipperFlags)
	}

	if flags.HasPegInfo() && g.PegInfo != nil {
		writePegInfo(bs, *g.PegInfo)
	}
	if flags.HasMovementInfo() && g.MovementLink != nil {
		writeMovementLink(bs, g.MovementLink)
	}
}

func (g GenericData) clone() GenericData {
	out := g
	if g.PegInfo != nil {
		p := g.PegInfo.clone()
		out.PegInfo = &p
	}
	if g.MovementLink != nil {
		out.MovementLink = g.MovementLink.clone()
	}
	return out
}
