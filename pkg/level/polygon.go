package level

import (
	"github.com/bgrewell/peggle-kit/pkg/bitstream"
	"github.com/bgrewell/peggle-kit/pkg/consts"
)

// Polygon is the kind=3 payload: an arbitrary point-list shape.
type Polygon struct {
	FlagsA    Bits8
	FlagsB    Bits8
	Rotation  float32
	Unk1      float32
	Scale     float32
	NormalDir uint8
	Pos       Point
	Points    []Point
	Unk2      uint8
	GrowType  int32
}

func (Polygon) isPayload() {}

func readPolygon(bs *bitstream.BitStream, version uint32) (*Polygon, error) {
	rawA, err := bs.ReadUint8()
	if err != nil {
		return nil, err
	}
	p := &Polygon{FlagsA: NewBits8(rawA)}

	if version > consts.PolygonFlagsBMinVersion {
		rawB, err := bs.ReadUint8()
		if err != nil {
			return nil, err
		}
		p.FlagsB = NewBits8(rawB)
	}

	if p.FlagsA.V(2) {
		if p.Rotation, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if p.FlagsA.V(3) {
		if p.Unk1, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if p.FlagsA.V(5) {
		if p.Scale, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if p.FlagsA.V(1) {
		if p.NormalDir, err = bs.ReadUint8(); err != nil {
			return nil, err
		}
	}
	if p.FlagsA.V(4) {
		if p.Pos, err = readPoint(bs); err != nil {
			return nil, err
		}
	}

	numPoints, err := bs.ReadInt32()
	if err != nil {
		return nil, err
	}
	p.Points = make([]Point, numPoints)
	for i := range p.Points {
		if p.Points[i], err = readPoint(bs); err != nil {
			return nil, err
		}
	}

	if p.FlagsB.V(0) {
		if p.Unk2, err = bs.ReadUint8(); err != nil {
			return nil, err
		}
	}
	if p.FlagsB.V(1) {
		if p.GrowType, err = bs.ReadInt32(); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func writePolygon(bs *bitstream.BitStream, version uint32, p *Polygon) {
	bs.WriteUint8(p.FlagsA.Raw())
	if version > consts.PolygonFlagsBMinVersion {
		bs.WriteUint8(p.FlagsB.Raw())
	}

	if p.FlagsA.V(2) {
		bs.WriteFloat32(p.Rotation)
	}
	if p.FlagsA.V(3) {
		bs.WriteFloat32(p.Unk1)
	}
	if p.FlagsA.V(5) {
		bs.WriteFloat32(p.Scale)
	}
	if p.FlagsA.V(1) {
		bs.WriteUint8(p.NormalDir)
	}
	if p.FlagsA.V(4) {
		writePoint(bs, p.Pos)
	}

	bs.WriteInt32(int32(len(p.Points)))
	for _, pt := range p.Points {
		writePoint(bs, pt)
	}

	if p.FlagsB.V(0) {
		bs.WriteUint8(p.Unk2)
	}
	if p.FlagsB.V(1) {
		bs.WriteInt32(p.GrowType)
	}
}

func (p *Polygon) clone() *Polygon {
	if p == nil {
		return nil
	}
	out := *p
	out.Points = append([]Point(nil), p.Points...)
	return &out
}
