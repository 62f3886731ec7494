package level

import (
	"github.com/bgrewell/peggle-kit/pkg/bitstream"
	"github.com/bgrewell/peggle-kit/pkg/consts"
)

// Circle is the kind=5 payload.
type Circle struct {
	FlagsA Bits8
	FlagsB Bits8
	Pos    Point
	Radius float32
}

func (Circle) isPayload() {}

func readCircle(bs *bitstream.BitStream, version uint32) (*Circle, error) {
	rawA, err := bs.ReadUint8()
	if err != nil {
		return nil, err
	}
	c := &Circle{FlagsA: NewBits8(rawA)}

	if version >= consts.CircleFlagsBMinVersion {
		rawB, err := bs.ReadUint8()
		if err != nil {
			return nil, err
		}
		c.FlagsB = NewBits8(rawB)
	}

	if c.FlagsA.V(1) {
		if c.Pos, err = readPoint(bs); err != nil {
			return nil, err
		}
	}
	if c.Radius, err = bs.ReadFloat32(); err != nil {
		return nil, err
	}

	return c, nil
}

func writeCircle(bs *bitstream.BitStream, version uint32, c *Circle) {
	bs.WriteUint8(c.FlagsA.Raw())
	if version >= consts.CircleFlagsBMinVersion {
		bs.WriteUint8(c.FlagsB.Raw())
	}

	if c.FlagsA.V(1) {
		writePoint(bs, c.Pos)
	}
	bs.WriteFloat32(c.Radius)
}

func (c *Circle) clone() *Circle {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
