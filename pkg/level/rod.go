package level

import "github.com/bgrewell/peggle-kit/pkg/bitstream"

// Rod is the kind=2 payload: a straight segment between two points.
type Rod struct {
	Flags  Bits8
	PointA Point
	PointB Point
	E      float32
	F      float32
}

func (Rod) isPayload() {}

func readRod(bs *bitstream.BitStream) (*Rod, error) {
	raw, err := bs.ReadUint8()
	if err != nil {
		return nil, err
	}
	r := &Rod{Flags: NewBits8(raw)}

	if r.PointA, err = readPoint(bs); err != nil {
		return nil, err
	}
	if r.PointB, err = readPoint(bs); err != nil {
		return nil, err
	}
	if r.Flags.V(0) {
		if r.E, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if r.Flags.V(1) {
		if r.F, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func writeRod(bs *bitstream.BitStream, r *Rod) {
	bs.WriteUint8(r.Flags.Raw())
	writePoint(bs, r.PointA)
	writePoint(bs, r.PointB)
	if r.Flags.V(0) {
		bs.WriteFloat32(r.E)
	}
	if r.Flags.V(1) {
		bs.WriteFloat32(r.F)
	}
}

func (r *Rod) clone() *Rod {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}
