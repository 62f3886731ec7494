package level

import "github.com/bgrewell/peggle-kit/pkg/bitstream"

// MovementInfo describes how an element moves along a path. Shape is kept as
// the raw signed value read from the wire: a negative shape means the motion
// runs in reverse and the unsigned magnitude names the path shape, but the
// sign itself is part of the encoding and must round-trip unchanged.
type MovementInfo struct {
	Shape         int8
	Anchor        Point
	TimePeriod    int16
	Flags         MovementInfoFlags
	Offset        int16
	Radius1       int16
	StartPhase    float32
	MoveRotation  float32
	Radius2       int16
	Pause1        int16
	Pause2        int16
	Phase1        uint8
	Phase2        uint8
	PostDelay     float32
	MaxAngle      float32
	Unknown8      float32
	Rotation      float32
	SubOffsetX    float32
	SubOffsetY    float32
	Sub           *MovementLink
	ObjectX       float32
	ObjectY       float32
}

// Reverse reports whether the motion runs in reverse (Shape is negative).
func (m MovementInfo) Reverse() bool { return m.Shape < 0 }

// ShapeType is the unsigned path shape identifier, independent of direction.
func (m MovementInfo) ShapeType() uint8 {
	if m.Shape < 0 {
		return uint8(-m.Shape)
	}
	return uint8(m.Shape)
}

// MovementLink is a recursive reference cell: an internal link id of 1 means
// an inline MovementInfo record follows, anything else is a bare reference.
type MovementLink struct {
	LinkID int32
	Inner  *MovementInfo
}

func readMovementLink(bs *bitstream.BitStream) (*MovementLink, error) {
	id, err := bs.ReadInt32()
	if err != nil {
		return nil, err
	}
	link := &MovementLink{LinkID: id}
	if id == 1 {
		m, err := readMovementInfo(bs)
		if err != nil {
			return nil, err
		}
		link.Inner = &m
	}
	return link, nil
}

func writeMovementLink(bs *bitstream.BitStream, link *MovementLink) {
	bs.WriteInt32(link.LinkID)
	if link.LinkID == 1 && link.Inner != nil {
		writeMovementInfo(bs, *link.Inner)
	}
}

func readMovementInfo(bs *bitstream.BitStream) (MovementInfo, error) {
	var m MovementInfo
	shape, err := bs.ReadInt8()
	if err != nil {
		return m, err
	}
	m.Shape = shape

	anchor, err := readPoint(bs)
	if err != nil {
		return m, err
	}
	m.Anchor = anchor

	if m.TimePeriod, err = bs.ReadInt16(); err != nil {
		return m, err
	}

	rawFlags, err := bs.ReadUint16()
	if err != nil {
		return m, err
	}
	flags := NewMovementInfoFlags(rawFlags)
	m.Flags = flags

	if flags.HasOffset() {
		if m.Offset, err = bs.ReadInt16(); err != nil {
			return m, err
		}
	}
	if flags.HasRadius1() {
		if m.Radius1, err = bs.ReadInt16(); err != nil {
			return m, err
		}
	}
	if flags.HasStartPhase() {
		if m.StartPhase, err = bs.ReadFloat32(); err != nil {
			return m, err
		}
	}
	if flags.HasMovementRotation() {
		if m.MoveRotation, err = bs.ReadFloat32(); err != nil {
			return m, err
		}
	}
	if flags.HasRadius2() {
		if m.Radius2, err = bs.ReadInt16(); err != nil {
			return m, err
		}
	}
	if flags.HasPause1() {
		if m.Pause1, err = bs.ReadInt16(); err != nil {
			return m, err
		}
	}
	if flags.HasPause2() {
		if m.Pause2, err = bs.ReadInt16(); err != nil {
			return m, err
		}
	}
	if flags.HasPhase1() {
		if m.Phase1, err = bs.ReadUint8(); err != nil {
			return m, err
		}
	}
	if flags.HasPhase2() {
		if m.Phase2, err = bs.ReadUint8(); err != nil {
			return m, err
		}
	}
	if flags.HasPostDelayPhase() {
		if m.PostDelay, err = bs.ReadFloat32(); err != nil {
			return m, err
		}
	}
	if flags.HasMaxAngle() {
		if m.MaxAngle, err = bs.ReadFloat32(); err != nil {
			return m, err
		}
	}
	if flags.HasUnknown8() {
		if m.Unknown8, err = bs.ReadFloat32(); err != nil {
			return m, err
		}
	}
	if flags.HasRotation() {
		if m.Rotation, err = bs.ReadFloat32(); err != nil {
			return m, err
		}
	}
	if flags.HasSubMovement() {
		if m.SubOffsetX, err = bs.ReadFloat32(); err != nil {
			return m, err
		}
		if m.SubOffsetY, err = bs.ReadFloat32(); err != nil {
			return m, err
		}
		sub, err := readMovementLink(bs)
		if err != nil {
			return m, err
		}
		m.Sub = sub
	}
	if flags.HasObject() {
		if m.ObjectX, err = bs.ReadFloat32(); err != nil {
			return m, err
		}
		if m.ObjectY, err = bs.ReadFloat32(); err != nil {
			return m, err
		}
	}

	return m, nil
}

func writeMovementInfo(bs *bitstream.BitStream, m MovementInfo) {
	bs.WriteInt8(m.Shape)
	writePoint(bs, m.Anchor)
	bs.WriteInt16(m.TimePeriod)
	bs.WriteUint16(m.Flags.Raw())

	flags := m.Flags
	if flags.HasOffset() {
		bs.WriteInt16(m.Offset)
	}
	if flags.HasRadius1() {
		bs.WriteInt16(m.Radius1)
	}
	if flags.HasStartPhase() {
		bs.WriteFloat32(m.StartPhase)
	}
	if flags.HasMovementRotation() {
		bs.WriteFloat32(m.MoveRotation)
	}
	if flags.HasRadius2() {
		bs.WriteInt16(m.Radius2)
	}
	if flags.HasPause1() {
		bs.WriteInt16(m.Pause1)
	}
	if flags.HasPause2() {
		bs.WriteInt16(m.Pause2)
	}
	if flags.HasPhase1() {
		bs.WriteUint8(m.Phase1)
	}
	if flags.HasPhase2() {
		bs.WriteUint8(m.Phase2)
	}
	if flags.HasPostDelayPhase() {
		bs.WriteFloat32(m.PostDelay)
	}
	if flags.HasMaxAngle() {
		bs.WriteFloat32(m.MaxAngle)
	}
	if flags.HasUnknown8() {
		bs.WriteFloat32(m.Unknown8)
	}
	if flags.HasRotation() {
		bs.WriteFloat32(m.Rotation)
	}
	if flags.HasSubMovement() {
		bs.WriteFloat32(m.SubOffsetX)
		bs.WriteFloat32(m.SubOffsetY)
		if m.Sub != nil {
			writeMovementLink(bs, m.Sub)
		}
	}
	if flags.HasObject() {
		bs.WriteFloat32(m.ObjectX)
		bs.WriteFloat32(m.ObjectY)
	}
}

func (m MovementInfo) clone() MovementInfo {
	out := m
	if m.Sub != nil {
		out.Sub = m.Sub.clone()
	}
	return out
}

func (l *MovementLink) clone() *MovementLink {
	if l == nil {
		return nil
	}
	out := &MovementLink{LinkID: l.LinkID}
	if l.Inner != nil {
		inner := l.Inner.clone()
		out.Inner = &inner
	}
	return out
}
