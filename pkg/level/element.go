package level

import (
	"github.com/bgrewell/peggle-kit/pkg/bitstream"
	"github.com/bgrewell/peggle-kit/pkg/consts"
)

// Element is one slot in a Level's entry list. A Magic value other than 1
// marks an empty slot: Kind, Flags, Generic and Payload are left at their
// zero values and nothing further is read from the stream for that slot.
// Magic is preserved verbatim rather than normalized to 0 so that an
// unusual sentinel value round-trips unchanged.
type Element struct {
	Magic   int32
	Kind    consts.LevelEntryType
	Flags   GenericFlags
	Generic GenericData
	Payload Payload
}

// Present reports whether this slot holds a real element.
func (e *Element) Present() bool { return e.Magic == consts.ElementMagic }

func readElement(bs *bitstream.BitStream, version uint32) (*Element, error) {
	e := &Element{}

	magic, err := bs.ReadInt32()
	if err != nil {
		return nil, err
	}
	e.Magic = magic
	if magic != consts.ElementMagic {
		return e, nil
	}

	kind, err := bs.ReadInt32()
	if err != nil {
		return nil, err
	}
	e.Kind = consts.LevelEntryType(kind)

	var rawFlags uint32
	if version == consts.GenericFlagsNarrowVersion {
		low, err := bs.ReadUint8()
		if err != nil {
			return nil, err
		}
		mid, err := bs.ReadUint8()
		if err != nil {
			return nil, err
		}
		high, err := bs.ReadUint8()
		if err != nil {
			return nil, err
		}
		rawFlags = uint32(high)<<16 | uint32(mid)<<8 | uint32(low)
	} else {
		if rawFlags, err = bs.ReadUint32(); err != nil {
			return nil, err
		}
	}
	e.Flags = NewGenericFlags(rawFlags)

	if e.Generic, err = readGeneric(bs, e.Flags); err != nil {
		return nil, err
	}
	if e.Payload, err = decodePayload(bs, e.Kind, version); err != nil {
		return nil, err
	}

	return e, nil
}

func writeElement(bs *bitstream.BitStream, version uint32, e *Element) error {
	if !e.Present() {
		bs.WriteInt32(e.Magic)
		return nil
	}
	bs.WriteInt32(consts.ElementMagic)
	bs.WriteInt32(int32(e.Kind))

	rawFlags := e.Flags.Raw()
	if version == consts.GenericFlagsNarrowVersion {
		bs.WriteUint8(uint8(rawFlags))
		bs.WriteUint8(uint8(rawFlags >> 8))
		bs.WriteUint8(uint8(rawFlags >> 16))
	} else {
		bs.WriteUint32(rawFlags)
	}

	writeGeneric(bs, e.Flags, e.Generic)
	return encodePayload(bs, e.Kind, version, e.Payload)
}

func (e *Element) clone() *Element {
	if e == nil {
		return nil
	}
	out := &Element{
		Magic:   e.Magic,
		Kind:    e.Kind,
		Flags:   e.Flags,
		Generic: e.Generic.clone(),
		Payload: clonePayload(e.Payload),
	}
	return out
}
