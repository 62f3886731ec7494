package level

import (
	"github.com/bgrewell/peggle-kit/pkg/bitstream"
	"github.com/bgrewell/peggle-kit/pkg/consts"
)

// Payload is the sum type of the six element kinds. Unlike a pure marker
// interface, isPayload is unexported so only this package's six types can
// ever satisfy it.
type Payload interface {
	isPayload()
}

func decodePayload(bs *bitstream.BitStream, kind consts.LevelEntryType, version uint32) (Payload, error) {
	switch kind {
	case consts.KindRod:
		return readRod(bs)
	case consts.KindPolygon:
		return readPolygon(bs, version)
	case consts.KindCircle:
		return readCircle(bs, version)
	case consts.KindBrick:
		return readBrick(bs, version)
	case consts.KindTeleport:
		return readTeleport(bs, version)
	case consts.KindEmitter:
		return readEmitter(bs)
	default:
		return nil, ErrInvalidKind
	}
}

func encodePayload(bs *bitstream.BitStream, kind consts.LevelEntryType, version uint32, p Payload) error {
	switch kind {
	case consts.KindRod:
		r, ok := p.(*Rod)
		if !ok {
			return ErrInvalidKind
		}
		writeRod(bs, r)
	case consts.KindPolygon:
		poly, ok := p.(*Polygon)
		if !ok {
			return ErrInvalidKind
		}
		writePolygon(bs, version, poly)
	case consts.KindCircle:
		c, ok := p.(*Circle)
		if !ok {
			return ErrInvalidKind
		}
		writeCircle(bs, version, c)
	case consts.KindBrick:
		b, ok := p.(*Brick)
		if !ok {
			return ErrInvalidKind
		}
		writeBrick(bs, version, b)
	case consts.KindTeleport:
		t, ok := p.(*Teleport)
		if !ok {
			return ErrInvalidKind
		}
		writeTeleport(bs, version, t)
	case consts.KindEmitter:
		e, ok := p.(*Emitter)
		if !ok {
			return ErrInvalidKind
		}
		writeEmitter(bs, e)
	default:
		return ErrInvalidKind
	}
	return nil
}

func clonePayload(p Payload) Payload {
	switch v := p.(type) {
	case *Rod:
		return v.clone()
	case *Polygon:
		return v.clone()
	case *Circle:
		return v.clone()
	case *Brick:
		return v.clone()
	case *Teleport:
		return v.clone()
	case *Emitter:
		return v.clone()
	default:
		return nil
	}
}
