// Package level implements the binary level format: a versioned list of
// Elements, each an optional Payload (Rod, Polygon, Circle, Brick, Teleport,
// or Emitter) plus a GenericData record shared by every kind.
package level

import (
	"github.com/bgrewell/peggle-kit/pkg/bitstream"
	"github.com/bgrewell/peggle-kit/pkg/logging"
	"github.com/bgrewell/peggle-kit/pkg/option"
)

// Level is a decoded level file: a format version, a sync flag whose purpose
// the original tooling never documented, and the ordered element list.
type Level struct {
	Version  uint32
	SyncFlag uint8
	Elements []*Element
}

// Decode parses a complete level payload, as extracted from a pak archive
// entry or a standalone file on disk.
func Decode(data []byte, opts ...option.LevelOption) (*Level, error) {
	o := &option.LevelOptions{}
	for _, fn := range opts {
		fn(o)
	}
	if o.Logger == nil {
		o.Logger = logging.DefaultLogger()
	}

	bs := bitstream.New(data)

	version, err := bs.ReadUint32()
	if err != nil {
		return nil, err
	}
	syncFlag, err := bs.ReadUint8()
	if err != nil {
		return nil, err
	}
	count, err := bs.ReadUint32()
	if err != nil {
		return nil, err
	}

	lvl := &Level{Version: version, SyncFlag: syncFlag}
	lvl.Elements = make([]*Element, 0, count)
	for i := uint32(0); i < count; i++ {
		e, err := readElement(bs, version)
		if err != nil {
			o.Logger.Error(err, "failed to decode element", "index", i)
			return nil, err
		}
		if o.Strict && e.Present() && e.Flags.Raw()&(1<<31) != 0 {
			o.Logger.Info("element carries an unmapped generic flag bit", "index", i)
		}
		lvl.Elements = append(lvl.Elements, e)
	}

	return lvl, nil
}

// Encode serializes a Level back to its binary form.
func Encode(lvl *Level, opts ...option.LevelOption) ([]byte, error) {
	o := &option.LevelOptions{}
	for _, fn := range opts {
		fn(o)
	}
	if o.Logger == nil {
		o.Logger = logging.DefaultLogger()
	}

	bs := bitstream.NewWriter()
	bs.WriteUint32(lvl.Version)
	bs.WriteUint8(lvl.SyncFlag)
	bs.WriteUint32(uint32(len(lvl.Elements)))

	for _, e := range lvl.Elements {
		if err := writeElement(bs, lvl.Version, e); err != nil {
			return nil, err
		}
	}

	return bs.Buffer(), nil
}

// Clone deep-copies a Level: every Element, its GenericData and Payload, and
// any recursive Teleport/MovementLink children, are copied rather than
// aliased.
func (l *Level) Clone() *Level {
	if l == nil {
		return nil
	}
	out := &Level{Version: l.Version, SyncFlag: l.SyncFlag}
	out.Elements = make([]*Element, len(l.Elements))
	for i, e := range l.Elements {
		out.Elements[i] = e.clone()
	}
	return out
}
