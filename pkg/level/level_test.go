package level

import (
	"bytes"
	"testing"

	"github.com/bgrewell/peggle-kit/pkg/bitstream"
	"github.com/bgrewell/peggle-kit/pkg/consts"
)

func mustEncodeElement(t *testing.T, version uint32, e *Element) []byte {
	t.Helper()
	bs := bitstream.NewWriter()
	if err := writeElement(bs, version, e); err != nil {
		t.Fatalf("writeElement: %v", err)
	}
	return bs.Buffer()
}

// TestCircleScenarioS2 matches the documented Circle payload byte sequence.
func TestCircleScenarioS2(t *testing.T) {
	payload := &Circle{
		FlagsA: NewBits8(0x02),
		Pos:    Point{X: 100.0, Y: 200.0},
		Radius: 25.0,
	}

	bs := bitstream.NewWriter()
	if err := encodePayload(bs, consts.KindCircle, 0x50, payload); err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	got := bs.Buffer()
	want := []byte{0x02, 0x00, 0x00, 0xC8, 0x42, 0x00, 0x00, 0x48, 0x43, 0x00, 0x00, 0xC8, 0x41}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}

// TestPolygonEmitsPointCount covers S5: the point count must always be
// emitted even when no other optional field is present.
func TestPolygonEmitsPointCount(t *testing.T) {
	p := &Polygon{
		Points: []Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}},
	}
	bs := bitstream.NewWriter()
	writePolygon(bs, 0x24, p)
	got := bs.Buffer()
	// version 0x24 carries flags_a and flags_b ahead of the count.
	want := []byte{0x03, 0x00, 0x00, 0x00}
	if !bytes.Equal(got[2:6], want) {
		t.Fatalf("point count bytes = % X, want % X", got[2:6], want)
	}
}

func TestVariableFloatMarkerRoundTrip(t *testing.T) {
	v := VariableFloat{IsVariable: false, StaticValue: 1.5}
	bs := bitstream.NewWriter()
	writeVariableFloat(bs, v)
	encoded := bs.Buffer()
	if encoded[0] != 1 {
		t.Fatalf("expected marker byte 1 for a static value, got %d", encoded[0])
	}

	rs := bitstream.New(encoded)
	got, err := readVariableFloat(rs)
	if err != nil {
		t.Fatalf("readVariableFloat: %v", err)
	}
	if got != v {
		t.Fatalf("got %#v, want %#v", got, v)
	}
}

func TestRecursiveTeleport(t *testing.T) {
	inner := &Element{
		Magic: consts.ElementMagic,
		Kind:  consts.KindTeleport,
		Flags: NewGenericFlags(0),
		Payload: &Teleport{
			Flags:  NewBits8(0),
			Width:  10,
			Height: 20,
		},
	}
	outer := &Element{
		Magic: consts.ElementMagic,
		Kind:  consts.KindTeleport,
		Flags: NewGenericFlags(0),
		Payload: &Teleport{
			Flags:  NewBits8(1 << 4),
			Width:  30,
			Height: 40,
			Inner:  inner,
		},
	}

	data := mustEncodeElement(t, 0x50, outer)
	decoded, err := readElement(bitstream.New(data), 0x50)
	if err != nil {
		t.Fatalf("readElement: %v", err)
	}

	outerPayload, ok := decoded.Payload.(*Teleport)
	if !ok || outerPayload.Inner == nil {
		t.Fatalf("expected decoded outer teleport with an inner element, got %#v", decoded.Payload)
	}
	innerPayload, ok := outerPayload.Inner.Payload.(*Teleport)
	if !ok {
		t.Fatalf("expected inner payload to be a Teleport, got %#v", outerPayload.Inner.Payload)
	}
	if innerPayload.Inner != nil {
		t.Fatalf("inner teleport should have no further nesting")
	}

	reencoded := mustEncodeElement(t, 0x50, decoded)
	if !bytes.Equal(data, reencoded) {
		t.Fatalf("round trip mismatch:\n got % X\nwant % X", reencoded, data)
	}
}

func TestRecursiveMovementInfo(t *testing.T) {
	sub := &MovementLink{LinkID: 0}

	topFlags := NewMovementInfoFlags(1 << consts.BitHasSubMovement)
	top := &MovementLink{
		LinkID: 1,
		Inner: &MovementInfo{
			Shape:      3,
			Anchor:     Point{X: 1, Y: 2},
			TimePeriod: 100,
			Flags:      topFlags,
			SubOffsetX: 5,
			SubOffsetY: 6,
			Sub:        sub,
		},
	}

	bs := bitstream.NewWriter()
	writeMovementLink(bs, top)
	data := bs.Buffer()

	decoded, err := readMovementLink(bitstream.New(data))
	if err != nil {
		t.Fatalf("readMovementLink: %v", err)
	}
	if decoded.Inner == nil || decoded.Inner.Sub == nil {
		t.Fatalf("expected a decoded sub-link, got %#v", decoded)
	}
	if decoded.Inner.Sub.LinkID != 0 {
		t.Fatalf("expected terminating sub-link id 0, got %d", decoded.Inner.Sub.LinkID)
	}

	rs := bitstream.NewWriter()
	writeMovementLink(rs, decoded)
	if !bytes.Equal(data, rs.Buffer()) {
		t.Fatalf("round trip mismatch:\n got % X\nwant % X", rs.Buffer(), data)
	}
}

func TestVersion4GenericFlagsWidth(t *testing.T) {
	raw := []byte{
		0x01, 0x00, 0x00, 0x00, // magic
		byte(consts.KindRod), 0x00, 0x00, 0x00, // kind
		0xAA, 0xBB, 0xCC, // narrow flags
	}
	// Generic fields gated by those flags, all zero: bouncy, solid and
	// outline colour, image dx/dy, rotation, unk2 and max bounce velocity
	// (4 bytes each), sound (1 byte), and a movement link id of 0 (4 bytes).
	raw = append(raw, make([]byte, 37)...)
	raw = append(raw,
		0x00,       // rod flags byte (no optional fields)
		0, 0, 0, 0, // point a x
		0, 0, 0, 0, // point a y
		0, 0, 0, 0, // point b x
		0, 0, 0, 0, // point b y
	)
	e, err := readElement(bitstream.New(raw), 4)
	if err != nil {
		t.Fatalf("readElement: %v", err)
	}
	if e.Flags.Raw() != 0x00CCBBAA {
		t.Fatalf("flags = %#x, want %#x", e.Flags.Raw(), 0x00CCBBAA)
	}

	encoded := mustEncodeElement(t, 4, e)
	if !bytes.Equal(encoded[8:11], []byte{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("re-encoded flags bytes = % X, want AA BB CC", encoded[8:11])
	}
}
