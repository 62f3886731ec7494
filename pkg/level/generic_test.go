package level

import (
	"bytes"
	"testing"

	"github.com/bgrewell/peggle-kit/pkg/bitstream"
	"github.com/bgrewell/peggle-kit/pkg/consts"
)

// TestGenericDataPreservesZeroValuedPresentFields ensures a present field
// that happens to decode to its zero value is not mistaken for absent on
// re-encode: flag-gated presence, never value-gated.
func TestGenericDataPreservesZeroValuedPresentFields(t *testing.T) {
	var flags GenericFlags
	flags.SetIsRolly(false)
	flags.setBit(consts.BitUnk0, true)
	flags.setBit(consts.BitHasSound, true)

	g := GenericData{Unk0: 0, Sound: 0}

	bs := bitstream.NewWriter()
	writeGeneric(bs, flags, g)
	encoded := bs.Buffer()

	decoded, err := readGeneric(bitstream.New(encoded), flags)
	if err != nil {
		t.Fatalf("readGeneric: %v", err)
	}
	if decoded.Unk0 != 0 || decoded.Sound != 0 {
		t.Fatalf("expected zero-valued present fields preserved, got %#v", decoded)
	}

	rs := bitstream.NewWriter()
	writeGeneric(rs, flags, decoded)
	if !bytes.Equal(encoded, rs.Buffer()) {
		t.Fatalf("round trip mismatch:\n got % X\nwant % X", rs.Buffer(), encoded)
	}
}

func TestPegInfoUnk0PresentAtZeroRoundTrips(t *testing.T) {
	p := PegInfo{
		Type:    1,
		Variable: true,
		Crumble: false,
	}
	p.Flags.SetV(consts.BitPegUnk0, true)

	bs := bitstream.NewWriter()
	writePegInfo(bs, p)
	encoded := bs.Buffer()

	decoded, err := readPegInfo(bitstream.New(encoded))
	if err != nil {
		t.Fatalf("readPegInfo: %v", err)
	}
	if !decoded.Flags.V(consts.BitPegUnk0) {
		t.Fatalf("expected unk0 presence bit preserved, flags=%#v", decoded.Flags)
	}
	if decoded.Unk0 != 0 {
		t.Fatalf("expected Unk0 == 0, got %d", decoded.Unk0)
	}

	rs := bitstream.NewWriter()
	writePegInfo(rs, decoded)
	if !bytes.Equal(encoded, rs.Buffer()) {
		t.Fatalf("round trip mismatch:\n got % X\nwant % X", rs.Buffer(), encoded)
	}
}
