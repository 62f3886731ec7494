package level

import (
	"errors"
	"testing"

	"github.com/bgrewell/peggle-kit/pkg/bitstream"
	"github.com/bgrewell/peggle-kit/pkg/consts"
)

func TestDecodePayloadUnknownKind(t *testing.T) {
	_, err := decodePayload(bitstream.New(nil), consts.KindUnknown, 0x50)
	if !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestEncodePayloadMismatchedKind(t *testing.T) {
	bs := bitstream.NewWriter()
	err := encodePayload(bs, consts.KindRod, 0x50, &Circle{})
	if !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}
