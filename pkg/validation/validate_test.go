package validation

import (
	"strings"
	"testing"

	"github.com/bgrewell/peggle-kit/pkg/consts"
)

func TestValidEntryName(t *testing.T) {
	if !ValidEntryName("levels\\level01.dat") {
		t.Error("expected a short relative path to be valid")
	}
	if ValidEntryName("") {
		t.Error("expected an empty name to be invalid")
	}
	if ValidEntryName(strings.Repeat("x", 256)) {
		t.Error("expected a 256-byte name to be invalid")
	}
	if !ValidEntryName(strings.Repeat("x", 255)) {
		t.Error("expected a 255-byte name to be valid")
	}
}

func TestValidKind(t *testing.T) {
	for _, k := range []consts.LevelEntryType{consts.KindRod, consts.KindPolygon, consts.KindCircle, consts.KindBrick, consts.KindTeleport, consts.KindEmitter} {
		if !ValidKind(k) {
			t.Errorf("expected kind %d to be valid", k)
		}
	}
	if ValidKind(consts.KindUnknown) {
		t.Error("expected KindUnknown to be invalid")
	}
	if ValidKind(consts.LevelEntryType(99)) {
		t.Error("expected an unrecognized kind to be invalid")
	}
}
