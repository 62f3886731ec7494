package validation

import (
	"github.com/bgrewell/peggle-kit/pkg/consts"
)

// ValidEntryName reports whether name is short enough to be stored as an
// archive entry path: the on-disk header carries its length in a single byte.
func ValidEntryName(name string) bool {
	return len(name) > 0 && len(name) <= consts.PakMaxNameLength
}

// ValidKind reports whether kind is one of the known level element kinds.
func ValidKind(kind consts.LevelEntryType) bool {
	switch kind {
	case consts.KindRod, consts.KindPolygon, consts.KindCircle, consts.KindBrick,
		consts.KindTeleport, consts.KindEmitter:
		return true
	default:
		return false
	}
}
