package level

import (
	"testing"

	"github.com/bgrewell/peggle-kit/pkg/consts"
)

func TestLevelCloneDeepCopiesRecursiveChildren(t *testing.T) {
	inner := &Element{
		Magic:   consts.ElementMagic,
		Kind:    consts.KindTeleport,
		Payload: &Teleport{Width: 1, Height: 2},
	}
	outer := &Element{
		Magic: consts.ElementMagic,
		Kind:  consts.KindTeleport,
		Payload: &Teleport{
			Flags: NewBits8(1 << 4),
			Inner: inner,
		},
	}
	lvl := &Level{Version: 0x50, Elements: []*Element{outer}}

	clone := lvl.Clone()

	clonedTeleport := clone.Elements[0].Payload.(*Teleport)
	originalTeleport := lvl.Elements[0].Payload.(*Teleport)
	if clonedTeleport == originalTeleport {
		t.Fatalf("expected a distinct Teleport payload, got the same pointer")
	}
	if clonedTeleport.Inner == originalTeleport.Inner {
		t.Fatalf("expected a distinct inner Element, got the same pointer")
	}

	clonedTeleport.Inner.Payload.(*Teleport).Width = 999
	if originalTeleport.Inner.Payload.(*Teleport).Width == 999 {
		t.Fatalf("mutating the clone's inner element affected the original")
	}
}

func TestMovementLinkCloneIsIndependent(t *testing.T) {
	sub := &MovementLink{LinkID: 0}
	top := &MovementLink{LinkID: 1, Inner: &MovementInfo{Shape: 1, Sub: sub}}

	clone := top.clone()
	clone.Inner.Sub.LinkID = 42
	if top.Inner.Sub.LinkID == 42 {
		t.Fatalf("mutating the clone affected the original sub-link")
	}
}
