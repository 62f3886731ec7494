package level

import "github.com/bgrewell/peggle-kit/pkg/consts"

// Bits8 is a named-access wrapper over a single flag byte. Replaces the
// source's host-endian bitfield union with an explicit bit-test/bit-set
// pair; nothing is ever memcpy'd to or from this type.
type Bits8 struct {
	raw uint8
}

func NewBits8(raw uint8) Bits8 { return Bits8{raw: raw} }

func (b Bits8) Raw() uint8 { return b.raw }

func (b Bits8) V(n int) bool { return b.raw&(1<<uint(n)) != 0 }

func (b *Bits8) SetV(n int, v bool) {
	if v {
		b.raw |= 1 << uint(n)
	} else {
		b.raw &^= 1 << uint(n)
	}
}

// Bits16 is the 16-bit counterpart of Bits8.
type Bits16 struct {
	raw uint16
}

func NewBits16(raw uint16) Bits16 { return Bits16{raw: raw} }

func (b Bits16) Raw() uint16 { return b.raw }

func (b Bits16) V(n int) bool { return b.raw&(1<<uint(n)) != 0 }

func (b *Bits16) SetV(n int, v bool) {
	if v {
		b.raw |= 1 << uint(n)
	} else {
		b.raw &^= 1 << uint(n)
	}
}

// GenericFlags is the per-Element presence bitset gating GenericData's
// optional fields. It holds all 31 bits the format defines, including the
// ones that carry no payload, so a round trip never silently drops a flag.
type GenericFlags struct {
	raw uint32
}

func NewGenericFlags(raw uint32) GenericFlags { return GenericFlags{raw: raw} }

func (f GenericFlags) Raw() uint32 { return f.raw }

func (f GenericFlags) bit(n int) bool { return f.raw&(1<<uint(n)) != 0 }

func (f *GenericFlags) setBit(n int, v bool) {
	if v {
		f.raw |= 1 << uint(n)
	} else {
		f.raw &^= 1 << uint(n)
	}
}

func (f GenericFlags) IsRolly() bool              { return f.bit(consts.BitIsRolly) }
func (f GenericFlags) IsBouncy() bool             { return f.bit(consts.BitIsBouncy) }
func (f GenericFlags) HasPegInfo() bool           { return f.bit(consts.BitHasPegInfo) }
func (f GenericFlags) HasMovementInfo() bool      { return f.bit(consts.BitHasMovementInfo) }
func (f GenericFlags) HasUnk0() bool              { return f.bit(consts.BitUnk0) }
func (f GenericFlags) HasCollision() bool         { return f.bit(consts.BitHasCollision) }
func (f GenericFlags) IsVisible() bool            { return f.bit(consts.BitIsVisible) }
func (f GenericFlags) CanMove() bool              { return f.bit(consts.BitCanMove) }
func (f GenericFlags) HasSolidColor() bool        { return f.bit(consts.BitHasSolidColor) }
func (f GenericFlags) HasOutlineColor() bool      { return f.bit(consts.BitHasOutlineColor) }
func (f GenericFlags) HasImage() bool             { return f.bit(consts.BitHasImage) }
func (f GenericFlags) HasImageDX() bool           { return f.bit(consts.BitHasImageDX) }
func (f GenericFlags) HasImageDY() bool           { return f.bit(consts.BitHasImageDY) }
func (f GenericFlags) HasRotation() bool          { return f.bit(consts.BitHasRotation) }
func (f GenericFlags) HasBackground() bool        { return f.bit(consts.BitHasBackground) }
func (f GenericFlags) HasBaseObject() bool        { return f.bit(consts.BitHasBaseObject) }
func (f GenericFlags) HasUnk1() bool              { return f.bit(consts.BitUnk1) }
func (f GenericFlags) HasID() bool                { return f.bit(consts.BitHasID) }
func (f GenericFlags) HasUnk2() bool              { return f.bit(consts.BitUnk2) }
func (f GenericFlags) HasSound() bool             { return f.bit(consts.BitHasSound) }
func (f GenericFlags) HasBallStopReset() bool     { return f.bit(consts.BitHasBallStopReset) }
func (f GenericFlags) HasLogic() bool             { return f.bit(consts.BitHasLogic) }
func (f GenericFlags) HasForeground() bool        { return f.bit(consts.BitHasForeground) }
func (f GenericFlags) HasMaxBounceVelocity() bool { return f.bit(consts.BitHasMaxBounceVelocity) }
func (f GenericFlags) HasDrawSort() bool          { return f.bit(consts.BitHasDrawSort) }
func (f GenericFlags) HasForeground2() bool       { return f.bit(consts.BitHasForeground2) }
func (f GenericFlags) HasSubID() bool             { return f.bit(consts.BitHasSubID) }
func (f GenericFlags) HasFlipperFlags() bool      { return f.bit(consts.BitHasFlipperFlags) }
func (f GenericFlags) HasDrawFloat() bool         { return f.bit(consts.BitHasDrawFloat) }
func (f GenericFlags) HasUnk3() bool              { return f.bit(consts.BitUnk3) }
func (f GenericFlags) HasShadow() bool            { return f.bit(consts.BitHasShadow) }

func (f *GenericFlags) SetIsRolly(v bool)              { f.setBit(consts.BitIsRolly, v) }
func (f *GenericFlags) SetIsBouncy(v bool)             { f.setBit(consts.BitIsBouncy, v) }
func (f *GenericFlags) SetHasPegInfo(v bool)           { f.setBit(consts.BitHasPegInfo, v) }
func (f *GenericFlags) SetHasMovementInfo(v bool)      { f.setBit(consts.BitHasMovementInfo, v) }
func (f *GenericFlags) SetHasSound(v bool)             { f.setBit(consts.BitHasSound, v) }
func (f *GenericFlags) SetHasShadow(v bool)            { f.setBit(consts.BitHasShadow, v) }

// MovementInfoFlags names the bits gating MovementInfo's optional fields.
type MovementInfoFlags struct {
	Bits16
}

func NewMovementInfoFlags(raw uint16) MovementInfoFlags {
	return MovementInfoFlags{Bits16: NewBits16(raw)}
}

func (f MovementInfoFlags) HasOffset() bool           { return f.V(consts.BitHasOffset) }
func (f MovementInfoFlags) HasRadius1() bool          { return f.V(consts.BitHasRadius1) }
func (f MovementInfoFlags) HasStartPhase() bool       { return f.V(consts.BitHasStartPhase) }
func (f MovementInfoFlags) HasMovementRotation() bool { return f.V(consts.BitHasMovementRotation) }
func (f MovementInfoFlags) HasRadius2() bool          { return f.V(consts.BitHasRadius2) }
func (f MovementInfoFlags) HasPause1() bool           { return f.V(consts.BitHasPause1) }
func (f MovementInfoFlags) HasPause2() bool           { return f.V(consts.BitHasPause2) }
func (f MovementInfoFlags) HasPhase1() bool           { return f.V(consts.BitHasPhase1) }
func (f MovementInfoFlags) HasPhase2() bool           { return f.V(consts.BitHasPhase2) }
func (f MovementInfoFlags) HasPostDelayPhase() bool   { return f.V(consts.BitHasPostDelayPhase) }
func (f MovementInfoFlags) HasMaxAngle() bool         { return f.V(consts.BitHasMaxAngle) }
func (f MovementInfoFlags) HasUnknown8() bool         { return f.V(consts.BitHasUnknown8) }
func (f MovementInfoFlags) HasSubMovement() bool      { return f.V(consts.BitHasSubMovement) }
func (f MovementInfoFlags) HasObject() bool           { return f.V(consts.BitHasObject) }
func (f MovementInfoFlags) HasRotation() bool         { return f.V(consts.BitHasMovementRotation2) }

// EmitterFlags names the bits gating Emitter's optional sub-blocks.
type EmitterFlags struct {
	Bits16
}

func NewEmitterFlags(raw uint16) EmitterFlags {
	return EmitterFlags{Bits16: NewBits16(raw)}
}

func (f EmitterFlags) HasTransparency() bool   { return f.V(consts.BitEmitterHasTransparency) }
func (f EmitterFlags) HasRandomStartPos() bool { return f.V(consts.BitEmitterRandomStartPos) }
func (f EmitterFlags) HasPosition() bool       { return f.V(consts.BitEmitterHasPosition) }
func (f EmitterFlags) HasChangeUnknown() bool  { return f.V(consts.BitEmitterHasChangeUnknown) }
func (f EmitterFlags) HasChangeScale() bool    { return f.V(consts.BitEmitterHasChangeScale) }
func (f EmitterFlags) HasChangeColor() bool    { return f.V(consts.BitEmitterHasChangeColor) }
func (f EmitterFlags) HasChangeOpacity() bool  { return f.V(consts.BitEmitterHasChangeOpacity) }
func (f EmitterFlags) HasChangeVelocity() bool { return f.V(consts.BitEmitterHasChangeVelocity) }
func (f EmitterFlags) HasChangeDirection() bool {
	return f.V(consts.BitEmitterHasChangeDirection)
}
func (f EmitterFlags) HasChangeRotation() bool { return f.V(consts.BitEmitterHasChangeRotation) }
func (f EmitterFlags) HasUnk5() bool           { return f.V(consts.BitEmitterUnk5) }

// PegInfoFlags names the bits inside PegInfo's single flag byte.
type PegInfoFlags struct {
	Bits8
}

func NewPegInfoFlags(raw uint8) PegInfoFlags { return PegInfoFlags{Bits8: NewBits8(raw)} }

func (f PegInfoFlags) Variable() bool { return f.V(consts.BitPegVariable) }
func (f PegInfoFlags) Crumble() bool  { return f.V(consts.BitPegCrumble) }

func (f *PegInfoFlags) SetVariable(v bool) { f.SetV(consts.BitPegVariable, v) }
func (f *PegInfoFlags) SetCrumble(v bool)  { f.SetV(consts.BitPegCrumble, v) }
