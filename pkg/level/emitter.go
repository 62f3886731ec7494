package level

import "github.com/bgrewell/peggle-kit/pkg/bitstream"

// Emitter is the kind=9 payload, the largest of the six: an emitter's flags
// select up to eleven optional sub-blocks, and a main-variant discriminator
// of 2 introduces an additional header segment ahead of the common tail.
type Emitter struct {
	MainVar int32
	Flags   EmitterFlags
	Image   string
	Width   int32
	Height  int32

	// Present only when MainVar == 2.
	MainVar0 int32
	MainVar1 float32
	MainVar2 string
	MainVar3 uint8
	Unknown0 VariableFloat
	Unknown1 VariableFloat

	Pos Point

	EmitImage         string
	UnknownEmitRate   float32
	Unknown2          float32
	Rotation          float32
	MaxQuantity       int32
	TimeBeforeFadeOut float32
	FadeInTime        float32
	LifeDuration      float32

	EmitRate           VariableFloat
	EmitAreaMultiplier VariableFloat

	InitialRotation  VariableFloat
	RotationVelocity VariableFloat
	RotationUnknown  float32

	MinScale      VariableFloat
	ScaleVelocity VariableFloat
	MaxRandScale  float32

	ColourRed   VariableFloat
	ColourGreen VariableFloat
	ColourBlue  VariableFloat

	Opacity VariableFloat

	MinVelocityX  VariableFloat
	MinVelocityY  VariableFloat
	MaxVelocityX  float32
	MaxVelocityY  float32
	AccelerationX float32
	AccelerationY float32

	DirectionSpeed        float32
	DirectionRandomSpeed  float32
	DirectionAcceleration float32
	DirectionAngle        float32
	DirectionRandomAngle  float32

	UnknownA float32
	UnknownB float32
}

func (Emitter) isPayload() {}

func readEmitter(bs *bitstream.BitStream) (*Emitter, error) {
	var err error
	e := &Emitter{}

	if e.MainVar, err = bs.ReadInt32(); err != nil {
		return nil, err
	}

	rawFlags, err := bs.ReadUint16()
	if err != nil {
		return nil, err
	}
	e.Flags = NewEmitterFlags(rawFlags)

	if e.Image, err = bs.ReadString(); err != nil {
		return nil, err
	}
	if e.Width, err = bs.ReadInt32(); err != nil {
		return nil, err
	}
	if e.Height, err = bs.ReadInt32(); err != nil {
		return nil, err
	}

	if e.MainVar == 2 {
		if e.MainVar0, err = bs.ReadInt32(); err != nil {
			return nil, err
		}
		if e.MainVar1, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
		if e.MainVar2, err = bs.ReadString(); err != nil {
			return nil, err
		}
		if e.MainVar3, err = bs.ReadUint8(); err != nil {
			return nil, err
		}
		if e.Flags.HasUnk5() {
			if e.Unknown0, err = readVariableFloat(bs); err != nil {
				return nil, err
			}
			if e.Unknown1, err = readVariableFloat(bs); err != nil {
				return nil, err
			}
		}
	}

	if e.Flags.HasPosition() {
		if e.Pos, err = readPoint(bs); err != nil {
			return nil, err
		}
	}

	if e.EmitImage, err = bs.ReadString(); err != nil {
		return nil, err
	}
	if e.UnknownEmitRate, err = bs.ReadFloat32(); err != nil {
		return nil, err
	}
	if e.Unknown2, err = bs.ReadFloat32(); err != nil {
		return nil, err
	}
	if e.Rotation, err = bs.ReadFloat32(); err != nil {
		return nil, err
	}
	if e.MaxQuantity, err = bs.ReadInt32(); err != nil {
		return nil, err
	}

	if e.TimeBeforeFadeOut, err = bs.ReadFloat32(); err != nil {
		return nil, err
	}
	if e.FadeInTime, err = bs.ReadFloat32(); err != nil {
		return nil, err
	}
	if e.LifeDuration, err = bs.ReadFloat32(); err != nil {
		return nil, err
	}

	if e.EmitRate, err = readVariableFloat(bs); err != nil {
		return nil, err
	}
	if e.EmitAreaMultiplier, err = readVariableFloat(bs); err != nil {
		return nil, err
	}

	if e.Flags.HasChangeRotation() {
		if e.InitialRotation, err = readVariableFloat(bs); err != nil {
			return nil, err
		}
		if e.RotationVelocity, err = readVariableFloat(bs); err != nil {
			return nil, err
		}
		if e.RotationUnknown, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}

	if e.Flags.HasChangeScale() {
		if e.MinScale, err = readVariableFloat(bs); err != nil {
			return nil, err
		}
		if e.ScaleVelocity, err = readVariableFloat(bs); err != nil {
			return nil, err
		}
		if e.MaxRandScale, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}

	if e.Flags.HasChangeColor() {
		if e.ColourRed, err = readVariableFloat(bs); err != nil {
			return nil, err
		}
		if e.ColourGreen, err = readVariableFloat(bs); err != nil {
			return nil, err
		}
		if e.ColourBlue, err = readVariableFloat(bs); err != nil {
			return nil, err
		}
	}

	if e.Flags.HasChangeOpacity() {
		if e.Opacity, err = readVariableFloat(bs); err != nil {
			return nil, err
		}
	}

	if e.Flags.HasChangeVelocity() {
		if e.MinVelocityX, err = readVariableFloat(bs); err != nil {
			return nil, err
		}
		if e.MinVelocityY, err = readVariableFloat(bs); err != nil {
			return nil, err
		}
		if e.MaxVelocityX, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
		if e.MaxVelocityY, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
		if e.AccelerationX, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
		if e.AccelerationY, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}

	if e.Flags.HasChangeDirection() {
		if e.DirectionSpeed, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
		if e.DirectionRandomSpeed, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
		if e.DirectionAcceleration, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
		if e.DirectionAngle, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
		if e.DirectionRandomAngle, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}

	if e.Flags.HasChangeUnknown() {
		if e.UnknownA, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
		if e.UnknownB, err = bs.ReadFloat32(); err != nil {
			return nil, err
		}
	}

	return e, nil
}

func writeEmitter(bs *bitstream.BitStream, e *Emitter) {
	bs.WriteInt32(e.MainVar)
	bs.WriteUint16(e.Flags.Raw())
	bs.WriteString(e.Image)
	bs.WriteInt32(e.Width)
	bs.WriteInt32(e.Height)

	if e.MainVar == 2 {
		bs.WriteInt32(e.MainVar0)
		bs.WriteFloat32(e.MainVar1)
		bs.WriteString(e.MainVar2)
		bs.WriteUint8(e.MainVar3)
		if e.Flags.HasUnk5() {
			writeVariableFloat(bs, e.Unknown0)
			writeVariableFloat(bs, e.Unknown1)
		}
	}

	if e.Flags.HasPosition() {
		writePoint(bs, e.Pos)
	}

	bs.WriteString(e.EmitImage)
	bs.WriteFloat32(e.UnknownEmitRate)
	bs.WriteFloat32(e.Unknown2)
	bs.WriteFloat32(e.Rotation)
	bs.WriteInt32(e.MaxQuantity)

	bs.WriteFloat32(e.TimeBeforeFadeOut)
	bs.WriteFloat32(e.FadeInTime)
	bs.WriteFloat32(e.LifeDuration)

	writeVariableFloat(bs, e.EmitRate)
	writeVariableFloat(bs, e.EmitAreaMultiplier)

	if e.Flags.HasChangeRotation() {
		writeVariableFloat(bs, e.InitialRotation)
		writeVariableFloat(bs, e.RotationVelocity)
		bs.WriteFloat32(e.RotationUnknown)
	}

	if e.Flags.HasChangeScale() {
		writeVariableFloat(bs, e.MinScale)
		writeVariableFloat(bs, e.ScaleVelocity)
		bs.WriteFloat32(e.MaxRandScale)
	}

	if e.Flags.HasChangeColor() {
		writeVariableFloat(bs, e.ColourRed)
		writeVariableFloat(bs, e.ColourGreen)
		writeVariableFloat(bs, e.ColourBlue)
	}

	if e.Flags.HasChangeOpacity() {
		writeVariableFloat(bs, e.Opacity)
	}

	if e.Flags.HasChangeVelocity() {
		writeVariableFloat(bs, e.MinVelocityX)
		writeVariableFloat(bs, e.MinVelocityY)
		bs.WriteFloat32(e.MaxVelocityX)
		bs.WriteFloat32(e.MaxVelocityY)
		bs.WriteFloat32(e.AccelerationX)
		bs.WriteFloat32(e.AccelerationY)
	}

	if e.Flags.HasChangeDirection() {
		bs.WriteFloat32(e.DirectionSpeed)
		bs.WriteFloat32(e.DirectionRandomSpeed)
		bs.WriteFloat32(e.DirectionAcceleration)
		bs.WriteFloat32(e.DirectionAngle)
		bs.WriteFloat32(e.DirectionRandomAngle)
	}

	if e.Flags.HasChangeUnknown() {
		bs.WriteFloat32(e.UnknownA)
		bs.WriteFloat32(e.UnknownB)
	}
}

func (e *Emitter) clone() *Emitter {
	if e == nil {
		return nil
	}
	out := *e
	return &out
}
