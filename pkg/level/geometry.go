package level

import "github.com/bgrewell/peggle-kit/pkg/bitstream"

// Point is a 2D float coordinate, the format's universal position type.
type Point struct {
	X, Y float32
}

func readPoint(bs *bitstream.BitStream) (Point, error) {
	x, err := bs.ReadFloat32()
	if err != nil {
		return Point{}, err
	}
	y, err := bs.ReadFloat32()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func writePoint(bs *bitstream.BitStream, p Point) {
	bs.WriteFloat32(p.X)
	bs.WriteFloat32(p.Y)
}

// VariableFloat is either a literal float or the name of a runtime variable
// supplying it. The on-disk marker byte is inverted relative to a naive
// is_variable boolean — this is the documented fix for the source's
// historical marker bug, applied here on every write.
type VariableFloat struct {
	IsVariable    bool
	StaticValue   float32
	VariableName  string
}

func readVariableFloat(bs *bitstream.BitStream) (VariableFloat, error) {
	marker, err := bs.ReadInt8()
	if err != nil {
		return VariableFloat{}, err
	}
	if marker > 0 {
		v, err := bs.ReadFloat32()
		if err != nil {
			return VariableFloat{}, err
		}
		return VariableFloat{IsVariable: false, StaticValue: v}, nil
	}
	name, err := bs.ReadString()
	if err != nil {
		return VariableFloat{}, err
	}
	return VariableFloat{IsVariable: true, VariableName: name}, nil
}

func writeVariableFloat(bs *bitstream.BitStream, v VariableFloat) {
	var marker int8
	if !v.IsVariable {
		marker = 1
	}
	bs.WriteInt8(marker)
	if v.IsVariable {
		bs.WriteString(v.VariableName)
	} else {
		bs.WriteFloat32(v.StaticValue)
	}
}

// ColorARGB is a packed 32-bit ARGB color.
type ColorARGB uint32
