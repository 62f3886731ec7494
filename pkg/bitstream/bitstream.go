// Package bitstream implements a small little-endian cursor buffer used by
// pkg/pak and pkg/level to decode and encode the game's binary formats.
package bitstream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrEndOfStream is returned when a read or peek would run past the end of
// the buffer.
var ErrEndOfStream = errors.New("bitstream: end of stream")

// ErrSeekOutOfRange is returned when Seek is given a position outside [0, Size()].
var ErrSeekOutOfRange = errors.New("bitstream: seek out of range")

// BitStream is a growable byte buffer with a read/write cursor. XOR state
// lives here, per instance, never as a package-level global: two BitStreams
// decoding two archives concurrently never interfere with each other.
type BitStream struct {
	buf    []byte
	cursor int
	xorKey byte
}

// New wraps an existing byte slice for reading. The slice is not copied;
// callers that need an independent buffer should clone it first.
func New(data []byte) *BitStream {
	return &BitStream{buf: data}
}

// NewWriter returns an empty BitStream ready for writing.
func NewWriter() *BitStream {
	return &BitStream{buf: make([]byte, 0, 256)}
}

// SetXorKey sets the byte XORed into every subsequent raw read/write. It does
// not retroactively affect bytes already in the buffer.
func (b *BitStream) SetXorKey(key byte) {
	b.xorKey = key
}

// XorKey returns the stream's current XOR key.
func (b *BitStream) XorKey() byte {
	return b.xorKey
}

// Buffer returns the stream's underlying bytes.
func (b *BitStream) Buffer() []byte {
	return b.buf
}

// Size returns the total number of bytes in the stream.
func (b *BitStream) Size() int {
	return len(b.buf)
}

// Tell returns the current cursor position.
func (b *BitStream) Tell() int {
	return b.cursor
}

// Seek moves the cursor to an absolute position.
func (b *BitStream) Seek(pos int) error {
	if pos < 0 || pos > len(b.buf) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrSeekOutOfRange, pos, len(b.buf))
	}
	b.cursor = pos
	return nil
}

// Skip advances the cursor by n bytes without reading them.
func (b *BitStream) Skip(n int) error {
	return b.Seek(b.cursor + n)
}

// peekRange validates and returns the byte range [cursor, cursor+n) without
// advancing the cursor.
func (b *BitStream) peekRange(n int) ([]byte, error) {
	if n < 0 || b.cursor+n > len(b.buf) {
		return nil, fmt.Errorf("%w: need %d bytes at %d, have %d", ErrEndOfStream, n, b.cursor, len(b.buf))
	}
	return b.buf[b.cursor : b.cursor+n], nil
}

// ReadBytes reads and returns a defensive copy of n raw bytes, XOR-decoding
// each one, and advances the cursor.
func (b *BitStream) ReadBytes(n int) ([]byte, error) {
	raw, err := b.peekRange(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	for i, c := range raw {
		out[i] = c ^ b.xorKey
	}
	b.cursor += n
	return out, nil
}

// PeekBytes is like ReadBytes but does not advance the cursor.
func (b *BitStream) PeekBytes(n int) ([]byte, error) {
	raw, err := b.peekRange(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	for i, c := range raw {
		out[i] = c ^ b.xorKey
	}
	return out, nil
}

// WriteBytes XOR-encodes and appends raw bytes, overwriting in place if the
// cursor is positioned before the end of the buffer.
func (b *BitStream) WriteBytes(data []byte) {
	enc := make([]byte, len(data))
	for i, c := range data {
		enc[i] = c ^ b.xorKey
	}
	end := b.cursor + len(enc)
	if end > len(b.buf) {
		grown := make([]byte, end)
		copy(grown, b.buf)
		b.buf = grown
	}
	copy(b.buf[b.cursor:end], enc)
	b.cursor = end
}

// Transform applies fn to every byte currently in the buffer, in place, so a
// caller can apply or remove a whole-buffer XOR mask in one pass rather than
// per read/write call.
func (b *BitStream) Transform(fn func(byte) byte) {
	for i, c := range b.buf {
		b.buf[i] = fn(c)
	}
}

// --- fixed-width numeric helpers -------------------------------------------------

func (b *BitStream) ReadUint8() (uint8, error) {
	d, err := b.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return d[0], nil
}

func (b *BitStream) ReadInt8() (int8, error) {
	v, err := b.ReadUint8()
	return int8(v), err
}

func (b *BitStream) ReadUint16() (uint16, error) {
	d, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(d), nil
}

func (b *BitStream) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()
	return int16(v), err
}

func (b *BitStream) ReadUint32() (uint32, error) {
	d, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(d), nil
}

func (b *BitStream) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err
}

func (b *BitStream) ReadUint64() (uint64, error) {
	d, err := b.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(d), nil
}

func (b *BitStream) ReadFloat32() (float32, error) {
	v, err := b.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (b *BitStream) WriteUint8(v uint8) {
	b.WriteBytes([]byte{v})
}

func (b *BitStream) WriteInt8(v int8) {
	b.WriteUint8(uint8(v))
}

func (b *BitStream) WriteUint16(v uint16) {
	d := make([]byte, 2)
	binary.LittleEndian.PutUint16(d, v)
	b.WriteBytes(d)
}

func (b *BitStream) WriteInt16(v int16) {
	b.WriteUint16(uint16(v))
}

func (b *BitStream) WriteUint32(v uint32) {
	d := make([]byte, 4)
	binary.LittleEndian.PutUint32(d, v)
	b.WriteBytes(d)
}

func (b *BitStream) WriteInt32(v int32) {
	b.WriteUint32(uint32(v))
}

func (b *BitStream) WriteUint64(v uint64) {
	d := make([]byte, 8)
	binary.LittleEndian.PutUint64(d, v)
	b.WriteBytes(d)
}

func (b *BitStream) WriteFloat32(v float32) {
	b.WriteUint32(math.Float32bits(v))
}

// ReadString reads a length-prefixed string: an int16 byte count followed by
// that many raw bytes. A zero length reads no further bytes at all.
func (b *BitStream) ReadString() (string, error) {
	n, err := b.ReadInt16()
	if err != nil {
		return "", err
	}
	if n <= 0 {
		return "", nil
	}
	data, err := b.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteString writes an int16 byte-count prefix followed by the string's
// bytes. An empty string writes only the zero length prefix.
func (b *BitStream) WriteString(s string) {
	b.WriteInt16(int16(len(s)))
	if len(s) > 0 {
		b.WriteBytes([]byte(s))
	}
}
