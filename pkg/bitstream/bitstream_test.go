package bitstream

import "testing"

func TestReadWriteRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(0xDEADBEEF)
	w.WriteString("hello")
	w.WriteFloat32(3.5)
	w.WriteInt8(-12)

	r := New(w.Buffer())
	v, err := r.ReadUint32()
	if err != nil || v != 0xDEADBEEF {
		t.Fatalf("ReadUint32 = %x, %v", v, err)
	}
	s, err := r.ReadString()
	if err != nil || s != "hello" {
		t.Fatalf("ReadString = %q, %v", s, err)
	}
	f, err := r.ReadFloat32()
	if err != nil || f != 3.5 {
		t.Fatalf("ReadFloat32 = %v, %v", f, err)
	}
	i, err := r.ReadInt8()
	if err != nil || i != -12 {
		t.Fatalf("ReadInt8 = %d, %v", i, err)
	}
}

func TestEmptyStringWritesNoBytes(t *testing.T) {
	w := NewWriter()
	w.WriteString("")
	if w.Size() != 2 {
		t.Fatalf("expected only the 2-byte length prefix, got %d bytes", w.Size())
	}
}

func TestSeekOutOfRange(t *testing.T) {
	b := New([]byte{1, 2, 3})
	if err := b.Seek(10); err == nil {
		t.Error("expected seek past end to fail")
	}
	if err := b.Seek(-1); err == nil {
		t.Error("expected negative seek to fail")
	}
}

func TestReadPastEnd(t *testing.T) {
	b := New([]byte{1, 2})
	if _, err := b.ReadUint32(); err == nil {
		t.Error("expected read past end to fail")
	}
}

func TestXorKeyPerStream(t *testing.T) {
	a := NewWriter()
	a.SetXorKey(0xF7)
	a.WriteUint8(0x10)

	b := NewWriter()
	b.WriteUint8(0x10)

	if a.Buffer()[0] == b.Buffer()[0] {
		t.Error("expected differently-keyed streams to encode differently")
	}

	ra := New(a.Buffer())
	ra.SetXorKey(0xF7)
	v, err := ra.ReadUint8()
	if err != nil || v != 0x10 {
		t.Fatalf("XOR round trip failed: %v, %v", v, err)
	}
}

func TestTransform(t *testing.T) {
	b := New([]byte{0x01, 0x02, 0x03})
	b.Transform(func(c byte) byte { return c ^ 0xFF })
	want := []byte{0xFE, 0xFD, 0xFC}
	for i, c := range b.Buffer() {
		if c != want[i] {
			t.Fatalf("Transform byte %d = %x, want %x", i, c, want[i])
		}
	}
}
