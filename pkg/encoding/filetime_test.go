package encoding

import (
	"testing"
	"time"
)

func TestFileTimeRoundTrip(t *testing.T) {
	want := time.Date(2004, time.October, 26, 12, 0, 0, 0, time.UTC)
	ft, err := FromTime(want)
	if err != nil {
		t.Fatalf("FromTime: %v", err)
	}
	got := ft.Time()
	if !got.Equal(want) {
		t.Errorf("round trip mismatch: got %s, want %s", got, want)
	}
}

func TestEncodeFileTimeBeforeEpoch(t *testing.T) {
	before := time.Date(1500, time.January, 1, 0, 0, 0, 0, time.UTC)
	if _, err := EncodeFileTime(before); err == nil {
		t.Error("expected error encoding a time before the FILETIME epoch")
	}
}

func TestDecodeFileTimeZero(t *testing.T) {
	got := DecodeFileTime(0)
	want := time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DecodeFileTime(0) = %s, want %s", got, want)
	}
}
