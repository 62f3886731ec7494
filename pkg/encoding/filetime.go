// Package encoding holds small, self-contained binary conversion helpers
// shared by pkg/pak and pkg/level.
package encoding

import (
	"fmt"
	"time"

	"github.com/bgrewell/peggle-kit/pkg/consts"
)

// FileTime is a Windows FILETIME value: the number of 100-nanosecond
// intervals since 1601-01-01 00:00:00 UTC. Pak entry modification times are
// stored on disk in this form.
type FileTime uint64

// DecodeFileTime converts a raw FILETIME tick count into a Go time.Time in UTC.
func DecodeFileTime(ticks uint64) time.Time {
	unixTicks := int64(ticks) - consts.FiletimeEpochDelta100ns
	secs := unixTicks / 10_000_000
	rem := unixTicks % 10_000_000
	return time.Unix(secs, rem*100).UTC()
}

// EncodeFileTime converts a Go time.Time into a raw FILETIME tick count.
// Times before the FILETIME epoch (1601-01-01 UTC) cannot be represented.
func EncodeFileTime(t time.Time) (uint64, error) {
	u := t.UTC()
	ticks := u.Unix()*10_000_000 + int64(u.Nanosecond()/100) + consts.FiletimeEpochDelta100ns
	if ticks < 0 {
		return 0, fmt.Errorf("time %s predates the FILETIME epoch", t)
	}
	return uint64(ticks), nil
}

// Now returns the current time as a FileTime, used as the default timestamp
// for Archive.Add/Update calls that don't supply one explicitly.
func Now() FileTime {
	ticks, _ := EncodeFileTime(time.Now())
	return FileTime(ticks)
}

// Time converts a FileTime back into a Go time.Time.
func (ft FileTime) Time() time.Time {
	return DecodeFileTime(uint64(ft))
}

// FromTime builds a FileTime from a Go time.Time.
func FromTime(t time.Time) (FileTime, error) {
	ticks, err := EncodeFileTime(t)
	if err != nil {
		return 0, err
	}
	return FileTime(ticks), nil
}
