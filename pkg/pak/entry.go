package pak

import "github.com/bgrewell/peggle-kit/pkg/encoding"

// Entry is a single named payload inside an Archive.
type Entry struct {
	// Name is the archive-relative path, backslash-separated, matching the
	// directory-tree layout the game ships.
	Name string
	// ModTime is the entry's last-modified timestamp.
	ModTime encoding.FileTime
	// Payload is the entry's raw, already-decoded bytes (never XOR-masked).
	Payload []byte
}

// Clone returns a deep copy of the entry; Payload is never aliased between
// an Archive and a caller-held Entry.
func (e *Entry) Clone() *Entry {
	payload := make([]byte, len(e.Payload))
	copy(payload, e.Payload)
	return &Entry{Name: e.Name, ModTime: e.ModTime, Payload: payload}
}
