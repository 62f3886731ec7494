// Package peggle is the top-level facade over the pak archive, level, and
// config codecs: Open gives callers a single entry point that mirrors how
// the game itself treats a pak file as the root of everything else.
package peggle

import (
	"github.com/bgrewell/peggle-kit/pkg/level"
	"github.com/bgrewell/peggle-kit/pkg/option"
	"github.com/bgrewell/peggle-kit/pkg/pak"
)

// Open loads a pak archive (or an already-unpacked directory tree) from the
// given path, applying any supplied archive options.
func Open(path string, opts ...option.PakOption) (*pak.Archive, error) {
	return pak.Open(path, opts...)
}

// LoadLevel reads and decodes a level entry from an already-open archive.
func LoadLevel(a *pak.Archive, name string, opts ...option.LevelOption) (*level.Level, error) {
	entry, err := a.Get(name)
	if err != nil {
		return nil, err
	}
	return level.Decode(entry.Payload, opts...)
}

// SaveLevel encodes a level and writes (or overwrites) it into an archive.
func SaveLevel(a *pak.Archive, name string, lvl *level.Level, opts ...option.LevelOption) error {
	data, err := level.Encode(lvl, opts...)
	if err != nil {
		return err
	}
	if a.Has(name) {
		return a.Update(name, data)
	}
	return a.Add(name, data)
}
