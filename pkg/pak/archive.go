// Package pak implements the game's archive container: a flat, ordered
// collection of named byte payloads that can be loaded from (or saved to)
// either a single .pak file or a plain directory tree.
package pak

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bgrewell/peggle-kit/pkg/bitstream"
	"github.com/bgrewell/peggle-kit/pkg/consts"
	"github.com/bgrewell/peggle-kit/pkg/encoding"
	"github.com/bgrewell/peggle-kit/pkg/logging"
	"github.com/bgrewell/peggle-kit/pkg/option"
	"github.com/bgrewell/peggle-kit/pkg/validation"
)

// Archive is an in-memory model of a loaded .pak file or directory tree.
// Entries are kept in insertion order: iteration and re-serialization always
// walk names in the order they were added, matching observed game behavior.
type Archive struct {
	names   []string
	entries map[string]*Entry
	xorKey  byte
	version uint32
	logger  *logging.Logger
}

func newArchive(logger *logging.Logger) *Archive {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &Archive{
		entries: make(map[string]*Entry),
		logger:  logger,
	}
}

// Open loads an archive from either a .pak file or a directory tree.
func Open(path string, opts ...option.PakOption) (*Archive, error) {
	o := &option.PakOptions{}
	for _, fn := range opts {
		fn(o)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("pak: stat %s: %w", path, err)
	}

	if info.IsDir() {
		return loadDir(path, o)
	}
	return loadPak(path, o)
}

// loadPak implements §4.2.2: detect the XOR key from the magic, read the
// entry header table, then seek back and pull each payload in table order.
func loadPak(path string, o *option.PakOptions) (*Archive, error) {
	a := newArchive(o.Logger)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pak: read %s: %w", path, err)
	}
	if len(raw) < 8 {
		return nil, fmt.Errorf("%w: %s is too short to contain a header", ErrTruncated, path)
	}

	rawMagic := binary.LittleEndian.Uint32(raw[0:4])
	switch {
	case o.XorKey != nil:
		a.xorKey = *o.XorKey
	case rawMagic == consts.PakMagic:
		a.xorKey = consts.PakXorPrimary
	case rawMagic^0xF7F7F7F7 == consts.PakMagic:
		a.xorKey = consts.PakXorAlternate
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotAPak, path)
	}

	bs := bitstream.New(raw)
	bs.SetXorKey(a.xorKey)
	if _, err := bs.ReadUint32(); err != nil { // magic, already validated above
		return nil, fmt.Errorf("%w: %s", ErrTruncated, path)
	}
	version, err := bs.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTruncated, path)
	}
	a.version = version
	if version != 0 {
		a.logger.Info("pak archive has a nonzero version", "path", path, "version", version)
	}

	type header struct {
		name    string
		size    uint32
		modTime uint64
		start   int
	}

	var headers []header
	var runningOffset int
	for {
		flags, err := bs.ReadUint8()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTruncated, path)
		}
		if flags&consts.PakEntrySentinel != 0 {
			break
		}
		nameLen, err := bs.ReadUint8()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTruncated, path)
		}
		nameBytes, err := bs.ReadBytes(int(nameLen))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTruncated, path)
		}
		payloadSize, err := bs.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTruncated, path)
		}
		modTime, err := bs.ReadUint64()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTruncated, path)
		}
		headers = append(headers, header{
			name:    string(nameBytes),
			size:    payloadSize,
			modTime: modTime,
			start:   runningOffset,
		})
		runningOffset += int(payloadSize)
	}

	headerSize := bs.Tell()
	for _, h := range headers {
		if err := bs.Seek(headerSize + h.start); err != nil {
			return nil, fmt.Errorf("%w: payload for %s: %v", ErrTruncated, h.name, err)
		}
		payload, err := bs.ReadBytes(int(h.size))
		if err != nil {
			return nil, fmt.Errorf("%w: payload for %s: %v", ErrTruncated, h.name, err)
		}
		a.insert(&Entry{Name: h.name, ModTime: encoding.FileTime(h.modTime), Payload: payload})
	}

	a.logger.Debug("loaded pak archive", "path", path, "entries", len(headers), "xor", a.xorKey)
	return a, nil
}

// loadDir implements §4.2.3.
func loadDir(root string, o *option.PakOptions) (*Archive, error) {
	a := newArchive(o.Logger)

	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		name := strings.ReplaceAll(rel, "/", "\\")
		if len(name) > consts.PakMaxNameLength {
			a.logger.Info("skipping file with name too long", "name", name)
			return nil
		}
		if info.Size() > int64(^uint32(0)) {
			a.logger.Info("skipping file too large to represent", "name", name)
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		ft, err := encoding.FromTime(info.ModTime())
		if err != nil {
			return err
		}
		a.insert(&Entry{Name: name, ModTime: ft, Payload: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pak: walk %s: %w", root, err)
	}

	a.logger.Debug("loaded directory as archive", "path", root, "entries", len(a.names))
	return a, nil
}

func (a *Archive) insert(e *Entry) {
	if _, exists := a.entries[e.Name]; !exists {
		a.names = append(a.names, e.Name)
	}
	a.entries[e.Name] = e
}

// SavePak implements §4.2.4: write the header table (relative start is never
// written, only recomputed on load), the sentinel byte, then every payload
// concatenated, then XOR the whole buffer with the archive's key.
func (a *Archive) SavePak(path string) error {
	bs := bitstream.NewWriter()
	bs.WriteUint32(consts.PakMagic)
	bs.WriteUint32(a.version)

	for _, name := range a.names {
		e := a.entries[name]
		bs.WriteUint8(0x00)
		bs.WriteUint8(uint8(len(e.Name)))
		bs.WriteBytes([]byte(e.Name))
		bs.WriteUint32(uint32(len(e.Payload)))
		bs.WriteUint64(uint64(e.ModTime))
	}
	bs.WriteUint8(consts.PakEntrySentinel)

	for _, name := range a.names {
		bs.WriteBytes(a.entries[name].Payload)
	}

	plain := bs.Buffer()
	out := make([]byte, len(plain))
	for i, c := range plain {
		out[i] = c ^ a.xorKey
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("pak: write %s: %w", path, err)
	}
	a.logger.Debug("saved pak archive", "path", path, "entries", len(a.names))
	return nil
}

// SaveDir implements §4.2.5.
func (a *Archive) SaveDir(root string) error {
	for _, name := range a.names {
		e := a.entries[name]
		rel := strings.ReplaceAll(name, "\\", string(os.PathSeparator))
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("pak: mkdir for %s: %w", name, err)
		}
		if err := os.WriteFile(full, e.Payload, 0o644); err != nil {
			return fmt.Errorf("pak: write %s: %w", full, err)
		}
		if err := os.Chtimes(full, e.ModTime.Time(), e.ModTime.Time()); err != nil {
			return fmt.Errorf("pak: chtimes %s: %w", full, err)
		}
	}
	return nil
}

// Has reports whether name exists in the archive.
func (a *Archive) Has(name string) bool {
	_, ok := a.entries[name]
	return ok
}

// Get returns the named entry.
func (a *Archive) Get(name string) (*Entry, error) {
	e, ok := a.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return e, nil
}

// Add inserts a new entry. ts defaults to the current time if omitted.
func (a *Archive) Add(name string, data []byte, ts ...encoding.FileTime) error {
	if !validation.ValidEntryName(name) {
		return fmt.Errorf("%w: %s", ErrNameTooLong, name)
	}
	if a.Has(name) {
		return fmt.Errorf("%w: %s", ErrConflict, name)
	}
	a.insert(&Entry{Name: name, ModTime: entryTime(ts), Payload: data})
	return nil
}

// Update replaces an existing entry's payload and timestamp. Per §4.2.6,
// update is remove-then-add, so it fails with ErrNotExist if the entry is
// not already present.
func (a *Archive) Update(name string, data []byte, ts ...encoding.FileTime) error {
	if !a.Has(name) {
		return fmt.Errorf("%w: %s", ErrNotExist, name)
	}
	if err := a.Remove(name); err != nil {
		return err
	}
	a.insert(&Entry{Name: name, ModTime: entryTime(ts), Payload: data})
	return nil
}

// Remove deletes an entry.
func (a *Archive) Remove(name string) error {
	if !a.Has(name) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(a.entries, name)
	for i, n := range a.names {
		if n == name {
			a.names = append(a.names[:i], a.names[i+1:]...)
			break
		}
	}
	return nil
}

// List returns entry names in insertion order.
func (a *Archive) List() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// SetXor overrides the archive's XOR key for the next SavePak call.
func (a *Archive) SetXor(key byte) {
	a.xorKey = key
}

func entryTime(ts []encoding.FileTime) encoding.FileTime {
	if len(ts) > 0 {
		return ts[0]
	}
	return encoding.Now()
}
