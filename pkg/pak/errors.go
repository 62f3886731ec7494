package pak

import "errors"

var (
	// ErrNotAPak is returned when a file's magic number does not match PakMagic.
	ErrNotAPak = errors.New("pak: not a pak archive")
	// ErrTruncated is returned when the archive ends before its entry table says it should.
	ErrTruncated = errors.New("pak: truncated archive")
	// ErrNameTooLong is returned by Add when an entry path is empty or
	// exceeds PakMaxNameLength.
	ErrNameTooLong = errors.New("pak: entry name too long")
	// ErrPayloadTooLarge names a payload that exceeds the 32-bit size field.
	// No function in this package returns it: loadDir skips such files with
	// a log message, and Add and Update do not check payload size.
	ErrPayloadTooLarge = errors.New("pak: payload too large")
	// ErrNotFound is returned by Get/Remove when no entry has the given name.
	ErrNotFound = errors.New("pak: entry not found")
	// ErrConflict is returned by Add when an entry already exists under that name.
	ErrConflict = errors.New("pak: entry already exists")
	// ErrNotExist is returned by Update when no entry exists to update.
	ErrNotExist = errors.New("pak: entry does not exist")
)
