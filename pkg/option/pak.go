package option

import (
	"github.com/bgrewell/peggle-kit/pkg/logging"
)

// PakOptions controls how an archive is opened.
type PakOptions struct {
	// Logger receives structured progress and diagnostic output.
	Logger *logging.Logger
	// ParseOnOpen is accepted but not consulted: Open always reads the whole
	// archive (or walks the whole directory tree) before returning, whatever
	// its value.
	ParseOnOpen bool
	// XorKey overrides the key probed during LoadPak. Nil means auto-detect
	// from the magic; a non-nil key (0 included) is used as given and the
	// magic is not checked. Directory loads ignore it.
	XorKey *byte
}

type PakOption func(*PakOptions)

func WithLogger(logger *logging.Logger) PakOption {
	return func(o *PakOptions) {
		o.Logger = logger
	}
}

func WithParseOnOpen(parseOnOpen bool) PakOption {
	return func(o *PakOptions) {
		o.ParseOnOpen = parseOnOpen
	}
}

func WithXorKey(key byte) PakOption {
	return func(o *PakOptions) {
		o.XorKey = &key
	}
}
