package option

import (
	"github.com/bgrewell/peggle-kit/pkg/logging"
)

// LevelOptions controls Level decode/encode behavior.
type LevelOptions struct {
	Logger *logging.Logger
	// Strict makes Decode report, through Logger.Info, every present element
	// whose generic flags set bit 31, which no field maps to. It does not
	// change what Decode accepts: an unknown Kind is an error either way.
	Strict bool
}

type LevelOption func(*LevelOptions)

func WithLevelLogger(logger *logging.Logger) LevelOption {
	return func(o *LevelOptions) {
		o.Logger = logger
	}
}

func WithStrict(strict bool) LevelOption {
	return func(o *LevelOptions) {
		o.Strict = strict
	}
}
