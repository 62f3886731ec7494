package option

import (
	"github.com/bgrewell/peggle-kit/pkg/logging"
)

// ConfigOptions holds options for the config codec. The Parse and Emit
// functions in pkg/config take no options, so neither field changes their
// behavior.
type ConfigOptions struct {
	Logger *logging.Logger
	// PreserveUnknown names whether unrecognized keys inside a dialect block
	// (the Etc carrier) are kept. Its zero value is false. Parsing always
	// keeps such keys and the emitters always write them back.
	PreserveUnknown bool
}

type ConfigOption func(*ConfigOptions)

func WithConfigLogger(logger *logging.Logger) ConfigOption {
	return func(o *ConfigOptions) {
		o.Logger = logger
	}
}

func WithPreserveUnknown(preserve bool) ConfigOption {
	return func(o *ConfigOptions) {
		o.PreserveUnknown = preserve
	}
}
