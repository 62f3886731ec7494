package config

import "fmt"

// ParseError describes a malformed line in a config file. The parsers in
// this package set only Reason; Line and Column stay 0, and Error omits the
// position when Line is 0.
type ParseError struct {
	Line   int
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config: parse error at %d:%d: %s", e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("config: parse error: %s", e.Reason)
}
