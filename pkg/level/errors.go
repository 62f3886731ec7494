package level

import "errors"

// ErrInvalidKind is returned when an Element's type code does not match any
// known Payload variant, or a Payload value does not match the kind it is
// being encoded under.
var ErrInvalidKind = errors.New("level: invalid entry kind")
