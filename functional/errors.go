package functional

import "errors"

// ErrUnknownFMTVersion is returned when parsing an unsupported FMT version name.
var ErrUnknownFMTVersion = errors.New("functional: unknown FMT version")
