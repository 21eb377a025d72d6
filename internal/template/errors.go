package template

import "errors"

// ErrInvalidTemplate reports a skeleton that does not parse or references
// undeclared variables.
var ErrInvalidTemplate = errors.New("invalid template")
