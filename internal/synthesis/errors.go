package synthesis

import (
	"errors"
	"fmt"
)

// ErrSynthesisDegraded marks a synthesis that fell back to the plain
// skeleton. It is logged, never returned.
var ErrSynthesisDegraded = errors.New("synthesis degraded")

// SynthesisError is returned when no configuration can be produced at all.
type SynthesisError struct {
	TemplateID string
	Err        error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesis with template %s: %v", e.TemplateID, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}
