package router

import "errors"

var (
	// ErrClassificationDegraded means the completion service could not be
	// used; callers fall back to rule-based classification.
	ErrClassificationDegraded = errors.New("classification degraded")

	// ErrMalformedExtraction means the completion output was not valid JSON
	// or named an unknown intent.
	ErrMalformedExtraction = errors.New("malformed extraction")
)
