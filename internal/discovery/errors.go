package discovery

import (
	"errors"

	"agent-discovery/internal/session"
)

// Domain-specific errors for the discovery package.
var (
	ErrSessionNotFound = session.ErrSessionNotFound
	ErrOwnerRequired   = session.ErrOwnerRequired
	ErrOwnerMismatch   = session.ErrOwnerMismatch
	ErrEmptyMessage    = errors.New("message is empty")
	ErrMessageTooLong  = errors.New("message is too long")
)
