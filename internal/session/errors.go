package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrOwnerRequired   = errors.New("owner id is required to create a session")
	ErrOwnerMismatch   = errors.New("session belongs to another owner")
)
