package repository

import "errors"

var (
	ErrAgentNotFound  = errors.New("agent not found")
	ErrInvalidOptions = errors.New("invalid agent options")
)
