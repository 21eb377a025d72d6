package session

import "time"

// Log prefixes
const (
	LogPrefixEvictInactive = "internal.session.EvictInactive"
	LogPrefixRunJanitor    = "internal.session.RunJanitor"
)

// Log messages
const (
	LogMsgSessionCreated  = "Session created"
	LogMsgSessionsEvicted = "Evicted %d inactive sessions"
	LogMsgJanitorStarted  = "Session janitor started (interval %s, max age %s)"
	LogMsgJanitorStopped  = "Session janitor stopped"
)

// Configuration
const (
	DefaultMaxAge          = 60 * time.Minute
	DefaultCleanupInterval = 5 * time.Minute
	MaxTurns               = 100
)
