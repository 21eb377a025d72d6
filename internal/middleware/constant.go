package middleware

import "time"

// Headers
const (
	HeaderRequestID = "X-Request-ID"
	HeaderOwnerID   = "X-Owner-ID"
)

const (
	scopeKey = "scope"

	defaultTurnsPerMin = 30
	defaultMaxOwners   = 10000
	limiterTTL         = 5 * time.Minute
	maxRequestIDLen    = 128
)
