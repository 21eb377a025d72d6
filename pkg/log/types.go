package log

import "go.uber.org/zap"

// ZapConfig configures the zap backend.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

type contextKey string

// RequestIDKey is the context key holding the request id attached to log lines.
const RequestIDKey contextKey = "request_id"

type zapLogger struct {
	sugar *zap.SugaredLogger
}
