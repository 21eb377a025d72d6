package session

import (
	"context"
	"time"

	"agent-discovery/pkg/log"
)

// RunJanitor evicts inactive sessions every interval until ctx is done. It
// blocks and always returns nil, so it can run directly in an errgroup.
func RunJanitor(ctx context.Context, st Store, l log.Logger, interval, maxAge time.Duration) error {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}

	l.Infof(ctx, "%s: "+LogMsgJanitorStarted, LogPrefixRunJanitor, interval, maxAge)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			l.Infof(context.WithoutCancel(ctx), "%s: %s", LogPrefixRunJanitor, LogMsgJanitorStopped)
			return nil
		case <-ticker.C:
			st.EvictInactive(ctx, maxAge)
		}
	}
}
