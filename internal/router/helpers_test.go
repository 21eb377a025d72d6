package router

import (
	"context"
	"sync"

	"agent-discovery/pkg/llmprovider"
)

// mockCompleter returns a canned reply or error and records the last call.
type mockCompleter struct {
	reply string
	err   error

	mu       sync.Mutex
	calls    int
	lastOpts llmprovider.Options
	lastTurn string
}

func (m *mockCompleter) Complete(ctx context.Context, turns []llmprovider.Turn, opts llmprovider.Options) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastOpts = opts
	if len(turns) > 0 {
		m.lastTurn = turns[len(turns)-1].Content
	}
	return m.reply, m.err
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	mu    sync.Mutex
	warns int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     { m.warn() }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.warn() }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func (m *mockLogger) warn() {
	m.mu.Lock()
	m.warns++
	m.mu.Unlock()
}

func (m *mockLogger) warnCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.warns
}
