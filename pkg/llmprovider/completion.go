package llmprovider

import (
	"context"
	"fmt"
	"strings"
)

// Completer is the completion service consumed by the discovery engine.
// Any failure wraps ErrCompletionUnavailable and must be treated as
// recoverable by callers.
type Completer interface {
	Complete(ctx context.Context, turns []Turn, opts Options) (string, error)
}

// Turn is a role-tagged piece of conversation sent to the completion service.
type Turn struct {
	Role    string
	Content string
}

// Options tunes one completion call.
type Options struct {
	SystemInstruction string
	Temperature       float64
	MaxOutputTokens   int
}

var _ Completer = (*Manager)(nil)

// Complete runs the fallback chain and returns the generated text.
func (m *Manager) Complete(ctx context.Context, turns []Turn, opts Options) (string, error) {
	msgs := make([]Message, 0, len(turns))
	for _, t := range turns {
		if strings.TrimSpace(t.Content) == "" {
			continue
		}
		msgs = append(msgs, Message{Role: t.Role, Content: t.Content})
	}

	resp, err := m.GenerateContent(ctx, &Request{
		SystemInstruction: opts.SystemInstruction,
		Messages:          msgs,
		Temperature:       opts.Temperature,
		MaxTokens:         opts.MaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletionUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: %v from %s", ErrCompletionUnavailable, ErrEmptyResponse, resp.ProviderName)
	}
	return text, nil
}
