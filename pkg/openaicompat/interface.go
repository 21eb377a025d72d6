package openaicompat

import "context"

// IClient is a chat-completions client for OpenAI-compatible APIs
// (Qwen via DashScope, DeepSeek). Safe for concurrent use.
type IClient interface {
	// ChatCompletion sends the messages and returns the first choice
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
