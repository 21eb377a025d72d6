package gemini

import "context"

// IGemini generates text with a Gemini model. Implementations are safe for
// concurrent use.
type IGemini interface {
	// GenerateContent sends a role-tagged conversation and returns the
	// concatenated candidate text. Non-200 answers yield *APIError.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg, fills its defaults and returns a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
