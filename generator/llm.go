package generator

import "context"

// LLMClient abstracts the model endpoint so it can be swapped or mocked.
type LLMClient interface {
	// Complete returns the full reply in one piece.
	Complete(ctx context.Context, prompt Prompt) (string, error)
	// CompleteStream emits the reply incrementally. The chunk channel is
	// closed when the model finishes; at most one error is sent on the
	// error channel, before the chunk channel closes.
	CompleteStream(ctx context.Context, prompt Prompt) (<-chan string, <-chan error)
}

// LLMSettings carries the base configuration for concrete clients.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
