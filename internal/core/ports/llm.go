package ports

import "context"

// LLMResponse is the raw outcome of one model invocation. Model and usage
// metadata are passed through untouched for observability.
type LLMResponse struct {
	Text         string
	Model        string
	InputTokens  int32
	OutputTokens int32
}

// LLMClient is the external analysis capability. Implementations wrap a
// concrete provider; the core treats the response as untrusted text.
type LLMClient interface {
	Generate(ctx context.Context, prompt string, document []byte, mimeType string) (*LLMResponse, error)
}
