// Package llm wraps the Gemini API behind the core's LLMClient port.
package llm

import (
	"context"
	"fmt"

	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/ports"
	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed analysis client. Credentials and
// Vertex vs Gemini Dev routing come from the standard environment variables
// (GEMINI_API_KEY, GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT).
func NewGeminiClient(ctx context.Context, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Ensure implementation matches interface
var _ ports.LLMClient = (*GeminiClient)(nil)

// Generate submits the prompt plus the inline document and returns the raw
// model text. Transport and provider failures surface as wrapped
// ErrAnalysisDispatch so callers can retry them.
func (c *GeminiClient) Generate(ctx context.Context, prompt string, document []byte, mimeType string) (*ports.LLMResponse, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     document,
					},
				},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: generate content: %w", apperrors.ErrAnalysisDispatch, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty response from model", apperrors.ErrAnalysisDispatch)
	}

	out := &ports.LLMResponse{
		Text:  text,
		Model: c.model,
	}
	if resp.UsageMetadata != nil {
		out.InputTokens = resp.UsageMetadata.PromptTokenCount
		out.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
	}
	return out, nil
}
