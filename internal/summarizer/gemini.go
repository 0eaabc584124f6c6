package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
)

type geminiGenerator struct {
	model   string
	baseURL string
	timeout time.Duration
}

// NewGemini creates a Generator backed by the Gemini API.
func NewGemini(cfg config.LLMConfig) Generator {
	return &geminiGenerator{
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
	}
}

func (g *geminiGenerator) Model() string { return g.model }

func (g *geminiGenerator) Generate(ctx context.Context, credential, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cc := &genai.ClientConfig{
		APIKey:  credential,
		Backend: genai.BackendGeminiAPI,
	}
	if g.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
		}
	}

	msg := err.Error()
	for _, marker := range []string{"API_KEY_INVALID", "PERMISSION_DENIED", "UNAUTHENTICATED"} {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
	}
	return fmt.Errorf("generate content: %w", err)
}
