package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
)

const (
	groqBaseURL = "https://api.groq.com"
	groqAPIPath = "/openai/v1"
)

type groqGenerator struct {
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGroq creates a Generator backed by Groq's OpenAI-compatible chat API.
func NewGroq(cfg config.LLMConfig, client *http.Client) Generator {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	return &groqGenerator{
		model:      cfg.Model,
		baseURL:    baseURL + groqAPIPath,
		httpClient: client,
	}
}

func (g *groqGenerator) Model() string { return g.model }

func (g *groqGenerator) Generate(ctx context.Context, credential, prompt string) (string, error) {
	cc := openai.DefaultConfig(credential)
	cc.BaseURL = g.baseURL
	cc.HTTPClient = g.httpClient

	resp, err := openai.NewClientWithConfig(cc).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyGroqError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

func classifyGroqError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.HTTPStatusCode, apiErr.Message, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		msg := strings.TrimSpace(string(reqErr.Body))
		if msg == "" && reqErr.Err != nil {
			msg = reqErr.Err.Error()
		}
		return statusError(reqErr.HTTPStatusCode, msg, err)
	}

	return fmt.Errorf("create chat completion: %w", err)
}

func statusError(code int, msg string, err error) error {
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	}
	return fmt.Errorf("API request failed with status %d: %s: %w", code, msg, err)
}
