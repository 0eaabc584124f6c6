package summarizer

import (
	"context"
	"errors"
)

// DefaultTargetWords is the summary length used when a request does not set one.
const DefaultTargetWords = 300

// ErrUnauthorized is wrapped by generators when the service rejects the credential.
var ErrUnauthorized = errors.New("unauthorized")

// Request is the text to summarize and the approximate summary length in words.
type Request struct {
	Text        string
	TargetWords int
}

// Summarizer produces a bounded-length summary of a text.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (string, error)
	// Model names the language model behind the summaries.
	Model() string
}

// Generator sends a single prompt to a hosted language model.
type Generator interface {
	Generate(ctx context.Context, credential, prompt string) (string, error)
	Model() string
}
