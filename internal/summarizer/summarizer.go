package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/summary-flow/internal/failure"
)

const summaryPrompt = "Provide a summary of the following content in %d words:\nContent: %s"

const op = "summarizer.Summarize"

// BuildPrompt renders the instruction sent to the model.
func BuildPrompt(req Request) string {
	words := req.TargetWords
	if words <= 0 {
		words = DefaultTargetWords
	}
	return fmt.Sprintf(summaryPrompt, words, req.Text)
}

// Summarize makes exactly one generation call. Blank text and a missing
// credential are rejected before anything is sent.
func (s *implSummarizer) Summarize(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", failure.New(failure.EmptyContent, op, nil, "nothing to summarize")
	}
	if strings.TrimSpace(s.credential) == "" {
		return "", failure.New(failure.AuthError, op, nil, "API key is not configured")
	}

	s.logger.Info(ctx, "Summarizing %d words with %s", len(strings.Fields(req.Text)), s.generator.Model())

	summary, err := s.generator.Generate(ctx, s.credential, BuildPrompt(req))
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return "", failure.New(failure.AuthError, op, err, "the language model rejected the API key")
		}
		return "", failure.New(failure.RemoteError, op, err, "summary generation failed")
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", failure.New(failure.RemoteError, op, nil, "the language model returned an empty summary")
	}
	return summary, nil
}

func (s *implSummarizer) Model() string {
	return s.generator.Model()
}
