package summarizer

import (
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implSummarizer struct {
	credential string
	generator  Generator
	logger     logger.Logger
}

// New creates a Summarizer that sends every request to gen with the given credential.
func New(credential string, gen Generator, log logger.Logger) Summarizer {
	return &implSummarizer{
		credential: credential,
		generator:  gen,
		logger:     log,
	}
}
