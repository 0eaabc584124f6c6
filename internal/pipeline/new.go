package pipeline

import (
	"github.com/nguyentantai21042004/summary-flow/internal/extract"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/resolver"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
)

type implPipeline struct {
	resolver    resolver.Resolver
	strategies  []extract.Strategy
	summarizer  summarizer.Summarizer
	targetWords int
	logger      logger.Logger
}

// New creates a Pipeline. targetWords <= 0 uses summarizer.DefaultTargetWords.
func New(res resolver.Resolver, strategies []extract.Strategy, sum summarizer.Summarizer, targetWords int, log logger.Logger) Pipeline {
	if targetWords <= 0 {
		targetWords = summarizer.DefaultTargetWords
	}
	return &implPipeline{
		resolver:    res,
		strategies:  strategies,
		summarizer:  sum,
		targetWords: targetWords,
		logger:      log,
	}
}
