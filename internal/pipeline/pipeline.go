package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/failure"
	"github.com/nguyentantai21042004/summary-flow/internal/input"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
)

// Run never reaches the summarizer when the input cannot be resolved.
func (p *implPipeline) Run(ctx context.Context, in input.Spec) (*Result, error) {
	start := time.Now()

	resolved, err := p.resolver.Resolve(ctx, in, p.strategies)
	if err != nil {
		p.logger.Error(ctx, "Extraction failed for %s (%s): %v", in.Describe(), failure.ReasonOf(err), err)
		return nil, err
	}

	summary, err := p.summarizer.Summarize(ctx, summarizer.Request{
		Text:        resolved.Text,
		TargetWords: p.targetWords,
	})
	if err != nil {
		p.logger.Error(ctx, "Summarization failed for %s (%s): %v", in.Describe(), failure.ReasonOf(err), err)
		return nil, err
	}

	result := &Result{
		Summary: summary,
		Source:  resolved.Strategy,
		Model:   p.summarizer.Model(),
		Words:   len(strings.Fields(summary)),
	}

	p.logger.Info(ctx, "Summarized %s via %s in %s (%d words)",
		in.Describe(), result.Source, time.Since(start).Round(time.Millisecond), result.Words)
	return result, nil
}
