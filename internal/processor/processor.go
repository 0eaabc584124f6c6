package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/input"
)

// Process runs the pipeline for the file at path, writes the summary and
// archives the source. Failed inputs stay in place.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting: %s", path)
	p.logger.Info(ctx, "========================================")

	in, err := input.FromFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	res, err := p.pipeline.Run(ctx, in)
	if err != nil {
		return fmt.Errorf("summarize %s: %w", name, err)
	}

	files, err := p.writer.Write(ctx, name, res)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	archived, err := p.moveToArchived(ctx, path)
	if err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Completed: %s (source: %s, %d words)", name, res.Source, res.Words)
	p.logger.Info(ctx, "Output: %s", files.Markdown)
	if archived != "" {
		p.logger.Info(ctx, "Archived: %s", archived)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return nil
}
