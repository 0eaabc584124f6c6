package output

import (
	"context"

	"github.com/nguyentantai21042004/summary-flow/internal/pipeline"
)

// Files are the paths written for one summary.
type Files struct {
	Markdown string
	Docx     string
}

// Writer persists finished summaries.
type Writer interface {
	Write(ctx context.Context, name string, res *pipeline.Result) (Files, error)
}
