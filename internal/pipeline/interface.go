package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/summary-flow/internal/input"
)

// Result is a finished summary and where its text came from.
type Result struct {
	Summary string
	// Source names the extraction strategy that produced the text.
	Source string
	Model  string
	Words  int
}

// Pipeline resolves an input to text and summarizes it.
type Pipeline interface {
	Run(ctx context.Context, in input.Spec) (*Result, error)
}
