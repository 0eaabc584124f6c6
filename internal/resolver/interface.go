package resolver

import (
	"context"

	"github.com/nguyentantai21042004/summary-flow/internal/extract"
	"github.com/nguyentantai21042004/summary-flow/internal/input"
)

// Result is the text an input resolved to and the strategy that produced it.
type Result struct {
	Text     string
	Strategy string
}

// Resolver turns an input into plain text by trying strategies in order.
type Resolver interface {
	Resolve(ctx context.Context, in input.Spec, strategies []extract.Strategy) (Result, error)
}
