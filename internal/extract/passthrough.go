package extract

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/summary-flow/internal/failure"
	"github.com/nguyentantai21042004/summary-flow/internal/input"
)

type passthroughStrategy struct{}

// NewPassthrough creates the strategy that hands raw text through untouched.
func NewPassthrough() Strategy {
	return passthroughStrategy{}
}

func (passthroughStrategy) Name() string { return NamePassthrough }

func (passthroughStrategy) Applies(in input.Spec) bool {
	return in.Kind() == input.KindText
}

func (passthroughStrategy) Extract(_ context.Context, in input.Spec) (string, error) {
	if strings.TrimSpace(in.Text()) == "" {
		return "", failure.New(failure.EmptyInput, "extract.passthrough", nil, "please provide some text to summarize")
	}
	return in.Text(), nil
}
