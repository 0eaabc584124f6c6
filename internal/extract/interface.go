package extract

import (
	"context"

	"github.com/nguyentantai21042004/summary-flow/internal/input"
)

const (
	NameCaption     = "caption"
	NameAudio       = "audio_transcription"
	NameDocument    = "document"
	NamePassthrough = "passthrough"
)

// Strategy turns one kind of input into plain text.
// Failures are *failure.Error values carrying the strategy's reason.
type Strategy interface {
	Name() string
	// Applies reports whether the strategy handles the given input variant.
	Applies(in input.Spec) bool
	Extract(ctx context.Context, in input.Spec) (string, error)
}
