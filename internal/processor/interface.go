package processor

import "context"

// Processor summarizes one dropped file and files away the result.
type Processor interface {
	Process(ctx context.Context, path string) error
}
