package resolver

import "github.com/nguyentantai21042004/summary-flow/internal/logger"

type implResolver struct {
	logger logger.Logger
}

// New creates a new Resolver instance
func New(log logger.Logger) Resolver {
	return &implResolver{logger: log}
}
