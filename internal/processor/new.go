package processor

import (
	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/output"
	"github.com/nguyentantai21042004/summary-flow/internal/pipeline"
)

type implProcessor struct {
	paths    config.PathsConfig
	pipeline pipeline.Pipeline
	writer   output.Writer
	logger   logger.Logger
}

// New creates a new Processor instance
func New(paths config.PathsConfig, p pipeline.Pipeline, w output.Writer, log logger.Logger) Processor {
	return &implProcessor{
		paths:    paths,
		pipeline: p,
		writer:   w,
		logger:   log,
	}
}
