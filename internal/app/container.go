package app

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/extract"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/pipeline"
	"github.com/nguyentantai21042004/summary-flow/internal/resolver"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
	"github.com/nguyentantai21042004/summary-flow/pkg/executor"
)

// Container holds all dependencies
type Container struct {
	Config     *config.Config
	Logger     logger.Logger
	Executor   executor.Executor
	HTTPClient *http.Client
	Strategies []extract.Strategy
	Summarizer summarizer.Summarizer
	Pipeline   pipeline.Pipeline
}

// LoadConfig reads path, falling back to defaults plus environment when the file does not exist.
func LoadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.Default()
	}
	return config.Load(path)
}

// NewContainer creates a new dependency container
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	exec := executor.New()
	httpClient := &http.Client{Timeout: cfg.Captions.Timeout}

	strategies := extract.Default(cfg, exec, httpClient, log)
	gen := summarizer.NewGenerator(cfg.LLM, &http.Client{Timeout: cfg.LLM.Timeout})
	sum := summarizer.New(cfg.LLM.APIKey, gen, log)

	return &Container{
		Config:     cfg,
		Logger:     log,
		Executor:   exec,
		HTTPClient: httpClient,
		Strategies: strategies,
		Summarizer: sum,
		Pipeline:   pipeline.New(resolver.New(log), strategies, sum, cfg.Summary.TargetWords, log),
	}, nil
}
