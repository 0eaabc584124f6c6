package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/summary-flow/internal/app"
	"github.com/nguyentantai21042004/summary-flow/internal/httpapi"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	addr := flag.String("addr", "", "listen address, overrides server.addr")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c.Logger.Info(ctx, "Summarizer: %s (%s), target %d words", c.Summarizer.Model(), cfg.LLM.Provider, cfg.Summary.TargetWords)

	if err := httpapi.New(cfg.Server, c.Pipeline, c.Logger).Run(ctx); err != nil {
		c.Logger.Error(context.Background(), "Server error: %v", err)
		os.Exit(1)
	}
	c.Logger.Info(context.Background(), "Server stopped")
}
