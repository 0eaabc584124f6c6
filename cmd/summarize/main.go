package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/summary-flow/internal/app"
	"github.com/nguyentantai21042004/summary-flow/internal/failure"
	"github.com/nguyentantai21042004/summary-flow/internal/input"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	url := flag.String("url", "", "YouTube video URL")
	pdf := flag.String("pdf", "", "path to a PDF document")
	text := flag.String("text", "", "raw text to summarize (use - to read stdin)")
	flag.Parse()

	in, err := buildInput(*url, *pdf, *text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	res, err := c.Pipeline.Run(context.Background(), in)
	if err != nil {
		msg := err.Error()
		var fe *failure.Error
		if errors.As(err, &fe) && fe.Message != "" {
			msg = fe.Message
		}
		fmt.Fprintf(os.Stderr, "error (%s): %s\n", failure.ReasonOf(err), msg)
		os.Exit(1)
	}

	fmt.Println(res.Summary)
}

func buildInput(url, pdf, text string) (input.Spec, error) {
	set := 0
	for _, v := range []string{url, pdf, text} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return input.Spec{}, errors.New("exactly one of -url, -pdf or -text is required")
	}

	switch {
	case url != "":
		return input.YouTubeURL(url), nil
	case pdf != "":
		data, err := os.ReadFile(pdf)
		if err != nil {
			return input.Spec{}, fmt.Errorf("read pdf: %w", err)
		}
		return input.Document(data, filepath.Base(pdf)), nil
	case text == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return input.Spec{}, fmt.Errorf("read stdin: %w", err)
		}
		return input.Text(string(data)), nil
	default:
		return input.Text(text), nil
	}
}
