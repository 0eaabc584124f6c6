package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/summary-flow/internal/pipeline"
)

func (w *implWriter) Write(ctx context.Context, name string, res *pipeline.Result) (Files, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return Files{}, fmt.Errorf("create output dir: %w", err)
	}

	files := Files{
		Markdown: filepath.Join(w.dir, name+".md"),
		Docx:     filepath.Join(w.dir, name+".docx"),
	}

	meta := w.metaLine(res)

	if err := os.WriteFile(files.Markdown, []byte(markdown(name, meta, res)), 0644); err != nil {
		return Files{}, fmt.Errorf("write markdown: %w", err)
	}

	if err := writeDocx(files.Docx, name, meta, res); err != nil {
		return Files{}, fmt.Errorf("write docx: %w", err)
	}

	w.logger.Info(ctx, "Summary written: %s, %s", files.Markdown, files.Docx)
	return files, nil
}

// metaLine is the provenance line shared by both output formats.
func (w *implWriter) metaLine(res *pipeline.Result) string {
	return fmt.Sprintf("%s | source: %s | model: %s | %d words",
		w.now().Format("2006-01-02 15:04"), res.Source, res.Model, res.Words)
}

func markdown(name, meta string, res *pipeline.Result) string {
	return fmt.Sprintf("# %s\n\n_%s_\n\n%s\n", name, meta, strings.TrimSpace(res.Summary))
}
