package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/nguyentantai21042004/summary-flow/internal/failure"
	"github.com/nguyentantai21042004/summary-flow/internal/input"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

// maxReplacementRatio is the share of U+FFFD runes above which page text is
// treated as undecodable glyph data.
const maxReplacementRatio = 0.1

var errGarbledText = errors.New("text is not decodable (font without a unicode mapping)")

type documentStrategy struct {
	logger logger.Logger
}

// NewDocument creates the strategy that extracts text from an uploaded PDF.
func NewDocument(log logger.Logger) Strategy {
	api.DisableConfigDir()
	return &documentStrategy{logger: log}
}

func (s *documentStrategy) Name() string { return NameDocument }

func (s *documentStrategy) Applies(in input.Spec) bool {
	return in.Kind() == input.KindDocument
}

func (s *documentStrategy) Extract(ctx context.Context, in input.Spec) (string, error) {
	const op = "extract.document"

	if ext := strings.ToLower(filepath.Ext(in.Filename())); ext != ".pdf" {
		return "", failure.New(failure.ParseFailed, op, fmt.Errorf("unsupported extension %q", ext), "only PDF documents are supported")
	}

	pageCount, err := validatePDF(in.Data())
	if err != nil {
		return "", failure.New(failure.ParseFailed, op, err, "failed to read PDF")
	}

	text, err := readPDFText(in.Data())
	if errors.Is(err, errGarbledText) {
		return "", failure.New(failure.ParseFailed, op, err, "PDF text could not be decoded")
	}
	if err != nil {
		return "", failure.New(failure.ParseFailed, op, err, "failed to read PDF")
	}
	if strings.TrimSpace(text) == "" {
		return "", failure.New(failure.ParseFailed, op, nil, "PDF contains no extractable text")
	}

	s.logger.Debug(ctx, "Extracted %d characters from %s (%d pages)", len(text), in.Filename(), pageCount)
	return text, nil
}

// validatePDF checks the file structure with pdfcpu in relaxed mode and
// returns the page count.
func validatePDF(data []byte) (pageCount int, err error) {
	// pdfcpu may panic on badly broken files
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pdfCtx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("read pdf: %w", err)
	}
	if err := api.ValidateContext(pdfCtx); err != nil {
		return 0, fmt.Errorf("validate pdf: %w", err)
	}
	if pdfCtx.PageCount == 0 {
		return 0, errors.New("pdf has no pages")
	}
	return pdfCtx.PageCount, nil
}

// readPDFText decodes every page through its fonts' encodings and ToUnicode
// maps. Pages are separated by a blank line.
func readPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf text panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	pages := make([]string, 0, r.NumPage())
	for pageNr := 1; pageNr <= r.NumPage(); pageNr++ {
		p := r.Page(pageNr)
		if p.V.IsNull() {
			continue
		}
		raw, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d text: %w", pageNr, err)
		}
		if garbled(raw) {
			return "", fmt.Errorf("page %d: %w", pageNr, errGarbledText)
		}
		if pageText := normalizeText(raw); pageText != "" {
			pages = append(pages, pageText)
		}
	}
	return strings.Join(pages, "\n\n"), nil
}

// garbled reports text that still carries glyph IDs instead of characters:
// NUL or other control runes, or too many replacement runes.
func garbled(s string) bool {
	var visible, replaced int
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			continue
		case unicode.IsControl(r):
			return true
		case r == unicode.ReplacementChar:
			replaced++
		}
		if !unicode.IsSpace(r) {
			visible++
		}
	}
	return visible > 0 && float64(replaced)/float64(visible) > maxReplacementRatio
}

func normalizeText(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
