package input

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SupportedExtensions lists the file types a dropped file can be turned into.
var SupportedExtensions = []string{".pdf", ".txt", ".md", ".url"}

// IsSupportedFile reports whether path has an extension FromFile understands.
func IsSupportedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// FromFile builds a Spec from a file on disk: PDFs become documents,
// .txt/.md become raw text and .url files hold a YouTube URL on their first non-blank line.
func FromFile(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read input file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return Document(data, filepath.Base(path)), nil
	case ".txt", ".md":
		return Text(string(data)), nil
	case ".url":
		return YouTubeURL(firstLine(data)), nil
	default:
		return Spec{}, fmt.Errorf("unsupported input file: %s", path)
	}
}

func firstLine(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line
		}
	}
	return ""
}
