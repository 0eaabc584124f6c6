package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// moveToArchived moves a processed input into the archived folder, adding a
// timestamp when a file of the same name is already there.
func (p *implProcessor) moveToArchived(ctx context.Context, path string) (string, error) {
	if err := os.MkdirAll(p.paths.Archived, 0755); err != nil {
		return "", fmt.Errorf("create archived dir: %w", err)
	}

	filename := filepath.Base(path)
	destPath := filepath.Join(p.paths.Archived, filename)
	if _, err := os.Stat(destPath); err == nil {
		ext := filepath.Ext(filename)
		stamp := time.Now().Format("20060102-150405")
		destPath = filepath.Join(p.paths.Archived, strings.TrimSuffix(filename, ext)+"-"+stamp+ext)
	}

	p.logger.Debug(ctx, "Moving to archived folder: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		// rename fails across filesystems
		if cerr := copyFile(path, destPath); cerr != nil {
			return "", fmt.Errorf("move to archived: %w", err)
		}
		if rerr := os.Remove(path); rerr != nil {
			p.logger.Warn(ctx, "Failed to remove %s after copy: %v", path, rerr)
		}
	}

	return destPath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
