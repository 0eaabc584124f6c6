package output

import (
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implWriter struct {
	dir    string
	logger logger.Logger
	now    func() time.Time
}

// New creates a Writer that stores <name>.md and <name>.docx under dir.
func New(dir string, log logger.Logger) Writer {
	return &implWriter{
		dir:    dir,
		logger: log,
		now:    time.Now,
	}
}
