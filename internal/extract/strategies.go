package extract

import (
	"net/http"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/pkg/executor"
)

// Default returns the strategies in fallback order: captions first, local
// transcription when a video has none, then documents and raw text.
func Default(cfg *config.Config, exec executor.Executor, client *http.Client, log logger.Logger) []Strategy {
	return []Strategy{
		NewCaption(cfg.Captions, client, log),
		NewAudio(cfg, exec, log),
		NewDocument(log),
		NewPassthrough(),
	}
}
