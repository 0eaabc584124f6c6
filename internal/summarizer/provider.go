package summarizer

import (
	"net/http"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
)

// NewGenerator picks the generator for cfg.Provider.
func NewGenerator(cfg config.LLMConfig, client *http.Client) Generator {
	if cfg.Provider == config.ProviderGroq {
		return NewGroq(cfg, client)
	}
	return NewGemini(cfg)
}
