package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, applies environment overrides
// (a .env file in the working directory is loaded first when present) and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a validated configuration built only from defaults and the environment.
func Default() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("LLM_PROVIDER"); ok && v != "" {
		c.LLM.Provider = v
	}
	if v, ok := os.LookupEnv("LLM_API_KEY"); ok && v != "" {
		c.LLM.APIKey = v
	}
	if c.LLM.APIKey == "" {
		switch c.LLM.Provider {
		case ProviderGroq:
			c.LLM.APIKey = os.Getenv("GROQ_API_KEY")
		case ProviderGemini, "":
			c.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		c.Logging.Level = v
	}
}
