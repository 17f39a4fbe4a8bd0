package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port          int              `json:"port"`
	LogConfig     logger.LogConfig `json:"log_config"`
	CORSAllowlist []string         `json:"cors_allowlist"`
	Analyzer      AnalyzerConfig   `json:"analyzer"`
}

// AnalyzerConfig configures the optional mood analyzer. An empty Provider
// means the analyzer is absent and the service runs on local heuristics only.
type AnalyzerConfig struct {
	Provider         string                 `json:"provider"`
	Model            string                 `json:"model"`
	Timeout          int                    `json:"timeout"`
	MaxTags          int                    `json:"max_tags"`
	RateLimitSeconds int                    `json:"rate_limit_seconds"`
	Data             map[string]interface{} `json:"data"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.Analyzer.Provider != "" {
		if cfg.Analyzer.Model == "" {
			return nil, fmt.Errorf("analyzer.model is required when analyzer.provider is set")
		}
		if cfg.Analyzer.Timeout == 0 {
			cfg.Analyzer.Timeout = 30
		}
		if cfg.Analyzer.MaxTags == 0 {
			cfg.Analyzer.MaxTags = 5
		}
	}
	return &cfg, nil
}
