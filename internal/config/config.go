package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CorpusConfig locates the partner profile documents.
type CorpusConfig struct {
	Path string `yaml:"path"`
}

// BoostConfig is one topic-boost pair: when both the query and a chunk
// mention the keyword, the weight is added to that chunk's score.
type BoostConfig struct {
	Keyword string `yaml:"keyword"`
	Weight  int    `yaml:"weight"`
}

// RetrieverConfig configures lexical retrieval.
type RetrieverConfig struct {
	TopK   int           `yaml:"top_k"`
	Boosts []BoostConfig `yaml:"boosts"`
}

// DataConfig locates the raw and processed performance tables.
type DataConfig struct {
	RawPath       string `yaml:"raw_path"`
	ProcessedPath string `yaml:"processed_path"`
}

// SeedConfig configures the synthetic fixture generator.
type SeedConfig struct {
	Partners int `yaml:"partners"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	Retriever RetrieverConfig `yaml:"retriever"`
	Data      DataConfig      `yaml:"data"`
	Seed      SeedConfig      `yaml:"seed"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/partner-insights/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "partner-insights", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Corpus.Path == "" {
		cfg.Corpus.Path = filepath.Join("docs", "partner_profiles")
	}
	if cfg.Retriever.TopK == 0 {
		cfg.Retriever.TopK = 5
	}
	if len(cfg.Retriever.Boosts) == 0 {
		cfg.Retriever.Boosts = []BoostConfig{
			{Keyword: "growth", Weight: 2},
			{Keyword: "manufacturing", Weight: 2},
		}
	}
	if cfg.Data.RawPath == "" {
		cfg.Data.RawPath = filepath.Join("data", "raw", "partner_performance.csv")
	}
	if cfg.Data.ProcessedPath == "" {
		cfg.Data.ProcessedPath = filepath.Join("data", "processed", "partner_insights.csv")
	}
	if cfg.Seed.Partners == 0 {
		cfg.Seed.Partners = 25
	}
}
