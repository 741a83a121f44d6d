// Package config holds the server configuration: defaults, optional YAML
// file, then environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Scorer names accepted by Validate.
const (
	ScorerNaive    = "naive"
	ScorerWeighted = "weighted"
)

var validScorers = map[string]struct{}{
	ScorerNaive:    {},
	ScorerWeighted: {},
}

// Redis connection settings. An empty Addr disables the custom dictionary.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Config is the full server configuration.
type Config struct {
	Addr string `yaml:"addr"` // listen address, e.g. ":8080"

	// Exactly one vocabulary source must be set.
	VocabPath  string `yaml:"vocab_path"`  // "word count" file
	VocabURL   string `yaml:"vocab_url"`   // remote "word count" list
	CorpusPath string `yaml:"corpus_path"` // raw text to count words from

	MaxDistance int    `yaml:"max_distance"` // 0 = no cutoff
	Scorer      string `yaml:"scorer"`       // naive | weighted

	Redis Redis `yaml:"redis"`

	LogLevel string `yaml:"log_level"` // logrus level name
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Addr:        ":8080",
		MaxDistance: 0,
		Scorer:      ScorerNaive,
		LogLevel:    "info",
	}
}

// Load reads a YAML file over the defaults. An empty path returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv() {
	c.Addr = envOr("RESPELL_ADDR", c.Addr)
	c.VocabPath = envOr("RESPELL_VOCAB_PATH", c.VocabPath)
	c.VocabURL = envOr("RESPELL_VOCAB_URL", c.VocabURL)
	c.CorpusPath = envOr("RESPELL_CORPUS_PATH", c.CorpusPath)
	c.Scorer = envOr("RESPELL_SCORER", c.Scorer)
	c.LogLevel = envOr("RESPELL_LOG_LEVEL", c.LogLevel)
	c.Redis.Addr = envOr("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = envOr("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = envOrInt("REDIS_DB", c.Redis.DB)
	c.MaxDistance = envOrInt("RESPELL_MAX_DISTANCE", c.MaxDistance)
}

// Validate checks the configuration for contradictions before startup.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: addr must not be empty")
	}
	sources := 0
	for _, s := range []string{c.VocabPath, c.VocabURL, c.CorpusPath} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("config: one of vocab_path, vocab_url, corpus_path is required")
	}
	if sources > 1 {
		return fmt.Errorf("config: vocab_path, vocab_url and corpus_path are mutually exclusive")
	}
	if c.MaxDistance < 0 {
		return fmt.Errorf("config: max_distance must be >= 0, got %d", c.MaxDistance)
	}
	if _, ok := validScorers[c.Scorer]; !ok {
		return fmt.Errorf("config: unknown scorer %q", c.Scorer)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
