// Package config loads the YAML configuration file and applies environment
// overrides on top of it.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"quizkey/internal/engine"
	"quizkey/internal/textnorm"
)

// Config is the root configuration.
type Config struct {
	Verbose bool          `yaml:"verbose"`
	Engine  EngineConfig  `yaml:"engine"`
	Answer  AnswerConfig  `yaml:"answer"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig tunes the inference pipeline.
type EngineConfig struct {
	MaxPermutations int `yaml:"max_permutations"`
}

// AnswerConfig holds the fallback guess sources consulted when inference
// comes up empty. UserGuessStringEncoded is the obfuscated form written by
// the secret codec; it is decoded into UserGuessString at load time when the
// plain field is empty.
type AnswerConfig struct {
	UserGuessString        string `yaml:"user_guess_string"`
	UserGuessStringEncoded string `yaml:"user_guess_string_encoded"`
	OnlineFile             string `yaml:"online_file"`
}

// LoggingConfig mirrors the zap production config knobs we expose.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// DefaultConfig returns the built-in defaults used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			MaxPermutations: engine.DefaultMaxPermutations,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. Environment overrides are applied last, so they win over
// both the file and the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.Answer.UserGuessString == "" && cfg.Answer.UserGuessStringEncoded != "" {
		if plain, err := DecodeSecret(cfg.Answer.UserGuessStringEncoded); err == nil {
			cfg.Answer.UserGuessString = plain
		}
	}
	if cfg.Engine.MaxPermutations <= 0 {
		cfg.Engine.MaxPermutations = engine.DefaultMaxPermutations
	}
	return cfg, nil
}

// applyEnvOverrides layers QUIZKEY_* environment variables over cfg. Unset
// or empty variables leave the existing value alone.
func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("QUIZKEY_VERBOSE"); ok && v != "" {
		cfg.Verbose = textnorm.Truthy(v)
	}
	if v, ok := os.LookupEnv("QUIZKEY_GUESS"); ok && v != "" {
		cfg.Answer.UserGuessString = v
	}
	if v, ok := os.LookupEnv("QUIZKEY_ANSWER_FILE"); ok && v != "" {
		cfg.Answer.OnlineFile = v
	}
	if v, ok := os.LookupEnv("QUIZKEY_MAX_PERMUTATIONS"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Engine.MaxPermutations = n
		}
	}
}
