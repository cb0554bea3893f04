// Package config handles loading and saving user configuration for kana.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/kana"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration for the kana tool.
type Config struct {
	Convert    ConvertConfig    `yaml:"convert"`
	Quiz       QuizConfig       `yaml:"quiz"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	LLM        LLMConfig        `yaml:"llm"`
}

// ConvertConfig holds defaults for `kana convert`.
type ConvertConfig struct {
	Target       kana.Script `yaml:"target"`
	kana.Options `yaml:",inline"`
}

// QuizConfig holds quiz settings.
type QuizConfig struct {
	Columns      string      `yaml:"columns"` // e.g. "seion", "ka,sa,ta", "all"
	Count        int         `yaml:"count"`
	Unique       bool        `yaml:"unique"`
	PromptScript kana.Script `yaml:"prompt_script"`
	AnswerScript kana.Script `yaml:"answer_script"`
}

// DictionaryConfig points at a JSONL reading dictionary.
type DictionaryConfig struct {
	Path string `yaml:"path"`
}

// LLMConfig holds settings for the model-backed segmenter.
type LLMConfig struct {
	Model    string        `yaml:"model"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{Target: kana.Romaji},
		Quiz: QuizConfig{
			Columns:      "seion",
			Count:        20,
			Unique:       true,
			PromptScript: kana.Hiragana,
			AnswerScript: kana.Romaji,
		},
		LLM: LLMConfig{
			Model:    "claude-haiku-4-5-20251001",
			CacheTTL: 24 * time.Hour,
			Timeout:  30 * time.Second,
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := kana.ParseColumns(c.Quiz.Columns); err != nil {
		return fmt.Errorf("quiz.columns: %w", err)
	}
	if c.Quiz.Count <= 0 {
		return fmt.Errorf("quiz.count: must be positive, got %d", c.Quiz.Count)
	}
	if c.Quiz.PromptScript == c.Quiz.AnswerScript {
		return errors.New("quiz: prompt_script and answer_script must differ")
	}
	if c.LLM.Timeout < 0 || c.LLM.CacheTTL < 0 {
		return errors.New("llm: durations must not be negative")
	}
	return nil
}

// Load reads the config at path, layering it over Default. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "kana"), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
