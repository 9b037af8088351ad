package domain

import (
	"fmt"
	"time"
)

// Strategy selects how a tool definition is checked against the LLM API.
type Strategy string

const (
	// StrategyInject submits the tools with a trivial chat request and
	// treats acceptance as validity.
	StrategyInject Strategy = "inject"
	// StrategyReview asks the model to review the document and return a
	// structured verdict.
	StrategyReview Strategy = "review"
)

// ValidStrategies enumerates all recognized strategies.
var ValidStrategies = []Strategy{StrategyInject, StrategyReview}

func (s Strategy) IsValid() bool {
	for _, v := range ValidStrategies {
		if s == v {
			return true
		}
	}
	return false
}

const (
	DefaultModel   = "gpt-4o-mini"
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultTimeout = 60 * time.Second
)

// Config holds settings merged from .toolcheck.yaml, .env files, the
// environment and command-line flags.
type Config struct {
	APIKey   string        `yaml:"-"        json:"-"`
	BaseURL  string        `yaml:"base_url" json:"base_url,omitempty"`
	Model    string        `yaml:"model"    json:"model,omitempty"`
	Strategy Strategy      `yaml:"strategy" json:"strategy,omitempty"`
	Timeout  time.Duration `yaml:"timeout"  json:"timeout,omitempty"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		Model:    DefaultModel,
		Strategy: StrategyInject,
		Timeout:  DefaultTimeout,
	}
}

// Validate checks user-supplied values. Zero values are allowed and mean
// "use the default".
func (c Config) Validate() error {
	if c.Strategy != "" && !c.Strategy.IsValid() {
		return fmt.Errorf("unknown strategy %q (valid: %s, %s)", c.Strategy, StrategyInject, StrategyReview)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// Merge overlays the non-zero values of override on top of c.
func (c Config) Merge(override Config) Config {
	result := c
	if override.APIKey != "" {
		result.APIKey = override.APIKey
	}
	if override.BaseURL != "" {
		result.BaseURL = override.BaseURL
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	if override.Strategy != "" {
		result.Strategy = override.Strategy
	}
	if override.Timeout != 0 {
		result.Timeout = override.Timeout
	}
	return result
}
