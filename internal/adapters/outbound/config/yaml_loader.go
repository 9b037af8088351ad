package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toolcheck/toolcheck/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".toolcheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .toolcheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .toolcheck.yaml from dir. A missing file yields a zero Config,
// which leaves every default in place when merged.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Config{}, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}
