package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/toolcheck/toolcheck/internal/domain"
)

// DotEnvFile is the key/value file read from the working directory and
// from the directory holding the executable.
const DotEnvFile = ".env"

// envConfig mirrors domain.Config for environment parsing.
type envConfig struct {
	APIKey   string        `env:"OPENAI_API_KEY"`
	BaseURL  string        `env:"OPENAI_BASE_URL"`
	Model    string        `env:"TOOLCHECK_MODEL"`
	Strategy string        `env:"TOOLCHECK_STRATEGY"`
	Timeout  time.Duration `env:"TOOLCHECK_TIMEOUT"`
}

// LoadDotEnv loads every existing file in paths into the process
// environment. Variables that are already set are never overwritten, so the
// first file listed wins over later ones. It returns the files it loaded.
func LoadDotEnv(paths ...string) ([]string, error) {
	var loaded []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return loaded, err
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, fmt.Errorf("reading %s: %w", p, err)
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}

// DotEnvPaths returns the candidate .env locations: the working directory
// first, then the executable's directory.
func DotEnvPaths(workDir string) []string {
	paths := []string{filepath.Join(workDir, DotEnvFile)}
	if exe, err := os.Executable(); err == nil {
		exeEnv := filepath.Join(filepath.Dir(exe), DotEnvFile)
		if exeEnv != paths[0] {
			paths = append(paths, exeEnv)
		}
	}
	return paths
}

// FromEnvironment reads configuration from environ, or from the process
// environment when environ is nil.
func FromEnvironment(environ map[string]string) (domain.Config, error) {
	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Environment: environ}); err != nil {
		return domain.Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	cfg := domain.Config{
		APIKey:   ec.APIKey,
		BaseURL:  ec.BaseURL,
		Model:    ec.Model,
		Strategy: domain.Strategy(ec.Strategy),
		Timeout:  ec.Timeout,
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}

// Resolve merges defaults, .toolcheck.yaml in dir, and the environment
// (already populated from .env files), in increasing precedence.
func Resolve(loader domain.ConfigLoader, dir string) (domain.Config, error) {
	fileCfg, err := loader.Load(dir)
	if err != nil {
		return domain.Config{}, err
	}
	envCfg, err := FromEnvironment(nil)
	if err != nil {
		return domain.Config{}, err
	}
	return domain.DefaultConfig().Merge(fileCfg).Merge(envCfg), nil
}
