package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/designlint/designlint/internal/domain"
)

const fileName = ".designlint.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .designlint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .designlint.yaml from dir. Returns the default configuration
// when the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.EngineConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.EngineConfig{}, err
	}

	// Start from defaults so an empty or partial file keeps checks enabled.
	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.EngineConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.EngineConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}
