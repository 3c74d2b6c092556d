package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kls-dev/kls/internal/branding"
	"go.yaml.in/yaml/v3"
)

// FilePath returns the location of the project file inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, branding.ProjectFile())
}

// Load reads the project file in dir. A missing file yields Default().
func Load(dir string) (*Config, error) {
	path := FilePath(dir)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse validates and decodes project file contents. name is used in error
// messages only.
func Parse(name string, data []byte) (*Config, error) {
	issues, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", name, err)
	}
	if len(issues) > 0 {
		return nil, &ValidationError{File: name, Issues: issues}
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}
