package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "prt.yaml"

// ErrConfigExists is returned by SaveTo when the target file exists and
// overwriting was not requested.
var ErrConfigExists = errors.New("config file already exists")

// UserPath returns the config file location in the user's config directory.
func UserPath() string {
	return filepath.Join(ConfigDir(), fileName)
}

// SaveTo validates the config and writes it as YAML to path, creating the
// parent directory. An existing file is replaced only when overwrite is set.
func (c *Config) SaveTo(path string, overwrite bool) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
