package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrExists is returned by Create when the target file is already there.
var ErrExists = errors.New("config file already exists")

const header = "# lodconv settings. Command line flags override these values.\n"

// UserPath is the config file inside ConfigDir.
func UserPath() string {
	return filepath.Join(ConfigDir(), FileName)
}

// Save writes the config to UserPath.
func (c *Config) Save() error {
	return c.SaveTo(UserPath())
}

// SaveTo writes the config as YAML, creating missing parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Create writes the config to path, or to UserPath when path is empty, and
// returns where it went. An existing file is only replaced with overwrite.
func (c *Config) Create(path string, overwrite bool) (string, error) {
	if path == "" {
		path = UserPath()
	}
	if _, err := os.Stat(path); err == nil && !overwrite {
		return path, fmt.Errorf("%w: %s", ErrExists, path)
	}

	if path == UserPath() {
		return path, c.Save()
	}
	return path, c.SaveTo(path)
}
