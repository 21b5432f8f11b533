package venv

import (
	"fmt"
	"path"
	"strings"
)

const DefaultURL = "https://pypi.python.org/packages/source/v/virtualenv/virtualenv-12.0.7.tar.gz"

// Config represents virtualenv bootstrap tool pinning
type Config struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// DefaultConfig returns default bootstrap tool pinning
func DefaultConfig() *Config {
	return &Config{URL: DefaultURL}
}

// Archive returns bootstrap tool archive name
func (c *Config) Archive() string {
	return path.Base(c.URL)
}

// Dir returns directory the archive extracts to
func (c *Config) Dir() string {
	return strings.TrimSuffix(c.Archive(), ".tar.gz")
}

func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("virtualenv.url was empty")
	}
	return nil
}
