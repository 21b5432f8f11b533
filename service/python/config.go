package python

import (
	"fmt"
	"path"
	"strings"
)

const (
	DefaultVersion = "2.7"
	DefaultURL     = "https://www.python.org/ftp/python/2.7.8/Python-2.7.8.tgz"
)

// Config represents interpreter pinning
type Config struct {
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	// MakeInstall runs "make install" after the build; off by default so that only the build phase runs
	MakeInstall bool `json:"makeInstall,omitempty" yaml:"makeInstall,omitempty"`
}

// DefaultConfig returns default interpreter pinning
func DefaultConfig() *Config {
	return &Config{Version: DefaultVersion, URL: DefaultURL}
}

// Binary returns versioned interpreter name
func (c *Config) Binary() string {
	return "python" + c.Version
}

// Archive returns source archive file name
func (c *Config) Archive() string {
	return path.Base(c.URL)
}

// SourceDir returns directory name the archive extracts to
func (c *Config) SourceDir() string {
	archive := c.Archive()
	for _, ext := range []string{".tar.gz", ".tgz", ".tar.xz", ".tar.bz2"} {
		if strings.HasSuffix(archive, ext) {
			return strings.TrimSuffix(archive, ext)
		}
	}
	return strings.TrimSuffix(archive, path.Ext(archive))
}

func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("python.version was empty")
	}
	if c.URL == "" {
		return fmt.Errorf("python.url was empty")
	}
	return nil
}
