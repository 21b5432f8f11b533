package source

import (
	"fmt"
	"path"
)

// DefaultProbeFile is probed for remote writability to tell sources are usable in place; every buildable tree has it
const DefaultProbeFile = "setup.py"

// Config represents source shipping settings
type Config struct {
	Dir       string   `json:"dir,omitempty" yaml:"dir,omitempty"`             //local source tree
	ProbeFile string   `json:"probeFile,omitempty" yaml:"probeFile,omitempty"` //file relative to Dir probed for remote writability
	Excludes  []string `json:"excludes,omitempty" yaml:"excludes,omitempty"`   //name patterns left out of the shipped archive
}

// DefaultExcludes returns name patterns excluded from the source archive
func DefaultExcludes(project string) []string {
	return []string{"BIG_FILES", ".git", "build", "dist", "*.pyc", project + ".egg-info"}
}

// DefaultConfig returns default source settings
func DefaultConfig(project string) *Config {
	return &Config{Dir: ".", ProbeFile: DefaultProbeFile, Excludes: DefaultExcludes(project)}
}

func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("source.dir was empty")
	}
	if c.ProbeFile == "" {
		return fmt.Errorf("source.probeFile was empty")
	}
	for _, pattern := range c.Excludes {
		if _, err := path.Match(pattern, c.ProbeFile); err != nil {
			return fmt.Errorf("source.excludes: invalid pattern %q: %w", pattern, err)
		}
	}
	return nil
}
