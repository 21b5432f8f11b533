package pydeploy

import (
	"fmt"
	"time"

	"github.com/viant/pydeploy/policy"
	"github.com/viant/pydeploy/service/environ"
	"github.com/viant/pydeploy/service/executor"
	"github.com/viant/pydeploy/service/python"
	"github.com/viant/pydeploy/service/source"
	"github.com/viant/pydeploy/service/task"
	"github.com/viant/pydeploy/service/venv"
)

// DefaultTimeoutMs is generous since building python from source runs make
const DefaultTimeoutMs = 60 * 60 * 1000

// Config is a serialisable representation of the deployment configuration. It
// is populated by the CLI from pydeploy.yaml, PYDEPLOY_* environment variables
// and flags; the zero-value of every nested section inherits its package defaults.
type Config struct {
	Project    string                  `json:"project" yaml:"project"`
	VenvDir    string                  `json:"venvDir" yaml:"venvDir"`
	ScratchDir string                  `json:"scratchDir" yaml:"scratchDir"`
	TimeoutMs  int                     `json:"timeoutMs" yaml:"timeoutMs"`
	Host       executor.Host           `json:"host" yaml:"host"`
	Env        map[string]string       `json:"env,omitempty" yaml:"env,omitempty"` //exported to every remote command
	Python     python.Config           `json:"python" yaml:"python"`
	Virtualenv venv.Config             `json:"virtualenv" yaml:"virtualenv"`
	Source     source.Config           `json:"source" yaml:"source"`
	Extras     []string                `json:"extras,omitempty" yaml:"extras,omitempty"`
	Scripts    map[string]*task.Script `json:"scripts,omitempty" yaml:"scripts,omitempty"`
	Policy     policy.Config           `json:"policy" yaml:"policy"`
	Trace      TraceConfig             `json:"trace" yaml:"trace"`
}

// TraceConfig represents span export settings
type TraceConfig struct {
	Enabled bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"` //empty writes spans to stdout
}

// DefaultConfig returns a Config populated with default layout, interpreter and tool versions.
// Callers may modify the returned struct before passing it to New.
func DefaultConfig() *Config {
	layout := environ.DefaultLayout()
	return &Config{
		Project:    layout.Project,
		VenvDir:    layout.VenvDir,
		ScratchDir: layout.ScratchDir,
		TimeoutMs:  DefaultTimeoutMs,
		Host:       executor.Host{URL: executor.LocalURL},
		Python:     *python.DefaultConfig(),
		Virtualenv: *venv.DefaultConfig(),
		Source:     source.Config{Dir: ".", ProbeFile: source.DefaultProbeFile},
		Policy:     policy.Config{Mode: policy.ModeAuto},
	}
}

// Validate returns error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Project == "" {
		return fmt.Errorf("project was empty")
	}
	if c.TimeoutMs < 0 {
		return fmt.Errorf("timeoutMs must be >= 0")
	}
	if err := c.Python.Validate(); err != nil {
		return fmt.Errorf("python: %w", err)
	}
	if err := c.Virtualenv.Validate(); err != nil {
		return fmt.Errorf("virtualenv: %w", err)
	}
	if err := c.Source.Validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	for name, script := range c.Scripts {
		if script == nil || script.Path == "" {
			return fmt.Errorf("scripts.%v: path was empty", name)
		}
	}
	return c.Policy.Validate()
}

// Timeout returns per command timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// TaskConfig converts deployment config to task settings
func (c *Config) TaskConfig() *task.Config {
	layout := environ.DefaultLayout()
	if c.Project != "" {
		layout.Project = c.Project
	}
	if c.VenvDir != "" {
		layout.VenvDir = c.VenvDir
	}
	if c.ScratchDir != "" {
		layout.ScratchDir = c.ScratchDir
	}
	pythonConfig, venvConfig, sourceConfig := c.Python, c.Virtualenv, c.Source
	if pythonConfig.URL == "" {
		pythonConfig = *python.DefaultConfig()
	}
	if venvConfig.URL == "" {
		venvConfig = *venv.DefaultConfig()
	}
	if sourceConfig.Dir == "" {
		sourceConfig.Dir = "."
	}
	if sourceConfig.ProbeFile == "" {
		sourceConfig.ProbeFile = source.DefaultProbeFile
	}
	if sourceConfig.Excludes == nil {
		sourceConfig.Excludes = source.DefaultExcludes(layout.Project)
	}
	return &task.Config{
		Layout:     layout,
		Python:     &pythonConfig,
		Virtualenv: &venvConfig,
		Source:     &sourceConfig,
		Extras:     c.Extras,
		Scripts:    c.Scripts,
	}
}
