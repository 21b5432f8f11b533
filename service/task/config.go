package task

import (
	"github.com/viant/pydeploy/service/environ"
	"github.com/viant/pydeploy/service/python"
	"github.com/viant/pydeploy/service/source"
	"github.com/viant/pydeploy/service/venv"
)

// Script represents named integration script run by run_script
type Script struct {
	Dir  string   `json:"dir,omitempty" yaml:"dir,omitempty"` //relative to source dir, defaults to source dir
	Path string   `json:"path,omitempty" yaml:"path,omitempty"`
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// Config represents task settings
type Config struct {
	Layout     environ.Layout
	Python     *python.Config
	Virtualenv *venv.Config
	Source     *source.Config
	Extras     []string
	Scripts    map[string]*Script
}

func (c *Config) init() {
	if c.Layout.Project == "" {
		c.Layout = environ.DefaultLayout()
	}
	if c.Python == nil {
		c.Python = python.DefaultConfig()
	}
	if c.Virtualenv == nil {
		c.Virtualenv = venv.DefaultConfig()
	}
	if c.Source == nil {
		c.Source = source.DefaultConfig(c.Layout.Project)
	}
}
