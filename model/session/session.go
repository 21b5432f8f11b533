// Package session defines the per-invocation deployment context.
//
// A Session is resolved step by step and never mutated in place: every
// resolution returns a copy carrying the new value, so a value held by an
// earlier step stays valid for the rest of the run.
package session

import "path"

// Session represents resolved remote deployment state for a single task invocation
type Session struct {
	RunID      string `json:"runId,omitempty" yaml:"runId,omitempty"`
	Home       string `json:"home,omitempty" yaml:"home,omitempty"`             //remote user home
	AppDir     string `json:"appDir,omitempty" yaml:"appDir,omitempty"`         //virtual environment root
	Project    string `json:"project,omitempty" yaml:"project,omitempty"`       //package name
	ScratchDir string `json:"scratchDir,omitempty" yaml:"scratchDir,omitempty"` //remote temp directory
	Python     string `json:"python,omitempty" yaml:"python,omitempty"`         //resolved interpreter
	SourceDir  string `json:"sourceDir,omitempty" yaml:"sourceDir,omitempty"`   //buildable source tree on the remote host
	Shipped    bool   `json:"shipped,omitempty" yaml:"shipped,omitempty"`       //true if SourceDir was unpacked from a shipped archive
}

// PythonRoot returns project adjacent interpreter install root
func (s *Session) PythonRoot() string {
	return path.Join(s.AppDir, "..", "python")
}

// HasPython returns true if interpreter was resolved
func (s *Session) HasPython() bool {
	return s.Python != ""
}

// HasSource returns true if source location was decided
func (s *Session) HasSource() bool {
	return s.SourceDir != ""
}

// WithPython returns a copy with resolved interpreter
func (s *Session) WithPython(python string) *Session {
	ret := *s
	ret.Python = python
	return &ret
}

// WithSource returns a copy with resolved source location
func (s *Session) WithSource(dir string, shipped bool) *Session {
	ret := *s
	ret.SourceDir = dir
	ret.Shipped = shipped
	return &ret
}

// New creates a session for supplied home and layout
func New(runID, home, appDir, project, scratchDir string) *Session {
	return &Session{
		RunID:      runID,
		Home:       home,
		AppDir:     appDir,
		Project:    project,
		ScratchDir: scratchDir,
	}
}
