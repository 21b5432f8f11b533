// Package environ resolves the remote home and application directory of a deployment.
package environ

import (
	"context"
	"path"
	"strings"

	"github.com/viant/pydeploy/model/session"
	"github.com/viant/pydeploy/model/types"
	"github.com/viant/pydeploy/service/executor"
)

// Layout defines remote directory layout
type Layout struct {
	VenvDir    string `json:"venvDir,omitempty" yaml:"venvDir,omitempty"`       //virtual env directory relative to remote home
	Project    string `json:"project,omitempty" yaml:"project,omitempty"`       //project name
	ScratchDir string `json:"scratchDir,omitempty" yaml:"scratchDir,omitempty"` //remote temp directory
}

// DefaultLayout returns default remote layout
func DefaultLayout() Layout {
	return Layout{VenvDir: "projects", Project: "dfms", ScratchDir: "/tmp"}
}

// AppDir returns application directory for supplied home
func (l Layout) AppDir(home string) string {
	return path.Join(home, l.VenvDir, l.Project)
}

// Resolve queries remote home and creates a session
func Resolve(ctx context.Context, exec executor.Executor, runID string, layout Layout) (*session.Session, error) {
	output, err := exec.Run(ctx, "echo ~")
	if err != nil {
		return nil, types.NewError(types.KindConnection, "resolve home", err)
	}
	home := strings.TrimSpace(output)
	if !path.IsAbs(home) {
		return nil, types.Errorf(types.KindProbe, "resolve home", "unexpected home: %q", output)
	}
	return session.New(runID, home, layout.AppDir(home), layout.Project, layout.ScratchDir), nil
}
