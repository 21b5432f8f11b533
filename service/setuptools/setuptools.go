// Package setuptools runs packaging commands inside the provisioned virtual environment.
package setuptools

import (
	"context"
	"fmt"

	"github.com/viant/pydeploy/model/session"
	"github.com/viant/pydeploy/model/types"
	"github.com/viant/pydeploy/service/executor"
	"github.com/viant/pydeploy/service/venv"
)

// setup.py subcommands
const (
	Install  = "install"
	BdistEgg = "bdist_egg"
	Test     = "test"
)

// Run executes setup.py subcommand from the session source directory
func Run(ctx context.Context, exec executor.Executor, sess *session.Session, subcommand string) error {
	if !sess.HasSource() {
		return types.Errorf(types.KindPackaging, "setup.py "+subcommand, "source location was not resolved")
	}
	command := venv.Activate(sess.AppDir, "python setup.py "+executor.Quote(subcommand))
	_, err := exec.Run(ctx, executor.InDir(sess.SourceDir, command))
	return types.NewError(types.KindPackaging, "setup.py "+subcommand, err)
}

// Uninstall removes project package from virtual environment
func Uninstall(ctx context.Context, exec executor.Executor, sess *session.Session) error {
	command := venv.Activate(sess.AppDir, "/usr/bin/yes | pip uninstall "+executor.Quote(sess.Project))
	_, err := exec.Run(ctx, executor.InDir(sess.AppDir, command))
	return types.NewError(types.KindPackaging, "pip uninstall "+sess.Project, err)
}

// PipInstall installs packages one by one from dir
func PipInstall(ctx context.Context, exec executor.Executor, sess *session.Session, dir string, packages ...string) error {
	for _, pkg := range packages {
		command := venv.Activate(sess.AppDir, "pip install "+executor.Quote(pkg))
		if _, err := exec.Run(ctx, executor.InDir(dir, command)); err != nil {
			return types.NewError(types.KindPackaging, "pip install "+pkg, err)
		}
	}
	return nil
}

// RunScript runs python script from dir with positional arguments
func RunScript(ctx context.Context, exec executor.Executor, sess *session.Session, dir, script string, args ...string) error {
	if script == "" {
		return fmt.Errorf("script was empty")
	}
	command := "python " + executor.QuoteAll(append([]string{script}, args...)...)
	_, err := exec.Run(ctx, executor.InDir(dir, venv.Activate(sess.AppDir, command)))
	return types.NewError(types.KindConnection, "run "+script, err)
}
