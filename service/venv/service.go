// Package venv provisions the isolated Python environment rooted at the application directory.
package venv

import (
	"context"
	"path"

	"github.com/charmbracelet/log"
	"github.com/viant/pydeploy/model/session"
	"github.com/viant/pydeploy/model/types"
	"github.com/viant/pydeploy/service/executor"
	"github.com/viant/pydeploy/service/probe"
)

// Service provisions virtual environment
type Service struct {
	config *Config
	logger *log.Logger
}

// Provision creates virtual environment unless the application directory already exists.
// Downloaded archive and extracted tool are removed whether or not creation succeeds.
func (s *Service) Provision(ctx context.Context, exec executor.Executor, sess *session.Session) (created bool, err error) {
	exists, err := probe.DirExists(ctx, exec, sess.AppDir)
	if err != nil {
		return false, err
	}
	if exists {
		s.logger.Debug("virtual env exists", "dir", sess.AppDir)
		return false, nil
	}
	if !sess.HasPython() {
		return false, types.Errorf(types.KindBuild, "create virtual env", "interpreter was not resolved")
	}
	scratch := sess.ScratchDir
	archive := s.config.Archive()
	toolDir := s.config.Dir()
	cleanupCtx := context.WithoutCancel(ctx)
	defer func() {
		if _, cErr := exec.Run(cleanupCtx, executor.InDir(scratch, "rm -rf "+executor.QuoteAll(archive, toolDir))); cErr != nil {
			s.logger.Warn("virtual env cleanup failed", "dir", scratch, "error", cErr)
		}
	}()

	s.logger.Info("creating virtual env", "dir", sess.AppDir, "python", sess.Python)
	if _, err = exec.Run(ctx, executor.InDir(scratch, "wget "+executor.Quote(s.config.URL))); err != nil {
		return false, types.NewError(types.KindBuild, "download "+s.config.URL, err)
	}
	if _, err = exec.Run(ctx, executor.InDir(scratch, "tar -xzf "+executor.Quote(archive))); err != nil {
		return false, types.NewError(types.KindBuild, "extract "+archive, err)
	}
	bootstrap := executor.QuoteAll(sess.Python, "virtualenv.py", sess.AppDir)
	if _, err = exec.Run(ctx, executor.InDir(path.Join(scratch, toolDir), bootstrap)); err != nil {
		return false, types.NewError(types.KindBuild, "create virtual env "+sess.AppDir, err)
	}
	return true, nil
}

// Clean removes virtual environment
func (s *Service) Clean(ctx context.Context, exec executor.Executor, sess *session.Session) error {
	s.logger.Info("removing virtual env", "dir", sess.AppDir)
	_, err := exec.Run(ctx, "rm -rf "+executor.Quote(sess.AppDir))
	return types.NewError(types.KindConnection, "remove virtual env "+sess.AppDir, err)
}

// Activate prefixes command with virtual environment activation
func Activate(appDir, command string) string {
	return "source " + executor.Quote(path.Join(appDir, "bin", "activate")) + " && " + command
}

// New creates virtual environment service
func New(config *Config, logger *log.Logger) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{config: config, logger: logger}
}
