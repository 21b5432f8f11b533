// Package python locates or builds the interpreter used to bootstrap the virtual environment.
package python

import (
	"context"
	"path"

	"github.com/charmbracelet/log"
	"github.com/viant/pydeploy/model/session"
	"github.com/viant/pydeploy/model/types"
	"github.com/viant/pydeploy/service/executor"
	"github.com/viant/pydeploy/service/probe"
)

// Service checks and installs interpreter
type Service struct {
	config *Config
	logger *log.Logger
}

// Check returns interpreter path without installing anything; project adjacent installation takes precedence
func (s *Service) Check(ctx context.Context, exec executor.Executor, sess *session.Session) (string, bool, error) {
	candidate := path.Join(sess.PythonRoot(), "bin", s.config.Binary())
	location, found, err := probe.CommandPath(ctx, exec, candidate)
	if err != nil || found {
		return location, found, err
	}
	return probe.CommandPath(ctx, exec, s.config.Binary())
}

// Install downloads and builds pinned interpreter in the scratch directory.
// The downloaded archive is always removed; the extracted tree only when the build fails.
func (s *Service) Install(ctx context.Context, exec executor.Executor, sess *session.Session) (location string, err error) {
	scratch := sess.ScratchDir
	archive := s.config.Archive()
	sourceDir := path.Join(scratch, s.config.SourceDir())
	prefix := path.Join(scratch, "python")
	cleanupCtx := context.WithoutCancel(ctx)
	defer func() {
		cleanup := "rm -f " + executor.Quote(archive)
		if err != nil {
			cleanup += " && rm -rf " + executor.Quote(sourceDir)
		}
		if _, cErr := exec.Run(cleanupCtx, executor.InDir(scratch, cleanup)); cErr != nil {
			s.logger.Warn("python cleanup failed", "dir", scratch, "error", cErr)
		}
	}()

	s.logger.Info("installing python", "url", s.config.URL, "prefix", prefix)
	if _, err = exec.Run(ctx, executor.InDir(scratch, "wget --no-check-certificate -q "+executor.Quote(s.config.URL))); err != nil {
		return "", types.NewError(types.KindBuild, "download "+s.config.URL, err)
	}
	if _, err = exec.Run(ctx, executor.InDir(scratch, "tar -xzf "+executor.Quote(archive))); err != nil {
		return "", types.NewError(types.KindBuild, "extract "+archive, err)
	}
	build := "./configure --prefix " + executor.Quote(prefix) + " && make"
	if s.config.MakeInstall {
		build += " && make install"
	}
	if _, err = exec.Run(ctx, executor.InDir(sourceDir, build)); err != nil {
		return "", types.NewError(types.KindBuild, "build "+s.config.SourceDir(), err)
	}
	return path.Join(prefix, "bin", s.config.Binary()), nil
}

// Ensure returns session with resolved interpreter, installing it when none is found
func (s *Service) Ensure(ctx context.Context, exec executor.Executor, sess *session.Session) (*session.Session, bool, error) {
	location, found, err := s.Check(ctx, exec, sess)
	if err != nil {
		return nil, false, err
	}
	if found {
		return sess.WithPython(location), false, nil
	}
	if location, err = s.Install(ctx, exec, sess); err != nil {
		return nil, false, err
	}
	return sess.WithPython(location), true, nil
}

// New creates interpreter service
func New(config *Config, logger *log.Logger) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{config: config, logger: logger}
}
