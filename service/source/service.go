// Package source decides where the buildable source tree lives on the remote host,
// shipping a local archive when the tree cannot be used in place.
package source

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/viant/pydeploy/model/session"
	"github.com/viant/pydeploy/model/types"
	"github.com/viant/pydeploy/service/executor"
	"github.com/viant/pydeploy/service/probe"
)

// Service resolves source location
type Service struct {
	config *Config
	logger *log.Logger
}

// Resolve returns session with decided source location; a session that already carries one is returned unchanged
func (s *Service) Resolve(ctx context.Context, exec executor.Executor, sess *session.Session) (*session.Session, error) {
	if sess.HasSource() {
		return sess, nil
	}
	localDir, err := filepath.Abs(s.config.Dir)
	if err != nil {
		return nil, types.NewError(types.KindPackaging, "resolve source dir", err)
	}
	probeFile := filepath.ToSlash(filepath.Join(localDir, s.config.ProbeFile))
	writable, err := probe.Writable(ctx, exec, probeFile)
	if err != nil {
		return nil, err
	}
	if writable {
		s.logger.Debug("using sources in place", "dir", localDir)
		return sess.WithSource(filepath.ToSlash(localDir), false), nil
	}
	remoteDir, err := s.ship(ctx, exec, sess, localDir)
	if err != nil {
		return nil, types.NewError(types.KindPackaging, "ship sources", err)
	}
	return sess.WithSource(remoteDir, true), nil
}

func (s *Service) ship(ctx context.Context, exec executor.Executor, sess *session.Session, localDir string) (string, error) {
	archive, err := os.CreateTemp("", sess.Project+"-packedFromSource-*.tar.gz")
	if err != nil {
		return "", err
	}
	defer os.Remove(archive.Name())
	err = Archive(archive, localDir, sess.Project, s.config.Excludes)
	if cErr := archive.Close(); err == nil {
		err = cErr
	}
	if err != nil {
		return "", err
	}

	archiveName := sess.Project + ".tar.gz"
	remoteArchive := path.Join(sess.ScratchDir, archiveName)
	remoteDir := path.Join(sess.ScratchDir, sess.Project)
	s.logger.Info("shipping sources", "source", localDir, "dest", remoteDir)
	if err = exec.Put(ctx, archive.Name(), remoteArchive); err != nil {
		return "", err
	}
	unpack := fmt.Sprintf("rm -rf %v && tar xzf %v && rm %v", executor.Quote(sess.Project), executor.Quote(archiveName), executor.Quote(archiveName))
	if _, err = exec.Run(ctx, executor.InDir(sess.ScratchDir, unpack)); err != nil {
		return "", err
	}
	return remoteDir, nil
}

// New creates source service
func New(config *Config, logger *log.Logger) *Service {
	if config == nil {
		config = DefaultConfig("")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{config: config, logger: logger}
}
