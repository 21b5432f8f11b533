package executor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/gosh"
	"github.com/viant/gosh/runner"
	"github.com/viant/gosh/runner/local"
	rssh "github.com/viant/gosh/runner/ssh"
	"github.com/viant/pydeploy/internal/clock"
	"github.com/viant/pydeploy/model/types"
	"golang.org/x/crypto/ssh"

	_ "github.com/viant/afs/scp"
)

const defaultTimeout = time.Minute

// Service executes commands through a single gosh shell session
type Service struct {
	host    *Host
	shell   *gosh.Service
	fs      afs.Service
	config  *ssh.ClientConfig
	env     map[string]string
	timeout time.Duration
	logger  *log.Logger
	mux     sync.Mutex
}

// Run executes command in the session shell
func (s *Service) Run(ctx context.Context, command string) (string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.logger.Debug("run", "host", s.host.URL, "command", command)
	started := clock.Now()
	stdout, status, err := s.shell.Run(ctx, command, runner.WithTimeout(int(s.timeout.Milliseconds())))
	elapsed := clock.Since(started)
	if err == nil && elapsed > s.timeout {
		err = fmt.Errorf("command timed out after: %s", elapsed)
		status = -1
	}
	stdout = strings.TrimSpace(stdout)
	switch {
	case status != 0:
		return "", &CommandError{Command: command, Status: status, Output: stdout, Err: err}
	case err != nil:
		return "", types.NewError(types.KindConnection, s.host.URL, &CommandError{Command: command, Status: -1, Output: stdout, Err: err})
	}
	return stdout, nil
}

// Put uploads local file to the target host
func (s *Service) Put(ctx context.Context, localPath, remotePath string) error {
	destURL := s.remoteURL(remotePath)
	s.logger.Debug("put", "host", s.host.URL, "source", localPath, "dest", destURL)
	var options []storage.Option
	if s.config != nil {
		options = append(options, s.config)
	}
	if err := s.fs.Copy(ctx, localPath, destURL, options...); err != nil {
		return types.NewError(types.KindConnection, "put "+remotePath, err)
	}
	return nil
}

func (s *Service) remoteURL(remotePath string) string {
	if s.host.IsLocal() {
		return remotePath
	}
	return "scp://" + s.host.Address() + remotePath
}

// Close releases shell session
func (s *Service) Close() error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.shell == nil {
		return nil
	}
	err := s.shell.Close()
	s.shell = nil
	return err
}

// New connects to the host and opens a shell session
func New(ctx context.Context, host *Host, options ...Option) (*Service, error) {
	host.Init()
	ret := &Service{
		host:    host,
		fs:      afs.New(),
		timeout: defaultTimeout,
		logger:  log.Default(),
	}
	for _, option := range options {
		option(ret)
	}
	var envOptions []runner.Option
	if len(ret.env) > 0 {
		envOptions = append(envOptions, runner.WithEnvironment(ret.env))
	}
	var err error
	if host.IsLocal() {
		ret.shell, err = gosh.New(ctx, local.New(envOptions...))
	} else {
		if ret.config, err = ClientConfig(ctx, host); err != nil {
			return nil, types.NewError(types.KindConnection, "ssh config", err)
		}
		ret.shell, err = gosh.New(ctx, rssh.New(host.Address(), ret.config, envOptions...))
	}
	if err != nil {
		return nil, types.NewError(types.KindConnection, "connect "+host.URL, err)
	}
	return ret, nil
}
