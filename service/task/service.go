// Package task composes the deployment steps into the named tasks exposed on the command line.
//
// A task invocation opens one executor session, resolves the session context
// step by step and runs every step through the policy, tracing and progress
// hooks. Steps shared by composed tasks (for example build inside run_tests)
// run once per invocation.
package task

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/viant/pydeploy/internal/idgen"
	"github.com/viant/pydeploy/model/session"
	"github.com/viant/pydeploy/model/types"
	"github.com/viant/pydeploy/policy"
	"github.com/viant/pydeploy/progress"
	"github.com/viant/pydeploy/service/executor"
	"github.com/viant/pydeploy/service/python"
	"github.com/viant/pydeploy/service/source"
	"github.com/viant/pydeploy/service/venv"
	"github.com/viant/pydeploy/tracing"
)

// Dialer opens executor session for a single task invocation
type Dialer func(ctx context.Context) (executor.Executor, error)

// Service represents deploy task service
type Service struct {
	config *Config
	dial   Dialer
	python *python.Service
	venv   *venv.Service
	source *source.Service
	logger *log.Logger
}

type taskFunc func(ctx context.Context, r *run, args []string) error

type run struct {
	id     string
	task   string
	exec   executor.Executor
	sess   *session.Session
	output *Output
}

// Execute runs named task
func (s *Service) Execute(ctx context.Context, name string, input *Input, output *Output) (err error) {
	fn, ok := s.tasks()[name]
	if !ok {
		return types.NewMethodNotFoundError(name)
	}
	exec, err := s.dial(ctx)
	if err != nil {
		return types.NewError(types.KindConnection, "dial", err)
	}
	defer func() {
		if cErr := exec.Close(); cErr != nil {
			s.logger.Warn("failed to close session", "task", name, "error", cErr)
		}
	}()
	r := &run{id: runID(ctx), task: name, exec: exec, output: output}
	err = fn(ctx, r, input.Args)
	output.Session = r.sess
	return err
}

// step runs fn as a named step; fn returns true when the step was already satisfied
func (s *Service) step(ctx context.Context, r *run, name string, fn func(ctx context.Context) (bool, error)) error {
	if err := policy.FromContext(ctx).Approve(ctx, name); err != nil {
		return err
	}
	ctx, span := tracing.StartSpan(ctx, "deploy."+name, "CLIENT")
	span.WithAttributes(map[string]string{"run.id": r.id, "task": r.task})
	progress.UpdateCtx(ctx, name, progress.Delta{Running: 1})
	s.logger.Debug("step started", "task", r.task, "step", name)

	skipped, err := fn(ctx)
	tracing.EndSpan(span, err)
	switch {
	case err != nil:
		progress.UpdateCtx(ctx, name, progress.Delta{Running: -1, Failed: 1})
		return fmt.Errorf("%v: %w", name, err)
	case skipped:
		progress.UpdateCtx(ctx, name, progress.Delta{Running: -1, Skipped: 1})
		r.output.Skipped = append(r.output.Skipped, name)
		s.logger.Info("step skipped", "task", r.task, "step", name)
	default:
		progress.UpdateCtx(ctx, name, progress.Delta{Running: -1, Completed: 1})
		r.output.Steps = append(r.output.Steps, name)
		s.logger.Info("step completed", "task", r.task, "step", name)
	}
	return nil
}

func runID(ctx context.Context) string {
	if tracker, ok := progress.FromContext(ctx); ok && tracker.RunID != "" {
		return tracker.RunID
	}
	return idgen.NewRunID()
}

// New creates deploy task service
func New(config *Config, dial Dialer, logger *log.Logger) *Service {
	if config == nil {
		config = &Config{}
	}
	config.init()
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		config: config,
		dial:   dial,
		python: python.New(config.Python, logger),
		venv:   venv.New(config.Virtualenv, logger),
		source: source.New(config.Source, logger),
		logger: logger,
	}
}
