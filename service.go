package pydeploy

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/viant/pydeploy/extension"
	"github.com/viant/pydeploy/internal/idgen"
	"github.com/viant/pydeploy/model/types"
	"github.com/viant/pydeploy/policy"
	"github.com/viant/pydeploy/progress"
	"github.com/viant/pydeploy/service/executor"
	"github.com/viant/pydeploy/service/task"
	"github.com/viant/pydeploy/tracing"
)

// Service represents pydeploy service
type Service struct {
	config            *Config
	actions           *extension.Actions
	extensionServices []types.Service
	dialer            task.Dialer
	policy            *policy.Policy
	onProgress        func(progress.Progress)
	logger            *log.Logger
	tracingErr        error
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.tracingErr != nil {
		return fmt.Errorf("failed to init tracing: %w", s.tracingErr)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.policy == nil {
		s.policy = policy.FromConfig(&s.config.Policy)
	}
	if s.dialer == nil {
		s.dialer = s.dial
	}
	s.actions = extension.NewActions(task.New(s.config.TaskConfig(), s.dialer, s.logger))
	for _, service := range s.extensionServices {
		s.actions.Register(service)
	}
	return nil
}

func (s *Service) dial(ctx context.Context) (executor.Executor, error) {
	host := s.config.Host
	return executor.New(ctx, &host,
		executor.WithTimeout(s.config.Timeout()),
		executor.WithEnv(s.config.Env),
		executor.WithLogger(s.logger))
}

// Run executes task referenced as "name" (deploy service) or "service.name"; dashes are accepted in place of underscores
func (s *Service) Run(ctx context.Context, ref string, args ...string) (*task.Output, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "-", "_")
	_, signature, execute, err := s.actions.Method(ref, task.Name)
	if err != nil {
		return nil, err
	}
	runID := idgen.NewRunID()
	ctx, _ = progress.WithNewTracker(ctx, runID, signature.Name, s.onProgress)
	if s.policy != nil {
		ctx = policy.WithPolicy(ctx, s.policy)
	}
	ctx, span := tracing.StartSpan(ctx, "pydeploy."+signature.Name, "INTERNAL")
	span.WithAttributes(map[string]string{"run.id": runID, "host": s.config.Host.URL})

	logger := s.logger.With("run", runID, "task", signature.Name)
	logger.Info("task started", "host", s.config.Host.URL)
	output := &task.Output{}
	err = execute(ctx, &task.Input{Args: args}, output)
	tracing.EndSpan(span, err)
	if err != nil {
		logger.Error("task failed", "kind", types.KindOf(err), "error", err)
		return output, err
	}
	logger.Info("task completed", "steps", len(output.Steps), "skipped", len(output.Skipped))
	return output, nil
}

// Tasks returns signatures of the built-in deployment tasks
func (s *Service) Tasks() types.Signatures {
	return s.actions.Lookup(task.Name).Methods()
}

// Actions returns task service registry
func (s *Service) Actions() *extension.Actions {
	return s.actions
}

// New creates pydeploy service; a nil config uses DefaultConfig
func New(config *Config, options ...Option) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	ret := &Service{config: config}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
