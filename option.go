package pydeploy

import (
	"github.com/charmbracelet/log"
	"github.com/viant/pydeploy/model/types"
	"github.com/viant/pydeploy/policy"
	"github.com/viant/pydeploy/progress"
	"github.com/viant/pydeploy/service/task"
	"github.com/viant/pydeploy/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents pydeploy service option
type Option func(s *Service)

// WithLogger sets the logger shared by all services
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithDialer replaces the default gosh executor, for example with a scripted one in tests
func WithDialer(dialer task.Dialer) Option {
	return func(s *Service) {
		s.dialer = dialer
	}
}

// WithExtensionServices registers additional task services; their methods take *task.Input and *task.Output
func WithExtensionServices(services ...types.Service) Option {
	return func(s *Service) {
		s.extensionServices = services
	}
}

// WithPolicy sets step approval policy, overriding the configured one
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithProgressListener sets a callback invoked on every step progress change
func WithProgressListener(listener func(progress.Progress)) Option {
	return func(s *Service) {
		s.onProgress = listener
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path.
// The first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.tracingErr = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.tracingErr = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
