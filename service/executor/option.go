package executor

import (
	"time"

	"github.com/charmbracelet/log"
)

// Option represents executor option
type Option func(s *Service)

// WithTimeout sets per command timeout; zero keeps the default
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithEnv sets environment variables exported before commands run
func WithEnv(env map[string]string) Option {
	return func(s *Service) {
		s.env = env
	}
}

// WithLogger sets logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
