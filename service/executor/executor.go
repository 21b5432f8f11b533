package executor

import (
	"context"
	"fmt"
)

// Executor runs shell commands on a deployment target and transfers files to it
type Executor interface {
	// Run executes command and returns trimmed standard output; non-zero exit status returns *CommandError
	Run(ctx context.Context, command string) (string, error)
	// Put copies local file to remote path
	Put(ctx context.Context, localPath, remotePath string) error
	// Close releases the underlying connection
	Close() error
}

// CommandError represents failed remote command
type CommandError struct {
	Command string
	Status  int
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d", e.Command, e.Status)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
