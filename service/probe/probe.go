// Package probe turns remote shell checks into typed results.
//
// Each probe echoes a marker that is either present ("1" or a path) or empty;
// empty output means absent and is not an error. Any other output is reported
// as an inconclusive probe.
package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/pydeploy/model/types"
	"github.com/viant/pydeploy/service/executor"
)

const present = "1"

// CommandPath returns location of command on the remote search path
func CommandPath(ctx context.Context, exec executor.Executor, command string) (string, bool, error) {
	quoted := executor.Quote(command)
	output, err := exec.Run(ctx, fmt.Sprintf("if command -v %[1]v > /dev/null 2>&1; then command -v %[1]v; else echo; fi", quoted))
	if err != nil {
		return "", false, types.NewError(types.KindConnection, "probe command "+command, err)
	}
	output = strings.TrimSpace(output)
	if output == "" {
		return "", false, nil
	}
	if strings.Contains(output, "\n") {
		return "", false, types.Errorf(types.KindProbe, "probe command "+command, "unexpected output: %q", output)
	}
	return output, true, nil
}

// DirExists returns true if remote directory exists
func DirExists(ctx context.Context, exec executor.Executor, dir string) (bool, error) {
	return marker(ctx, exec, "probe dir "+dir, fmt.Sprintf("if [ -d %v ]; then echo 1; else echo; fi", executor.Quote(dir)))
}

// Writable returns true if remote file exists and accepts a no-op append
func Writable(ctx context.Context, exec executor.Executor, file string) (bool, error) {
	quoted := executor.Quote(file)
	return marker(ctx, exec, "probe writable "+file, fmt.Sprintf("if [ -f %[1]v ] && ( : >> %[1]v ) 2>/dev/null; then echo 1; else echo; fi", quoted))
}

func marker(ctx context.Context, exec executor.Executor, op, command string) (bool, error) {
	output, err := exec.Run(ctx, command)
	if err != nil {
		return false, types.NewError(types.KindConnection, op, err)
	}
	switch strings.TrimSpace(output) {
	case present:
		return true, nil
	case "":
		return false, nil
	}
	return false, types.Errorf(types.KindProbe, op, "unexpected output: %q", output)
}
