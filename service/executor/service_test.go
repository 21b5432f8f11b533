package executor

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RunLocal(t *testing.T) {
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash is not available")
	}
	ctx := context.Background()
	srv, err := New(ctx, &Host{})
	require.NoError(t, err)
	defer srv.Close()

	output, err := srv.Run(ctx, "echo pydeploy")
	require.NoError(t, err)
	assert.Equal(t, "pydeploy", output)

	_, err = srv.Run(ctx, "(exit 3)")
	var commandErr *CommandError
	require.True(t, errors.As(err, &commandErr))
	assert.Equal(t, 3, commandErr.Status)
}
