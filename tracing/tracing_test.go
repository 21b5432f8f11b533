package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")

	require.NoError(t, Init("pydeploy", "0.0.1", fname))

	ctx, span := StartSpan(context.Background(), "deploy.env.resolve", "CLIENT")
	span.WithAttributes(map[string]string{"run.id": "r1"})
	_, child := StartSpan(ctx, "deploy.venv.create", "INTERNAL")
	EndSpan(child, errors.New("exit 1"))
	EndSpan(span, nil)

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "deploy.env.resolve")
	assert.Contains(t, string(data), "deploy.venv.create")
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]string{"k": "v"}))
	EndSpan(span, nil)
}
