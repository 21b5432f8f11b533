package extension

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pydeploy/model/types"
)

type stubService struct {
	name  string
	calls []string
}

func (s *stubService) Name() string { return s.name }

func (s *stubService) Methods() types.Signatures {
	return types.Signatures{{Name: "build"}, {Name: "run_tests"}}
}

func (s *stubService) Method(name string) (types.Executable, error) {
	return func(ctx context.Context, input, output interface{}) error {
		s.calls = append(s.calls, name)
		return nil
	}, nil
}

func TestActions_Method(t *testing.T) {
	deploy := &stubService{name: "deploy"}
	actions := NewActions(deploy, &stubService{name: "docs"})
	assert.Equal(t, []string{"deploy", "docs"}, actions.Names())

	var testCases = []struct {
		description   string
		ref           string
		expectService string
		expectMethod  string
		expectErr     bool
	}{
		{description: "bare method", ref: "build", expectService: "deploy", expectMethod: "build"},
		{description: "qualified method", ref: "docs.run_tests", expectService: "docs", expectMethod: "run_tests"},
		{description: "case insensitive", ref: "RUN_TESTS", expectService: "deploy", expectMethod: "run_tests"},
		{description: "unknown method", ref: "deploy.release", expectErr: true},
		{description: "unknown service", ref: "wiki.build", expectErr: true},
	}
	for _, testCase := range testCases {
		service, signature, executable, err := actions.Method(testCase.ref, "deploy")
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectService, service.Name(), testCase.description)
		assert.Equal(t, testCase.expectMethod, signature.Name, testCase.description)
		assert.NoError(t, executable(context.Background(), nil, nil), testCase.description)
	}
	assert.Equal(t, []string{"build", "run_tests"}, deploy.calls)
}
