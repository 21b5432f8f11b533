package venv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pydeploy/internal/testutil"
	"github.com/viant/pydeploy/model/session"
	"github.com/viant/pydeploy/model/types"
)

func newSession() *session.Session {
	return session.New("run", "/home/u", "/home/u/projects/dfms", "dfms", "/tmp").WithPython("/usr/bin/python2.7")
}

func TestService_Provision(t *testing.T) {
	var testCases = []struct {
		description    string
		exists         bool
		failBootstrap  bool
		expectCreated  bool
		expectCommands []string
		expectKind     types.Kind
	}{
		{
			description:    "existing app dir has no side effects",
			exists:         true,
			expectCommands: []string{"if [ -d /home/u/projects/dfms ]; then echo 1; else echo; fi"},
		},
		{
			description:   "fresh host",
			expectCreated: true,
			expectCommands: []string{
				"if [ -d /home/u/projects/dfms ]; then echo 1; else echo; fi",
				"cd /tmp && wget https://pypi.python.org/packages/source/v/virtualenv/virtualenv-12.0.7.tar.gz",
				"cd /tmp && tar -xzf virtualenv-12.0.7.tar.gz",
				"cd /tmp/virtualenv-12.0.7 && /usr/bin/python2.7 virtualenv.py /home/u/projects/dfms",
				"cd /tmp && rm -rf virtualenv-12.0.7.tar.gz virtualenv-12.0.7",
			},
		},
		{
			description:   "bootstrap failure still cleans up",
			failBootstrap: true,
			expectKind:    types.KindBuild,
			expectCommands: []string{
				"if [ -d /home/u/projects/dfms ]; then echo 1; else echo; fi",
				"cd /tmp && wget https://pypi.python.org/packages/source/v/virtualenv/virtualenv-12.0.7.tar.gz",
				"cd /tmp && tar -xzf virtualenv-12.0.7.tar.gz",
				"cd /tmp/virtualenv-12.0.7 && /usr/bin/python2.7 virtualenv.py /home/u/projects/dfms",
				"cd /tmp && rm -rf virtualenv-12.0.7.tar.gz virtualenv-12.0.7",
			},
		},
	}
	for _, testCase := range testCases {
		exec := &testutil.Executor{}
		if testCase.exists {
			exec.On("[ -d", "1", nil)
		}
		if testCase.failBootstrap {
			exec.On("virtualenv.py", "", errors.New("SyntaxError"))
		}
		created, err := New(nil, nil).Provision(context.Background(), exec, newSession())
		if testCase.expectKind != types.KindUnknown {
			assert.Equal(t, testCase.expectKind, types.KindOf(err), testCase.description)
		} else {
			require.NoError(t, err, testCase.description)
		}
		assert.Equal(t, testCase.expectCreated, created, testCase.description)
		assert.Equal(t, testCase.expectCommands, exec.Commands, testCase.description)
	}
}

func TestService_ProvisionRequiresPython(t *testing.T) {
	sess := session.New("run", "/home/u", "/home/u/projects/dfms", "dfms", "/tmp")
	exec := &testutil.Executor{}
	_, err := New(nil, nil).Provision(context.Background(), exec, sess)
	assert.Equal(t, types.KindBuild, types.KindOf(err))
	assert.Equal(t, 0, exec.Count("wget"))
}

func TestService_Clean(t *testing.T) {
	exec := &testutil.Executor{}
	require.NoError(t, New(nil, nil).Clean(context.Background(), exec, newSession()))
	assert.Equal(t, []string{"rm -rf /home/u/projects/dfms"}, exec.Commands)
}

func TestActivate(t *testing.T) {
	assert.Equal(t, "source /home/u/projects/dfms/bin/activate && pip list", Activate("/home/u/projects/dfms", "pip list"))
}
