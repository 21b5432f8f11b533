package setuptools

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
	return session.New("run", "/home/u", "/home/u/projects/dfms", "dfms", "/tmp").
		WithPython("/usr/bin/python2.7").
		WithSource("/tmp/dfms", true)
}

func TestRun(t *testing.T) {
	var testCases = []struct {
		description string
		subcommand  string
		expect      string
	}{
		{description: "egg", subcommand: BdistEgg, expect: "cd /tmp/dfms && source /home/u/projects/dfms/bin/activate && python setup.py bdist_egg"},
		{description: "install", subcommand: Install, expect: "cd /tmp/dfms && source /home/u/projects/dfms/bin/activate && python setup.py install"},
		{description: "test", subcommand: Test, expect: "cd /tmp/dfms && source /home/u/projects/dfms/bin/activate && python setup.py test"},
	}
	for _, testCase := range testCases {
		exec := &testutil.Executor{}
		require.NoError(t, Run(context.Background(), exec, newSession(), testCase.subcommand), testCase.description)
		assert.Equal(t, []string{testCase.expect}, exec.Commands, testCase.description)
	}
}

func TestRunErrors(t *testing.T) {
	exec := (&testutil.Executor{}).On("setup.py", "", errors.New("exit 1"))
	err := Run(context.Background(), exec, newSession(), Test)
	assert.Equal(t, types.KindPackaging, types.KindOf(err))

	noSource := session.New("run", "/home/u", "/home/u/projects/dfms", "dfms", "/tmp")
	exec = &testutil.Executor{}
	err = Run(context.Background(), exec, noSource, Install)
	assert.Equal(t, types.KindPackaging, types.KindOf(err))
	assert.Empty(t, exec.Commands)
}

func TestUninstall(t *testing.T) {
	exec := &testutil.Executor{}
	require.NoError(t, Uninstall(context.Background(), exec, newSession()))
	assert.Equal(t, []string{"cd /home/u/projects/dfms && source /home/u/projects/dfms/bin/activate && /usr/bin/yes | pip uninstall dfms"}, exec.Commands)
}

func TestPipInstall(t *testing.T) {
	exec := &testutil.Executor{}
	require.NoError(t, PipInstall(context.Background(), exec, newSession(), "/tmp/dfms", "luigi", "bottle", "paste"))
	assert.Equal(t, 3, len(exec.Commands))
	assert.Equal(t, "cd /tmp/dfms && source /home/u/projects/dfms/bin/activate && pip install luigi", exec.Commands[0])

	exec = (&testutil.Executor{}).On("bottle", "", errors.New("not found"))
	err := PipInstall(context.Background(), exec, newSession(), "/tmp/dfms", "luigi", "bottle", "paste")
	assert.Equal(t, types.KindPackaging, types.KindOf(err))
	assert.Equal(t, 2, len(exec.Commands))
}

func TestRunScript(t *testing.T) {
	exec := &testutil.Executor{}
	err := RunScript(context.Background(), exec, newSession(), "/tmp/dfms", "test/integrate/freq_split.py", "-i", "/mnt/chiles/in put.ms", "-o", "/mnt/out")
	require.NoError(t, err)
	assert.Equal(t, "cd /tmp/dfms && source /home/u/projects/dfms/bin/activate && python test/integrate/freq_split.py -i '/mnt/chiles/in put.ms' -o /mnt/out", exec.Commands[0])
}
