package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pydeploy/model/types"
	"github.com/viant/pydeploy/policy"
)

func run(t *testing.T, stdin string, args ...string) (string, string, int) {
	var out, errOut bytes.Buffer
	app := New(strings.NewReader(stdin), &out, &errOut)
	code := app.Execute(context.Background(), args)
	return out.String(), errOut.String(), code
}

func TestRootCommand_TaskCommands(t *testing.T) {
	app := New(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	root := app.NewRootCommand()
	for _, name := range []string{"python-setup", "virtualenv-setup", "build", "build-install", "uninstall", "run-tests", "install-extras", "run-script", "virtualenv-clean"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name(), name)
	}
	cmd, _, err := root.Find([]string{"build_install"})
	require.NoError(t, err)
	assert.Equal(t, "build-install", cmd.Name())
}

func TestTasksCommand(t *testing.T) {
	out, _, code := run(t, "", "tasks")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "build_install")
	assert.Contains(t, out, "virtualenv_clean")
}

func TestConfigShow(t *testing.T) {
	t.Setenv("PYDEPLOY_PROJECT", "ledger")
	configFile := filepath.Join(t.TempDir(), "pydeploy.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("venvDir: envs\npython:\n  makeInstall: true\nextras:\n  - requests\n"), 0644))

	out, errOut, code := run(t, "", "config", "show", "--config", configFile, "--host", "deploy@build01:2222", "--policy", "deny")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "project: ledger")
	assert.Contains(t, out, "venvDir: envs")
	assert.Contains(t, out, "makeInstall: true")
	assert.Contains(t, out, "- requests")
	assert.Contains(t, out, "url: ssh://build01:2222/")
	assert.Contains(t, out, "user: deploy")
	assert.Contains(t, out, "mode: deny")
}

func TestConfigShow_Invalid(t *testing.T) {
	_, errOut, code := run(t, "", "config", "show", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "failed to load config")

	_, errOut, code = run(t, "", "config", "show", "--policy", "sometimes")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unsupported policy mode")
}

func TestHostURL(t *testing.T) {
	var testCases = []struct {
		description string
		host        string
		expectURL   string
		expectUser  string
	}{
		{description: "empty", host: "", expectURL: ""},
		{description: "local", host: "bash://localhost/", expectURL: "bash://localhost/"},
		{description: "host only", host: "build01", expectURL: "ssh://build01/"},
		{description: "user and port", host: "deploy@build01:2222", expectURL: "ssh://build01:2222/", expectUser: "deploy"},
		{description: "url", host: "ssh://build01:22/", expectURL: "ssh://build01:22/"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expectURL, hostURL(testCase.host), testCase.description)
		assert.Equal(t, testCase.expectUser, hostUser(testCase.host), testCase.description)
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 2, ExitCode(types.NewError(types.KindConnection, "dial", errors.New("refused"))))
	assert.Equal(t, 3, ExitCode(types.NewError(types.KindProbe, "probe", errors.New("garbage"))))
	assert.Equal(t, 4, ExitCode(types.NewError(types.KindBuild, "make", errors.New("exit 2"))))
	assert.Equal(t, 5, ExitCode(types.NewError(types.KindPackaging, "setup.py", errors.New("exit 1"))))
}

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	app := New(strings.NewReader("y\nn\nall\n"), &out, &bytes.Buffer{})
	p := &policy.Policy{Mode: policy.ModeAsk}
	ctx := context.Background()

	assert.True(t, app.ask(ctx, "python.install", p))
	assert.False(t, app.ask(ctx, "venv.create", p))
	assert.True(t, app.ask(ctx, "setup.install", p))
	assert.Equal(t, policy.ModeAuto, p.Mode)
	assert.False(t, app.ask(ctx, "setup.test", p))
	assert.Contains(t, out.String(), "run step python.install?")
}
