// Package cli contains the pydeploy command line.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/viant/pydeploy/model/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
)

// flags holds persistent flag values
type flags struct {
	config      string
	host        string
	user        string
	credentials string
	keyFile     string
	insecure    bool
	verbose     bool
	traceFile   string
	policy      string
}

// App wires streams and flags into the command tree
type App struct {
	flags  flags
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer
	logger *log.Logger
}

// NewRootCommand creates the pydeploy command tree
func (a *App) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "pydeploy",
		Short: "Deploy a python project into a remote virtual environment",
		Long: `pydeploy provisions a pinned python interpreter and a virtual environment on the
target host, ships the project sources when needed and runs setup.py within the
virtual environment.

Examples:
  pydeploy build-install --host deploy@build01
  pydeploy run-tests --host build01:2222 --key ~/.ssh/id_rsa
  pydeploy run-script smoke --policy ask
  pydeploy config show`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.initLogger()
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.config, "config", "", "config file (default is ./pydeploy.yaml)")
	pf.StringVarP(&a.flags.host, "host", "H", "", "target host: [user@]host[:port], ssh://host:port/ or bash://localhost/")
	pf.StringVarP(&a.flags.user, "user", "u", "", "ssh user")
	pf.StringVar(&a.flags.credentials, "credentials", "", "scy ssh credentials resource")
	pf.StringVar(&a.flags.keyFile, "key", "", "ssh private key file")
	pf.BoolVar(&a.flags.insecure, "insecure", false, "skip ssh host key verification")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&a.flags.traceFile, "trace-file", "", "write step spans to file")
	pf.StringVar(&a.flags.policy, "policy", "", "step approval mode: auto, ask or deny")

	root.AddCommand(a.newTaskCommands()...)
	root.AddCommand(a.newTasksCommand())
	root.AddCommand(a.newConfigCommand())
	return root
}

func (a *App) initLogger() {
	a.logger = log.NewWithOptions(a.errOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "pydeploy",
	})
	if a.flags.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
}

// ExitCode maps error to process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch types.KindOf(err) {
	case types.KindConnection:
		return 2
	case types.KindProbe:
		return 3
	case types.KindBuild:
		return 4
	case types.KindPackaging:
		return 5
	}
	return 1
}

// Execute runs the command line with supplied arguments and returns the exit status
func Execute(ctx context.Context, args []string) int {
	app := &App{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	return app.Execute(ctx, args)
}

// Execute runs the command line with supplied arguments and returns the exit status
func (a *App) Execute(ctx context.Context, args []string) int {
	root := a.NewRootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		var classified *types.Error
		if errors.As(err, &classified) {
			fmt.Fprintf(a.errOut, "Error (%v): %v\n", classified.Kind, err)
		} else {
			fmt.Fprintf(a.errOut, "Error: %v\n", err)
		}
	}
	return ExitCode(err)
}

// New creates an App bound to the supplied streams
func New(in io.Reader, out, errOut io.Writer) *App {
	return &App{in: in, out: out, errOut: errOut}
}
