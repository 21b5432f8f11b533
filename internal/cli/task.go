package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/viant/pydeploy"
	"github.com/viant/pydeploy/policy"
	"github.com/viant/pydeploy/progress"
	"github.com/viant/pydeploy/service/task"
	"github.com/viant/pydeploy/tracing"
)

var taskUsage = map[string]string{
	task.InstallExtras: " [package...]",
	task.RunScript:     " <script|name> [arg...]",
}

// newTaskCommands creates one sub-command per deployment task
func (a *App) newTaskCommands() []*cobra.Command {
	var result []*cobra.Command
	for _, signature := range task.New(nil, nil, nil).Methods() {
		name := signature.Name
		args := cobra.NoArgs
		if _, ok := taskUsage[name]; ok {
			args = cobra.ArbitraryArgs
		}
		result = append(result, &cobra.Command{
			Use:     strings.ReplaceAll(name, "_", "-") + taskUsage[name],
			Aliases: []string{name},
			Short:   signature.Description,
			Args:    args,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runTask(cmd, name, args)
			},
		})
	}
	return result
}

func (a *App) newTasksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List deployment tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, signature := range task.New(nil, nil, nil).Methods() {
				fmt.Fprintf(w, "%v\t%v\n", signature.Name, signature.Description)
			}
			return w.Flush()
		},
	}
}

func (a *App) runTask(cmd *cobra.Command, name string, args []string) error {
	config, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	options := []pydeploy.Option{
		pydeploy.WithLogger(a.logger),
		pydeploy.WithProgressListener(a.reportProgress),
	}
	if strings.EqualFold(config.Policy.Mode, policy.ModeAsk) {
		p := policy.FromConfig(&config.Policy)
		p.Ask = a.ask
		options = append(options, pydeploy.WithPolicy(p))
	}
	if config.Trace.Enabled {
		options = append(options, pydeploy.WithTracing("pydeploy", Version, config.Trace.File))
		defer func() {
			if sErr := tracing.Shutdown(context.WithoutCancel(cmd.Context())); sErr != nil {
				a.logger.Warn("failed to flush spans", "error", sErr)
			}
		}()
	}
	srv, err := pydeploy.New(config, options...)
	if err != nil {
		return err
	}
	output, err := srv.Run(cmd.Context(), name, args...)
	if err != nil {
		return err
	}
	if output.Session != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%v completed: python=%v venv=%v source=%v\n",
			name, output.Session.Python, output.Session.AppDir, output.Session.SourceDir)
	}
	return nil
}

func (a *App) reportProgress(p progress.Progress) {
	a.logger.Debug("progress", "task", p.Task, "step", p.Step,
		"completed", p.CompletedSteps, "skipped", p.SkippedSteps, "failed", p.FailedSteps,
		"elapsed", p.Elapsed())
}
