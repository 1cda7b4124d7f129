// Package commands implements the CLI commands for localci.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/localci/internal/app"
	"go.trai.ch/localci/internal/build"
)

// CLI represents the command line interface for localci.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, job string, opts app.RunOptions) error
	Jobs(ctx context.Context, opts app.JobsOptions) error
	Logs(ctx context.Context, job string, opts app.LogsOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	SetJSONLogs(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	defaults := app.DefaultSettings()

	rootCmd := &cobra.Command{
		Use:           "localci",
		Short:         "Run and debug CircleCI jobs on your machine",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			jsonLogs, _ := cmd.Flags().GetBool("json-logs")
			a.SetJSONLogs(jsonLogs)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	pf := rootCmd.PersistentFlags()
	pf.String("config", defaults.Config, "Path of the pipeline config (default .circleci/config.yml, env "+app.EnvConfig+")")
	pf.String("binary", defaults.Binary, "Job runner executable (env "+app.EnvBinary+")")
	pf.Bool("json-logs", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newJobsCmd())
	rootCmd.AddCommand(c.newLogsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func settings(cmd *cobra.Command) app.Settings {
	config, _ := cmd.Flags().GetString("config")
	binary, _ := cmd.Flags().GetString("binary")
	return app.Settings{Config: config, Binary: binary}
}
