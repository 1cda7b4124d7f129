package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/localci/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [job]",
		Short: "Run a job in a local container",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			noShell, _ := cmd.Flags().GetBool("no-shell")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			if ci {
				outputMode = "linear"
			}

			return c.app.Run(cmd.Context(), args[0], app.RunOptions{
				Settings:   settings(cmd),
				NoShell:    noShell,
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().Bool("no-shell", false, "Do not open debug shells in the job's container")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, shell, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}
