package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/localci/internal/app"
)

func (c *CLI) newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs <job>",
		Short: "Print the latest log of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			follow, _ := cmd.Flags().GetBool("follow")
			return c.app.Logs(cmd.Context(), args[0], app.LogsOptions{
				Settings: settings(cmd),
				Follow:   follow,
			})
		},
	}
	cmd.Flags().BoolP("follow", "f", false, "Follow the output of the job's running container")
	return cmd
}
