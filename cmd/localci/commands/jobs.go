package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/localci/internal/app"
)

func (c *CLI) newJobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Show the jobs of the pipeline and their last results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hard, _ := cmd.Flags().GetBool("hard")
			watch, _ := cmd.Flags().GetBool("watch")
			all, _ := cmd.Flags().GetBool("all")
			maxLogs, _ := cmd.Flags().GetInt("logs")

			return c.app.Jobs(cmd.Context(), app.JobsOptions{
				Settings: settings(cmd),
				Hard:     hard,
				Watch:    watch,
				All:      all,
				MaxLogs:  maxLogs,
			})
		},
	}
	cmd.Flags().Bool("hard", false, "Recompile the config instead of using the cached result")
	cmd.Flags().BoolP("watch", "w", false, "Redraw the tree whenever the config changes")
	cmd.Flags().BoolP("all", "a", false, "Expand every job")
	cmd.Flags().Int("logs", 3, "Number of logs to list per job")
	return cmd
}
