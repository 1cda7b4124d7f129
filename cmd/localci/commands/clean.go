package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/localci/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the shared volume and the rewritten config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return c.app.Clean(cmd.Context(), app.CleanOptions{
				Settings: settings(cmd),
				All:      all,
			})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Also remove logs, job results and cached configs")
	return cmd
}
