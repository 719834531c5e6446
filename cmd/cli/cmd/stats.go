package cmd

import (
	"github.com/spf13/cobra"
)

func statsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show price statistics per operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := a.catalog.Stats()
			if a.jsonOutput() {
				return a.writeJSON(stats)
			}
			a.ui.Stats(stats)
			return nil
		},
	}
}
