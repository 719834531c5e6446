package cmd

import (
	"github.com/spf13/cobra"

	"mobile-tariffs/core/ui"
)

func aboutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "About the company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.jsonOutput() {
				return a.writeJSON(map[string]string{"title": ui.AboutTitle, "text": ui.AboutText})
			}
			a.ui.About()
			return nil
		},
	}
}
