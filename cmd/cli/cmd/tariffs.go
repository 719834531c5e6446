package cmd

import (
	"github.com/spf13/cobra"

	"mobile-tariffs/core/catalog"
)

func tariffsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tariffs [operator]",
		Short: "List tariffs of all operators or of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := a.catalog.List()
			if len(args) == 1 {
				op, err := a.lookup(args[0])
				if err != nil {
					return err
				}
				ops = []catalog.Operator{op}
			}

			if a.jsonOutput() {
				return a.writeJSON(ops)
			}
			a.ui.Tariffs(ops)
			return nil
		},
	}
}
