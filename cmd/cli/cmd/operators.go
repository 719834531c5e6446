package cmd

import (
	"github.com/spf13/cobra"
)

func operatorsCmd(a *app) *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "operators",
		Short: "List mobile operators",
		Long: `List the operators in catalog order.

With --details every operator is shown with its connection speed,
connection quality and tariffs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := a.catalog.List()
			if a.jsonOutput() {
				return a.writeJSON(ops)
			}

			if !details {
				a.ui.Operators(ops)
				return nil
			}
			for i, op := range ops {
				if i > 0 {
					a.ui.Line("")
				}
				a.ui.OperatorDetails(op)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&details, "details", "d", false, "show speed, quality and tariffs")
	return cmd
}
