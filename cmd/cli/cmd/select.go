package cmd

import (
	stderrors "errors"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mobile-tariffs/core/catalog"
	"mobile-tariffs/core/selection"
	"mobile-tariffs/internal/errors"
	"mobile-tariffs/internal/logging"
)

type selectionOutput struct {
	Operator  string           `json:"operator"`
	Price     int64            `json:"price"`
	Selected  bool             `json:"selected"`
	Tariff    *catalog.Tariff  `json:"tariff,omitempty"`
	Message   string           `json:"message"`
	Available []catalog.Tariff `json:"available,omitempty"`
}

func selectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select <operator> <price>",
		Short: "Confirm the operator's tariff at the given price",
		Long: `Confirm a tariff by its price in RUB.

The price must match one of the operator's tariffs exactly; otherwise
the command fails and lists the tariffs the operator does offer.`,
		Example: "  mobile-tariffs select mts 499",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := a.lookup(args[0])
			if err != nil {
				return err
			}

			price, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return errors.Input("price must be a whole number of RUB: " + args[1]).WithContext("price", args[1])
			}

			res, err := selection.Select(op, price)
			if err != nil {
				var invalid *selection.InvalidTariffError
				if !stderrors.As(err, &invalid) {
					return err
				}
				logging.Warn("tariff rejected", zap.String("operator", op.ID), zap.Int64("price", price))
				return a.reportInvalid(invalid, op)
			}

			logging.Debug("tariff selected",
				zap.String("operator", op.ID),
				zap.String("tariff", res.Tariff.Name),
				zap.Int64("price", price))

			if a.jsonOutput() {
				return a.writeJSON(selectionOutput{
					Operator: op.ID,
					Price:    price,
					Selected: true,
					Tariff:   &res.Tariff,
					Message:  res.Message(),
				})
			}
			a.ui.Selected(res)
			return nil
		},
	}
}

// reportInvalid shows the rejection and returns an error that only sets the exit code
func (a *app) reportInvalid(invalid *selection.InvalidTariffError, op catalog.Operator) error {
	if a.jsonOutput() {
		if err := a.writeJSON(selectionOutput{
			Operator:  op.ID,
			Price:     invalid.Price,
			Message:   invalid.Error(),
			Available: op.Tariffs(),
		}); err != nil {
			return err
		}
	} else {
		a.ui.InvalidTariff(invalid, op)
	}
	return reportedError{err: errors.Wrap(errors.TypeInvalidTariff, "tariff not offered", invalid)}
}
