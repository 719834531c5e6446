// Package selection validates a price-based tariff pick against an operator.
package selection

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"mobile-tariffs/core/catalog"
)

// ErrInvalidTariff matches every *InvalidTariffError via errors.Is
var ErrInvalidTariff = errors.New("invalid tariff")

// InvalidTariffError reports a price the operator offers no tariff at
type InvalidTariffError struct {
	Price    int64
	Operator string
}

// Error implements the error interface
func (e *InvalidTariffError) Error() string {
	return fmt.Sprintf("Invalid tariff: %d", e.Price)
}

// Is makes errors.Is(err, ErrInvalidTariff) hold
func (e *InvalidTariffError) Is(target error) bool {
	return target == ErrInvalidTariff
}

// Result is a successful selection
type Result struct {
	Operator catalog.Operator
	Tariff   catalog.Tariff
}

// Message is the confirmation shown to the user
func (r Result) Message() string {
	return fmt.Sprintf("Тариф за %d RUB оформлен. Спасибо, что пользуетесь нами!", r.Tariff.Price)
}

// Select picks the operator's first tariff offered at exactly price.
// It has no side effects; nothing about the selection is remembered.
func Select(op catalog.Operator, price int64) (Result, error) {
	tariff, ok := lo.Find(op.Tariffs(), func(t catalog.Tariff) bool {
		return t.Price == price
	})
	if !ok {
		return Result{}, &InvalidTariffError{Price: price, Operator: op.ID}
	}
	return Result{Operator: op, Tariff: tariff}, nil
}
