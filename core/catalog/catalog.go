// Package catalog - Mobile operator tariff catalog
// Holds the fixed set of operators and their tariff plans.
// A Catalog is complete once New returns; it has no mutators.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrDuplicateOperator is returned when an operator ID is registered twice
var ErrDuplicateOperator = errors.New("duplicate operator")

// Tariff is a named price point offered by an operator
type Tariff struct {
	Name  string `json:"name"`
	Price int64  `json:"price"` // RUB
}

// String returns the display form
func (t Tariff) String() string {
	return fmt.Sprintf("%s - %d RUB", t.Name, t.Price)
}

// TariffName returns the sequential name of the n-th tariff (1-based)
func TariffName(n int) string {
	return fmt.Sprintf("Тариф %d", n)
}

// Operator is a mobile network provider with its tariffs
type Operator struct {
	ID      string
	Name    string
	Speed   string
	Quality string

	tariffs []Tariff
}

// NewOperator creates an operator whose tariffs are named "Тариф 1".."Тариф N"
// after the given prices, in order.
func NewOperator(id, name, speed, quality string, prices ...int64) Operator {
	return Operator{
		ID:      id,
		Name:    name,
		Speed:   speed,
		Quality: quality,
		tariffs: lo.Map(prices, func(price int64, i int) Tariff {
			return Tariff{Name: TariffName(i + 1), Price: price}
		}),
	}
}

// Tariffs returns a copy of the operator's tariffs in offer order
func (o Operator) Tariffs() []Tariff {
	out := make([]Tariff, len(o.tariffs))
	copy(out, o.tariffs)
	return out
}

// MarshalJSON exposes the tariff list alongside the descriptors
func (o Operator) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID      string   `json:"id"`
		Name    string   `json:"name"`
		Speed   string   `json:"speed"`
		Quality string   `json:"quality"`
		Tariffs []Tariff `json:"tariffs"`
	}{o.ID, o.Name, o.Speed, o.Quality, o.tariffs})
}

// Catalog is the authoritative operator catalog
type Catalog struct {
	operators map[string]Operator
	order     []string
}

// New builds a catalog holding ops in the given order.
// IDs are compared case-insensitively; a repeated ID is rejected.
func New(ops ...Operator) (*Catalog, error) {
	c := &Catalog{
		operators: make(map[string]Operator, len(ops)),
	}
	for _, op := range ops {
		if err := c.register(op); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func key(id string) string {
	return strings.ToUpper(id)
}

func (c *Catalog) register(op Operator) error {
	k := key(op.ID)
	if _, exists := c.operators[k]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOperator, op.ID)
	}
	c.operators[k] = op
	c.order = append(c.order, k)
	return nil
}

// Get returns the operator with the given ID, ignoring case
func (c *Catalog) Get(id string) (Operator, bool) {
	op, ok := c.operators[key(id)]
	return op, ok
}

// List returns all operators in construction order
func (c *Catalog) List() []Operator {
	return lo.Map(c.order, func(k string, _ int) Operator {
		return c.operators[k]
	})
}

// Len returns the number of operators
func (c *Catalog) Len() int {
	return len(c.order)
}
