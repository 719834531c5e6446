// Package catalog - Catalog validation
// Ensures catalog integrity before anything reads from it.
package catalog

import (
	"fmt"
	"strings"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(Operator) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateIdentity,
		validateHasTariffs,
		validateTariffs,
	}
}

// Validate checks every operator against the rules and collects all violations
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errs []error

	for _, op := range c.List() {
		for _, rule := range rules {
			if err := rule(op); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", op.ID, err))
			}
		}
	}

	return errs
}

func validateIdentity(op Operator) error {
	if strings.TrimSpace(op.ID) == "" {
		return fmt.Errorf("operator id is empty")
	}
	if strings.TrimSpace(op.Name) == "" {
		return fmt.Errorf("operator name is empty")
	}
	return nil
}

func validateHasTariffs(op Operator) error {
	if len(op.tariffs) == 0 {
		return fmt.Errorf("operator offers no tariffs")
	}
	return nil
}

func validateTariffs(op Operator) error {
	for i, t := range op.tariffs {
		if t.Name == "" {
			return fmt.Errorf("tariff #%d has no name", i+1)
		}
		if t.Price <= 0 {
			return fmt.Errorf("tariff %q has non-positive price %d", t.Name, t.Price)
		}
	}
	return nil
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errs := c.Validate(DefaultValidationRules())
	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		panic(fmt.Sprintf("catalog has %d validation errors: %s", len(errs), strings.Join(msgs, "; ")))
	}
}
