// Package catalog - Built-in operator seed
package catalog

// Seed returns the four built-in operators in display order
func Seed() []Operator {
	return []Operator{
		NewOperator("MEGAFON", "Megafon", "отличная", "замечательное", 200, 400, 700),
		NewOperator("MTS", "MTS", "высокая", "хорошее", 299, 499, 899),
		NewOperator("TELE2", "Tele2", "низкая", "удовлетворительное", 249, 419, 719),
		NewOperator("YOTA", "Yota", "очень низкая", "плохое", 350, 550, 850),
	}
}

// Default returns a validated catalog holding the built-in seed
func Default() *Catalog {
	c, err := New(Seed()...)
	if err != nil {
		panic(err)
	}
	c.MustValidate()
	return c
}
