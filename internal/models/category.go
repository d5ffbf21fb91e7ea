package models

import "fmt"

// Category is the class an account belongs to in the books.
type Category string

const (
	Asset     Category = "asset"
	Liability Category = "liability"
	Equity    Category = "equity"
	Revenue   Category = "revenue"
	Expense   Category = "expense"
)

// Categories lists every category in reporting order.
var Categories = []Category{Asset, Liability, Equity, Revenue, Expense}

// ParseCategory converts a textual category into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown account category %q", s)
	}
	return c, nil
}

// IsValid reports whether c is one of the five known categories.
func (c Category) IsValid() bool {
	switch c {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// DebitNormal reports whether debits increase the balance of accounts in c.
// Assets and expenses are debit-normal, everything else is credit-normal.
func (c Category) DebitNormal() bool {
	return c == Asset || c == Expense
}

// Increasing returns the side that raises the balance of accounts in c.
func (c Category) Increasing() Side {
	if c.DebitNormal() {
		return Debit
	}
	return Credit
}

// Decreasing returns the side that lowers the balance of accounts in c.
func (c Category) Decreasing() Side {
	return c.Increasing().Opposite()
}
