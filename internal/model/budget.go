package model

import "github.com/shopspring/decimal"

// Budget tracks one category's allocation and spend-to-date. AmountTotal
// is fixed at creation; AmountSpent only grows; Locked is monotonic and
// never cleared automatically.
type Budget struct {
	Category    Category
	AmountTotal decimal.Decimal
	AmountSpent decimal.Decimal
	Locked      bool
}

// NewBudget creates an unlocked budget with nothing spent.
func NewBudget(category Category, amountTotal decimal.Decimal) *Budget {
	return &Budget{
		Category:    category,
		AmountTotal: amountTotal,
		AmountSpent: decimal.Zero,
	}
}

// Available returns the remaining allocation. It may be negative once
// spending exceeds the total.
func (b *Budget) Available() decimal.Decimal {
	return b.AmountTotal.Sub(b.AmountSpent)
}

// Spend records an accepted transaction amount against the budget.
func (b *Budget) Spend(amount decimal.Decimal) {
	b.AmountSpent = b.AmountSpent.Add(amount)
}

// Lock marks the budget category as locked. There is no unlock.
func (b *Budget) Lock() {
	b.Locked = true
}

// SpentRatio returns spend-to-total. ok is false for a zero-total
// budget, which must never be divided.
func (b *Budget) SpentRatio() (ratio decimal.Decimal, ok bool) {
	if b.AmountTotal.IsZero() {
		return decimal.Zero, false
	}
	return b.AmountSpent.Div(b.AmountTotal), true
}
