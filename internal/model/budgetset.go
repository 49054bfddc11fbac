package model

import (
	"fmt"

	"github.com/famcli/fam/internal/common"
	"github.com/shopspring/decimal"
)

// BudgetSet holds the user's four budgets, one per category, in
// canonical category order. The enumeration is closed: construction
// requires an allocation for every category.
type BudgetSet struct {
	budgets map[Category]*Budget
}

// NewBudgetSet builds a budget set from per-category allocations. A
// missing category is a caller bug.
func NewBudgetSet(allocations map[Category]decimal.Decimal) (*BudgetSet, error) {
	budgets := make(map[Category]*Budget, len(categoryOrder))
	for _, category := range categoryOrder {
		amount, ok := allocations[category]
		if !ok {
			return nil, fmt.Errorf("%w: %s", common.ErrMissingBudget, category.DisplayName())
		}
		budgets[category] = NewBudget(category, amount)
	}

	return &BudgetSet{budgets: budgets}, nil
}

// Get returns the budget for a category.
func (s *BudgetSet) Get(category Category) (*Budget, bool) {
	b, ok := s.budgets[category]
	return b, ok
}

// All returns the budgets in canonical category order.
func (s *BudgetSet) All() []*Budget {
	out := make([]*Budget, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		out = append(out, s.budgets[category])
	}
	return out
}

// NumLocked counts the currently locked budget categories.
func (s *BudgetSet) NumLocked() int {
	n := 0
	for _, b := range s.budgets {
		if b.Locked {
			n++
		}
	}
	return n
}
