package model

import (
	"fmt"
	"time"

	"github.com/famcli/fam/internal/common"
	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of one spend event. Amounts are
// validated at construction; the validation engine never sees a
// negative amount.
type Transaction struct {
	Date     time.Time
	Amount   decimal.Decimal
	Category Category
	Merchant string
}

// NewTransaction builds a transaction for the given calendar date. The
// time of day is discarded. A negative amount or unknown category is a
// caller bug and fails fast.
func NewTransaction(date time.Time, amount decimal.Decimal, category Category, merchant string) (Transaction, error) {
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: %s", common.ErrNegativeAmount, amount)
	}
	if !category.Valid() {
		return Transaction{}, fmt.Errorf("%w: %q", common.ErrUnknownCategory, category)
	}

	return Transaction{
		Date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Amount:   amount,
		Category: category,
		Merchant: merchant,
	}, nil
}
