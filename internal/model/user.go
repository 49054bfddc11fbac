package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Registration carries the already-typed values collected by the CLI
// at startup. The core never parses raw text.
type Registration struct {
	Name            string
	Age             int
	UserTypeCode    int
	AccountID       string
	BankName        string
	StartingBalance decimal.Decimal
	Budgets         map[Category]decimal.Decimal
}

// User aggregates everything owned by one session: the account, the
// four budgets, and the policy profile selected at registration. The
// ledger lives alongside in the engine's session state.
type User struct {
	Name    string
	Age     int
	Account *Account
	Budgets *BudgetSet
	Policy  PolicyProfile
}

// NewUser builds a user from registration data. An unrecognized user
// type or a missing budget category indicates a broken caller contract
// and aborts construction.
func NewUser(reg Registration) (*User, error) {
	userType, err := UserTypeFromCode(reg.UserTypeCode)
	if err != nil {
		return nil, fmt.Errorf("registering user %q: %w", reg.Name, err)
	}

	policy, err := ProfileForUserType(userType)
	if err != nil {
		return nil, fmt.Errorf("registering user %q: %w", reg.Name, err)
	}

	budgets, err := NewBudgetSet(reg.Budgets)
	if err != nil {
		return nil, fmt.Errorf("registering user %q: %w", reg.Name, err)
	}

	return &User{
		Name:    reg.Name,
		Age:     reg.Age,
		Account: NewAccount(reg.AccountID, reg.BankName, reg.StartingBalance),
		Budgets: budgets,
		Policy:  policy,
	}, nil
}
