package model

import "github.com/shopspring/decimal"

// Account is the linked bank account funding the user's spending.
// StartingBalance is fixed at creation. CurrentBalance may go negative:
// the balance floor is validation's responsibility, not the entity's.
// Locked is monotonic and never cleared automatically.
type Account struct {
	AccountID       string
	BankName        string
	StartingBalance decimal.Decimal
	CurrentBalance  decimal.Decimal
	Locked          bool
}

// NewAccount creates an unlocked account with the given opening balance.
func NewAccount(accountID, bankName string, startingBalance decimal.Decimal) *Account {
	return &Account{
		AccountID:       accountID,
		BankName:        bankName,
		StartingBalance: startingBalance,
		CurrentBalance:  startingBalance,
	}
}

// Debit reduces the current balance by an accepted transaction amount.
func (a *Account) Debit(amount decimal.Decimal) {
	a.CurrentBalance = a.CurrentBalance.Sub(amount)
}

// Lock marks the account as locked. There is no unlock.
func (a *Account) Lock() {
	a.Locked = true
}
