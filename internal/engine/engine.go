package engine

import (
	"fmt"

	"github.com/famcli/fam/internal/common"
	"github.com/famcli/fam/internal/ledger"
	"github.com/famcli/fam/internal/model"
	"github.com/shopspring/decimal"
)

// Engine owns one user's session state and applies the accepted
// transaction sequence: spend, debit, append, update locks, issue
// warnings. It is the only component allowed to mutate the account,
// budgets, and ledger.
type Engine struct {
	user   *model.User
	ledger *ledger.Ledger
	locks  *LockEvaluator
}

// Outcome reports the result of recording one proposed transaction.
// A rejection is a normal outcome, not an error: Reasons carries every
// failing check and no state was touched.
type Outcome struct {
	Accepted bool
	Reasons  []string

	// Sequence is the ledger sequence assigned on acceptance.
	Sequence int

	// Signals are the warning, notification, and locked-status events
	// produced by lock evaluation after an accepted transaction.
	Signals []model.Signal
}

// Summary is the spending summary snapshot for the account view.
type Summary struct {
	StartingBalance decimal.Decimal
	TotalSpent      decimal.Decimal
	ClosingBalance  decimal.Decimal
}

// New creates a session engine for a freshly registered user.
func New(user *model.User) *Engine {
	return &Engine{
		user:   user,
		ledger: ledger.New(),
		locks:  NewLockEvaluator(user.Policy),
	}
}

// RecordTransaction validates the proposed transaction and, when it is
// accepted, applies the mutation sequence atomically: the budget's
// spend, the account debit, the ledger append, lock propagation, and
// warning evaluation. A transaction against an unknown category is a
// caller bug and returns an error with no state change.
func (e *Engine) RecordTransaction(tx model.Transaction) (Outcome, error) {
	budget, ok := e.user.Budgets.Get(tx.Category)
	if !ok {
		return Outcome{}, fmt.Errorf("recording transaction: %w: %q", common.ErrUnknownCategory, tx.Category)
	}

	decision := Validate(tx, budget, e.user.Account, e.user.Policy)
	if !decision.Accepted {
		common.LogDebug("transaction rejected", common.Fields{
			"category": tx.Category,
			"amount":   tx.Amount,
			"reasons":  decision.Reasons,
		})
		return Outcome{Accepted: false, Reasons: decision.Reasons}, nil
	}

	budget.Spend(tx.Amount)
	e.user.Account.Debit(tx.Amount)
	seq := e.ledger.Append(tx)

	signals := e.locks.UpdateLocks(e.user)
	signals = append(signals, e.locks.IssueWarnings(e.user, budget)...)

	common.LogDebug("transaction recorded", common.Fields{
		"sequence": seq,
		"category": tx.Category,
		"amount":   tx.Amount,
		"signals":  len(signals),
	})

	return Outcome{
		Accepted: true,
		Sequence: seq,
		Signals:  signals,
	}, nil
}

// User returns the session's user identity fields.
func (e *Engine) User() (name string, age int, userType model.UserType) {
	return e.user.Name, e.user.Age, e.user.Policy.UserType
}

// Policy returns the session's policy profile.
func (e *Engine) Policy() model.PolicyProfile {
	return e.user.Policy
}

// Account returns a read-only snapshot of the account.
func (e *Engine) Account() model.Account {
	return *e.user.Account
}

// Budgets returns read-only snapshots of the four budgets in canonical
// category order.
func (e *Engine) Budgets() []model.Budget {
	all := e.user.Budgets.All()
	out := make([]model.Budget, 0, len(all))
	for _, b := range all {
		out = append(out, *b)
	}
	return out
}

// Budget returns a read-only snapshot of one category's budget.
func (e *Engine) Budget(category model.Category) (model.Budget, bool) {
	b, ok := e.user.Budgets.Get(category)
	if !ok {
		return model.Budget{}, false
	}
	return *b, true
}

// Transactions returns all ledger entries in sequence order.
func (e *Engine) Transactions() []ledger.Entry {
	return e.ledger.Entries()
}

// TransactionsByCategory returns the ledger entries for one category.
func (e *Engine) TransactionsByCategory(category model.Category) []ledger.Entry {
	return e.ledger.ByCategory(category)
}

// TotalSpent returns the sum of all recorded transaction amounts.
func (e *Engine) TotalSpent() decimal.Decimal {
	return e.ledger.TotalSpent()
}

// Summary returns the spending summary for the account details view.
func (e *Engine) Summary() Summary {
	return Summary{
		StartingBalance: e.user.Account.StartingBalance,
		TotalSpent:      e.ledger.TotalSpent(),
		ClosingBalance:  e.user.Account.CurrentBalance,
	}
}
