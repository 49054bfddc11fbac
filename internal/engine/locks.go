package engine

import (
	"github.com/famcli/fam/internal/model"
	"github.com/shopspring/decimal"
)

// LockEvaluator recomputes lock state after an accepted transaction and
// determines which signals to emit. All locking is monotonic: nothing
// here ever unlocks a budget or the account.
type LockEvaluator struct {
	policy model.PolicyProfile
}

// NewLockEvaluator creates an evaluator for the session's policy.
func NewLockEvaluator(policy model.PolicyProfile) *LockEvaluator {
	return &LockEvaluator{policy: policy}
}

// UpdateLocks locks every budget whose spent-to-total ratio exceeds the
// policy's lock threshold, then locks the account once enough budget
// categories are locked. A zero-total budget never auto-locks: the
// ratio check is skipped rather than dividing by zero. Calling this
// again without a new transaction changes nothing.
func (e *LockEvaluator) UpdateLocks(user *model.User) []model.Signal {
	if e.policy.LockThreshold.Valid {
		for _, budget := range user.Budgets.All() {
			ratio, ok := budget.SpentRatio()
			if !ok {
				continue
			}
			if ratio.GreaterThan(e.policy.LockThreshold.Decimal) {
				budget.Lock()
			}
		}
	}

	var signals []model.Signal

	numLocked := user.Budgets.NumLocked()
	if e.policy.MaxLockedBudgets > 0 && numLocked >= e.policy.MaxLockedBudgets {
		alreadyLocked := user.Account.Locked
		user.Account.Lock()
		if !alreadyLocked {
			signals = append(signals, model.Signal{
				Kind:     model.SignalWarning,
				Severity: model.SeverityNormal,
			})
		}
	}

	return signals
}

// IssueWarnings inspects the budget just transacted on and reports
// which warning, notification, and locked-status signals apply. With
// the persistent-warning flag the warning scan covers every budget,
// not just the current one.
func (e *LockEvaluator) IssueWarnings(user *model.User, current *model.Budget) []model.Signal {
	warn := false
	if e.policy.PersistentWarning {
		for _, budget := range user.Budgets.All() {
			r, ok := budget.SpentRatio()
			if ok && r.GreaterThan(e.policy.WarningThreshold) {
				warn = true
			}
		}
	}

	// A zero-total budget has no ratio: it fails closed and can only
	// warn through its locked flag.
	notify := false
	if ratio, ok := current.SpentRatio(); ok {
		if ratio.GreaterThan(e.policy.WarningThreshold) {
			warn = true
		}
		notify = ratio.GreaterThan(decimal.NewFromInt(1))
	}
	if current.Locked {
		warn = true
	}

	var signals []model.Signal
	if warn {
		signals = append(signals, model.Signal{
			Kind:     model.SignalWarning,
			Category: current.Category,
			Severity: model.SeverityNormal,
		})
	}
	if notify {
		signals = append(signals, model.Signal{
			Kind:     model.SignalNotification,
			Category: current.Category,
			Severity: e.policy.NotificationSeverity,
		})
	}
	if current.Locked {
		signals = append(signals, model.Signal{
			Kind:     model.SignalLockedStatus,
			Category: current.Category,
			Severity: model.SeverityNormal,
		})
	}

	return signals
}
