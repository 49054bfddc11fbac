// Package engine implements the spending policy core: transaction
// validation, post-acceptance lock propagation, and warning signals.
package engine

import "github.com/famcli/fam/internal/model"

// Rejection reasons, in the fixed order validation appends them. These
// strings are the stable contract with the display layer.
const (
	ReasonAccountLocked          = "account locked out"
	ReasonBudgetLocked           = "budget category locked"
	ReasonExceedsCategoryCeiling = "exceeds allowable budget available for category"
	ReasonInsufficientBalance    = "insufficient bank balance"
)

// Decision is the outcome of validating one proposed transaction.
// When rejected, Reasons holds every failing check, not just the first.
type Decision struct {
	Accepted bool
	Reasons  []string
}

// Validate decides whether a proposed transaction may be recorded. All
// four checks run independently; the decision is accepted only when
// none failed. Validation is read-only: nothing is mutated here.
//
// The category ceiling check compares the amount against the total
// allocation scaled by the policy's lock threshold. This is the fixed,
// total-based ceiling: it does not tighten as spend accrues. (An
// available-based variant of this check exists historically; the
// total-based rule is the one implemented.)
func Validate(tx model.Transaction, budget *model.Budget, account *model.Account, policy model.PolicyProfile) Decision {
	var reasons []string

	if account.Locked {
		reasons = append(reasons, ReasonAccountLocked)
	}

	if budget.Locked {
		reasons = append(reasons, ReasonBudgetLocked)
	}

	if policy.LockThreshold.Valid {
		ceiling := budget.AmountTotal.Mul(policy.LockThreshold.Decimal)
		if tx.Amount.GreaterThan(ceiling) {
			reasons = append(reasons, ReasonExceedsCategoryCeiling)
		}
	}

	if tx.Amount.GreaterThan(account.CurrentBalance) {
		reasons = append(reasons, ReasonInsufficientBalance)
	}

	return Decision{
		Accepted: len(reasons) == 0,
		Reasons:  reasons,
	}
}
