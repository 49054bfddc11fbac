package model

// SignalKind identifies the three signal kinds the core emits toward
// the display layer. The core never renders text itself.
type SignalKind string

const (
	// SignalWarning reports that a warning threshold was exceeded, or
	// that the account was locked out (account-scope, empty category).
	SignalWarning SignalKind = "warning"
	// SignalNotification reports that a budget's spend exceeded its
	// total allocation.
	SignalNotification SignalKind = "notification"
	// SignalLockedStatus reports that the budget just transacted on is
	// locked.
	SignalLockedStatus SignalKind = "locked_status"
)

// Signal is one warning, notification, or locked-status event produced
// by the lock evaluator after an accepted transaction.
type Signal struct {
	Kind SignalKind

	// Category is the affected budget category. Empty for the
	// account-scope lockout warning.
	Category Category

	// Severity is meaningful on notifications: the Rebel profile
	// renders them with heavier emphasis.
	Severity Severity
}

// AccountScoped reports whether the signal concerns the whole account
// rather than a single budget category.
func (s Signal) AccountScoped() bool {
	return s.Category == ""
}
