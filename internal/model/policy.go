package model

import (
	"fmt"

	"github.com/famcli/fam/internal/common"
	"github.com/shopspring/decimal"
)

// UserType selects the moderation profile applied to a user's spending.
type UserType string

const (
	// UserTypeAngel is the most lenient moderation profile.
	UserTypeAngel UserType = "angel"
	// UserTypeTroublemaker is the middle moderation profile.
	UserTypeTroublemaker UserType = "troublemaker"
	// UserTypeRebel is the strictest moderation profile.
	UserTypeRebel UserType = "rebel"
)

// UserTypeFromCode maps the 1-based registration code to a user type.
func UserTypeFromCode(code int) (UserType, error) {
	switch code {
	case 1:
		return UserTypeAngel, nil
	case 2:
		return UserTypeTroublemaker, nil
	case 3:
		return UserTypeRebel, nil
	default:
		return "", fmt.Errorf("%w: %d", common.ErrUnknownUserType, code)
	}
}

// DisplayName returns the human-readable user type name.
func (u UserType) DisplayName() string {
	switch u {
	case UserTypeAngel:
		return "The Angel"
	case UserTypeTroublemaker:
		return "The Troublemaker"
	case UserTypeRebel:
		return "The Rebel"
	default:
		return string(u)
	}
}

// Severity is the display emphasis carried by notification signals.
type Severity string

const (
	// SeverityNormal renders a notification without extra emphasis.
	SeverityNormal Severity = "normal"
	// SeverityEmphasized renders a notification with heavy emphasis.
	SeverityEmphasized Severity = "emphasized"
)

// PolicyProfile bundles the thresholds and flags that define a user
// type's spending moderation behavior. Immutable once constructed; one
// instance per user for the session.
type PolicyProfile struct {
	UserType UserType

	// LockThreshold is the spend-to-total ratio above which a budget
	// category auto-locks. Invalid means the profile never auto-locks.
	LockThreshold decimal.NullDecimal

	// WarningThreshold is the spend-to-total ratio above which a
	// warning signal is emitted.
	WarningThreshold decimal.Decimal

	// MaxLockedBudgets is the count of simultaneously locked budget
	// categories that locks the whole account. Zero means the account
	// never locks from the category count.
	MaxLockedBudgets int

	// PersistentWarning causes warning checks to scan all budget
	// categories, not just the one just transacted on.
	PersistentWarning bool

	// NotificationSeverity is the emphasis carried by over-budget
	// notification signals for this profile.
	NotificationSeverity Severity
}

// ProfileForUserType returns the policy profile for the given user type.
func ProfileForUserType(userType UserType) (PolicyProfile, error) {
	switch userType {
	case UserTypeAngel:
		return PolicyProfile{
			UserType:             UserTypeAngel,
			WarningThreshold:     decimal.RequireFromString("0.9"),
			NotificationSeverity: SeverityNormal,
		}, nil
	case UserTypeTroublemaker:
		return PolicyProfile{
			UserType:             UserTypeTroublemaker,
			LockThreshold:        decimal.NewNullDecimal(decimal.RequireFromString("1.2")),
			WarningThreshold:     decimal.RequireFromString("0.75"),
			NotificationSeverity: SeverityNormal,
		}, nil
	case UserTypeRebel:
		return PolicyProfile{
			UserType:             UserTypeRebel,
			LockThreshold:        decimal.NewNullDecimal(decimal.NewFromInt(1)),
			WarningThreshold:     decimal.RequireFromString("0.5"),
			MaxLockedBudgets:     2,
			PersistentWarning:    true,
			NotificationSeverity: SeverityEmphasized,
		}, nil
	default:
		return PolicyProfile{}, fmt.Errorf("%w: %q", common.ErrUnknownUserType, userType)
	}
}
