package cli

import (
	"fmt"
	"io"

	"github.com/famcli/fam/internal/engine"
	"github.com/famcli/fam/internal/ledger"
	"github.com/famcli/fam/internal/model"
	"github.com/shopspring/decimal"
)

// Display renders read-only core snapshots for the terminal. All text
// formatting lives here; the core only hands over values and signals.
type Display struct {
	writer io.Writer
}

// NewDisplay creates a display over the given writer.
func NewDisplay(writer io.Writer) *Display {
	return &Display{writer: writer}
}

// Budgets renders every budget's details.
func (d *Display) Budgets(budgets []model.Budget) {
	d.println("")
	d.println(FormatTitle("View Budgets"))
	for _, b := range budgets {
		d.println(RenderBox(b.Category.DisplayName(), d.budgetLines(b)))
	}
}

// Budget renders a single budget's details.
func (d *Display) Budget(b model.Budget) {
	d.println(RenderBox(b.Category.DisplayName(), d.budgetLines(b)))
}

// Account renders the bank account details.
func (d *Display) Account(a model.Account) {
	content := fmt.Sprintf(
		"Account Number: %s\nBank Name: %s\nStarting Balance: %s\nCurrent Balance: %s\nAccount Locked: %t",
		a.AccountID,
		a.BankName,
		a.StartingBalance.StringFixed(2),
		a.CurrentBalance.StringFixed(2),
		a.Locked,
	)
	d.println(RenderBox("Bank Account Details", content))
}

// Transaction renders one ledger entry.
func (d *Display) Transaction(e ledger.Entry) {
	d.println(fmt.Sprintf("Transaction #%d:", e.Sequence))
	d.println(fmt.Sprintf("  Timestamp: %s", e.Transaction.Date.Format("2006-01-02")))
	d.println(fmt.Sprintf("  Amount: %s", e.Transaction.Amount.StringFixed(2)))
	d.println(fmt.Sprintf("  Merchant Name: %s", e.Transaction.Merchant))
}

// Transactions renders a list of ledger entries, or a placeholder when
// there are none.
func (d *Display) Transactions(entries []ledger.Entry) {
	if len(entries) == 0 {
		d.println(SubtleStyle.Render("  No transactions recorded."))
		return
	}
	for _, e := range entries {
		d.println("")
		d.Transaction(e)
	}
}

// Summary renders the spending summary for the account details view.
func (d *Display) Summary(s engine.Summary) {
	content := fmt.Sprintf(
		"Starting Bank Balance: %s\nTotal Transactions Amount: %s\nClosing Bank Account Balance: %s",
		s.StartingBalance.StringFixed(2),
		s.TotalSpent.StringFixed(2),
		s.ClosingBalance.StringFixed(2),
	)
	d.println(RenderBox("Spending Summary", content))
}

// Rejection renders every reason a transaction was refused, along with
// the account and budget state the user needs to understand why.
func (d *Display) Rejection(reasons []string, account model.Account, budget model.Budget) {
	d.println("")
	d.println(FormatWarning("Unable to record transaction!"))
	for _, reason := range reasons {
		d.println(ErrorStyle.Render("  " + ErrorIcon + " " + reason))
	}
	d.Account(account)
	d.Budget(budget)
}

// Signals renders the warning, notification, and locked-status signals
// produced after an accepted transaction.
func (d *Display) Signals(signals []model.Signal, policy model.PolicyProfile) {
	for _, s := range signals {
		switch s.Kind {
		case model.SignalWarning:
			if s.AccountScoped() {
				d.println(FormatError("The account has been locked out completely for exceeding the budgets in too many categories!"))
				continue
			}
			threshold := policy.WarningThreshold.Mul(hundred)
			d.println(FormatWarning(fmt.Sprintf(
				"You have exceeded more than %s%% in the %s budget category!",
				threshold.String(), s.Category.DisplayName())))
		case model.SignalNotification:
			message := fmt.Sprintf(
				"Notification: Budget category %s exceeded!\nYou should use the main menu to review your budget allowance in each category.",
				s.Category.DisplayName())
			if s.Severity == model.SeverityEmphasized {
				d.println(FormatBanner(message))
			} else {
				d.println(ErrorStyle.Render(message))
			}
		case model.SignalLockedStatus:
			d.println(FormatInfo(fmt.Sprintf("%s The %s budget category is locked.", LockIcon, s.Category.DisplayName())))
		}
	}
}

func (d *Display) budgetLines(b model.Budget) string {
	return fmt.Sprintf(
		"Amount Total: %s\nAmount Spent: %s\nAmount Available: %s\nBudget Locked: %t",
		b.AmountTotal.StringFixed(2),
		b.AmountSpent.StringFixed(2),
		b.Available().StringFixed(2),
		b.Locked,
	)
}

func (d *Display) println(text string) {
	fmt.Fprintln(d.writer, text)
}

var hundred = decimal.NewFromInt(100)
