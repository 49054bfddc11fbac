package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/famcli/fam/internal/model"
	"github.com/shopspring/decimal"
)

// Menu choice codes returned by the prompter. The numeric values are
// part of the user-facing contract and match the rendered menus.
const (
	StartupCreateUser = 1
	StartupLoadTest   = 2
	StartupExit       = 3

	MainViewBudgets        = 1
	MainRecordTransaction  = 2
	MainViewTransactions   = 3
	MainViewAccountDetails = 4
	MainExit               = 5

	// CategoryBack is the "Back" choice on the category selection menu.
	CategoryBack = 5
)

// Prompter collects raw input from the terminal, validates its shape,
// and hands already-typed values to the core. The core never parses
// text itself.
type Prompter struct {
	reader *lineReader
	writer io.Writer
}

// NewPrompter creates a prompter over the given streams. Nil streams
// default to stdin/stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: newLineReader(reader),
		writer: writer,
	}
}

// StartupChoice renders the startup menu and returns a valid choice.
func (p *Prompter) StartupChoice(ctx context.Context) (int, error) {
	p.printMenu("Welcome to F.A.M.", []string{
		"1. Create a new user",
		"2. Load test user",
		"3. Exit",
	})
	return p.promptIntInRange(ctx, "Enter your choice", 1, 3)
}

// MainMenuChoice renders the main menu and returns a valid choice.
func (p *Prompter) MainMenuChoice(ctx context.Context) (int, error) {
	p.printMenu("F.A.M. Main Menu", []string{
		"1. View Budgets",
		"2. Record a Transaction",
		"3. View Transactions by Budget",
		"4. View Bank Account Details",
		"5. Exit",
	})
	return p.promptIntInRange(ctx, "Enter your choice", 1, 5)
}

// CategoryChoice renders the category menu and returns a valid choice:
// a category code 1-4, or CategoryBack.
func (p *Prompter) CategoryChoice(ctx context.Context) (int, error) {
	p.printMenu("View Transactions by Budget", []string{
		"1. Games and Entertainment",
		"2. Clothing and Accessories",
		"3. Eating Out",
		"4. Miscellaneous",
		"5. Back",
	})
	return p.promptIntInRange(ctx, "Enter your choice", 1, 5)
}

// Registration walks the user through the registration form and
// returns the typed registration values.
func (p *Prompter) Registration(ctx context.Context) (model.Registration, error) {
	p.printMenu("Register a User", nil)

	name, err := p.promptLine(ctx, "Enter the Name")
	if err != nil {
		return model.Registration{}, err
	}

	age, err := p.promptInt(ctx, "Enter the Age")
	if err != nil {
		return model.Registration{}, err
	}

	p.println("Type of User (1-3):")
	p.println("  1. The Angel")
	p.println("  2. The Troublemaker")
	p.println("  3. The Rebel")
	userType, err := p.promptIntInRange(ctx, "Enter the Type of User", 1, 3)
	if err != nil {
		return model.Registration{}, err
	}

	accountID, err := p.promptLine(ctx, "Enter the Bank Account Number")
	if err != nil {
		return model.Registration{}, err
	}

	bankName, err := p.promptLine(ctx, "Enter the Name of the Bank")
	if err != nil {
		return model.Registration{}, err
	}

	balance, err := p.promptDecimal(ctx, "Enter the Current Bank Balance")
	if err != nil {
		return model.Registration{}, err
	}

	budgets := make(map[model.Category]decimal.Decimal, 4)
	for _, category := range model.Categories() {
		amount, promptErr := p.promptDecimal(ctx, fmt.Sprintf("Enter the Budget for %s", category.DisplayName()))
		if promptErr != nil {
			return model.Registration{}, promptErr
		}
		budgets[category] = amount
	}

	return model.Registration{
		Name:            name,
		Age:             age,
		UserTypeCode:    userType,
		AccountID:       accountID,
		BankName:        bankName,
		StartingBalance: balance,
		Budgets:         budgets,
	}, nil
}

// TransactionInput walks the user through the transaction form and
// returns a constructed transaction. The amount re-prompts while
// negative; the constructed transaction is always well formed.
func (p *Prompter) TransactionInput(ctx context.Context) (model.Transaction, error) {
	p.printMenu("Record a Transaction", nil)

	date, err := p.promptDate(ctx)
	if err != nil {
		return model.Transaction{}, err
	}

	var amount decimal.Decimal
	for {
		amount, err = p.promptDecimal(ctx, "Enter the Transaction Amount")
		if err != nil {
			return model.Transaction{}, err
		}
		if !amount.IsNegative() {
			break
		}
		p.println(FormatError("Please ensure the transaction amount is greater than or equal to zero and try again."))
	}

	p.println("Budget Category (1-4):")
	p.println("  1. Games and Entertainment")
	p.println("  2. Clothing and Accessories")
	p.println("  3. Eating Out")
	p.println("  4. Miscellaneous")
	code, err := p.promptIntInRange(ctx, "Enter the Budget Category", 1, 4)
	if err != nil {
		return model.Transaction{}, err
	}
	category, err := model.CategoryFromCode(code)
	if err != nil {
		return model.Transaction{}, err
	}

	merchant, err := p.promptLine(ctx, "Enter the Merchant Name")
	if err != nil {
		return model.Transaction{}, err
	}

	return model.NewTransaction(date, amount, category, merchant)
}

func (p *Prompter) promptDate(ctx context.Context) (time.Time, error) {
	for {
		year, err := p.promptInt(ctx, "Enter the Transaction Year")
		if err != nil {
			return time.Time{}, err
		}
		month, err := p.promptIntInRange(ctx, "Enter the Transaction Month", 1, 12)
		if err != nil {
			return time.Time{}, err
		}
		day, err := p.promptIntInRange(ctx, "Enter the Transaction Day", 1, 31)
		if err != nil {
			return time.Time{}, err
		}

		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if date.Day() == day && date.Month() == time.Month(month) {
			return date, nil
		}
		p.println(FormatError("That date does not exist. Please try again."))
	}
}

func (p *Prompter) promptLine(ctx context.Context, prompt string) (string, error) {
	for {
		p.print(FormatPrompt(prompt))
		line, err := p.reader.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		p.println(FormatError("Please enter a value."))
	}
}

func (p *Prompter) promptInt(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := p.promptLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(line)
		if convErr == nil {
			return value, nil
		}
		p.println(FormatError("Invalid number entered. Please enter a valid number."))
	}
}

func (p *Prompter) promptIntInRange(ctx context.Context, prompt string, low, high int) (int, error) {
	for {
		value, err := p.promptInt(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if value >= low && value <= high {
			return value, nil
		}
		p.println(FormatError("Invalid choice entered. Please enter a valid choice."))
	}
}

func (p *Prompter) promptDecimal(ctx context.Context, prompt string) (decimal.Decimal, error) {
	for {
		line, err := p.promptLine(ctx, prompt)
		if err != nil {
			return decimal.Zero, err
		}
		value, convErr := decimal.NewFromString(line)
		if convErr == nil {
			return value, nil
		}
		p.println(FormatError("Invalid amount entered. Please enter a valid amount."))
	}
}

func (p *Prompter) printMenu(title string, options []string) {
	p.println("")
	p.println(FormatTitle(title))
	for _, option := range options {
		p.println("  " + option)
	}
}

func (p *Prompter) print(text string) {
	fmt.Fprint(p.writer, text)
}

func (p *Prompter) println(text string) {
	fmt.Fprintln(p.writer, text)
}
