package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/famcli/fam/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainMenuChoice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "valid choice", input: "2\n", want: 2},
		{name: "non-numeric input re-prompts", input: "abc\n4\n", want: 4},
		{name: "out of range re-prompts", input: "9\n0\n5\n", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.MainMenuChoice(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStartupChoice(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("3\n"), &out)

	got, err := p.StartupChoice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StartupExit, got)
	assert.Contains(t, out.String(), "Welcome to F.A.M.")
}

func TestCategoryChoiceBack(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("5\n"), &out)

	got, err := p.CategoryChoice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CategoryBack, got)
}

func TestRegistration(t *testing.T) {
	input := strings.Join([]string{
		"Edwin Pau", // name
		"31",        // age
		"3",         // user type
		"A01074676", // account number
		"TD Bank",   // bank name
		"5000",      // balance
		"200",       // games and entertainment
		"200",       // clothing and accessories
		"500",       // eating out
		"100",       // miscellaneous
	}, "\n") + "\n"

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(input), &out)

	reg, err := p.Registration(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Edwin Pau", reg.Name)
	assert.Equal(t, 31, reg.Age)
	assert.Equal(t, 3, reg.UserTypeCode)
	assert.Equal(t, "A01074676", reg.AccountID)
	assert.Equal(t, "TD Bank", reg.BankName)
	assert.True(t, reg.StartingBalance.Equal(decimal.NewFromInt(5000)))
	require.Len(t, reg.Budgets, 4)
	assert.True(t, reg.Budgets[model.CategoryEatingOut].Equal(decimal.NewFromInt(500)))
}

func TestTransactionInput(t *testing.T) {
	t.Run("valid transaction", func(t *testing.T) {
		input := strings.Join([]string{
			"2024",         // year
			"6",            // month
			"15",           // day
			"42.50",        // amount
			"3",            // category: eating out
			"Noodle House", // merchant
		}, "\n") + "\n"

		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(input), &out)

		tx, err := p.TransactionInput(context.Background())
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), tx.Date)
		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("42.50")))
		assert.Equal(t, model.CategoryEatingOut, tx.Category)
		assert.Equal(t, "Noodle House", tx.Merchant)
	})

	t.Run("negative amount re-prompts", func(t *testing.T) {
		input := strings.Join([]string{
			"2024", "6", "15",
			"-5", // negative, re-prompts
			"10",
			"4",
			"Corner Store",
		}, "\n") + "\n"

		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(input), &out)

		tx, err := p.TransactionInput(context.Background())
		require.NoError(t, err)
		assert.True(t, tx.Amount.Equal(decimal.NewFromInt(10)))
		assert.Contains(t, out.String(), "greater than or equal to zero")
	})

	t.Run("impossible date re-prompts", func(t *testing.T) {
		input := strings.Join([]string{
			"2023", "2", "30", // February 30th does not exist
			"2023", "2", "28",
			"5",
			"1",
			"Arcade",
		}, "\n") + "\n"

		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(input), &out)

		tx, err := p.TransactionInput(context.Background())
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), tx.Date)
	})
}

func TestPrompterContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A reader that never yields input.
	blocked, _ := blockedPipe(t)
	var out bytes.Buffer
	p := NewPrompter(blocked, &out)

	_, err := p.MainMenuChoice(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputCancelled)
}
