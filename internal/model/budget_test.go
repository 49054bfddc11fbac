package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetAvailable(t *testing.T) {
	tests := []struct {
		name  string
		total string
		spent string
		want  string
	}{
		{name: "nothing spent", total: "200", spent: "0", want: "200"},
		{name: "partial spend", total: "200", spent: "75.50", want: "124.50"},
		{name: "fully spent", total: "200", spent: "200", want: "0"},
		{name: "overspent goes negative", total: "100", spent: "150.25", want: "-50.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBudget(CategoryEatingOut, decimal.RequireFromString(tt.total))
			b.Spend(decimal.RequireFromString(tt.spent))

			assert.True(t, b.Available().Equal(decimal.RequireFromString(tt.want)),
				"available = %s, want %s", b.Available(), tt.want)
		})
	}
}

func TestBudgetSpendAccumulates(t *testing.T) {
	b := NewBudget(CategoryMiscellaneous, decimal.NewFromInt(100))
	b.Spend(decimal.RequireFromString("10.10"))
	b.Spend(decimal.RequireFromString("20.20"))

	assert.True(t, b.AmountSpent.Equal(decimal.RequireFromString("30.30")))
}

func TestBudgetSpentRatio(t *testing.T) {
	t.Run("regular ratio", func(t *testing.T) {
		b := NewBudget(CategoryEatingOut, decimal.NewFromInt(200))
		b.Spend(decimal.NewFromInt(190))

		ratio, ok := b.SpentRatio()
		require.True(t, ok)
		assert.True(t, ratio.Equal(decimal.RequireFromString("0.95")))
	})

	t.Run("zero total never divides", func(t *testing.T) {
		b := NewBudget(CategoryEatingOut, decimal.Zero)
		b.Spend(decimal.NewFromInt(10))

		_, ok := b.SpentRatio()
		assert.False(t, ok)
	})
}

func TestBudgetLockIsMonotonic(t *testing.T) {
	b := NewBudget(CategoryClothingAndAccessories, decimal.NewFromInt(50))
	assert.False(t, b.Locked)

	b.Lock()
	assert.True(t, b.Locked)

	// Nothing defined on Budget clears the flag.
	b.Lock()
	b.Spend(decimal.NewFromInt(1))
	assert.True(t, b.Locked)
}
