package model

import (
	"testing"
	"time"

	"github.com/famcli/fam/internal/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	t.Run("valid transaction", func(t *testing.T) {
		tx, err := NewTransaction(
			time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			decimal.RequireFromString("42.50"),
			CategoryEatingOut,
			"Noodle House",
		)
		require.NoError(t, err)

		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("42.50")))
		assert.Equal(t, CategoryEatingOut, tx.Category)
		assert.Equal(t, "Noodle House", tx.Merchant)
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		_, err := NewTransaction(time.Now(), decimal.Zero, CategoryMiscellaneous, "Freebie")
		require.NoError(t, err)
	})

	t.Run("negative amount is rejected at the boundary", func(t *testing.T) {
		_, err := NewTransaction(time.Now(), decimal.NewFromInt(-1), CategoryEatingOut, "Refund")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrNegativeAmount)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := NewTransaction(time.Now(), decimal.NewFromInt(5), Category("groceries"), "Market")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrUnknownCategory)
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		tx, err := NewTransaction(
			time.Date(2024, time.March, 15, 17, 45, 12, 999, time.Local),
			decimal.NewFromInt(1),
			CategoryMiscellaneous,
			"Corner Store",
		)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), tx.Date)
	})
}
