package config

import (
	"testing"

	"github.com/famcli/fam/internal/common"
	"github.com/famcli/fam/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestUserRegistrationDefaults(t *testing.T) {
	v := viper.New()
	SetFixtureDefaults(v)

	reg, err := TestUserRegistration(v)
	require.NoError(t, err)

	assert.Equal(t, "Edwin Pau", reg.Name)
	assert.Equal(t, 31, reg.Age)
	assert.Equal(t, 3, reg.UserTypeCode)
	assert.Equal(t, "A01074676", reg.AccountID)
	assert.Equal(t, "TD Bank", reg.BankName)
	assert.True(t, reg.StartingBalance.Equal(decimal.NewFromInt(5000)))
	assert.True(t, reg.Budgets[model.CategoryEatingOut].Equal(decimal.NewFromInt(500)))

	// The fixture always builds a valid user.
	user, err := model.NewUser(reg)
	require.NoError(t, err)
	assert.Equal(t, model.UserTypeRebel, user.Policy.UserType)
}

func TestTestUserRegistrationOverrides(t *testing.T) {
	v := viper.New()
	SetFixtureDefaults(v)
	v.Set("fixture.name", "Ada")
	v.Set("fixture.user_type", 1)
	v.Set("fixture.budgets.eating_out", "750.50")

	reg, err := TestUserRegistration(v)
	require.NoError(t, err)

	assert.Equal(t, "Ada", reg.Name)
	assert.Equal(t, 1, reg.UserTypeCode)
	assert.True(t, reg.Budgets[model.CategoryEatingOut].Equal(decimal.RequireFromString("750.50")))
}

func TestTestUserRegistrationBlankedOutField(t *testing.T) {
	v := viper.New()
	SetFixtureDefaults(v)
	v.Set("fixture.bank_name", "")

	_, err := TestUserRegistration(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestTestUserRegistrationMalformedAmount(t *testing.T) {
	v := viper.New()
	SetFixtureDefaults(v)
	v.Set("fixture.balance", "not-a-number")

	_, err := TestUserRegistration(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestExpandPath(t *testing.T) {
	t.Setenv("FAM_TEST_DIR", "/tmp/fam")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, "/tmp/fam/config.yaml", ExpandPath("$FAM_TEST_DIR/config.yaml"))
	assert.NotContains(t, ExpandPath("~/config.yaml"), "~")
}
