package config

import (
	"fmt"

	"github.com/famcli/fam/internal/common"
	"github.com/famcli/fam/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Fixture defaults: the built-in test user loadable from the startup
// menu. Every value can be overridden under the fixture.* config keys.
const (
	defaultFixtureName      = "Edwin Pau"
	defaultFixtureAge       = 31
	defaultFixtureUserType  = 3
	defaultFixtureAccountID = "A01074676"
	defaultFixtureBankName  = "TD Bank"
	defaultFixtureBalance   = "5000"
)

var defaultFixtureBudgets = map[model.Category]string{
	model.CategoryGamesAndEntertainment:  "200",
	model.CategoryClothingAndAccessories: "200",
	model.CategoryEatingOut:              "500",
	model.CategoryMiscellaneous:          "100",
}

// SetFixtureDefaults registers the test-user defaults with viper. Call
// once before reading the config file so file values take precedence.
func SetFixtureDefaults(v *viper.Viper) {
	v.SetDefault("fixture.name", defaultFixtureName)
	v.SetDefault("fixture.age", defaultFixtureAge)
	v.SetDefault("fixture.user_type", defaultFixtureUserType)
	v.SetDefault("fixture.account_id", defaultFixtureAccountID)
	v.SetDefault("fixture.bank_name", defaultFixtureBankName)
	v.SetDefault("fixture.balance", defaultFixtureBalance)
	for category, amount := range defaultFixtureBudgets {
		v.SetDefault("fixture.budgets."+string(category), amount)
	}
}

// TestUserRegistration builds the test user's registration values from
// config. Blanked-out or malformed overrides are configuration errors.
func TestUserRegistration(v *viper.Viper) (model.Registration, error) {
	for _, key := range []string{"fixture.name", "fixture.account_id", "fixture.bank_name"} {
		if v.GetString(key) == "" {
			return model.Registration{}, fmt.Errorf("%w: %s", common.ErrMissingConfig, key)
		}
	}

	balance, err := decimal.NewFromString(v.GetString("fixture.balance"))
	if err != nil {
		return model.Registration{}, fmt.Errorf("%w: fixture.balance: %v", common.ErrInvalidConfig, err)
	}

	budgets := make(map[model.Category]decimal.Decimal, len(defaultFixtureBudgets))
	for _, category := range model.Categories() {
		key := "fixture.budgets." + string(category)
		amount, parseErr := decimal.NewFromString(v.GetString(key))
		if parseErr != nil {
			return model.Registration{}, fmt.Errorf("%w: %s: %v", common.ErrInvalidConfig, key, parseErr)
		}
		budgets[category] = amount
	}

	return model.Registration{
		Name:            v.GetString("fixture.name"),
		Age:             v.GetInt("fixture.age"),
		UserTypeCode:    v.GetInt("fixture.user_type"),
		AccountID:       v.GetString("fixture.account_id"),
		BankName:        v.GetString("fixture.bank_name"),
		StartingBalance: balance,
		Budgets:         budgets,
	}, nil
}
