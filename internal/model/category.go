// Package model defines the core domain types for the FAM application.
package model

import (
	"fmt"

	"github.com/famcli/fam/internal/common"
)

// Category identifies one of the four fixed budget categories a
// transaction can be recorded under.
type Category string

const (
	// CategoryGamesAndEntertainment covers games and entertainment spending.
	CategoryGamesAndEntertainment Category = "games_and_entertainment"
	// CategoryClothingAndAccessories covers clothing and accessories spending.
	CategoryClothingAndAccessories Category = "clothing_and_accessories"
	// CategoryEatingOut covers restaurant and takeout spending.
	CategoryEatingOut Category = "eating_out"
	// CategoryMiscellaneous covers everything else.
	CategoryMiscellaneous Category = "miscellaneous"
)

// categoryOrder is the canonical ordering and the 1-based menu code
// mapping. Changing it is a breaking change for callers.
var categoryOrder = []Category{
	CategoryGamesAndEntertainment,
	CategoryClothingAndAccessories,
	CategoryEatingOut,
	CategoryMiscellaneous,
}

var categoryDisplayNames = map[Category]string{
	CategoryGamesAndEntertainment:  "Games and Entertainment",
	CategoryClothingAndAccessories: "Clothing and Accessories",
	CategoryEatingOut:              "Eating Out",
	CategoryMiscellaneous:          "Miscellaneous",
}

// Categories returns all budget categories in canonical order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// CategoryFromCode maps a 1-based menu code to its category.
func CategoryFromCode(code int) (Category, error) {
	if code < 1 || code > len(categoryOrder) {
		return "", fmt.Errorf("%w: %d", common.ErrUnknownCategory, code)
	}
	return categoryOrder[code-1], nil
}

// Code returns the stable 1-based menu code for the category.
func (c Category) Code() int {
	for i, cat := range categoryOrder {
		if cat == c {
			return i + 1
		}
	}
	return 0
}

// DisplayName returns the human-readable category name.
func (c Category) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

// Valid reports whether the category is one of the four known categories.
func (c Category) Valid() bool {
	_, ok := categoryDisplayNames[c]
	return ok
}
