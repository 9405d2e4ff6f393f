package analysis

import (
	"strings"
)

// Category classifies a transaction. The zero value means the transaction has no category.
type Category string

const (
	CategoryNone          Category = ""
	CategoryFood          Category = "FOOD"
	CategoryHousing       Category = "HOUSING"
	CategoryTransport     Category = "TRANSPORT"
	CategoryUtilities     Category = "UTILITIES"
	CategoryHealth        Category = "HEALTH"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryShopping      Category = "SHOPPING"
	CategoryEducation     Category = "EDUCATION"
	CategorySalary        Category = "SALARY"
	CategoryOther         Category = "OTHER"
)

var knownCategories = map[Category]struct{}{
	CategoryFood:          {},
	CategoryHousing:       {},
	CategoryTransport:     {},
	CategoryUtilities:     {},
	CategoryHealth:        {},
	CategoryEntertainment: {},
	CategoryShopping:      {},
	CategoryEducation:     {},
	CategorySalary:        {},
	CategoryOther:         {},
}

// Valid reports whether c is a known category. CategoryNone is not valid.
func (c Category) Valid() bool {
	_, ok := knownCategories[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory parses a category name, ignoring case and surrounding whitespace.
// A blank name yields CategoryNone.
func ParseCategory(raw string) (Category, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return CategoryNone, nil
	}

	category := Category(strings.ToUpper(name))
	if !category.Valid() {
		return CategoryNone, invalidArgument("unknown category %q", raw)
	}
	return category, nil
}
