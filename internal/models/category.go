package model

import (
	"strings"

	apperrors "todo-list.com/todo-list/internal/errors"
)

// Category is the closed set of labels a task can carry.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryShopping Category = "Shopping"
	CategoryHealth   Category = "Health"
	CategoryOther    Category = "Other"
)

var categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryShopping,
	CategoryHealth,
	CategoryOther,
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory maps a token to its category, ignoring case.
// Unknown tokens are rejected rather than coerced to Other.
func ParseCategory(token string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(token, string(c)) {
			return c, nil
		}
	}
	return "", apperrors.InvalidCategory(token)
}

func (c Category) String() string {
	return string(c)
}

// Valid reports whether c is one of the canonical display strings.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}
