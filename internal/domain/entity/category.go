package entity

import (
	"strings"
	"unicode/utf8"

	domainerrors "nutria/internal/domain/errors"
)

// MaxCategoryNameLength matches the width of the stored column.
const MaxCategoryNameLength = 30

// Category is the grouping label every food belongs to, e.g. "Milk".
type Category struct {
	ID   uint   // Primary key.
	Name string // Unique name.
}

// NewCategory trims name and checks that it can serve as the first half of a display name.
func NewCategory(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxCategoryNameLength || !categoryPattern.MatchString(name) {
		return nil, &domainerrors.MalformedNameError{Name: name}
	}

	return &Category{Name: name}, nil
}

// Manufacturer is the producer of a product. Products reference it by name.
type Manufacturer struct {
	ID   uint
	Name string
}
