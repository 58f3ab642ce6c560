package entity

import (
	"strings"

	domainerrors "nutria/internal/domain/errors"
)

// Serving is a named portion size of a food, e.g. "1 cup" of 240 g.
type Serving struct {
	ID   uint
	Name string
	Size float64 // Mass in g.
	Food FoodRef
}

// Validate requires a name and a positive size.
func (s *Serving) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("serving name is empty")
	}
	if !validAmount(s.Size) {
		return domainerrors.ErrInvalidAmount.WithDetails("size")
	}

	return nil
}

// Scale evaluates the served food at the serving's size. The food must be resolved.
func (s *Serving) Scale() (NutrientProfile, error) {
	food, err := s.Food.Food()
	if err != nil {
		return NutrientProfile{}, err
	}

	return ScaleFood(food, s.Size)
}
