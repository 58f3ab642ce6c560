package entity

import (
	domainerrors "nutria/internal/domain/errors"
)

// Ingredient is a recipe's use of a food at a given mass.
type Ingredient struct {
	ID       uint    // Primary key.
	RecipeID uint    // Owning recipe.
	Amount   float64 // Mass of the food in g.
	Food     FoodRef // Exactly one product or recipe.
}

// NewIngredient builds an ingredient of amount grams of food. food must be a
// *Product or a *Recipe.
func NewIngredient(food any, amount float64) (*Ingredient, error) {
	ref, err := RefTo(food)
	if err != nil {
		return nil, err
	}
	if !validAmount(amount) {
		return nil, domainerrors.ErrInvalidAmount
	}

	return &Ingredient{Amount: amount, Food: ref}, nil
}

// SetFood points the ingredient at food, replacing the previous reference.
func (i *Ingredient) SetFood(food any) error {
	ref, err := RefTo(food)
	if err != nil {
		return err
	}
	i.Food = ref

	return nil
}

// Value returns the food's value of f scaled to the ingredient's amount.
// Nothing is mutated.
func (i *Ingredient) Value(f NutrientField) (*float64, error) {
	return i.valueAt(f, 0)
}

func (i *Ingredient) valueAt(f NutrientField, depth int) (*float64, error) {
	if f == ReferenceAmount {
		return Float(i.Amount), nil
	}

	food, err := i.Food.Food()
	if err != nil {
		return nil, err
	}

	v, err := food.valueAt(f, depth)
	if err != nil || v == nil {
		return nil, err
	}

	mass, err := food.valueAt(ReferenceAmount, depth)
	if err != nil {
		return nil, err
	}

	return scale(v, *mass, i.Amount)
}

// Profile evaluates every field at the ingredient's amount.
func (i *Ingredient) Profile() (NutrientProfile, error) {
	return profileOf(i, 0)
}

// Rescale changes the amount so that f becomes newValue. The referenced
// food is left untouched. It returns the factor applied to the amount.
func (i *Ingredient) Rescale(f NutrientField, newValue float64) (float64, error) {
	current, err := i.Value(f)
	if err != nil {
		return 0, err
	}

	k, err := divisionFactor(f, current, newValue)
	if err != nil {
		return 0, err
	}
	i.Amount *= k

	return k, nil
}
