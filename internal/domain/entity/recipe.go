package entity

import (
	"time"

	domainerrors "nutria/internal/domain/errors"
)

// Recipe is a composite food. It stores no values; every field is the sum of
// its ingredients' scaled contributions, derived again on each read.
type Recipe struct {
	ID           uint
	Category     Category
	NameAddition string
	AuthorID     *uint
	CreatedAt    time.Time
	Ingredients  []*Ingredient // Ordered by ingredient id.
}

func (r *Recipe) Key() FoodKey {
	return RecipeKey(r.ID)
}

func (r *Recipe) DisplayName() string {
	return DisplayName(r.Category.Name, r.NameAddition)
}

func (r *Recipe) Value(f NutrientField) (*float64, error) {
	return r.valueAt(f, 0)
}

// valueAt sums the contributions of every ingredient. A single unknown
// contribution makes the sum unknown, but all ingredients are still
// evaluated so that broken references surface. An empty recipe sums to 0.
func (r *Recipe) valueAt(f NutrientField, depth int) (*float64, error) {
	if !f.Valid() {
		return nil, domainerrors.ErrUnknownNutrientField
	}
	if depth >= MaxRecipeDepth {
		return nil, &domainerrors.RecursionDepthError{RecipeID: r.ID, Depth: MaxRecipeDepth}
	}

	sum := 0.0
	known := true
	for _, ingredient := range r.Ingredients {
		v, err := ingredient.valueAt(f, depth+1)
		if err != nil {
			return nil, err
		}
		if v == nil {
			known = false

			continue
		}
		sum += *v
	}

	if !known {
		return nil, nil
	}

	return Float(sum), nil
}

func (r *Recipe) Profile() (NutrientProfile, error) {
	return profileOf(r, 0)
}

// Rescale sets the derived value of f to newValue by multiplying every
// ingredient amount by newValue / current. All other fields follow by the
// same factor. The caller persists the changed amounts.
func (r *Recipe) Rescale(f NutrientField, newValue float64) (float64, error) {
	current, err := r.Value(f)
	if err != nil {
		return 0, err
	}

	k, err := divisionFactor(f, current, newValue)
	if err != nil {
		return 0, err
	}

	for _, ingredient := range r.Ingredients {
		ingredient.Amount *= k
	}

	return k, nil
}

// SetIngredients replaces the ingredient list, assigning the recipe id.
func (r *Recipe) SetIngredients(ingredients []*Ingredient) {
	for _, ingredient := range ingredients {
		ingredient.RecipeID = r.ID
	}
	r.Ingredients = ingredients
}
