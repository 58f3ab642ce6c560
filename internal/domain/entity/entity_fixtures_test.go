package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func newProduct(t *testing.T, id uint, referenceAmount float64, values map[NutrientField]float64) *Product {
	t.Helper()

	p := &Product{
		ID:           id,
		Category:     Category{ID: 1, Name: "Test"},
		NameAddition: "product",
	}
	p.Values.ReferenceAmount = referenceAmount
	for f, v := range values {
		p.Values.Set(f, Float(v))
	}

	return p
}

func newRecipe(t *testing.T, id uint, parts ...any) *Recipe {
	t.Helper()
	require.Zero(t, len(parts)%2, "parts are food, amount pairs")

	r := &Recipe{ID: id, Category: Category{ID: 1, Name: "Test"}, NameAddition: "recipe"}
	ingredients := make([]*Ingredient, 0, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		ingredient, err := NewIngredient(parts[i], parts[i+1].(float64))
		require.NoError(t, err)
		ingredient.ID = uint(i/2 + 1)
		ingredients = append(ingredients, ingredient)
	}
	r.SetIngredients(ingredients)

	return r
}

func requireValue(t *testing.T, want float64, food interface {
	Value(NutrientField) (*float64, error)
}, f NutrientField,
) {
	t.Helper()

	got, err := food.Value(f)
	require.NoError(t, err)
	require.NotNil(t, got, "%s is unknown", f)
	require.InDelta(t, want, *got, tolerance, "%s", f)
}
