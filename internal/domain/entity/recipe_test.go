package entity

import (
	"testing"

	domainerrors "nutria/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_NestedAggregation(t *testing.T) {
	a := newProduct(t, 1, 100, map[NutrientField]float64{Calories: 100, Protein: 30})
	b := newProduct(t, 2, 100, map[NutrientField]float64{Calories: 20})
	r := newRecipe(t, 1, a, 10.0, b, 200.0)

	requireValue(t, 50, r, Calories)
	requireValue(t, 210, r, ReferenceAmount)

	protein, err := r.Value(Protein)
	require.NoError(t, err)
	assert.Nil(t, protein, "an unknown contribution makes the sum unknown")

	b.Values.Set(Protein, Float(10))
	requireValue(t, 23, r, Protein)
}

func TestRecipe_RecipeInsideRecipe(t *testing.T) {
	flour := newProduct(t, 1, 100, map[NutrientField]float64{Calories: 350, Protein: 10})
	water := newProduct(t, 2, 100, map[NutrientField]float64{Calories: 0, Protein: 0})
	dough := newRecipe(t, 1, flour, 300.0, water, 200.0)
	pizza := newRecipe(t, 2, dough, 250.0)

	// dough: 500 g, 1050 kcal, 30 g protein; half of it goes into the pizza.
	requireValue(t, 250, pizza, ReferenceAmount)
	requireValue(t, 525, pizza, Calories)
	requireValue(t, 15, pizza, Protein)

	profile, err := pizza.Profile()
	require.NoError(t, err)
	assert.InDelta(t, 250.0, profile.ReferenceAmount, tolerance)
	assert.Nil(t, profile.Get(Sugar))
}

func TestRecipe_NullPropagation(t *testing.T) {
	known := newProduct(t, 1, 100, map[NutrientField]float64{Calories: 100, Iron: 2, Zinc: 1})
	unknown := newProduct(t, 2, 100, map[NutrientField]float64{Calories: 100, Zinc: 3})
	r := newRecipe(t, 1, known, 500.0, unknown, 1.0)

	iron, err := r.Value(Iron)
	require.NoError(t, err)
	assert.Nil(t, iron)

	requireValue(t, 5.03, r, Zinc)

	outer := newRecipe(t, 2, r, 10.0)
	iron, err = outer.Value(Iron)
	require.NoError(t, err)
	assert.Nil(t, iron, "unknown propagates through nesting")
}

func TestRecipe_EmptyIdentity(t *testing.T) {
	r := newRecipe(t, 1)

	profile, err := r.Profile()
	require.NoError(t, err)
	for _, f := range Fields() {
		v := profile.Get(f)
		require.NotNil(t, v, "%s", f)
		assert.Equal(t, 0.0, *v, "%s", f)
	}
}

func TestRecipe_RescalePropagation(t *testing.T) {
	x := newProduct(t, 1, 100, map[NutrientField]float64{Calories: 60, Protein: 3})
	y := newProduct(t, 2, 100, map[NutrientField]float64{Calories: 40, Protein: 10})
	r := newRecipe(t, 1, x, 100.0, y, 200.0)

	requireValue(t, 300, r, ReferenceAmount)
	requireValue(t, 140, r, Calories)
	requireValue(t, 23, r, Protein)

	k, err := r.Rescale(Calories, 280)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, k, tolerance)

	assert.InDelta(t, 200.0, r.Ingredients[0].Amount, tolerance)
	assert.InDelta(t, 400.0, r.Ingredients[1].Amount, tolerance)
	requireValue(t, 280, r, Calories)
	requireValue(t, 600, r, ReferenceAmount)
	requireValue(t, 46, r, Protein)

	// The foods themselves are untouched.
	requireValue(t, 100, x, ReferenceAmount)
	requireValue(t, 3, x, Protein)
}

func TestRecipe_Linearity(t *testing.T) {
	a := newProduct(t, 1, 100, map[NutrientField]float64{Calories: 100, Protein: 30, Salt: 1.2, VitaminC: 7})
	b := newProduct(t, 2, 50, map[NutrientField]float64{Calories: 20, Protein: 4, Salt: 0.1, VitaminC: 0})
	inner := newRecipe(t, 3, a, 40.0, b, 60.0)
	r := newRecipe(t, 4, a, 10.0, b, 200.0, inner, 33.0)

	before, err := r.Profile()
	require.NoError(t, err)
	amounts := []float64{r.Ingredients[0].Amount, r.Ingredients[1].Amount, r.Ingredients[2].Amount}

	for _, target := range []float64{52.8, 1, 1000} {
		m, err := r.Value(ReferenceAmount)
		require.NoError(t, err)
		ratio := target / *m

		_, err = r.Rescale(ReferenceAmount, target)
		require.NoError(t, err)

		after, err := r.Profile()
		require.NoError(t, err)
		for _, f := range []NutrientField{ReferenceAmount, Calories, Protein, Salt, VitaminC} {
			want := *before.Get(f) * ratio
			assert.InDelta(t, want, *after.Get(f), 1e-6, "%s at %v", f, target)
		}
		for i, ingredient := range r.Ingredients {
			assert.InDelta(t, amounts[i]*ratio, ingredient.Amount, 1e-9)
			amounts[i] = ingredient.Amount
		}
		sugar, err := r.Value(Sugar)
		require.NoError(t, err)
		assert.Nil(t, sugar, "unknown fields stay unknown")
		before = after
	}
}

func TestRecipe_RescaleUndefined(t *testing.T) {
	a := newProduct(t, 1, 100, map[NutrientField]float64{Calories: 100, Fluoric: 0})
	b := newProduct(t, 2, 100, map[NutrientField]float64{Calories: 20})
	r := newRecipe(t, 1, a, 10.0, b, 200.0)

	_, err := r.Rescale(Protein, 5)
	var divErr *domainerrors.DivisionUndefinedError
	require.ErrorAs(t, err, &divErr)
	assert.Equal(t, "protein", divErr.Field)
	assert.Nil(t, divErr.Current)

	c := newRecipe(t, 2, a, 10.0)
	_, err = c.Rescale(Fluoric, 5)
	require.ErrorAs(t, err, &divErr)
	require.NotNil(t, divErr.Current)
	assert.Equal(t, 0.0, *divErr.Current)

	_, err = newRecipe(t, 3).Rescale(ReferenceAmount, 100)
	require.ErrorAs(t, err, &divErr, "an empty recipe has nothing to scale")

	assert.InDelta(t, 10.0, r.Ingredients[0].Amount, tolerance, "failed rescale leaves amounts alone")
}

func TestRecipe_RescaleInvalidTarget(t *testing.T) {
	a := newProduct(t, 1, 100, map[NutrientField]float64{Calories: 100})
	r := newRecipe(t, 1, a, 10.0)

	for _, v := range []float64{0, -1} {
		_, err := r.Rescale(Calories, v)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
	}
}

func TestRecipe_CycleHitsDepthLimit(t *testing.T) {
	a := newProduct(t, 1, 100, map[NutrientField]float64{Calories: 100})
	r := newRecipe(t, 1, a, 10.0)
	loop, err := NewIngredient(r, 5)
	require.NoError(t, err)
	r.Ingredients = append(r.Ingredients, loop)

	_, err = r.Value(Calories)
	var depthErr *domainerrors.RecursionDepthError
	require.ErrorAs(t, err, &depthErr)
	assert.Equal(t, uint(1), depthErr.RecipeID)
	assert.Equal(t, MaxRecipeDepth, depthErr.Depth)
}

func TestRecipe_UnresolvedIngredientFailsLoudly(t *testing.T) {
	a := newProduct(t, 1, 100, map[NutrientField]float64{Calories: 100})
	r := newRecipe(t, 1, a, 10.0)
	r.Ingredients = append(r.Ingredients, &Ingredient{ID: 9, RecipeID: 1, Amount: 5, Food: RefByKey(ProductKey(404))})

	_, err := r.Value(Calories)
	var unresolved *domainerrors.UnresolvedReferenceError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, uint(404), unresolved.ID)
}
