package entity

import (
	"testing"

	domainerrors "nutria/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_Validate(t *testing.T) {
	p := newProduct(t, 1, 100, map[NutrientField]float64{Calories: 52})
	p.EAN = "4006381333931"
	require.NoError(t, p.Validate())

	noCalories := newProduct(t, 2, 100, map[NutrientField]float64{Protein: 1})
	assert.ErrorIs(t, noCalories.Validate(), domainerrors.ErrMissingCalories)

	zeroMass := newProduct(t, 3, 0, map[NutrientField]float64{Calories: 1})
	assert.ErrorIs(t, zeroMass.Validate(), domainerrors.ErrInvalidAmount)

	badEAN := newProduct(t, 4, 100, map[NutrientField]float64{Calories: 1})
	badEAN.EAN = "40-06"
	assert.ErrorIs(t, badEAN.Validate(), domainerrors.ErrInvalidEAN)
}

func TestProduct_Rescale(t *testing.T) {
	p := newProduct(t, 1, 100, map[NutrientField]float64{Calories: 52, Sugar: 10})

	k, err := p.Rescale(ReferenceAmount, 250)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, k, tolerance)
	requireValue(t, 250, p, ReferenceAmount)
	requireValue(t, 130, p, Calories)
	requireValue(t, 25, p, Sugar)

	protein, err := p.Value(Protein)
	require.NoError(t, err)
	assert.Nil(t, protein)

	_, err = p.Rescale(Protein, 3)
	var divErr *domainerrors.DivisionUndefinedError
	assert.ErrorAs(t, err, &divErr)
}

func TestProduct_DisplayName(t *testing.T) {
	p := &Product{Category: Category{Name: "Milk"}, NameAddition: "whole, 3.5% fat"}
	assert.Equal(t, "Milk: whole, 3.5% fat", p.DisplayName())
	assert.Equal(t, ProductKey(0), p.Key())
}

func TestServing_Scale(t *testing.T) {
	p := newProduct(t, 1, 100, map[NutrientField]float64{Calories: 52})
	ref, err := RefTo(p)
	require.NoError(t, err)

	s := &Serving{Name: "cup", Size: 240, Food: ref}
	profile, err := s.Scale()
	require.NoError(t, err)
	assert.InDelta(t, 124.8, *profile.Get(Calories), 1e-9)

	unresolved := &Serving{Name: "cup", Size: 240, Food: RefByKey(ProductKey(1))}
	_, err = unresolved.Scale()
	var unresolvedErr *domainerrors.UnresolvedReferenceError
	assert.ErrorAs(t, err, &unresolvedErr)
}

func TestServing_Validate(t *testing.T) {
	assert.NoError(t, (&Serving{Name: "slice", Size: 30}).Validate())
	assert.ErrorIs(t, (&Serving{Name: "  ", Size: 30}).Validate(), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, (&Serving{Name: "slice", Size: 0}).Validate(), domainerrors.ErrInvalidAmount)
	assert.ErrorIs(t, (&Serving{Name: "slice", Size: -5}).Validate(), domainerrors.ErrInvalidAmount)
}
