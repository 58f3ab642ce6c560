package entity

import (
	"encoding/json"
	"math"
	"testing"

	domainerrors "nutria/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutrientProfile_GetSet(t *testing.T) {
	var p NutrientProfile

	assert.Nil(t, p.Get(Protein))
	require.NotNil(t, p.Get(ReferenceAmount))
	assert.Equal(t, 0.0, *p.Get(ReferenceAmount))

	v := 12.5
	p.Set(Protein, &v)
	v = 99
	assert.Equal(t, 12.5, *p.Get(Protein), "Set stores a copy")

	got := p.Get(Protein)
	*got = 1
	assert.Equal(t, 12.5, *p.Get(Protein), "Get returns a copy")

	p.Set(ReferenceAmount, Float(50))
	p.Set(ReferenceAmount, nil)
	assert.Equal(t, 50.0, p.ReferenceAmount)

	p.Set(Protein, nil)
	assert.Nil(t, p.Get(Protein))
}

func TestNutrientProfile_JSON(t *testing.T) {
	var p NutrientProfile
	p.ReferenceAmount = 100
	p.Set(Calories, Float(52))
	p.Set(Sugar, Float(10.4))

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 27)
	assert.Equal(t, 100.0, raw["reference_amount"])
	assert.Equal(t, 52.0, raw["calories"])
	assert.Nil(t, raw["protein"])
	assert.Contains(t, raw, "protein")

	var decoded NutrientProfile
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p, decoded)
}

func TestNutrientProfile_UnmarshalUnknownField(t *testing.T) {
	var p NutrientProfile
	err := json.Unmarshal([]byte(`{"calories": 1, "caffeine": 2}`), &p)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownNutrientField)
}

func TestNutrientProfile_Validate(t *testing.T) {
	var p NutrientProfile
	p.ReferenceAmount = 100
	p.Set(Iron, Float(math.NaN()))

	assert.ErrorIs(t, p.Validate(), domainerrors.ErrValidationFailed)
}

func TestScale(t *testing.T) {
	v, err := scale(Float(30), 100, 10)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, *v, tolerance)

	v, err = scale(nil, 0, 10)
	require.NoError(t, err)
	assert.Nil(t, v, "unknown stays unknown without dividing")

	_, err = scale(Float(1), 0, 10)
	var divErr *domainerrors.DivisionUndefinedError
	require.ErrorAs(t, err, &divErr)
	assert.Equal(t, "reference_amount", divErr.Field)
}
