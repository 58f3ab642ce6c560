package entity

import (
	"testing"

	domainerrors "nutria/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDisplayName(t *testing.T) {
	tests := []struct {
		raw          string
		category     string
		nameAddition string
		ok           bool
	}{
		{"Foo: Bar", "Foo", "Bar", true},
		{"FooBar", "", "FooBar", false},
		{"  Milk :  whole (3.5%)  ", "Milk", "whole (3.5%)", true},
		{"Käse: Gouda, jung", "Käse", "Gouda, jung", true},
		{"Brot:Vollkorn-Toast [Scheiben]", "Brot", "Vollkorn-Toast [Scheiben]", true},
		{"Tee: Earl Grey #1; stark!", "Tee", "Earl Grey #1; stark!", true},
		{": Bar", "", ": Bar", false},
		{"Foo:", "", "Foo:", false},
		{"a: b: c", "", "a: b: c", false},
		{"Foo: Bar?", "", "Foo: Bar?", false},
		{"  lonely  ", "", "lonely", false},
		{"Caf\u00e9: latte", "Caf\u00e9", "latte", true},
		{"Cafe\u0301: latte", "", "Cafe\u0301: latte", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			category, nameAddition, ok := SplitDisplayName(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.nameAddition, nameAddition)
		})
	}
}

func TestRequireCategory(t *testing.T) {
	category, nameAddition, err := RequireCategory("Obst: Apfel")
	require.NoError(t, err)
	assert.Equal(t, "Obst", category)
	assert.Equal(t, "Apfel", nameAddition)

	_, _, err = RequireCategory("Apfel")
	var malformed *domainerrors.MalformedNameError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "Apfel", malformed.Name)
}

func TestDisplayName_SplitRoundTrip(t *testing.T) {
	category, nameAddition, ok := SplitDisplayName(DisplayName("Nudeln", "Spaghetti No. 5"))
	require.True(t, ok)
	assert.Equal(t, "Nudeln", category)
	assert.Equal(t, "Spaghetti No. 5", nameAddition)
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("  Whole Milk (3.5%) ")
	require.NoError(t, err)
	assert.Equal(t, "Whole Milk (3.5%)", c.Name)

	for _, name := range []string{"", "   ", "Milk: whole", "Milk/Cream", "Ein sehr langer Kategoriename der nicht passt"} {
		_, err := NewCategory(name)
		var malformed *domainerrors.MalformedNameError
		assert.ErrorAs(t, err, &malformed, name)
	}
}
