package entity

import (
	"time"

	domainerrors "nutria/internal/domain/errors"
)

// DefaultReferenceAmount is the mass product values are usually given for.
const DefaultReferenceAmount = 100.0

// Product is an atomic food whose values are stored directly.
type Product struct {
	ID           uint          // Primary key.
	Category     Category      // The category the product is listed under.
	NameAddition string        // Name within the category.
	AuthorID     *uint         // Subject of the token that created the product, if any.
	Manufacturer *Manufacturer // Optional producer.
	EAN          string        // Optional barcode, digits only.
	CreatedAt    time.Time
	// Values holds the stored nutrients, scoped to Values.ReferenceAmount grams.
	Values NutrientProfile
}

func (p *Product) Key() FoodKey {
	return ProductKey(p.ID)
}

func (p *Product) DisplayName() string {
	return DisplayName(p.Category.Name, p.NameAddition)
}

// Validate enforces the stored invariants: calories are known, the
// reference amount is positive and the barcode is numeric.
func (p *Product) Validate() error {
	if p.Values.Get(Calories) == nil {
		return domainerrors.ErrMissingCalories
	}
	if !validAmount(p.Values.ReferenceAmount) {
		return domainerrors.ErrInvalidAmount.WithDetails(ReferenceAmount.String())
	}
	if p.EAN != "" && !IsDigits(p.EAN) {
		return domainerrors.ErrInvalidEAN.WithDetails(p.EAN)
	}

	return p.Values.Validate()
}

func (p *Product) Value(f NutrientField) (*float64, error) {
	return p.valueAt(f, 0)
}

func (p *Product) valueAt(f NutrientField, _ int) (*float64, error) {
	if !f.Valid() {
		return nil, domainerrors.ErrUnknownNutrientField
	}

	return p.Values.Get(f), nil
}

func (p *Product) Profile() (NutrientProfile, error) {
	return profileOf(p, 0)
}

// Rescale sets f to newValue by multiplying the reference amount and every
// stored value by the same factor, which keeps the product's density.
// It returns the factor.
func (p *Product) Rescale(f NutrientField, newValue float64) (float64, error) {
	current, err := p.Value(f)
	if err != nil {
		return 0, err
	}

	k, err := divisionFactor(f, current, newValue)
	if err != nil {
		return 0, err
	}

	for _, field := range Fields() {
		if v := p.Values.Get(field); v != nil {
			p.Values.Set(field, Float(*v*k))
		}
	}
	p.Values.Set(f, Float(newValue))

	return k, nil
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
