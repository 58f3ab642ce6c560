package entity

import (
	"bytes"
	"encoding/json"
	"math"

	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/errors"
)

// NutrientProfile is a flat set of nutrient values scoped to ReferenceAmount grams.
// A nil value means unknown, which is distinct from zero.
type NutrientProfile struct {
	ReferenceAmount float64
	values          [nutrientCount]*float64
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// Get returns a copy of the value of f. Reading ReferenceAmount never yields nil.
func (p *NutrientProfile) Get(f NutrientField) *float64 {
	if f == ReferenceAmount {
		return Float(p.ReferenceAmount)
	}
	if !f.Valid() {
		return nil
	}
	if v := p.values[f-1]; v != nil {
		return Float(*v)
	}

	return nil
}

// Set stores a copy of v for f. A nil v for ReferenceAmount is ignored.
func (p *NutrientProfile) Set(f NutrientField, v *float64) {
	switch {
	case f == ReferenceAmount:
		if v != nil {
			p.ReferenceAmount = *v
		}
	case f.Valid():
		if v == nil {
			p.values[f-1] = nil
		} else {
			p.values[f-1] = Float(*v)
		}
	}
}

// Validate checks that every known value is a finite number.
func (p *NutrientProfile) Validate() error {
	for _, f := range Fields() {
		v := p.Get(f)
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return domainerrors.ErrValidationFailed.WithDetails(f.String() + " must be a finite number")
		}
	}

	return nil
}

// MarshalJSON encodes the profile as an object keyed by field name in table order.
func (p NutrientProfile) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(f.String())
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.Get(f))
		if err != nil {
			return nil, errors.Wrapf(err, "marshal %s", f)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by field name. Missing fields stay
// unknown, unknown names are rejected.
func (p *NutrientProfile) UnmarshalJSON(data []byte) error {
	raw := map[string]*float64{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode nutrient profile")
	}

	var decoded NutrientProfile
	for name, v := range raw {
		f, err := ParseNutrientField(name)
		if err != nil {
			return err
		}
		decoded.Set(f, v)
	}
	*p = decoded

	return nil
}

// scale is the single arithmetic primitive of every read path:
// value / sourceMass * targetMass. Unknown stays unknown.
func scale(value *float64, sourceMass, targetMass float64) (*float64, error) {
	if value == nil {
		return nil, nil
	}
	if sourceMass == 0 {
		return nil, domainerrors.NewDivisionUndefinedError(ReferenceAmount.String(), Float(sourceMass))
	}

	return Float(*value / sourceMass * targetMass), nil
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
