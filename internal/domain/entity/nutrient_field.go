// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	domainerrors "nutria/internal/domain/errors"
)

// NutrientField identifies one value of a food's nutrient profile.
// ReferenceAmount is the mass the other values are scoped to; it is part of
// the enumeration so that it can be read and rescaled like any nutrient.
type NutrientField int

const (
	ReferenceAmount NutrientField = iota
	Calories
	TotalFat
	SaturatedFat
	Cholesterol
	Protein
	TotalCarbs
	Sugar
	DietaryFiber
	Salt
	Sodium
	Potassium
	Copper
	Iron
	Magnesium
	Manganese
	Zinc
	Phosphorous
	Sulphur
	Chloro
	Fluoric
	VitaminB1
	VitaminB12
	VitaminB6
	VitaminC
	VitaminD
	VitaminE

	fieldCount
)

// nutrientCount is the number of fields stored per profile besides the reference amount.
const nutrientCount = int(fieldCount) - 1

// Unit is the measurement unit of a field.
type Unit string

const (
	UnitGram        Unit = "g"
	UnitMilligram   Unit = "mg"
	UnitKilocalorie Unit = "kcal"
)

type fieldInfo struct {
	name  string
	unit  Unit
	label string
}

// nutrientTable is the single list of tracked fields. Aggregation, rescaling,
// JSON encoding and the storage columns are all driven from it.
var nutrientTable = [fieldCount]fieldInfo{
	ReferenceAmount: {"reference_amount", UnitGram, "Reference amount"},
	Calories:        {"calories", UnitKilocalorie, "Calories"},
	TotalFat:        {"total_fat", UnitGram, "Total fat"},
	SaturatedFat:    {"saturated_fat", UnitGram, "Saturated fat"},
	Cholesterol:     {"cholesterol", UnitMilligram, "Cholesterol"},
	Protein:         {"protein", UnitGram, "Protein"},
	TotalCarbs:      {"total_carbs", UnitGram, "Total carbohydrates"},
	Sugar:           {"sugar", UnitGram, "Sugar"},
	DietaryFiber:    {"dietary_fiber", UnitGram, "Dietary fiber"},
	Salt:            {"salt", UnitGram, "Salt"},
	Sodium:          {"sodium", UnitMilligram, "Sodium"},
	Potassium:       {"potassium", UnitMilligram, "Potassium"},
	Copper:          {"copper", UnitMilligram, "Copper"},
	Iron:            {"iron", UnitMilligram, "Iron"},
	Magnesium:       {"magnesium", UnitMilligram, "Magnesium"},
	Manganese:       {"manganese", UnitMilligram, "Manganese"},
	Zinc:            {"zinc", UnitMilligram, "Zinc"},
	Phosphorous:     {"phosphorous", UnitMilligram, "Phosphorous"},
	Sulphur:         {"sulphur", UnitMilligram, "Sulphur"},
	Chloro:          {"chloro", UnitMilligram, "Chloro"},
	Fluoric:         {"fluoric", UnitMilligram, "Fluoric"},
	VitaminB1:       {"vitamin_b1", UnitMilligram, "Vitamin B1"},
	VitaminB12:      {"vitamin_b12", UnitMilligram, "Vitamin B12"},
	VitaminB6:       {"vitamin_b6", UnitMilligram, "Vitamin B6"},
	VitaminC:        {"vitamin_c", UnitMilligram, "Vitamin C"},
	VitaminD:        {"vitamin_d", UnitMilligram, "Vitamin D"},
	VitaminE:        {"vitamin_e", UnitMilligram, "Vitamin E"},
}

var fieldsByName = func() map[string]NutrientField {
	m := make(map[string]NutrientField, fieldCount)
	for f := ReferenceAmount; f < fieldCount; f++ {
		m[nutrientTable[f].name] = f
	}

	return m
}()

// Fields returns every field, reference amount first.
func Fields() []NutrientField {
	fields := make([]NutrientField, 0, fieldCount)
	for f := ReferenceAmount; f < fieldCount; f++ {
		fields = append(fields, f)
	}

	return fields
}

// Nutrients returns the stored value fields (calories through vitamin E).
func Nutrients() []NutrientField {
	return Fields()[1:]
}

// ParseNutrientField resolves a snake_case field name such as "vitamin_b12".
func ParseNutrientField(name string) (NutrientField, error) {
	f, ok := fieldsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, domainerrors.ErrUnknownNutrientField.WithDetails(name)
	}

	return f, nil
}

// Valid reports whether f is a member of the enumeration.
func (f NutrientField) Valid() bool {
	return f >= ReferenceAmount && f < fieldCount
}

func (f NutrientField) String() string {
	if !f.Valid() {
		return "unknown"
	}

	return nutrientTable[f].name
}

// Unit returns the unit the field's values are expressed in.
func (f NutrientField) Unit() Unit {
	if !f.Valid() {
		return ""
	}

	return nutrientTable[f].unit
}

// Label returns a human readable name.
func (f NutrientField) Label() string {
	if !f.Valid() {
		return ""
	}

	return nutrientTable[f].label
}

// MarshalText implements encoding.TextMarshaler.
func (f NutrientField) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, domainerrors.ErrUnknownNutrientField
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *NutrientField) UnmarshalText(text []byte) error {
	parsed, err := ParseNutrientField(string(text))
	if err != nil {
		return err
	}
	*f = parsed

	return nil
}
