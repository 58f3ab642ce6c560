package entity

import (
	"strconv"

	domainerrors "nutria/internal/domain/errors"
)

// MaxRecipeDepth bounds recipe nesting during evaluation. Well formed data
// never comes close; a cyclic graph hits it instead of recursing forever.
const MaxRecipeDepth = 32

// Food is a product or a recipe: anything with a reference mass and a nutrient profile.
type Food interface {
	// Key returns the cross-kind identifier of the food.
	Key() FoodKey
	// DisplayName returns "{category}: {name addition}".
	DisplayName() string
	// Value returns the value of f scoped to the food's reference amount.
	Value(f NutrientField) (*float64, error)
	// Profile evaluates every field.
	Profile() (NutrientProfile, error)
	// Rescale multiplies the food's amounts so that f becomes newValue.
	Rescale(f NutrientField, newValue float64) (float64, error)

	valueAt(f NutrientField, depth int) (*float64, error)
}

// FoodKind tells products and recipes apart. The numeric values are the
// leading digit of a FoodKey.
type FoodKind int

const (
	KindProduct FoodKind = 0
	KindRecipe  FoodKind = 1
)

func (k FoodKind) String() string {
	switch k {
	case KindProduct:
		return "product"
	case KindRecipe:
		return "recipe"
	default:
		return "unknown"
	}
}

// FoodKey identifies a food across kinds. Its string form is the kind digit
// followed by the decimal primary key: "05" is product 5, "111" is recipe 11.
type FoodKey struct {
	Kind FoodKind
	ID   uint
}

// ProductKey returns the key of product id.
func ProductKey(id uint) FoodKey {
	return FoodKey{Kind: KindProduct, ID: id}
}

// RecipeKey returns the key of recipe id.
func RecipeKey(id uint) FoodKey {
	return FoodKey{Kind: KindRecipe, ID: id}
}

func (k FoodKey) String() string {
	return strconv.Itoa(int(k.Kind)) + strconv.FormatUint(uint64(k.ID), 10)
}

// ParseFoodKey decodes the string form produced by FoodKey.String.
func ParseFoodKey(s string) (FoodKey, error) {
	if len(s) < 2 {
		return FoodKey{}, domainerrors.ErrInvalidFoodKey.WithDetails(s)
	}

	var kind FoodKind
	switch s[0] {
	case '0':
		kind = KindProduct
	case '1':
		kind = KindRecipe
	default:
		return FoodKey{}, domainerrors.ErrInvalidFoodKey.WithDetails(s)
	}

	// "007" would decode to the key written as "07".
	if s[1] == '0' {
		return FoodKey{}, domainerrors.ErrInvalidFoodKey.WithDetails(s)
	}

	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return FoodKey{}, domainerrors.ErrInvalidFoodKey.WithDetails(s)
		}
	}

	id, err := strconv.ParseUint(s[1:], 10, strconv.IntSize)
	if err != nil || id == 0 {
		return FoodKey{}, domainerrors.ErrInvalidFoodKey.WithDetails(s)
	}

	return FoodKey{Kind: kind, ID: uint(id)}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (k FoodKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FoodKey) UnmarshalText(text []byte) error {
	parsed, err := ParseFoodKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// FoodRef is the food an ingredient or serving points at. It always names
// exactly one product or recipe by key; the food itself is attached once it
// has been loaded.
type FoodRef struct {
	key     FoodKey
	product *Product
	recipe  *Recipe
}

// RefTo builds a resolved reference. Anything other than a non-nil *Product
// or *Recipe yields a NoFoodError carrying the value.
func RefTo(v any) (FoodRef, error) {
	switch food := v.(type) {
	case *Product:
		if food != nil {
			return FoodRef{key: food.Key(), product: food}, nil
		}
	case *Recipe:
		if food != nil {
			return FoodRef{key: food.Key(), recipe: food}, nil
		}
	}

	return FoodRef{}, domainerrors.NewNoFoodError(v)
}

// RefByKey builds a reference that is not yet resolved.
func RefByKey(key FoodKey) FoodRef {
	return FoodRef{key: key}
}

// Key returns the referenced food's key.
func (r FoodRef) Key() FoodKey {
	return r.key
}

// Resolved reports whether the food has been attached.
func (r FoodRef) Resolved() bool {
	return r.product != nil || r.recipe != nil
}

// Product returns the referenced product, or nil.
func (r FoodRef) Product() *Product {
	return r.product
}

// Recipe returns the referenced recipe, or nil.
func (r FoodRef) Recipe() *Recipe {
	return r.recipe
}

// Food returns the referenced food. An unresolved reference is an error
// rather than a silent zero contribution.
func (r FoodRef) Food() (Food, error) {
	switch {
	case r.recipe != nil:
		return r.recipe, nil
	case r.product != nil:
		return r.product, nil
	default:
		return nil, &domainerrors.UnresolvedReferenceError{Kind: r.key.Kind.String(), ID: r.key.ID}
	}
}

// ScaleFood evaluates food at amount grams, the serving computation entry point.
func ScaleFood(food Food, amount float64) (NutrientProfile, error) {
	if !validAmount(amount) {
		return NutrientProfile{}, domainerrors.ErrInvalidAmount
	}

	ref, err := RefTo(food)
	if err != nil {
		return NutrientProfile{}, err
	}

	portion := &Ingredient{Amount: amount, Food: ref}

	return portion.Profile()
}

type valuer interface {
	valueAt(f NutrientField, depth int) (*float64, error)
}

func profileOf(food valuer, depth int) (NutrientProfile, error) {
	var profile NutrientProfile
	for _, f := range Fields() {
		v, err := food.valueAt(f, depth)
		if err != nil {
			return NutrientProfile{}, err
		}
		profile.Set(f, v)
	}

	return profile, nil
}

func divisionFactor(f NutrientField, current *float64, newValue float64) (float64, error) {
	if !validAmount(newValue) {
		return 0, domainerrors.ErrInvalidAmount.WithDetails(f.String())
	}
	if current == nil || *current == 0 {
		return 0, domainerrors.NewDivisionUndefinedError(f.String(), current)
	}

	return newValue / *current, nil
}
