package usecase

import (
	"context"

	"nutria/internal/domain/entity"
)

// FoodSummary is one search hit: the food key and its display name.
type FoodSummary struct {
	Key  entity.FoodKey `json:"id"`
	Name string         `json:"name"`
}

// FoodDetail is a loaded food together with its evaluated profile.
type FoodDetail struct {
	Food    entity.Food
	Profile entity.NutrientProfile
}

// FoodUsecase defines the read and rescale operations shared by products and recipes
type FoodUsecase interface {
	// GetFood loads a product or a recipe with its full ingredient graph
	GetFood(ctx context.Context, key entity.FoodKey) (*FoodDetail, error)

	// ScaleFood evaluates a food at amount grams
	ScaleFood(ctx context.Context, key entity.FoodKey, amount float64) (entity.NutrientProfile, error)

	// Search finds products, then recipes, whose category or name addition contains query.
	// Each kind is limited to count entries.
	Search(ctx context.Context, query string, count int) ([]FoodSummary, error)

	// SearchByEAN finds up to count products carrying the barcode
	SearchByEAN(ctx context.Context, ean string, count int) ([]FoodSummary, error)

	// Rescale sets field to newValue. A recipe scales all ingredient amounts,
	// a product scales its reference amount and stored values.
	Rescale(ctx context.Context, key entity.FoodKey, field entity.NutrientField, newValue float64) (*FoodDetail, error)

	// DeleteFood removes a food together with everything that references it
	DeleteFood(ctx context.Context, key entity.FoodKey) error

	// FoodExists reports ErrFoodNotFound unless key names a stored food.
	// The ingredient graph is not loaded.
	FoodExists(ctx context.Context, key entity.FoodKey) error
}
