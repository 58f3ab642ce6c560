package usecase

import (
	"context"

	"nutria/internal/domain/entity"
)

// ServingProfile is a food evaluated at one of its servings
type ServingProfile struct {
	Serving *entity.Serving
	Profile entity.NutrientProfile
}

// ServingUsecase defines serving presets of a food
type ServingUsecase interface {
	ListServings(ctx context.Context, key entity.FoodKey) ([]*entity.Serving, error)
	CreateServing(ctx context.Context, key entity.FoodKey, name string, size float64) (*entity.Serving, error)
	DeleteServing(ctx context.Context, id uint) error

	// ScaleToServing evaluates the food at the serving's size
	ScaleToServing(ctx context.Context, key entity.FoodKey, servingID uint) (*ServingProfile, error)
}

// CategoryUsecase defines category maintenance
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
}
