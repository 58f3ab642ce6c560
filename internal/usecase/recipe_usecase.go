package usecase

import (
	"context"

	"nutria/internal/domain/entity"
)

// IngredientInput is one (food, amount) pair of a recipe
type IngredientInput struct {
	Food   entity.FoodKey `json:"food_id"`
	Amount float64        `json:"amount"`
}

// RecipeInput carries a new recipe
type RecipeInput struct {
	FoodName
	Ingredients []IngredientInput `json:"ingredients"`
}

// RecipeUsecase defines recipe composition
type RecipeUsecase interface {
	// CreateRecipe stores a recipe and its ingredients in one transaction
	CreateRecipe(ctx context.Context, input *RecipeInput, authorID *uint) (*FoodDetail, error)

	// SetIngredients replaces the ingredient list of a recipe
	SetIngredients(ctx context.Context, recipeID uint, ingredients []IngredientInput) (*FoodDetail, error)

	// RescaleIngredient changes one ingredient's amount so that field becomes newValue
	RescaleIngredient(ctx context.Context, ingredientID uint, field entity.NutrientField, newValue float64) (*entity.Ingredient, error)
}
