package repository

import (
	"context"

	"nutria/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for food persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrRecipeNotFound is returned when a recipe is not found.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrIngredientNotFound is returned when an ingredient is not found.
	ErrIngredientNotFound = errors.New("ingredient not found")
	// ErrServingNotFound is returned when a serving is not found.
	ErrServingNotFound = errors.New("serving not found")
	// ErrDanglingFood is returned when a stored reference points at a food that does not exist.
	ErrDanglingFood = errors.New("referenced food does not exist")
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new product and sets its ID and creation date.
	Create(ctx context.Context, product *entity.Product) error

	// Update saves every stored field of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product with its category and manufacturer.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// LockByID retrieves a product and locks its row until the transaction ends.
	LockByID(ctx context.Context, id uint) (*entity.Product, error)

	// Search returns up to limit products whose category name or name addition
	// contains query, ignoring case, ordered by category name and name addition.
	Search(ctx context.Context, query string, limit int) ([]*entity.Product, error)

	// FindByEAN returns up to limit products with the given barcode.
	FindByEAN(ctx context.Context, ean string, limit int) ([]*entity.Product, error)

	// Delete removes a product. Ingredients and servings referencing it go with it.
	Delete(ctx context.Context, id uint) error
}

// RecipeRepository defines the interface for recipe-related database operations.
// Recipes are returned without ingredients; see IngredientRepository.
type RecipeRepository interface {
	// Create persists a new recipe and sets its ID and creation date.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a recipe with its category.
	FindByID(ctx context.Context, id uint) (*entity.Recipe, error)

	// LockByID retrieves a recipe and locks its row until the transaction ends.
	LockByID(ctx context.Context, id uint) (*entity.Recipe, error)

	// Search behaves like ProductRepository.Search.
	Search(ctx context.Context, query string, limit int) ([]*entity.Recipe, error)

	// Delete removes a recipe with its ingredients and servings, and every
	// ingredient of other recipes that uses it.
	Delete(ctx context.Context, id uint) error
}

// IngredientRepository defines the interface for ingredient persistence.
// Returned ingredients carry unresolved food references.
type IngredientRepository interface {
	// FindByID retrieves a single ingredient.
	FindByID(ctx context.Context, id uint) (*entity.Ingredient, error)

	// ListByRecipe returns a recipe's ingredients ordered by ID.
	ListByRecipe(ctx context.Context, recipeID uint) ([]*entity.Ingredient, error)

	// ReplaceForRecipe deletes a recipe's ingredients and stores the given ones in order.
	ReplaceForRecipe(ctx context.Context, recipeID uint, ingredients []*entity.Ingredient) error

	// UpdateAmounts persists the amount of every given ingredient.
	UpdateAmounts(ctx context.Context, ingredients []*entity.Ingredient) error
}

// ServingRepository defines the interface for serving persistence.
type ServingRepository interface {
	// Create persists a new serving and sets its ID.
	Create(ctx context.Context, serving *entity.Serving) error

	// FindByID retrieves a serving with an unresolved food reference.
	FindByID(ctx context.Context, id uint) (*entity.Serving, error)

	// ListByFood returns the servings of a food ordered by size.
	ListByFood(ctx context.Context, key entity.FoodKey) ([]*entity.Serving, error)

	// Delete removes a serving.
	Delete(ctx context.Context, id uint) error
}
