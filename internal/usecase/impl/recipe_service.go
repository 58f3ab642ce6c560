package impl

import (
	"context"
	"fmt"
	"log/slog"

	"nutria/config"
	"nutria/internal/domain/entity"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/domain/repository"
	"nutria/internal/errors"
	logs "nutria/internal/infra/log"
	"nutria/internal/usecase"
)

type recipeService struct {
	txManager repository.TransactionManager
	maxDepth  int
	logger    *slog.Logger
}

// NewRecipeService creates a new recipe service instance
func NewRecipeService(txManager repository.TransactionManager, cfg *config.Config, logger *slog.Logger) usecase.RecipeUsecase {
	return &recipeService{
		txManager: txManager,
		maxDepth:  cfg.Nutrition.MaxRecipeDepth,
		logger:    logger,
	}
}

// CreateRecipe stores a recipe with its ingredients
func (s *recipeService) CreateRecipe(ctx context.Context, input *usecase.RecipeInput, authorID *uint) (*usecase.FoodDetail, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recipe is empty")
	}

	categoryName, nameAddition, err := resolveName(input.FoodName)
	if err != nil {
		return nil, err
	}

	recipe := &entity.Recipe{NameAddition: nameAddition, AuthorID: authorID}

	err = s.txManager.Execute(ctx, func(tx repository.RepositoryFactory) error {
		category, err := findCategory(ctx, tx, categoryName)
		if err != nil {
			return err
		}
		recipe.Category = *category

		if err := tx.NewRecipeRepository().Create(ctx, recipe); err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}

		return s.replaceIngredients(ctx, tx, recipe, input.Ingredients)
	})
	if err != nil {
		return nil, err
	}

	logs.FromContext(ctx, s.logger).InfoContext(ctx, "Recipe created",
		slog.String("food_id", recipe.Key().String()),
		slog.Int("ingredients", len(recipe.Ingredients)),
	)

	return detailOf(recipe)
}

// SetIngredients replaces a recipe's ingredient list
func (s *recipeService) SetIngredients(ctx context.Context, recipeID uint, ingredients []usecase.IngredientInput) (*usecase.FoodDetail, error) {
	var recipe *entity.Recipe

	err := s.txManager.Execute(ctx, func(tx repository.RepositoryFactory) error {
		locked, err := tx.NewRecipeRepository().LockByID(ctx, recipeID)
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return domainerrors.ErrFoodNotFound.WithDetails(entity.RecipeKey(recipeID).String())
		}
		if err != nil {
			return fmt.Errorf("failed to lock recipe: %w", err)
		}
		recipe = locked

		return s.replaceIngredients(ctx, tx, recipe, ingredients)
	})
	if err != nil {
		return nil, err
	}

	logs.FromContext(ctx, s.logger).InfoContext(ctx, "Recipe ingredients replaced",
		slog.String("food_id", recipe.Key().String()),
		slog.Int("ingredients", len(recipe.Ingredients)),
	)

	return detailOf(recipe)
}

// replaceIngredients resolves every input food, rejects foods that contain
// the recipe itself and stores the new list.
func (s *recipeService) replaceIngredients(ctx context.Context, tx repository.RepositoryFactory, recipe *entity.Recipe, inputs []usecase.IngredientInput) error {
	loader := newFoodLoader(ctx, tx, s.maxDepth)
	ingredients := make([]*entity.Ingredient, 0, len(inputs))

	for _, input := range inputs {
		food, err := loader.food(input.Food, 1, false)
		if isMissing(err) {
			return domainerrors.ErrFoodNotFound.WithDetails(input.Food.String())
		}
		if err != nil {
			return err
		}

		if containsRecipe(food, recipe.ID) {
			return &domainerrors.RecursionDepthError{RecipeID: recipe.ID, Depth: loader.maxDepth}
		}

		ingredient, err := entity.NewIngredient(food, input.Amount)
		if err != nil {
			return err
		}
		ingredients = append(ingredients, ingredient)
	}

	err := tx.NewIngredientRepository().ReplaceForRecipe(ctx, recipe.ID, ingredients)
	if errors.Is(err, repository.ErrDanglingFood) {
		return domainerrors.ErrFoodNotFound.WithDetails(err.Error())
	}
	if err != nil {
		return fmt.Errorf("failed to store ingredients: %w", err)
	}

	recipe.SetIngredients(ingredients)

	return nil
}

// RescaleIngredient changes one ingredient's amount under the owning recipe's lock
func (s *recipeService) RescaleIngredient(ctx context.Context, ingredientID uint, field entity.NutrientField, newValue float64) (*entity.Ingredient, error) {
	if !field.Valid() {
		return nil, domainerrors.ErrUnknownNutrientField
	}

	var (
		ingredient *entity.Ingredient
		factor     float64
	)

	err := s.txManager.Execute(ctx, func(tx repository.RepositoryFactory) error {
		ingredients := tx.NewIngredientRepository()

		found, err := findIngredient(ctx, ingredients, ingredientID)
		if err != nil {
			return err
		}

		if _, err := tx.NewRecipeRepository().LockByID(ctx, found.RecipeID); err != nil {
			return fmt.Errorf("failed to lock recipe: %w", err)
		}

		// Read again now that concurrent writers of this recipe are excluded.
		ingredient, err = findIngredient(ctx, ingredients, ingredientID)
		if err != nil {
			return err
		}

		if err := newFoodLoader(ctx, tx, s.maxDepth).attach([]*entity.Ingredient{ingredient}, 1); err != nil {
			return err
		}

		factor, err = ingredient.Rescale(field, newValue)
		if err != nil {
			return err
		}

		if err := ingredients.UpdateAmounts(ctx, []*entity.Ingredient{ingredient}); err != nil {
			return fmt.Errorf("failed to update ingredient amount: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logs.FromContext(ctx, s.logger).InfoContext(ctx, "Ingredient rescaled",
		slog.Uint64("ingredient_id", uint64(ingredientID)),
		slog.String("field", field.String()),
		slog.Float64("factor", factor),
	)

	return ingredient, nil
}

func findIngredient(ctx context.Context, ingredients repository.IngredientRepository, id uint) (*entity.Ingredient, error) {
	ingredient, err := ingredients.FindByID(ctx, id)
	if errors.Is(err, repository.ErrIngredientNotFound) {
		return nil, domainerrors.ErrIngredientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find ingredient: %w", err)
	}

	return ingredient, nil
}
