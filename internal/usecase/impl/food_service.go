package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"nutria/config"
	"nutria/internal/domain/entity"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/domain/repository"
	"nutria/internal/errors"
	logs "nutria/internal/infra/log"
	"nutria/internal/usecase"
)

type foodService struct {
	repos     repository.RepositoryFactory
	txManager repository.TransactionManager
	maxDepth  int
	maxCount  int
	logger    *slog.Logger
}

// NewFoodService creates a new food service instance
func NewFoodService(
	repos repository.RepositoryFactory,
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FoodUsecase {
	return &foodService{
		repos:     repos,
		txManager: txManager,
		maxDepth:  cfg.Nutrition.MaxRecipeDepth,
		maxCount:  cfg.Search.MaxCount,
		logger:    logger,
	}
}

// GetFood loads a food and evaluates its profile
func (s *foodService) GetFood(ctx context.Context, key entity.FoodKey) (*usecase.FoodDetail, error) {
	food, err := newFoodLoader(ctx, s.repos, s.maxDepth).root(key)
	if err != nil {
		return nil, err
	}

	return detailOf(food)
}

// ScaleFood evaluates a food at amount grams
func (s *foodService) ScaleFood(ctx context.Context, key entity.FoodKey, amount float64) (entity.NutrientProfile, error) {
	food, err := newFoodLoader(ctx, s.repos, s.maxDepth).root(key)
	if err != nil {
		return entity.NutrientProfile{}, err
	}

	return entity.ScaleFood(food, amount)
}

// Search lists products first, then recipes
func (s *foodService) Search(ctx context.Context, query string, count int) ([]usecase.FoodSummary, error) {
	limit, err := s.searchLimit(count)
	if err != nil {
		return nil, err
	}
	if limit == 0 {
		return []usecase.FoodSummary{}, nil
	}

	query = strings.TrimSpace(query)

	products, err := s.repos.NewProductRepository().Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	recipes, err := s.repos.NewRecipeRepository().Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}

	return foodSummaries(products, recipes), nil
}

// SearchByEAN lists products carrying the barcode
func (s *foodService) SearchByEAN(ctx context.Context, ean string, count int) ([]usecase.FoodSummary, error) {
	ean = strings.TrimSpace(ean)
	if ean == "" || !entity.IsDigits(ean) {
		return nil, domainerrors.ErrInvalidEAN.WithDetails(ean)
	}

	limit, err := s.searchLimit(count)
	if err != nil {
		return nil, err
	}
	if limit == 0 {
		return []usecase.FoodSummary{}, nil
	}

	products, err := s.repos.NewProductRepository().FindByEAN(ctx, ean, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find products by ean: %w", err)
	}

	return foodSummaries(products, nil), nil
}

func (s *foodService) searchLimit(count int) (int, error) {
	if count < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("count must not be negative")
	}

	return min(count, s.maxCount), nil
}

// Rescale changes a food so that field becomes newValue and persists the
// new amounts. The food's row stays locked until the change is stored.
func (s *foodService) Rescale(ctx context.Context, key entity.FoodKey, field entity.NutrientField, newValue float64) (*usecase.FoodDetail, error) {
	if !field.Valid() {
		return nil, domainerrors.ErrUnknownNutrientField
	}

	var (
		food   entity.Food
		factor float64
	)

	err := s.txManager.Execute(ctx, func(tx repository.RepositoryFactory) error {
		var err error

		switch key.Kind {
		case entity.KindProduct:
			food, factor, err = rescaleProduct(ctx, tx, key.ID, field, newValue)
		case entity.KindRecipe:
			food, factor, err = rescaleRecipe(ctx, newFoodLoader(ctx, tx, s.maxDepth), tx, key.ID, field, newValue)
		default:
			err = domainerrors.ErrInvalidFoodKey.WithDetails(key.String())
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	logs.FromContext(ctx, s.logger).InfoContext(ctx, "Food rescaled",
		slog.String("food_id", key.String()),
		slog.String("field", field.String()),
		slog.Float64("factor", factor),
	)

	return detailOf(food)
}

func rescaleProduct(ctx context.Context, tx repository.RepositoryFactory, id uint, field entity.NutrientField, newValue float64) (entity.Food, float64, error) {
	products := tx.NewProductRepository()

	product, err := products.LockByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, 0, domainerrors.ErrFoodNotFound.WithDetails(entity.ProductKey(id).String())
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to lock product: %w", err)
	}

	factor, err := product.Rescale(field, newValue)
	if err != nil {
		return nil, 0, err
	}

	if err := products.Update(ctx, product); err != nil {
		return nil, 0, fmt.Errorf("failed to update product: %w", err)
	}

	return product, factor, nil
}

func rescaleRecipe(ctx context.Context, loader *foodLoader, tx repository.RepositoryFactory, id uint, field entity.NutrientField, newValue float64) (entity.Food, float64, error) {
	recipe, err := loader.lockedRecipe(id)
	if err != nil {
		return nil, 0, err
	}

	factor, err := recipe.Rescale(field, newValue)
	if err != nil {
		return nil, 0, err
	}

	if err := tx.NewIngredientRepository().UpdateAmounts(ctx, recipe.Ingredients); err != nil {
		return nil, 0, fmt.Errorf("failed to update ingredient amounts: %w", err)
	}

	return recipe, factor, nil
}

// DeleteFood removes a product or a recipe
func (s *foodService) DeleteFood(ctx context.Context, key entity.FoodKey) error {
	var err error

	switch key.Kind {
	case entity.KindProduct:
		err = s.repos.NewProductRepository().Delete(ctx, key.ID)
	case entity.KindRecipe:
		err = s.repos.NewRecipeRepository().Delete(ctx, key.ID)
	default:
		return domainerrors.ErrInvalidFoodKey.WithDetails(key.String())
	}

	if isMissing(err) {
		return domainerrors.ErrFoodNotFound.WithDetails(key.String())
	}
	if err != nil {
		return fmt.Errorf("failed to delete food %s: %w", key, err)
	}

	logs.FromContext(ctx, s.logger).InfoContext(ctx, "Food deleted", slog.String("food_id", key.String()))

	return nil
}

func detailOf(food entity.Food) (*usecase.FoodDetail, error) {
	profile, err := food.Profile()
	if err != nil {
		return nil, err
	}

	return &usecase.FoodDetail{Food: food, Profile: profile}, nil
}

// FoodExists checks that key names a stored food
func (s *foodService) FoodExists(ctx context.Context, key entity.FoodKey) error {
	return requireFood(ctx, s.repos, key)
}

// requireFood checks that key names a stored food without loading its graph.
func requireFood(ctx context.Context, repos repository.RepositoryFactory, key entity.FoodKey) error {
	var err error

	switch key.Kind {
	case entity.KindProduct:
		_, err = repos.NewProductRepository().FindByID(ctx, key.ID)
	case entity.KindRecipe:
		_, err = repos.NewRecipeRepository().FindByID(ctx, key.ID)
	default:
		return domainerrors.ErrInvalidFoodKey.WithDetails(key.String())
	}

	if isMissing(err) {
		return domainerrors.ErrFoodNotFound.WithDetails(key.String())
	}

	return err
}
