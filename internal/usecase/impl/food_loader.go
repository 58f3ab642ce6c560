package impl

import (
	"context"
	"fmt"
	"strconv"

	"nutria/internal/domain/entity"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/domain/repository"
	"nutria/internal/errors"
	"nutria/internal/usecase"
)

// foodLoader materializes a food together with its full ingredient graph.
// One loader serves a single request; sub-recipes reached twice share one
// loaded instance.
type foodLoader struct {
	ctx         context.Context
	products    repository.ProductRepository
	recipes     repository.RecipeRepository
	ingredients repository.IngredientRepository
	maxDepth    int

	productMemo map[uint]*entity.Product
	recipeMemo  map[uint]*entity.Recipe
	onPath      map[uint]bool
}

func newFoodLoader(ctx context.Context, repos repository.RepositoryFactory, maxDepth int) *foodLoader {
	if maxDepth <= 0 || maxDepth > entity.MaxRecipeDepth {
		maxDepth = entity.MaxRecipeDepth
	}

	return &foodLoader{
		ctx:         ctx,
		products:    repos.NewProductRepository(),
		recipes:     repos.NewRecipeRepository(),
		ingredients: repos.NewIngredientRepository(),
		maxDepth:    maxDepth,
		productMemo: make(map[uint]*entity.Product),
		recipeMemo:  make(map[uint]*entity.Recipe),
		onPath:      make(map[uint]bool),
	}
}

// root loads the food addressed by a request. A missing root is ErrFoodNotFound.
func (l *foodLoader) root(key entity.FoodKey) (entity.Food, error) {
	food, err := l.food(key, 0, false)
	if isMissing(err) {
		return nil, domainerrors.ErrFoodNotFound.WithDetails(key.String())
	}

	return food, err
}

// lockedRecipe loads a recipe whose row is locked for the rest of the transaction.
func (l *foodLoader) lockedRecipe(id uint) (*entity.Recipe, error) {
	recipe, err := l.recipe(id, 0, true)
	if isMissing(err) {
		return nil, domainerrors.ErrFoodNotFound.WithDetails(entity.RecipeKey(id).String())
	}

	return recipe, err
}

// attach resolves the food of every ingredient. A food that no longer exists
// is reported against the ingredient referencing it.
func (l *foodLoader) attach(ingredients []*entity.Ingredient, depth int) error {
	for _, ingredient := range ingredients {
		key := ingredient.Food.Key()

		food, err := l.food(key, depth, false)
		if isMissing(err) {
			return &domainerrors.UnresolvedReferenceError{
				Kind:  key.Kind.String(),
				ID:    key.ID,
				Owner: "ingredient " + strconv.FormatUint(uint64(ingredient.ID), 10),
			}
		}
		if err != nil {
			return err
		}

		if err := ingredient.SetFood(food); err != nil {
			return err
		}
	}

	return nil
}

func (l *foodLoader) food(key entity.FoodKey, depth int, lock bool) (entity.Food, error) {
	switch key.Kind {
	case entity.KindProduct:
		return l.product(key.ID)
	case entity.KindRecipe:
		return l.recipe(key.ID, depth, lock)
	default:
		return nil, domainerrors.ErrInvalidFoodKey.WithDetails(key.String())
	}
}

func (l *foodLoader) product(id uint) (*entity.Product, error) {
	if product, ok := l.productMemo[id]; ok {
		return product, nil
	}

	product, err := l.products.FindByID(l.ctx, id)
	if err != nil {
		return nil, err
	}
	l.productMemo[id] = product

	return product, nil
}

func (l *foodLoader) recipe(id uint, depth int, lock bool) (*entity.Recipe, error) {
	if l.onPath[id] || depth >= l.maxDepth {
		return nil, &domainerrors.RecursionDepthError{RecipeID: id, Depth: l.maxDepth}
	}
	if recipe, ok := l.recipeMemo[id]; ok {
		return recipe, nil
	}

	find := l.recipes.FindByID
	if lock {
		find = l.recipes.LockByID
	}
	recipe, err := find(l.ctx, id)
	if err != nil {
		return nil, err
	}

	ingredients, err := l.ingredients.ListByRecipe(l.ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients of recipe %d: %w", id, err)
	}

	l.onPath[id] = true
	err = l.attach(ingredients, depth+1)
	delete(l.onPath, id)
	if err != nil {
		return nil, err
	}

	recipe.SetIngredients(ingredients)
	l.recipeMemo[id] = recipe

	return recipe, nil
}

func isMissing(err error) bool {
	return errors.IsAny(err, repository.ErrProductNotFound, repository.ErrRecipeNotFound)
}

// containsRecipe reports whether recipe id occurs anywhere below food.
func containsRecipe(food entity.Food, id uint) bool {
	recipe, ok := food.(*entity.Recipe)
	if !ok {
		return false
	}
	if recipe.ID == id {
		return true
	}

	for _, ingredient := range recipe.Ingredients {
		if sub := ingredient.Food.Recipe(); sub != nil && containsRecipe(sub, id) {
			return true
		}
	}

	return false
}

func foodSummaries(products []*entity.Product, recipes []*entity.Recipe) []usecase.FoodSummary {
	summaries := make([]usecase.FoodSummary, 0, len(products)+len(recipes))
	for _, product := range products {
		summaries = append(summaries, usecase.FoodSummary{Key: product.Key(), Name: product.DisplayName()})
	}
	for _, recipe := range recipes {
		summaries = append(summaries, usecase.FoodSummary{Key: recipe.Key(), Name: recipe.DisplayName()})
	}

	return summaries
}
