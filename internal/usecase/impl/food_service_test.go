package impl

import (
	"context"
	"testing"

	"nutria/internal/domain/entity"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/domain/repository"
	"nutria/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFoodService(fx *serviceFixtures) usecase.FoodUsecase {
	return NewFoodService(fx.repos, fx.txManager, fx.cfg, fx.logger)
}

func TestFoodService_GetFood_Product(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.products.EXPECT().FindByID(ctx, uint(5)).Return(testProduct(5, 100, 64, 3.4), nil)

	detail, err := service.GetFood(ctx, entity.ProductKey(5))
	require.NoError(t, err)
	assert.Equal(t, entity.ProductKey(5), detail.Food.Key())
	assert.InDelta(t, 64, *detail.Profile.Get(entity.Calories), 1e-9)
	assert.InDelta(t, 3.4, *detail.Profile.Get(entity.Protein), 1e-9)
	assert.Nil(t, detail.Profile.Get(entity.Sugar))
}

func TestFoodService_GetFood_NestedRecipe(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.recipes.EXPECT().FindByID(ctx, uint(1)).Return(testRecipe(1), nil)
	fx.expectNestedRecipe(ctx)

	detail, err := service.GetFood(ctx, entity.RecipeKey(1))
	require.NoError(t, err)

	// 50 g of 50 kcal/100 g plus 100 g of a 400 kcal/200 g recipe.
	assert.InDelta(t, 225, *detail.Profile.Get(entity.Calories), 1e-9)
	assert.InDelta(t, 150, *detail.Profile.Get(entity.ReferenceAmount), 1e-9)
	assert.Nil(t, detail.Profile.Get(entity.Protein), "unknown protein in recipe 2 makes the sum unknown")

	recipe, ok := detail.Food.(*entity.Recipe)
	require.True(t, ok)
	require.Len(t, recipe.Ingredients, 2)
	assert.True(t, recipe.Ingredients[1].Food.Resolved())
}

func TestFoodService_GetFood_SharedSubRecipeLoadedOnce(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.recipes.EXPECT().FindByID(ctx, uint(1)).Return(testRecipe(1), nil).Once()
	fx.recipes.EXPECT().FindByID(ctx, uint(2)).Return(testRecipe(2), nil).Once()
	fx.ingredients.EXPECT().ListByRecipe(ctx, uint(1)).Return([]*entity.Ingredient{
		storedIngredient(11, 1, entity.RecipeKey(2), 10),
		storedIngredient(12, 1, entity.RecipeKey(2), 30),
	}, nil).Once()
	fx.ingredients.EXPECT().ListByRecipe(ctx, uint(2)).Return([]*entity.Ingredient{
		storedIngredient(21, 2, entity.ProductKey(3), 100),
	}, nil).Once()
	fx.products.EXPECT().FindByID(ctx, uint(3)).Return(testProduct(3, 100, 80, 1), nil).Once()

	detail, err := service.GetFood(ctx, entity.RecipeKey(1))
	require.NoError(t, err)
	assert.InDelta(t, 32, *detail.Profile.Get(entity.Calories), 1e-9)
}

func TestFoodService_GetFood_NotFound(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.recipes.EXPECT().FindByID(ctx, uint(9)).Return(nil, repository.ErrRecipeNotFound)

	_, err := service.GetFood(ctx, entity.RecipeKey(9))
	assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
}

func TestFoodService_GetFood_DanglingIngredient(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.recipes.EXPECT().FindByID(ctx, uint(1)).Return(testRecipe(1), nil)
	fx.ingredients.EXPECT().ListByRecipe(ctx, uint(1)).Return([]*entity.Ingredient{
		storedIngredient(7, 1, entity.ProductKey(40), 50),
	}, nil)
	fx.products.EXPECT().FindByID(ctx, uint(40)).Return(nil, repository.ErrProductNotFound)

	_, err := service.GetFood(ctx, entity.RecipeKey(1))

	var unresolved *domainerrors.UnresolvedReferenceError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "product", unresolved.Kind)
	assert.Equal(t, uint(40), unresolved.ID)
	assert.Equal(t, "ingredient 7", unresolved.Owner)
}

func TestFoodService_GetFood_Cycle(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.recipes.EXPECT().FindByID(ctx, uint(1)).Return(testRecipe(1), nil)
	fx.recipes.EXPECT().FindByID(ctx, uint(2)).Return(testRecipe(2), nil)
	fx.ingredients.EXPECT().ListByRecipe(ctx, uint(1)).Return([]*entity.Ingredient{
		storedIngredient(11, 1, entity.RecipeKey(2), 50),
	}, nil)
	fx.ingredients.EXPECT().ListByRecipe(ctx, uint(2)).Return([]*entity.Ingredient{
		storedIngredient(21, 2, entity.RecipeKey(1), 50),
	}, nil)

	_, err := service.GetFood(ctx, entity.RecipeKey(1))

	var tooDeep *domainerrors.RecursionDepthError
	require.ErrorAs(t, err, &tooDeep)
	assert.Equal(t, uint(1), tooDeep.RecipeID)
}

func TestFoodService_ScaleFood(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.products.EXPECT().FindByID(ctx, uint(1)).Return(testProduct(1, 100, 50, 10), nil).Times(2)

	profile, err := service.ScaleFood(ctx, entity.ProductKey(1), 250)
	require.NoError(t, err)
	assert.InDelta(t, 125, *profile.Get(entity.Calories), 1e-9)
	assert.InDelta(t, 25, *profile.Get(entity.Protein), 1e-9)
	assert.InDelta(t, 250, *profile.Get(entity.ReferenceAmount), 1e-9)

	_, err = service.ScaleFood(ctx, entity.ProductKey(1), 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestFoodService_Search(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	milk := testProduct(3, 100, 64, 3.4)
	milk.Category.Name = "Milk"
	milk.NameAddition = "whole"
	shake := testRecipe(8)
	shake.Category.Name = "Shake"
	shake.NameAddition = "milk"

	fx.products.EXPECT().Search(ctx, "milk", 100).Return([]*entity.Product{milk}, nil)
	fx.recipes.EXPECT().Search(ctx, "milk", 100).Return([]*entity.Recipe{shake}, nil)

	results, err := service.Search(ctx, "  milk ", 500)
	require.NoError(t, err)
	assert.Equal(t, []usecase.FoodSummary{
		{Key: entity.ProductKey(3), Name: "Milk: whole"},
		{Key: entity.RecipeKey(8), Name: "Shake: milk"},
	}, results)
}

func TestFoodService_Search_Count(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	results, err := service.Search(ctx, "milk", 0)
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = service.Search(ctx, "milk", -1)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFoodService_SearchByEAN(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.products.EXPECT().FindByEAN(ctx, "4014400900118", 15).Return([]*entity.Product{testProduct(2, 100, 10, 1)}, nil)

	results, err := service.SearchByEAN(ctx, "4014400900118", 15)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entity.ProductKey(2), results[0].Key)

	_, err = service.SearchByEAN(ctx, "40144-009", 15)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEAN)
}

func TestFoodService_Rescale_Recipe(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.recipes.EXPECT().LockByID(ctx, uint(1)).Return(testRecipe(1), nil)
	fx.expectNestedRecipe(ctx)
	fx.ingredients.EXPECT().
		UpdateAmounts(ctx, mock.MatchedBy(func(ingredients []*entity.Ingredient) bool {
			return len(ingredients) == 2 && ingredients[0].Amount == 100 && ingredients[1].Amount == 200
		})).
		Return(nil)

	detail, err := service.Rescale(ctx, entity.RecipeKey(1), entity.Calories, 450)
	require.NoError(t, err)
	assert.InDelta(t, 450, *detail.Profile.Get(entity.Calories), 1e-9)
	assert.InDelta(t, 300, *detail.Profile.Get(entity.ReferenceAmount), 1e-9)
}

func TestFoodService_Rescale_Product(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.products.EXPECT().LockByID(ctx, uint(1)).Return(testProduct(1, 100, 50, 10), nil)
	fx.products.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Values.ReferenceAmount == 200 && *p.Values.Get(entity.Calories) == 100
		})).
		Return(nil)

	detail, err := service.Rescale(ctx, entity.ProductKey(1), entity.Calories, 100)
	require.NoError(t, err)
	assert.InDelta(t, 20, *detail.Profile.Get(entity.Protein), 1e-9)
}

func TestFoodService_Rescale_Undefined(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.products.EXPECT().LockByID(ctx, uint(2)).Return(testProduct(2, 100, 0, -1), nil).Times(2)

	_, err := service.Rescale(ctx, entity.ProductKey(2), entity.Calories, 100)
	var undefined *domainerrors.DivisionUndefinedError
	require.ErrorAs(t, err, &undefined)
	assert.Equal(t, "calories", undefined.Field)

	_, err = service.Rescale(ctx, entity.ProductKey(2), entity.Protein, 100)
	require.ErrorAs(t, err, &undefined)
	assert.Nil(t, undefined.Current)

	fx.products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFoodService_Rescale_Validation(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	_, err := service.Rescale(ctx, entity.ProductKey(1), entity.NutrientField(99), 10)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownNutrientField)

	fx.products.EXPECT().LockByID(ctx, uint(1)).Return(testProduct(1, 100, 50, 10), nil)

	_, err = service.Rescale(ctx, entity.ProductKey(1), entity.Calories, -3)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestFoodService_DeleteFood(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.recipes.EXPECT().Delete(ctx, uint(4)).Return(nil)
	fx.products.EXPECT().Delete(ctx, uint(4)).Return(repository.ErrProductNotFound)

	require.NoError(t, service.DeleteFood(ctx, entity.RecipeKey(4)))
	assert.ErrorIs(t, service.DeleteFood(ctx, entity.ProductKey(4)), domainerrors.ErrFoodNotFound)
}

func TestFoodService_FoodExists(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestFoodService(fx)
	ctx := context.Background()

	fx.products.EXPECT().FindByID(ctx, uint(7)).Return(testProduct(7, 100, 50, 10), nil)
	fx.recipes.EXPECT().FindByID(ctx, uint(3)).Return(nil, repository.ErrRecipeNotFound)

	require.NoError(t, service.FoodExists(ctx, entity.ProductKey(7)))
	assert.ErrorIs(t, service.FoodExists(ctx, entity.RecipeKey(3)), domainerrors.ErrFoodNotFound)
	assert.ErrorIs(t, service.FoodExists(ctx, entity.FoodKey{Kind: 5, ID: 1}), domainerrors.ErrInvalidFoodKey)

	fx.ingredients.AssertNotCalled(t, "ListByRecipe", mock.Anything, mock.Anything)
}
