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

func newTestProductService(fx *serviceFixtures) usecase.ProductUsecase {
	return NewProductService(fx.txManager, fx.logger)
}

func productInput(name string, calories float64) *usecase.ProductInput {
	input := &usecase.ProductInput{FoodName: usecase.FoodName{Name: name}}
	input.Values.Set(entity.Calories, entity.Float(calories))

	return input
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestProductService(fx)
	ctx := context.Background()

	input := productInput("Milk: whole, 3.5%", 64)
	input.Manufacturer = " Farm Co "
	input.EAN = "4014400900118"

	fx.categories.EXPECT().FindByName(ctx, "Milk").Return(&entity.Category{ID: 4, Name: "Milk"}, nil)
	fx.manufacturers.EXPECT().FindOrCreate(ctx, "Farm Co").Return(&entity.Manufacturer{ID: 2, Name: "Farm Co"}, nil)
	fx.products.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) { product.ID = 31 }).
		Return(nil)

	product, err := service.CreateProduct(ctx, input, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductKey(31), product.Key())
	assert.Equal(t, "Milk: whole, 3.5%", product.DisplayName())
	assert.Equal(t, uint(4), product.Category.ID)
	require.NotNil(t, product.Manufacturer)
	assert.Equal(t, "Farm Co", product.Manufacturer.Name)
	assert.InDelta(t, entity.DefaultReferenceAmount, product.Values.ReferenceAmount, 1e-9)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestProductService(fx)
	ctx := context.Background()

	noCalories := &usecase.ProductInput{FoodName: usecase.FoodName{Category: "Milk", NameAddition: "skim"}}
	_, err := service.CreateProduct(ctx, noCalories, nil)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCalories)

	badEAN := productInput("Milk: skim", 35)
	badEAN.EAN = "40x"
	_, err = service.CreateProduct(ctx, badEAN, nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEAN)

	_, err = service.CreateProduct(ctx, productInput("skim milk", 35), nil)
	var malformed *domainerrors.MalformedNameError
	assert.ErrorAs(t, err, &malformed)

	zeroReference := productInput("Milk: skim", 35)
	zeroReference.ReferenceAmount = entity.Float(0)
	_, err = service.CreateProduct(ctx, zeroReference, nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)

	_, err = service.CreateProduct(ctx, nil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestProductService(fx)
	ctx := context.Background()

	fx.categories.EXPECT().FindByName(ctx, "Cheese").Return(nil, repository.ErrCategoryNotFound)

	_, err := service.CreateProduct(ctx, productInput("Cheese: gouda", 356), nil)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_UpdateProduct(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestProductService(fx)
	ctx := context.Background()

	stored := testProduct(6, 100, 50, 10)
	stored.Manufacturer = &entity.Manufacturer{ID: 1, Name: "Old"}

	fx.products.EXPECT().LockByID(ctx, uint(6)).Return(stored, nil)
	fx.categories.EXPECT().FindByName(ctx, "Test").Return(&entity.Category{ID: 1, Name: "Test"}, nil)
	fx.products.EXPECT().Update(ctx, stored).Return(nil)

	input := productInput("Test: renamed", 70)
	input.ReferenceAmount = entity.Float(50)

	product, err := service.UpdateProduct(ctx, 6, input)
	require.NoError(t, err)
	assert.Equal(t, "renamed", product.NameAddition)
	assert.Nil(t, product.Manufacturer)
	assert.InDelta(t, 50, product.Values.ReferenceAmount, 1e-9)
	assert.Nil(t, product.Values.Get(entity.Protein))
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := newServiceFixtures(t)
	service := newTestProductService(fx)
	ctx := context.Background()

	fx.products.EXPECT().LockByID(ctx, uint(6)).Return(nil, repository.ErrProductNotFound)

	_, err := service.UpdateProduct(ctx, 6, productInput("Test: x", 1))
	assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
}
