package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"nutria/config"
	"nutria/internal/domain/entity"
	"nutria/internal/domain/repository"
	mockRepo "nutria/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// serviceFixtures holds the mocked persistence shared by all service tests.
// The transaction manager runs its callback against the same repositories.
type serviceFixtures struct {
	repos         *mockRepo.MockRepositoryFactory
	txManager     *mockRepo.MockTransactionManager
	categories    *mockRepo.MockCategoryRepository
	manufacturers *mockRepo.MockManufacturerRepository
	products      *mockRepo.MockProductRepository
	recipes       *mockRepo.MockRecipeRepository
	ingredients   *mockRepo.MockIngredientRepository
	servings      *mockRepo.MockServingRepository
	cfg           *config.Config
	logger        *slog.Logger
}

func newServiceFixtures(t *testing.T) *serviceFixtures {
	fx := &serviceFixtures{
		repos:         mockRepo.NewMockRepositoryFactory(t),
		txManager:     mockRepo.NewMockTransactionManager(t),
		categories:    mockRepo.NewMockCategoryRepository(t),
		manufacturers: mockRepo.NewMockManufacturerRepository(t),
		products:      mockRepo.NewMockProductRepository(t),
		recipes:       mockRepo.NewMockRecipeRepository(t),
		ingredients:   mockRepo.NewMockIngredientRepository(t),
		servings:      mockRepo.NewMockServingRepository(t),
		cfg:           &config.Config{},
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	fx.cfg.Search.DefaultCount = 15
	fx.cfg.Search.MaxCount = 100
	fx.cfg.Nutrition.MaxRecipeDepth = entity.MaxRecipeDepth

	fx.repos.EXPECT().NewCategoryRepository().Return(fx.categories).Maybe()
	fx.repos.EXPECT().NewManufacturerRepository().Return(fx.manufacturers).Maybe()
	fx.repos.EXPECT().NewProductRepository().Return(fx.products).Maybe()
	fx.repos.EXPECT().NewRecipeRepository().Return(fx.recipes).Maybe()
	fx.repos.EXPECT().NewIngredientRepository().Return(fx.ingredients).Maybe()
	fx.repos.EXPECT().NewServingRepository().Return(fx.servings).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repos)
		}).
		Maybe()

	return fx
}

// testProduct builds a stored product. A negative value leaves the field unknown.
func testProduct(id uint, referenceAmount, calories, protein float64) *entity.Product {
	p := &entity.Product{
		ID:           id,
		Category:     entity.Category{ID: 1, Name: "Test"},
		NameAddition: "product",
	}
	p.Values.ReferenceAmount = referenceAmount
	p.Values.Set(entity.Calories, entity.Float(calories))
	if protein >= 0 {
		p.Values.Set(entity.Protein, entity.Float(protein))
	}

	return p
}

func testRecipe(id uint) *entity.Recipe {
	return &entity.Recipe{
		ID:           id,
		Category:     entity.Category{ID: 2, Name: "Soup"},
		NameAddition: "recipe",
	}
}

func storedIngredient(id, recipeID uint, food entity.FoodKey, amount float64) *entity.Ingredient {
	return &entity.Ingredient{ID: id, RecipeID: recipeID, Amount: amount, Food: entity.RefByKey(food)}
}

// expectNestedRecipe stores recipe 1 = 50 g of product 1 + 100 g of recipe 2,
// and recipe 2 = 200 g of product 2. Product 2 has no protein value.
func (fx *serviceFixtures) expectNestedRecipe(ctx context.Context) {
	fx.products.EXPECT().FindByID(ctx, uint(1)).Return(testProduct(1, 100, 50, 10), nil).Maybe()
	fx.products.EXPECT().FindByID(ctx, uint(2)).Return(testProduct(2, 100, 200, -1), nil).Maybe()
	fx.recipes.EXPECT().FindByID(ctx, uint(2)).Return(testRecipe(2), nil).Maybe()
	fx.ingredients.EXPECT().ListByRecipe(ctx, uint(1)).Return([]*entity.Ingredient{
		storedIngredient(11, 1, entity.ProductKey(1), 50),
		storedIngredient(12, 1, entity.RecipeKey(2), 100),
	}, nil).Maybe()
	fx.ingredients.EXPECT().ListByRecipe(ctx, uint(2)).Return([]*entity.Ingredient{
		storedIngredient(21, 2, entity.ProductKey(2), 200),
	}, nil).Maybe()
}
