package repository

import "context"

// TransactionManager runs multi-step food writes atomically. Rescales take
// their row locks through the factory handed to fn, so the lock is held
// until fn returns.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one connection or transaction.
type RepositoryFactory interface {
	NewCategoryRepository() CategoryRepository
	NewManufacturerRepository() ManufacturerRepository
	NewProductRepository() ProductRepository
	NewRecipeRepository() RecipeRepository
	NewIngredientRepository() IngredientRepository
	NewServingRepository() ServingRepository
}
