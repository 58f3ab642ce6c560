package postgres

import (
	"context"

	"nutria/internal/domain/entity"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/domain/repository"
	"nutria/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ingredientRepository implements the domain.IngredientRepository interface.
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{db: db}
}

// FindByID retrieves a single ingredient.
func (repo *ingredientRepository) FindByID(ctx context.Context, id uint) (*entity.Ingredient, error) {
	var ingredientM model.IngredientModel
	if err := repo.db.WithContext(ctx).First(&ingredientM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient by ID")
	}

	return toIngredientDomain(&ingredientM), nil
}

// ListByRecipe returns the ingredients of a recipe in insertion order.
func (repo *ingredientRepository) ListByRecipe(ctx context.Context, recipeID uint) ([]*entity.Ingredient, error) {
	var ingredientModels []*model.IngredientModel
	err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("id").
		Find(&ingredientModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientModels))
	for _, ingredientM := range ingredientModels {
		ingredients = append(ingredients, toIngredientDomain(ingredientM))
	}

	return ingredients, nil
}

// ReplaceForRecipe deletes the recipe's ingredients and inserts the given ones.
// Callers run it inside a transaction.
func (repo *ingredientRepository) ReplaceForRecipe(ctx context.Context, recipeID uint, ingredients []*entity.Ingredient) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("recipe_id = ?", recipeID).Delete(&model.IngredientModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ingredients")
	}
	if len(ingredients) == 0 {
		return nil
	}

	ingredientModels := make([]*model.IngredientModel, 0, len(ingredients))
	for _, ingredient := range ingredients {
		ingredient.RecipeID = recipeID
		ingredientModels = append(ingredientModels, fromIngredientDomain(ingredient))
	}

	if err := db.Omit(clause.Associations).Create(&ingredientModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDanglingFood
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ingredients")
	}

	for i, ingredientM := range ingredientModels {
		ingredients[i].ID = ingredientM.ID
	}

	return nil
}

// UpdateAmounts persists the amount of every given ingredient.
func (repo *ingredientRepository) UpdateAmounts(ctx context.Context, ingredients []*entity.Ingredient) error {
	db := repo.db.WithContext(ctx)

	for _, ingredient := range ingredients {
		result := db.Model(&model.IngredientModel{ID: ingredient.ID}).Update("amount", ingredient.Amount)
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ingredient amount")
		}
		if result.RowsAffected == 0 {
			return repository.ErrIngredientNotFound
		}
	}

	return nil
}

// foodRefFromColumns maps the two nullable foreign keys onto a food reference.
// Should both be set, the recipe wins.
func foodRefFromColumns(productID, recipeID *uint) entity.FoodRef {
	switch {
	case recipeID != nil:
		return entity.RefByKey(entity.RecipeKey(*recipeID))
	case productID != nil:
		return entity.RefByKey(entity.ProductKey(*productID))
	default:
		return entity.RefByKey(entity.FoodKey{})
	}
}

func foodColumns(ref entity.FoodRef) (productID, recipeID *uint) {
	key := ref.Key()
	id := key.ID
	if key.Kind == entity.KindRecipe {
		return nil, &id
	}

	return &id, nil
}

func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	if data == nil {
		return nil
	}

	return &entity.Ingredient{
		ID:       data.ID,
		RecipeID: data.RecipeID,
		Amount:   data.Amount,
		Food:     foodRefFromColumns(data.ProductID, data.SubRecipeID),
	}
}

func fromIngredientDomain(data *entity.Ingredient) *model.IngredientModel {
	if data == nil {
		return nil
	}

	productID, recipeID := foodColumns(data.Food)

	return &model.IngredientModel{
		ID:          data.ID,
		RecipeID:    data.RecipeID,
		ProductID:   productID,
		SubRecipeID: recipeID,
		Amount:      data.Amount,
	}
}
