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

// recipeRepository implements the domain.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists the recipe row. Ingredients are stored separately.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt

	return nil
}

// FindByID retrieves a recipe with its category.
func (repo *recipeRepository) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// LockByID retrieves a recipe and holds a row lock on it until the transaction ends.
// Rescales lock the recipe before reading its ingredients so they serialize.
func (repo *recipeRepository) LockByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{
		Strength: clause.LockingStrengthUpdate,
		Table:    clause.Table{Name: clause.CurrentTable},
	}), id)
}

func (repo *recipeRepository) findByID(db *gorm.DB, id uint) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	if err := db.Preload("Category").First(&recipeM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by ID")
	}

	return toRecipeDomain(&recipeM), nil
}

// Search returns up to limit recipes whose category name or name addition contains query.
func (repo *recipeRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Recipe, error) {
	pattern := likePattern(query)

	var recipeModels []*model.RecipeModel
	err := repo.db.WithContext(ctx).
		Joins("Category").
		Where(`"recipes".`+foodSearchCondition, pattern, pattern).
		Order(`"Category".name, "recipes".name_addition, "recipes".id`).
		Limit(limit).
		Find(&recipeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// Delete removes a recipe. Its ingredients, its servings and every ingredient
// using it in another recipe are removed by cascade.
func (repo *recipeRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.RecipeModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:           data.ID,
		Category:     entity.Category{ID: data.CategoryID, Name: data.Category.Name},
		NameAddition: data.NameAddition,
		AuthorID:     data.AuthorID,
		CreatedAt:    data.CreatedAt,
	}
}

func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:           data.ID,
		CategoryID:   data.Category.ID,
		NameAddition: data.NameAddition,
		AuthorID:     data.AuthorID,
		CreatedAt:    data.CreatedAt,
	}
}
