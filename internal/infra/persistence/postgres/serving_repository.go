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

// servingRepository implements the domain.ServingRepository interface.
type servingRepository struct {
	db *gorm.DB
}

// NewServingRepository is the constructor for servingRepository.
func NewServingRepository(db *gorm.DB) repository.ServingRepository {
	return &servingRepository{db: db}
}

// Create persists a new serving.
func (repo *servingRepository) Create(ctx context.Context, serving *entity.Serving) error {
	servingM := fromServingDomain(serving)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(servingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDanglingFood
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidAmount.WrapMessage("serving size")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create serving")
	}

	serving.ID = servingM.ID

	return nil
}

// FindByID retrieves a serving.
func (repo *servingRepository) FindByID(ctx context.Context, id uint) (*entity.Serving, error) {
	var servingM model.ServingModel
	if err := repo.db.WithContext(ctx).First(&servingM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServingNotFound
		}

		return nil, errors.Wrap(err, "failed to find serving by ID")
	}

	return toServingDomain(&servingM), nil
}

// ListByFood returns the servings of a food, smallest first.
func (repo *servingRepository) ListByFood(ctx context.Context, key entity.FoodKey) ([]*entity.Serving, error) {
	column := "product_id"
	if key.Kind == entity.KindRecipe {
		column = "recipe_id"
	}

	var servingModels []*model.ServingModel
	err := repo.db.WithContext(ctx).
		Where(column+" = ?", key.ID).
		Order("size, id").
		Find(&servingModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list servings")
	}

	servings := make([]*entity.Serving, 0, len(servingModels))
	for _, servingM := range servingModels {
		servings = append(servings, toServingDomain(servingM))
	}

	return servings, nil
}

// Delete removes a serving.
func (repo *servingRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.ServingModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete serving")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServingNotFound
	}

	return nil
}

func toServingDomain(data *model.ServingModel) *entity.Serving {
	if data == nil {
		return nil
	}

	return &entity.Serving{
		ID:   data.ID,
		Name: data.Name,
		Size: data.Size,
		Food: foodRefFromColumns(data.ProductID, data.RecipeID),
	}
}

func fromServingDomain(data *entity.Serving) *model.ServingModel {
	if data == nil {
		return nil
	}

	productID, recipeID := foodColumns(data.Food)

	return &model.ServingModel{
		ID:        data.ID,
		Name:      data.Name,
		Size:      data.Size,
		ProductID: productID,
		RecipeID:  recipeID,
	}
}
