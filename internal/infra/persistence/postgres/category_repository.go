// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"nutria/internal/domain/entity"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/domain/repository"
	"nutria/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the domain.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCategory
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

// FindByName retrieves a category by its exact name.
func (repo *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by name")
	}

	return toCategoryDomain(&categoryM), nil
}

// List returns all categories ordered by name.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// manufacturerRepository implements the domain.ManufacturerRepository interface.
type manufacturerRepository struct {
	db *gorm.DB
}

// NewManufacturerRepository is the constructor for manufacturerRepository.
func NewManufacturerRepository(db *gorm.DB) repository.ManufacturerRepository {
	return &manufacturerRepository{db: db}
}

// FindOrCreate returns the manufacturer named name, creating it on first use.
func (repo *manufacturerRepository) FindOrCreate(ctx context.Context, name string) (*entity.Manufacturer, error) {
	var manufacturerM model.ManufacturerModel
	err := repo.db.WithContext(ctx).
		Where(model.ManufacturerModel{Name: name}).
		FirstOrCreate(&manufacturerM).Error
	if err != nil && isUniqueConstraintViolation(err) {
		// Lost a race with a concurrent insert of the same name.
		err = repo.db.WithContext(ctx).Where("name = ?", name).First(&manufacturerM).Error
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find or create manufacturer")
	}

	return &entity.Manufacturer{ID: manufacturerM.ID, Name: manufacturerM.Name}, nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:   data.ID,
		Name: data.Name,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:   data.ID,
		Name: data.Name,
	}
}
