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

const foodSearchCondition = `name_addition ILIKE ? OR "Category".name ILIKE ?`

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product. Category and manufacturer must already exist.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(productM).Error; err != nil {
		return productWriteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

// Update saves every stored field of a product, including cleared values.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(productM).
		Select("*").
		Omit(clause.Associations, "ID", "CreatedAt", "AuthorID").
		Updates(productM)
	if result.Error != nil {
		return productWriteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a product with its category and manufacturer.
func (repo *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// LockByID retrieves a product and holds a row lock on it until the transaction ends.
func (repo *productRepository) LockByID(ctx context.Context, id uint) (*entity.Product, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{
		Strength: clause.LockingStrengthUpdate,
		Table:    clause.Table{Name: clause.CurrentTable},
	}), id)
}

func (repo *productRepository) findByID(db *gorm.DB, id uint) (*entity.Product, error) {
	var productM model.ProductModel
	err := db.
		Preload("Category").
		Preload("Manufacturer").
		First(&productM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Search returns up to limit products whose category name or name addition contains query.
func (repo *productRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	pattern := likePattern(query)

	return repo.findMany(ctx, "failed to search products", limit, func(db *gorm.DB) *gorm.DB {
		return db.Where(`"products".`+foodSearchCondition, pattern, pattern)
	})
}

// FindByEAN returns up to limit products carrying the barcode.
func (repo *productRepository) FindByEAN(ctx context.Context, ean string, limit int) ([]*entity.Product, error) {
	return repo.findMany(ctx, "failed to find products by ean", limit, func(db *gorm.DB) *gorm.DB {
		return db.Where(`"products".ean = ?`, ean)
	})
}

func (repo *productRepository) findMany(
	ctx context.Context, what string, limit int, where func(*gorm.DB) *gorm.DB,
) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	err := where(repo.db.WithContext(ctx).Joins("Category").Preload("Manufacturer")).
		Order(`"Category".name, "products".name_addition, "products".id`).
		Limit(limit).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, what)
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Delete removes a product; ingredients and servings using it are removed by cascade.
func (repo *productRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func productWriteError(err error, details string) error {
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category or manufacturer reference")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrMissingCalories.WrapMessage(details)
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrInvalidAmount.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:           data.ID,
		Category:     entity.Category{ID: data.CategoryID, Name: data.Category.Name},
		NameAddition: data.NameAddition,
		AuthorID:     data.AuthorID,
		CreatedAt:    data.CreatedAt,
	}
	if data.Manufacturer != nil {
		product.Manufacturer = &entity.Manufacturer{ID: data.Manufacturer.ID, Name: data.Manufacturer.Name}
	} else if data.ManufacturerID != nil {
		product.Manufacturer = &entity.Manufacturer{ID: *data.ManufacturerID}
	}
	if data.EAN != nil {
		product.EAN = *data.EAN
	}

	product.Values.ReferenceAmount = data.ReferenceAmount
	columns := data.NutrientColumns()
	for i, f := range entity.Nutrients() {
		product.Values.Set(f, *columns[i])
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:              data.ID,
		CategoryID:      data.Category.ID,
		NameAddition:    data.NameAddition,
		AuthorID:        data.AuthorID,
		ReferenceAmount: data.Values.ReferenceAmount,
		CreatedAt:       data.CreatedAt,
	}
	if data.Manufacturer != nil {
		id := data.Manufacturer.ID
		productM.ManufacturerID = &id
	}
	if data.EAN != "" {
		ean := data.EAN
		productM.EAN = &ean
	}

	columns := productM.NutrientColumns()
	for i, f := range entity.Nutrients() {
		*columns[i] = data.Values.Get(f)
	}

	return productM
}
