package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"nutria/internal/domain/entity"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/domain/repository"
	"nutria/internal/errors"
	logs "nutria/internal/infra/log"
	"nutria/internal/usecase"
)

type productService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateProduct validates and stores a new product
func (s *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput, authorID *uint) (*entity.Product, error) {
	product := &entity.Product{AuthorID: authorID}
	categoryName, err := applyProductInput(product, input)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(tx repository.RepositoryFactory) error {
		if err := resolveProductRefs(ctx, tx, product, categoryName, input.Manufacturer); err != nil {
			return err
		}

		if err := tx.NewProductRepository().Create(ctx, product); err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logs.FromContext(ctx, s.logger).InfoContext(ctx, "Product created",
		slog.String("food_id", product.Key().String()),
		slog.String("name", product.DisplayName()),
	)

	return product, nil
}

// UpdateProduct replaces the writable fields of a stored product
func (s *productService) UpdateProduct(ctx context.Context, id uint, input *usecase.ProductInput) (*entity.Product, error) {
	var product *entity.Product

	err := s.txManager.Execute(ctx, func(tx repository.RepositoryFactory) error {
		products := tx.NewProductRepository()

		stored, err := products.LockByID(ctx, id)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrFoodNotFound.WithDetails(entity.ProductKey(id).String())
		}
		if err != nil {
			return fmt.Errorf("failed to lock product: %w", err)
		}

		categoryName, err := applyProductInput(stored, input)
		if err != nil {
			return err
		}

		if err := resolveProductRefs(ctx, tx, stored, categoryName, input.Manufacturer); err != nil {
			return err
		}

		if err := products.Update(ctx, stored); err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		product = stored

		return nil
	})
	if err != nil {
		return nil, err
	}

	logs.FromContext(ctx, s.logger).InfoContext(ctx, "Product updated", slog.String("food_id", product.Key().String()))

	return product, nil
}

// applyProductInput copies the input onto product and validates the result.
// It returns the category name still to be resolved.
func applyProductInput(product *entity.Product, input *usecase.ProductInput) (string, error) {
	if input == nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("product is empty")
	}

	categoryName, nameAddition, err := resolveName(input.FoodName)
	if err != nil {
		return "", err
	}

	product.NameAddition = nameAddition
	product.EAN = strings.TrimSpace(input.EAN)
	product.Values = input.Values
	product.Values.ReferenceAmount = entity.DefaultReferenceAmount
	if input.ReferenceAmount != nil {
		product.Values.ReferenceAmount = *input.ReferenceAmount
	}

	if err := product.Validate(); err != nil {
		return "", err
	}

	return categoryName, nil
}

func resolveProductRefs(ctx context.Context, tx repository.RepositoryFactory, product *entity.Product, categoryName, manufacturerName string) error {
	category, err := findCategory(ctx, tx, categoryName)
	if err != nil {
		return err
	}
	product.Category = *category

	product.Manufacturer = nil
	if name := strings.TrimSpace(manufacturerName); name != "" {
		manufacturer, err := tx.NewManufacturerRepository().FindOrCreate(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to resolve manufacturer: %w", err)
		}
		product.Manufacturer = manufacturer
	}

	return nil
}

// resolveName accepts either a combined "Category: Item" name or its two parts.
func resolveName(name usecase.FoodName) (category, nameAddition string, err error) {
	if strings.TrimSpace(name.Name) != "" {
		return entity.RequireCategory(name.Name)
	}

	return entity.RequireCategory(entity.DisplayName(name.Category, name.NameAddition))
}

func findCategory(ctx context.Context, tx repository.RepositoryFactory, name string) (*entity.Category, error) {
	category, err := tx.NewCategoryRepository().FindByName(ctx, name)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound.WithDetails(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return category, nil
}
