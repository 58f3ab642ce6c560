package impl

import (
	"context"
	"fmt"
	"log/slog"

	"nutria/internal/domain/entity"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/domain/repository"
	"nutria/internal/errors"
	logs "nutria/internal/infra/log"
	"nutria/internal/usecase"
)

type categoryService struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(repos repository.RepositoryFactory, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{
		repos:  repos,
		logger: logger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.repos.NewCategoryRepository().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	category, err := entity.NewCategory(name)
	if err != nil {
		return nil, err
	}

	err = s.repos.NewCategoryRepository().Create(ctx, category)
	if errors.Is(err, repository.ErrDuplicateCategory) {
		return nil, domainerrors.ErrCategoryAlreadyExists.WithDetails(category.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	logs.FromContext(ctx, s.logger).InfoContext(ctx, "Category created", slog.String("category", category.Name))

	return category, nil
}
