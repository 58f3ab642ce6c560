package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"nutria/config"
	"nutria/internal/domain/entity"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/domain/repository"
	"nutria/internal/errors"
	logs "nutria/internal/infra/log"
	"nutria/internal/usecase"
)

type servingService struct {
	repos    repository.RepositoryFactory
	maxDepth int
	logger   *slog.Logger
}

// NewServingService creates a new serving service instance
func NewServingService(repos repository.RepositoryFactory, cfg *config.Config, logger *slog.Logger) usecase.ServingUsecase {
	return &servingService{
		repos:    repos,
		maxDepth: cfg.Nutrition.MaxRecipeDepth,
		logger:   logger,
	}
}

func (s *servingService) ListServings(ctx context.Context, key entity.FoodKey) ([]*entity.Serving, error) {
	if err := requireFood(ctx, s.repos, key); err != nil {
		return nil, err
	}

	servings, err := s.repos.NewServingRepository().ListByFood(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to list servings: %w", err)
	}

	return servings, nil
}

func (s *servingService) CreateServing(ctx context.Context, key entity.FoodKey, name string, size float64) (*entity.Serving, error) {
	serving := &entity.Serving{Name: strings.TrimSpace(name), Size: size, Food: entity.RefByKey(key)}
	if err := serving.Validate(); err != nil {
		return nil, err
	}

	if err := requireFood(ctx, s.repos, key); err != nil {
		return nil, err
	}

	err := s.repos.NewServingRepository().Create(ctx, serving)
	if errors.Is(err, repository.ErrDanglingFood) {
		return nil, domainerrors.ErrFoodNotFound.WithDetails(key.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create serving: %w", err)
	}

	logs.FromContext(ctx, s.logger).InfoContext(ctx, "Serving created",
		slog.String("food_id", key.String()),
		slog.Uint64("serving_id", uint64(serving.ID)),
	)

	return serving, nil
}

func (s *servingService) DeleteServing(ctx context.Context, id uint) error {
	err := s.repos.NewServingRepository().Delete(ctx, id)
	if errors.Is(err, repository.ErrServingNotFound) {
		return domainerrors.ErrServingNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete serving: %w", err)
	}

	return nil
}

func (s *servingService) ScaleToServing(ctx context.Context, key entity.FoodKey, servingID uint) (*usecase.ServingProfile, error) {
	serving, err := s.repos.NewServingRepository().FindByID(ctx, servingID)
	if errors.Is(err, repository.ErrServingNotFound) {
		return nil, domainerrors.ErrServingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find serving: %w", err)
	}
	if serving.Food.Key() != key {
		return nil, domainerrors.ErrServingNotFound.WithDetails("serving does not belong to food " + key.String())
	}

	food, err := newFoodLoader(ctx, s.repos, s.maxDepth).root(key)
	if err != nil {
		return nil, err
	}
	if serving.Food, err = entity.RefTo(food); err != nil {
		return nil, err
	}

	profile, err := serving.Scale()
	if err != nil {
		return nil, err
	}

	return &usecase.ServingProfile{Serving: serving, Profile: profile}, nil
}
