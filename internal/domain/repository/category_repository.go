// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nutria/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when a category name is already taken.
	ErrDuplicateCategory = errors.New("category already exists")
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// Create persists a new category and sets its ID.
	Create(ctx context.Context, category *entity.Category) error

	// FindByName retrieves a category by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)
}

// ManufacturerRepository defines the interface for manufacturer persistence.
type ManufacturerRepository interface {
	// FindOrCreate returns the manufacturer with the given name, creating it on first use.
	FindOrCreate(ctx context.Context, name string) (*entity.Manufacturer, error)
}
