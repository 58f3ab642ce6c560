package usecase

import (
	"context"

	"nutria/internal/domain/entity"
)

// FoodName names a food either by a combined "Category: Item" string or by its parts.
type FoodName struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	NameAddition string `json:"name_addition"`
}

// ProductInput carries the writable fields of a product
type ProductInput struct {
	FoodName
	Manufacturer string                 `json:"manufacturer"`
	EAN          string                 `json:"ean"`
	Values       entity.NutrientProfile `json:"values"`
	// ReferenceAmount replaces Values.ReferenceAmount. Nil stores the
	// product for DefaultReferenceAmount grams.
	ReferenceAmount *float64 `json:"-"`
}

// ProductUsecase defines product maintenance
type ProductUsecase interface {
	// CreateProduct stores a new product. The category must exist.
	CreateProduct(ctx context.Context, input *ProductInput, authorID *uint) (*entity.Product, error)

	// UpdateProduct replaces every writable field of a product
	UpdateProduct(ctx context.Context, id uint, input *ProductInput) (*entity.Product, error)
}
