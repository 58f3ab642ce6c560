package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"nutria/internal/delivery/api/response"
	"nutria/internal/domain/entity"
	"nutria/internal/errors"
	"nutria/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves product maintenance
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the request body for creating or replacing a product.
// The name is either combined ("Milk: whole") or given as category and name addition.
type ProductRequest struct {
	Name         string        `json:"name" validate:"max=100"`
	Category     string        `json:"category" validate:"required_without=Name,max=30"`
	NameAddition string        `json:"name_addition" validate:"required_without=Name,max=70"`
	Manufacturer string        `json:"manufacturer" validate:"max=100"`
	EAN          string        `json:"ean" validate:"max=14"`
	Values       productValues `json:"values"`
}

// productValues remembers whether reference_amount was sent, so an explicit
// 0 is rejected instead of falling back to the default.
type productValues struct {
	entity.NutrientProfile
	hasReference bool
}

func (v *productValues) UnmarshalJSON(data []byte) error {
	if err := v.NutrientProfile.UnmarshalJSON(data); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode product values")
	}
	ref, ok := raw[entity.ReferenceAmount.String()]
	v.hasReference = ok && string(ref) != "null"

	return nil
}

func (v *productValues) referenceAmount() *float64 {
	if !v.hasReference {
		return nil
	}

	return entity.Float(v.ReferenceAmount)
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		FoodName: usecase.FoodName{
			Name:         r.Name,
			Category:     r.Category,
			NameAddition: r.NameAddition,
		},
		Manufacturer:    r.Manufacturer,
		EAN:             r.EAN,
		Values:          r.Values.NutrientProfile,
		ReferenceAmount: r.Values.referenceAmount(),
	}
}

// CreateProduct stores a new product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), req.toInput(), authorID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newFoodResponse(product, product.Values))
}

// UpdateProduct replaces a product's fields
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFoodResponse(product, product.Values))
}
