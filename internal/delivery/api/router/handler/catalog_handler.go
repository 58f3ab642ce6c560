package handler

import (
	"log/slog"
	"net/http"

	"nutria/internal/delivery/api/response"
	"nutria/internal/domain/entity"
	"nutria/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck reports that the server is up
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ListNutrients returns the nutrient table in display order
func ListNutrients(c echo.Context) error {
	fields := entity.Fields()
	nutrients := make([]NutrientResponse, 0, len(fields))
	for _, f := range fields {
		nutrients = append(nutrients, NutrientResponse{Name: f.String(), Unit: f.Unit(), Label: f.Label()})
	}

	return response.Success(c, http.StatusOK, nutrients)
}

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler serves the category endpoints
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=30"`
}

// ListCategories returns every category ordered by name
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	res := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		res = append(res, CategoryResponse{ID: category.ID, Name: category.Name})
	}

	return response.Success(c, http.StatusOK, res)
}

// CreateCategory adds a category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CategoryResponse{ID: category.ID, Name: category.Name})
}
