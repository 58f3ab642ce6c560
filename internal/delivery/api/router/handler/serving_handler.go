package handler

import (
	"log/slog"
	"net/http"

	"nutria/internal/delivery/api/response"
	"nutria/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServingHandlerParams holds dependencies for ServingHandler, injected by Fx.
type ServingHandlerParams struct {
	fx.In

	ServingUC usecase.ServingUsecase
	Logger    *slog.Logger
}

// ServingHandler serves the serving preset endpoints
type ServingHandler struct {
	servingUC usecase.ServingUsecase
	logger    *slog.Logger
}

// NewServingHandler is the constructor for ServingHandler
func NewServingHandler(params ServingHandlerParams) *ServingHandler {
	return &ServingHandler{
		servingUC: params.ServingUC,
		logger:    params.Logger,
	}
}

// CreateServingRequest represents the request body for creating a serving
type CreateServingRequest struct {
	Name string  `json:"name" validate:"required,max=50"`
	Size float64 `json:"size" validate:"gt=0"`
}

// ListServings returns the servings of a food ordered by size
func (h *ServingHandler) ListServings(c echo.Context) error {
	key, err := foodKeyParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	servings, err := h.servingUC.ListServings(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	res := make([]ServingResponse, 0, len(servings))
	for _, serving := range servings {
		res = append(res, newServingResponse(serving))
	}

	return response.Success(c, http.StatusOK, res)
}

// CreateServing adds a serving to a food
func (h *ServingHandler) CreateServing(c echo.Context) error {
	key, err := foodKeyParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateServingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	serving, err := h.servingUC.CreateServing(c.Request().Context(), key, req.Name, req.Size)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newServingResponse(serving))
}

// DeleteServing removes a serving
func (h *ServingHandler) DeleteServing(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.servingUC.DeleteServing(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ScaleToServing returns the values of a food at one of its servings
func (h *ServingHandler) ScaleToServing(c echo.Context) error {
	key, err := foodKeyParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	servingID, err := idParam(c, "servingId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.servingUC.ScaleToServing(c.Request().Context(), key, servingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ScaledServingResponse{
		Serving: newServingResponse(result.Serving),
		Values:  result.Profile,
	})
}
