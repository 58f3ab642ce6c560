package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nutria/config"
	"nutria/internal/delivery/api/response"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/domain/service"
	"nutria/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FoodHandlerParams holds dependencies for FoodHandler, injected by Fx.
type FoodHandlerParams struct {
	fx.In

	FoodUC    usecase.FoodUsecase
	QRCodeSvc service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// FoodHandler serves the endpoints shared by products and recipes
type FoodHandler struct {
	foodUC       usecase.FoodUsecase
	qrCodeSvc    service.QRCodeService
	defaultCount int
	logger       *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler
func NewFoodHandler(params FoodHandlerParams) *FoodHandler {
	return &FoodHandler{
		foodUC:       params.FoodUC,
		qrCodeSvc:    params.QRCodeSvc,
		defaultCount: params.Config.Search.DefaultCount,
		logger:       params.Logger,
	}
}

// RescaleRequest carries the new value of a nutrient field
type RescaleRequest struct {
	Value *float64 `json:"value" validate:"required"`
}

// ScanRequest carries the text read from a food QR code
type ScanRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// Search lists foods by name substring, or products by barcode when ean is given
func (h *FoodHandler) Search(c echo.Context) error {
	count := h.defaultCount
	if raw := c.QueryParam("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("count must be an integer"))
		}
		count = parsed
	}

	ctx := c.Request().Context()

	var (
		results []usecase.FoodSummary
		err     error
	)
	if ean := c.QueryParam("ean"); ean != "" {
		results, err = h.foodUC.SearchByEAN(ctx, ean, count)
	} else {
		results, err = h.foodUC.Search(ctx, c.QueryParam("name"), count)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results)
}

// GetFood returns a food with its evaluated values
func (h *FoodHandler) GetFood(c echo.Context) error {
	key, err := foodKeyParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.foodUC.GetFood(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFoodDetailResponse(detail))
}

// ScaleFood returns the values of amount grams of a food
func (h *FoodHandler) ScaleFood(c echo.Context) error {
	key, err := foodKeyParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidAmount.WithDetails("amount must be a number"))
	}

	values, err := h.foodUC.ScaleFood(c.Request().Context(), key, amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, values)
}

// Rescale sets one field of a food and scales everything else along
func (h *FoodHandler) Rescale(c echo.Context) error {
	key, err := foodKeyParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	field, err := fieldParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RescaleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.foodUC.Rescale(c.Request().Context(), key, field, *req.Value)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFoodDetailResponse(detail))
}

// DeleteFood removes a food
func (h *FoodHandler) DeleteFood(c echo.Context) error {
	key, err := foodKeyParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.foodUC.DeleteFood(c.Request().Context(), key); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// QRCode returns a PNG QR code that encodes the food id
func (h *FoodHandler) QRCode(c echo.Context) error {
	key, err := foodKeyParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.foodUC.FoodExists(c.Request().Context(), key); err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCodeSvc.GenerateFoodQR(key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Scan resolves the payload of a scanned food QR code
func (h *FoodHandler) Scan(c echo.Context) error {
	var req ScanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	key, err := h.qrCodeSvc.ParseFoodQR(req.Payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.foodUC.GetFood(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFoodDetailResponse(detail))
}
