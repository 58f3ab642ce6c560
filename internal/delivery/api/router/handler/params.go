package handler

import (
	"strconv"

	"nutria/internal/delivery/api/middleware"
	"nutria/internal/domain/entity"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/errors"

	"github.com/labstack/echo/v4"
)

func foodKeyParam(c echo.Context) (entity.FoodKey, error) {
	return entity.ParseFoodKey(c.Param("key"))
}

func fieldParam(c echo.Context) (entity.NutrientField, error) {
	return entity.ParseNutrientField(c.Param("field"))
}

func idParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)

	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " " + strconv.Quote(raw))
	}

	return uint(id), nil
}

// bindAndValidate decodes the request into req and runs the struct validator.
// Errors raised while decoding domain types, such as an unknown nutrient
// name, are returned unchanged.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if msg, ok := httpErr.Message.(string); ok {
				return domainerrors.ErrValidationFailed.WithDetails(msg)
			}
		}

		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	return c.Validate(req)
}

func authorID(c echo.Context) *uint {
	if id, ok := middleware.GetUserID(c); ok {
		return &id
	}

	return nil
}
