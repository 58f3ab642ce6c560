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

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	Logger   *slog.Logger
}

// RecipeHandler serves recipe composition
type RecipeHandler struct {
	recipeUC usecase.RecipeUsecase
	logger   *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC: params.RecipeUC,
		logger:   params.Logger,
	}
}

// IngredientRequest is one (food, amount) pair
type IngredientRequest struct {
	FoodID entity.FoodKey `json:"food_id"`
	Amount float64        `json:"amount" validate:"gt=0"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Name         string              `json:"name" validate:"max=100"`
	Category     string              `json:"category" validate:"required_without=Name,max=30"`
	NameAddition string              `json:"name_addition" validate:"required_without=Name,max=70"`
	Ingredients  []IngredientRequest `json:"ingredients" validate:"dive"`
}

// SetIngredientsRequest represents the request body for replacing a recipe's ingredients
type SetIngredientsRequest struct {
	Ingredients []IngredientRequest `json:"ingredients" validate:"dive"`
}

func toIngredientInputs(reqs []IngredientRequest) []usecase.IngredientInput {
	inputs := make([]usecase.IngredientInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, usecase.IngredientInput{Food: req.FoodID, Amount: req.Amount})
	}

	return inputs
}

// CreateRecipe stores a new recipe with its ingredients
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	var req CreateRecipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.RecipeInput{
		FoodName: usecase.FoodName{
			Name:         req.Name,
			Category:     req.Category,
			NameAddition: req.NameAddition,
		},
		Ingredients: toIngredientInputs(req.Ingredients),
	}

	detail, err := h.recipeUC.CreateRecipe(c.Request().Context(), input, authorID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newFoodDetailResponse(detail))
}

// SetIngredients replaces the ingredient list of a recipe
func (h *RecipeHandler) SetIngredients(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetIngredientsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.recipeUC.SetIngredients(c.Request().Context(), id, toIngredientInputs(req.Ingredients))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFoodDetailResponse(detail))
}

// RescaleIngredient changes one ingredient's amount so that a field reaches the given value
func (h *RecipeHandler) RescaleIngredient(c echo.Context) error {
	id, err := idParam(c, "id")
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

	ingredient, err := h.recipeUC.RescaleIngredient(c.Request().Context(), id, field, *req.Value)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newIngredientResponse(ingredient))
}
