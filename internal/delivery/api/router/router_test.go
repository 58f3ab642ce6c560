package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nutria/config"
	"nutria/internal/delivery/api/middleware"
	"nutria/internal/delivery/api/response"
	"nutria/internal/delivery/api/router/handler"
	"nutria/internal/delivery/api/validator"
	"nutria/internal/domain/entity"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/errors"
	"nutria/internal/infra/auth"
	"nutria/internal/infra/qrcode"
	mockUsecase "nutria/internal/mocks/usecase"
	"nutria/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = uint(42)

type apiFixtures struct {
	e          *echo.Echo
	token      string
	foodUC     *mockUsecase.MockFoodUsecase
	servingUC  *mockUsecase.MockServingUsecase
	productUC  *mockUsecase.MockProductUsecase
	recipeUC   *mockUsecase.MockRecipeUsecase
	categoryUC *mockUsecase.MockCategoryUsecase
}

func newAPIFixtures(t *testing.T) *apiFixtures {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "router-test-secret"
	cfg.SecretKey.AccessTTL = time.Hour
	cfg.Search.DefaultCount = 15
	cfg.Search.MaxCount = 100

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	token, err := tokens.GenerateToken(testUserID)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := &apiFixtures{
		e:          echo.New(),
		token:      token,
		foodUC:     mockUsecase.NewMockFoodUsecase(t),
		servingUC:  mockUsecase.NewMockServingUsecase(t),
		productUC:  mockUsecase.NewMockProductUsecase(t),
		recipeUC:   mockUsecase.NewMockRecipeUsecase(t),
		categoryUC: mockUsecase.NewMockCategoryUsecase(t),
	}

	fx.e.Validator = validator.New()
	fx.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		FoodHandler: handler.NewFoodHandler(handler.FoodHandlerParams{
			FoodUC:    fx.foodUC,
			QRCodeSvc: qrcode.NewQRCodeService(128, "M"),
			Config:    cfg,
			Logger:    logger,
		}),
		ServingHandler:  handler.NewServingHandler(handler.ServingHandlerParams{ServingUC: fx.servingUC, Logger: logger}),
		ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: fx.productUC, Logger: logger}),
		RecipeHandler:   handler.NewRecipeHandler(handler.RecipeHandlerParams{RecipeUC: fx.recipeUC, Logger: logger}),
		CategoryHandler: handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: fx.categoryUC, Logger: logger}),
		AuthMiddleware:  middleware.NewAuthMiddleware(tokens),
	}).RegisterRoutes(fx.e)

	return fx
}

func (fx *apiFixtures) do(method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+fx.token)
	}

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) *response.ErrorInfo {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, code, env.Error.Code)

	return env.Error
}

func milk() *entity.Product {
	p := &entity.Product{
		ID:           7,
		Category:     entity.Category{ID: 1, Name: "Milk"},
		NameAddition: "whole",
		EAN:          "4014400900118",
	}
	p.Values.ReferenceAmount = 100
	p.Values.Set(entity.Calories, entity.Float(64))

	return p
}

func TestRouter_Health(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_ListNutrients(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/api/v1/nutrients", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var nutrients []handler.NutrientResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &nutrients))
	require.Len(t, nutrients, len(entity.Fields()))
	assert.Equal(t, handler.NutrientResponse{Name: "calories", Unit: entity.UnitKilocalorie, Label: "Calories"}, nutrients[1])
}

func TestRouter_SearchFoods(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.foodUC.EXPECT().Search(mock.Anything, "milk", 15).
		Return([]usecase.FoodSummary{{Key: entity.ProductKey(7), Name: "Milk: whole"}}, nil)
	fx.foodUC.EXPECT().SearchByEAN(mock.Anything, "4014400900118", 5).Return([]usecase.FoodSummary{}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/foods?name=milk", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"07","name":"Milk: whole"}]`, string(decode(t, rec).Data))

	rec = fx.do(http.MethodGet, "/api/v1/foods?ean=4014400900118&count=5", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))

	rec = fx.do(http.MethodGet, "/api/v1/foods?name=milk&count=many", "", false)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestRouter_GetFood(t *testing.T) {
	fx := newAPIFixtures(t)

	product := milk()
	fx.foodUC.EXPECT().GetFood(mock.Anything, entity.ProductKey(7)).
		Return(&usecase.FoodDetail{Food: product, Profile: product.Values}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/foods/07", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var food handler.FoodResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &food))
	assert.Equal(t, entity.ProductKey(7), food.ID)
	assert.Equal(t, "product", food.Kind)
	assert.Equal(t, "Milk: whole", food.Name)
	assert.InDelta(t, 64, *food.Values.Get(entity.Calories), 1e-9)
	assert.Nil(t, food.Values.Get(entity.Protein))
}

func TestRouter_GetFood_Errors(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/api/v1/foods/x7", "", false)
	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_FOOD_KEY")

	fx.foodUC.EXPECT().GetFood(mock.Anything, entity.RecipeKey(5)).
		Return(nil, domainerrors.ErrFoodNotFound.WithDetails("15"))
	rec = fx.do(http.MethodGet, "/api/v1/foods/15", "", false)
	info := requireErrorCode(t, rec, http.StatusNotFound, "FOOD_NOT_FOUND")
	assert.Equal(t, "15", info.Details)

	fx.foodUC.EXPECT().GetFood(mock.Anything, entity.RecipeKey(6)).
		Return(nil, errors.New("connection reset"))
	rec = fx.do(http.MethodGet, "/api/v1/foods/16", "", false)
	info = requireErrorCode(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
	assert.Nil(t, info.Details)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestRouter_ScaleFood(t *testing.T) {
	fx := newAPIFixtures(t)

	var scaled entity.NutrientProfile
	scaled.ReferenceAmount = 250
	scaled.Set(entity.Calories, entity.Float(160))
	fx.foodUC.EXPECT().ScaleFood(mock.Anything, entity.RecipeKey(1), 250.0).Return(scaled, nil)

	rec := fx.do(http.MethodGet, "/api/v1/foods/11/scaled?amount=250", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var values entity.NutrientProfile
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &values))
	assert.InDelta(t, 160, *values.Get(entity.Calories), 1e-9)

	rec = fx.do(http.MethodGet, "/api/v1/foods/11/scaled?amount=lots", "", false)
	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_AMOUNT")
}

func TestRouter_Rescale(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodPut, "/api/v1/foods/11/nutrients/calories", `{"value":450}`, false)
	requireErrorCode(t, rec, http.StatusUnauthorized, "TOKEN_INVALID")

	recipe := &entity.Recipe{ID: 1, Category: entity.Category{Name: "Soup"}, NameAddition: "tomato"}
	var profile entity.NutrientProfile
	profile.ReferenceAmount = 300
	profile.Set(entity.Calories, entity.Float(450))
	fx.foodUC.EXPECT().Rescale(mock.Anything, entity.RecipeKey(1), entity.Calories, 450.0).
		Return(&usecase.FoodDetail{Food: recipe, Profile: profile}, nil)

	rec = fx.do(http.MethodPut, "/api/v1/foods/11/nutrients/calories", `{"value":450}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var food handler.FoodResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &food))
	assert.Equal(t, "recipe", food.Kind)
	assert.InDelta(t, 300, food.Values.ReferenceAmount, 1e-9)

	rec = fx.do(http.MethodPut, "/api/v1/foods/11/nutrients/umami", `{"value":450}`, true)
	requireErrorCode(t, rec, http.StatusBadRequest, "UNKNOWN_NUTRIENT_FIELD")

	rec = fx.do(http.MethodPut, "/api/v1/foods/11/nutrients/calories", `{}`, true)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestRouter_Rescale_Undefined(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.foodUC.EXPECT().Rescale(mock.Anything, entity.ProductKey(3), entity.Sugar, 10.0).
		Return(nil, domainerrors.NewDivisionUndefinedError("sugar", nil))

	rec := fx.do(http.MethodPut, "/api/v1/foods/03/nutrients/sugar", `{"value":10}`, true)
	info := requireErrorCode(t, rec, http.StatusUnprocessableEntity, "DIVISION_UNDEFINED")
	assert.Equal(t, "field sugar is an unknown value", info.Details)
}

func TestRouter_CreateProduct(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.productUC.EXPECT().
		CreateProduct(mock.Anything,
			mock.MatchedBy(func(input *usecase.ProductInput) bool {
				calories := input.Values.Get(entity.Calories)
				return input.Name == "Milk: whole" && calories != nil && *calories == 64 &&
					input.ReferenceAmount == nil
			}),
			mock.MatchedBy(func(author *uint) bool { return author != nil && *author == testUserID }),
		).
		Return(milk(), nil)

	rec := fx.do(http.MethodPost, "/api/v1/products", `{"name":"Milk: whole","values":{"calories":64}}`, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var food handler.FoodResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &food))
	assert.Equal(t, "4014400900118", food.EAN)

	rec = fx.do(http.MethodPost, "/api/v1/products", `{"name":"Milk: whole","values":{"calorie":64}}`, true)
	requireErrorCode(t, rec, http.StatusBadRequest, "UNKNOWN_NUTRIENT_FIELD")

	rec = fx.do(http.MethodPost, "/api/v1/products", `{"values":{"calories":64}}`, true)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestRouter_CreateProduct_ExplicitReferenceAmount(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.productUC.EXPECT().
		CreateProduct(mock.Anything,
			mock.MatchedBy(func(input *usecase.ProductInput) bool {
				return input.ReferenceAmount != nil && *input.ReferenceAmount == 0
			}),
			mock.Anything,
		).
		Return(nil, domainerrors.ErrInvalidAmount.WithDetails("reference_amount"))

	rec := fx.do(http.MethodPost, "/api/v1/products",
		`{"name":"Milk: whole","values":{"reference_amount":0,"calories":64}}`, true)
	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_AMOUNT")
}

func TestRouter_CreateRecipe(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodPost, "/api/v1/recipes",
		`{"name":"Soup: tomato","ingredients":[{"food_id":"07","amount":0}]}`, true)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")

	recipe := &entity.Recipe{ID: 2, Category: entity.Category{Name: "Soup"}, NameAddition: "tomato"}
	fx.recipeUC.EXPECT().
		CreateRecipe(mock.Anything,
			mock.MatchedBy(func(input *usecase.RecipeInput) bool {
				return len(input.Ingredients) == 1 && input.Ingredients[0].Food == entity.ProductKey(7)
			}),
			mock.Anything,
		).
		Return(&usecase.FoodDetail{Food: recipe}, nil)

	rec = fx.do(http.MethodPost, "/api/v1/recipes",
		`{"name":"Soup: tomato","ingredients":[{"food_id":"07","amount":300}]}`, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = fx.do(http.MethodPost, "/api/v1/recipes",
		`{"name":"Soup: tomato","ingredients":[{"food_id":"27","amount":300}]}`, true)
	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_FOOD_KEY")
}

func TestRouter_RescaleIngredient(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.recipeUC.EXPECT().RescaleIngredient(mock.Anything, uint(3), entity.Protein, 12.0).
		Return(&entity.Ingredient{ID: 3, RecipeID: 1, Amount: 120, Food: entity.RefByKey(entity.ProductKey(7))}, nil)

	rec := fx.do(http.MethodPut, "/api/v1/ingredients/3/nutrients/protein", `{"value":12}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":3,"recipe_id":1,"food_id":"07","amount":120}`, string(decode(t, rec).Data))
}

func TestRouter_Servings(t *testing.T) {
	fx := newAPIFixtures(t)

	key := entity.ProductKey(7)
	glass := &entity.Serving{ID: 4, Name: "glass", Size: 250, Food: entity.RefByKey(key)}

	fx.servingUC.EXPECT().ListServings(mock.Anything, key).Return([]*entity.Serving{glass}, nil)
	fx.servingUC.EXPECT().CreateServing(mock.Anything, key, "glass", 250.0).Return(glass, nil)
	fx.servingUC.EXPECT().ScaleToServing(mock.Anything, key, uint(4)).
		Return(&usecase.ServingProfile{Serving: glass, Profile: milk().Values}, nil)
	fx.servingUC.EXPECT().DeleteServing(mock.Anything, uint(4)).Return(nil)

	rec := fx.do(http.MethodGet, "/api/v1/foods/07/servings", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":4,"food_id":"07","name":"glass","size":250}]`, string(decode(t, rec).Data))

	rec = fx.do(http.MethodPost, "/api/v1/foods/07/servings", `{"name":"glass","size":250}`, false)
	requireErrorCode(t, rec, http.StatusUnauthorized, "TOKEN_INVALID")

	rec = fx.do(http.MethodPost, "/api/v1/foods/07/servings", `{"name":"glass","size":250}`, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = fx.do(http.MethodGet, "/api/v1/foods/07/servings/4/scaled", "", false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = fx.do(http.MethodDelete, "/api/v1/servings/4", "", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = fx.do(http.MethodDelete, "/api/v1/servings/zero", "", true)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestRouter_Categories(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.categoryUC.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{{ID: 1, Name: "Milk"}}, nil)
	fx.categoryUC.EXPECT().CreateCategory(mock.Anything, "Milk").
		Return(nil, domainerrors.ErrCategoryAlreadyExists.WithDetails("Milk"))

	rec := fx.do(http.MethodGet, "/api/v1/categories", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Milk"}]`, string(decode(t, rec).Data))

	rec = fx.do(http.MethodPost, "/api/v1/categories", `{"name":"Milk"}`, true)
	requireErrorCode(t, rec, http.StatusConflict, "CATEGORY_ALREADY_EXISTS")
}

func TestRouter_QRCode(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.foodUC.EXPECT().FoodExists(mock.Anything, entity.ProductKey(7)).Return(nil)
	fx.foodUC.EXPECT().FoodExists(mock.Anything, entity.RecipeKey(9)).
		Return(domainerrors.ErrFoodNotFound.WithDetails("19"))

	rec := fx.do(http.MethodGet, "/api/v1/foods/07/qr", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.NotEmpty(t, rec.Body.Bytes())

	rec = fx.do(http.MethodGet, "/api/v1/foods/19/qr", "", false)
	requireErrorCode(t, rec, http.StatusNotFound, "FOOD_NOT_FOUND")
	fx.foodUC.AssertNotCalled(t, "GetFood", mock.Anything, mock.Anything)
}

func TestRouter_ScanQRCode(t *testing.T) {
	fx := newAPIFixtures(t)

	product := milk()
	fx.foodUC.EXPECT().GetFood(mock.Anything, entity.ProductKey(7)).
		Return(&usecase.FoodDetail{Food: product, Profile: product.Values}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/foods/scan", `{"payload":"{\"food_id\":\"07\",\"type\":\"food\"}"}`, false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodPost, "/api/v1/foods/scan", `{"payload":"hello"}`, false)
	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_FOOD_KEY")

	rec = fx.do(http.MethodPost, "/api/v1/foods/scan", `{}`, false)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestRouter_DeleteFood(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.foodUC.EXPECT().DeleteFood(mock.Anything, entity.RecipeKey(9)).Return(nil)

	rec := fx.do(http.MethodDelete, "/api/v1/foods/19", "", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = fx.do(http.MethodDelete, "/api/v1/foods/19", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
