// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nutria/internal/delivery/api/middleware"
	"nutria/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FoodHandler     *handler.FoodHandler
	ServingHandler  *handler.ServingHandler
	ProductHandler  *handler.ProductHandler
	RecipeHandler   *handler.RecipeHandler
	CategoryHandler *handler.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	foodHandler     *handler.FoodHandler
	servingHandler  *handler.ServingHandler
	productHandler  *handler.ProductHandler
	recipeHandler   *handler.RecipeHandler
	categoryHandler *handler.CategoryHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		foodHandler:     params.FoodHandler,
		servingHandler:  params.ServingHandler,
		productHandler:  params.ProductHandler,
		recipeHandler:   params.RecipeHandler,
		categoryHandler: params.CategoryHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public; every write requires a bearer token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	auth := r.authMiddleware.Authenticate

	apiV1.GET("/nutrients", handler.ListNutrients)

	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.ListCategories)
		categoriesGroup.POST("", r.categoryHandler.CreateCategory, auth)
	}

	foodsGroup := apiV1.Group("/foods")
	{
		foodsGroup.GET("", r.foodHandler.Search)
		foodsGroup.POST("/scan", r.foodHandler.Scan)
		foodsGroup.GET("/:key", r.foodHandler.GetFood)
		foodsGroup.GET("/:key/scaled", r.foodHandler.ScaleFood)
		foodsGroup.GET("/:key/qr", r.foodHandler.QRCode)
		foodsGroup.PUT("/:key/nutrients/:field", r.foodHandler.Rescale, auth)
		foodsGroup.DELETE("/:key", r.foodHandler.DeleteFood, auth)

		foodsGroup.GET("/:key/servings", r.servingHandler.ListServings)
		foodsGroup.POST("/:key/servings", r.servingHandler.CreateServing, auth)
		foodsGroup.GET("/:key/servings/:servingId/scaled", r.servingHandler.ScaleToServing)
	}

	apiV1.DELETE("/servings/:id", r.servingHandler.DeleteServing, auth)

	productsGroup := apiV1.Group("/products", auth)
	{
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
	}

	recipesGroup := apiV1.Group("/recipes", auth)
	{
		recipesGroup.POST("", r.recipeHandler.CreateRecipe)
		recipesGroup.PUT("/:id/ingredients", r.recipeHandler.SetIngredients)
	}

	apiV1.PUT("/ingredients/:id/nutrients/:field", r.recipeHandler.RescaleIngredient, auth)
}
