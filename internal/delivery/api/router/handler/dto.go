package handler

import (
	"time"

	"nutria/internal/domain/entity"
	"nutria/internal/usecase"
)

// FoodResponse is the JSON form of a product or a recipe with its evaluated values
type FoodResponse struct {
	ID           entity.FoodKey         `json:"id"`
	Kind         string                 `json:"kind"`
	Name         string                 `json:"name"`
	Category     string                 `json:"category"`
	NameAddition string                 `json:"name_addition"`
	Manufacturer string                 `json:"manufacturer,omitempty"`
	EAN          string                 `json:"ean,omitempty"`
	AuthorID     *uint                  `json:"author_id,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	Values       entity.NutrientProfile `json:"values"`
	Ingredients  []IngredientResponse   `json:"ingredients,omitempty"`
}

// IngredientResponse is one ingredient of a recipe
type IngredientResponse struct {
	ID       uint           `json:"id"`
	RecipeID uint           `json:"recipe_id"`
	FoodID   entity.FoodKey `json:"food_id"`
	Name     string         `json:"name,omitempty"`
	Amount   float64        `json:"amount"`
}

// ServingResponse is a serving preset of a food
type ServingResponse struct {
	ID     uint           `json:"id"`
	FoodID entity.FoodKey `json:"food_id"`
	Name   string         `json:"name"`
	Size   float64        `json:"size"`
}

// ScaledServingResponse is a food evaluated at one of its servings
type ScaledServingResponse struct {
	Serving ServingResponse        `json:"serving"`
	Values  entity.NutrientProfile `json:"values"`
}

// CategoryResponse is a category
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NutrientResponse describes one entry of the nutrient table
type NutrientResponse struct {
	Name  string      `json:"name"`
	Unit  entity.Unit `json:"unit"`
	Label string      `json:"label"`
}

func newFoodResponse(food entity.Food, values entity.NutrientProfile) FoodResponse {
	res := FoodResponse{
		ID:     food.Key(),
		Kind:   food.Key().Kind.String(),
		Name:   food.DisplayName(),
		Values: values,
	}

	switch f := food.(type) {
	case *entity.Product:
		res.Category = f.Category.Name
		res.NameAddition = f.NameAddition
		res.EAN = f.EAN
		res.AuthorID = f.AuthorID
		res.CreatedAt = f.CreatedAt
		if f.Manufacturer != nil {
			res.Manufacturer = f.Manufacturer.Name
		}
	case *entity.Recipe:
		res.Category = f.Category.Name
		res.NameAddition = f.NameAddition
		res.AuthorID = f.AuthorID
		res.CreatedAt = f.CreatedAt
		res.Ingredients = make([]IngredientResponse, 0, len(f.Ingredients))
		for _, ingredient := range f.Ingredients {
			res.Ingredients = append(res.Ingredients, newIngredientResponse(ingredient))
		}
	}

	return res
}

func newFoodDetailResponse(detail *usecase.FoodDetail) FoodResponse {
	return newFoodResponse(detail.Food, detail.Profile)
}

func newIngredientResponse(ingredient *entity.Ingredient) IngredientResponse {
	res := IngredientResponse{
		ID:       ingredient.ID,
		RecipeID: ingredient.RecipeID,
		FoodID:   ingredient.Food.Key(),
		Amount:   ingredient.Amount,
	}
	if food, err := ingredient.Food.Food(); err == nil {
		res.Name = food.DisplayName()
	}

	return res
}

func newServingResponse(serving *entity.Serving) ServingResponse {
	return ServingResponse{
		ID:     serving.ID,
		FoodID: serving.Food.Key(),
		Name:   serving.Name,
		Size:   serving.Size,
	}
}
