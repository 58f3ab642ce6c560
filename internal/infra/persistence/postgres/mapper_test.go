package postgres

import (
	"testing"
	"time"

	"nutria/internal/domain/entity"
	"nutria/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductModel_CoversEveryNutrient(t *testing.T) {
	var productM model.ProductModel
	columns := productM.NutrientColumns()
	require.Len(t, columns, len(entity.Nutrients()))

	seen := map[**float64]bool{}
	for _, column := range columns {
		assert.False(t, seen[column], "a column is listed twice")
		seen[column] = true
	}
}

func TestProductMapping_RoundTrip(t *testing.T) {
	author := uint(3)
	product := &entity.Product{
		ID:           5,
		Category:     entity.Category{ID: 2, Name: "Milk"},
		NameAddition: "whole",
		AuthorID:     &author,
		Manufacturer: &entity.Manufacturer{ID: 8, Name: "Dairy"},
		EAN:          "4006381333931",
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	product.Values.ReferenceAmount = 100
	for i, f := range entity.Nutrients() {
		if i%3 != 1 {
			product.Values.Set(f, entity.Float(float64(i)+0.5))
		}
	}

	productM := fromProductDomain(product)
	assert.Equal(t, uint(2), productM.CategoryID)
	require.NotNil(t, productM.ManufacturerID)
	assert.Equal(t, uint(8), *productM.ManufacturerID)
	require.NotNil(t, productM.EAN)
	require.NotNil(t, productM.Calories)
	assert.Equal(t, 0.5, *productM.Calories)
	assert.Nil(t, productM.TotalFat)
	require.NotNil(t, productM.VitaminD)
	assert.Equal(t, 24.5, *productM.VitaminD)
	assert.Nil(t, productM.VitaminE)

	productM.Category = model.CategoryModel{ID: 2, Name: "Milk"}
	productM.Manufacturer = &model.ManufacturerModel{ID: 8, Name: "Dairy"}
	assert.Equal(t, product, toProductDomain(productM))
}

func TestProductMapping_EmptyOptionals(t *testing.T) {
	product := &entity.Product{Category: entity.Category{ID: 1}}
	product.Values.ReferenceAmount = 100
	product.Values.Set(entity.Calories, entity.Float(10))

	productM := fromProductDomain(product)
	assert.Nil(t, productM.EAN)
	assert.Nil(t, productM.ManufacturerID)

	back := toProductDomain(productM)
	assert.Empty(t, back.EAN)
	assert.Nil(t, back.Manufacturer)
}

func TestFoodRefColumns(t *testing.T) {
	productID, recipeID := foodColumns(entity.RefByKey(entity.ProductKey(4)))
	require.NotNil(t, productID)
	assert.Equal(t, uint(4), *productID)
	assert.Nil(t, recipeID)

	productID, recipeID = foodColumns(entity.RefByKey(entity.RecipeKey(9)))
	assert.Nil(t, productID)
	require.NotNil(t, recipeID)
	assert.Equal(t, uint(9), *recipeID)

	p, r := uint(1), uint(2)
	assert.Equal(t, entity.RecipeKey(2), foodRefFromColumns(&p, &r).Key(), "recipe wins when both are set")
	assert.Equal(t, entity.ProductKey(1), foodRefFromColumns(&p, nil).Key())
	assert.False(t, foodRefFromColumns(nil, nil).Resolved())
}

func TestIngredientMapping(t *testing.T) {
	ingredient := &entity.Ingredient{ID: 7, RecipeID: 3, Amount: 52.8, Food: entity.RefByKey(entity.RecipeKey(11))}

	ingredientM := fromIngredientDomain(ingredient)
	assert.Nil(t, ingredientM.ProductID)
	require.NotNil(t, ingredientM.SubRecipeID)
	assert.Equal(t, uint(11), *ingredientM.SubRecipeID)

	back := toIngredientDomain(ingredientM)
	assert.Equal(t, ingredient.ID, back.ID)
	assert.Equal(t, ingredient.RecipeID, back.RecipeID)
	assert.Equal(t, ingredient.Amount, back.Amount)
	assert.Equal(t, ingredient.Food.Key(), back.Food.Key())
}

func TestServingMapping(t *testing.T) {
	serving := &entity.Serving{ID: 1, Name: "cup", Size: 240, Food: entity.RefByKey(entity.ProductKey(5))}

	servingM := fromServingDomain(serving)
	require.NotNil(t, servingM.ProductID)
	assert.Nil(t, servingM.RecipeID)

	back := toServingDomain(servingM)
	assert.Equal(t, serving.Name, back.Name)
	assert.Equal(t, serving.Size, back.Size)
	assert.Equal(t, entity.ProductKey(5), back.Food.Key())
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%milk%", likePattern("milk"))
	assert.Equal(t, `%100\% \_pure\\%`, likePattern(`100% _pure\`))
}
