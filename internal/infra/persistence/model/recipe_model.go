package model

import "time"

// RecipeModel is the GORM-specific struct for the 'recipes' table.
// A recipe stores no nutrient values.
type RecipeModel struct {
	ID           uint          `gorm:"primaryKey"`
	CategoryID   uint          `gorm:"not null;index"`
	Category     CategoryModel `gorm:"constraint:OnDelete:CASCADE"`
	NameAddition string        `gorm:"type:varchar(256);not null;index"`
	AuthorID     *uint         `gorm:"index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// IngredientModel is the GORM-specific struct for the 'ingredients' table.
// Exactly one of ProductID and SubRecipeID is set.
type IngredientModel struct {
	ID          uint          `gorm:"primaryKey"`
	RecipeID    uint          `gorm:"not null;index"`
	Recipe      *RecipeModel  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	ProductID   *uint         `gorm:"index;check:chk_ingredients_food,(product_id IS NULL) <> (sub_recipe_id IS NULL)"`
	Product     *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	SubRecipeID *uint         `gorm:"index"`
	SubRecipe   *RecipeModel  `gorm:"foreignKey:SubRecipeID;constraint:OnDelete:CASCADE"`
	Amount      float64       `gorm:"not null;check:chk_ingredients_amount,amount > 0"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}

// ServingModel is the GORM-specific struct for the 'servings' table.
// Exactly one of ProductID and RecipeID is set.
type ServingModel struct {
	ID        uint          `gorm:"primaryKey"`
	Name      string        `gorm:"type:varchar(256);not null"`
	Size      float64       `gorm:"not null;check:chk_servings_size,size > 0"`
	ProductID *uint         `gorm:"index;check:chk_servings_food,(product_id IS NULL) <> (recipe_id IS NULL)"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	RecipeID  *uint         `gorm:"index"`
	Recipe    *RecipeModel  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ServingModel) TableName() string {
	return "servings"
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&CategoryModel{},
		&ManufacturerModel{},
		&ProductModel{},
		&RecipeModel{},
		&IngredientModel{},
		&ServingModel{},
	}
}
