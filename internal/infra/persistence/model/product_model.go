package model

import "time"

// ProductModel is the GORM-specific struct for the 'products' table.
// Nutrient columns are nullable; calories is the only required one.
type ProductModel struct {
	ID              uint               `gorm:"primaryKey"`
	CategoryID      uint               `gorm:"not null;index"`
	Category        CategoryModel      `gorm:"constraint:OnDelete:CASCADE"`
	NameAddition    string             `gorm:"type:varchar(256);not null;index"`
	AuthorID        *uint              `gorm:"index"`
	ManufacturerID  *uint              `gorm:"index"`
	Manufacturer    *ManufacturerModel `gorm:"constraint:OnDelete:SET NULL"`
	EAN             *string            `gorm:"column:ean;type:varchar(32);index"`
	ReferenceAmount float64            `gorm:"not null;default:100;check:chk_products_reference_amount,reference_amount > 0"`
	CreatedAt       time.Time

	Calories     *float64 `gorm:"not null"`
	TotalFat     *float64
	SaturatedFat *float64
	Cholesterol  *float64
	Protein      *float64
	TotalCarbs   *float64
	Sugar        *float64
	DietaryFiber *float64
	Salt         *float64
	Sodium       *float64
	Potassium    *float64
	Copper       *float64
	Iron         *float64
	Magnesium    *float64
	Manganese    *float64
	Zinc         *float64
	Phosphorous  *float64
	Sulphur      *float64
	Chloro       *float64
	Fluoric      *float64
	VitaminB1    *float64 `gorm:"column:vitamin_b1"`
	VitaminB12   *float64 `gorm:"column:vitamin_b12"`
	VitaminB6    *float64 `gorm:"column:vitamin_b6"`
	VitaminC     *float64 `gorm:"column:vitamin_c"`
	VitaminD     *float64 `gorm:"column:vitamin_d"`
	VitaminE     *float64 `gorm:"column:vitamin_e"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// NutrientColumns returns the model's slot of every nutrient column in
// nutrient table order, calories first.
func (m *ProductModel) NutrientColumns() []**float64 {
	return []**float64{
		&m.Calories,
		&m.TotalFat,
		&m.SaturatedFat,
		&m.Cholesterol,
		&m.Protein,
		&m.TotalCarbs,
		&m.Sugar,
		&m.DietaryFiber,
		&m.Salt,
		&m.Sodium,
		&m.Potassium,
		&m.Copper,
		&m.Iron,
		&m.Magnesium,
		&m.Manganese,
		&m.Zinc,
		&m.Phosphorous,
		&m.Sulphur,
		&m.Chloro,
		&m.Fluoric,
		&m.VitaminB1,
		&m.VitaminB12,
		&m.VitaminB6,
		&m.VitaminC,
		&m.VitaminD,
		&m.VitaminE,
	}
}
