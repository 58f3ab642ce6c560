package model

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(30);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ManufacturerModel is the GORM-specific struct for the 'manufacturers' table.
type ManufacturerModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(256);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (ManufacturerModel) TableName() string {
	return "manufacturers"
}
