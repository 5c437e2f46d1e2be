package models

// Product represents a product in the catalog.
// CategoryID may reference a category that does not exist.
type Product struct {
	ID         int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	CategoryID int    `gorm:"not null;index" json:"categoryId"`
}

func (p *Product) TableName() string {
	return "products"
}
