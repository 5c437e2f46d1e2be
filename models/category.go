package models

// Category groups products and is owned by a user.
// OwnerID is not enforced as a foreign key: a category may name an owner
// that does not exist.
type Category struct {
	ID      int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Icon    string `gorm:"not null" json:"icon"`
	OwnerID int    `gorm:"not null;index" json:"ownerId"`
}

func (c *Category) TableName() string {
	return "categories"
}
