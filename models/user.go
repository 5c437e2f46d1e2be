package models

const (
	SexMale   = "m"
	SexFemale = "f"
)

// User owns categories.
type User struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Sex  string `gorm:"type:char(1);not null" json:"sex"`
}

func (u *User) TableName() string {
	return "users"
}
