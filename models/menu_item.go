package models

import "time"

const (
	CategoryBreakfast  = "Breakfast"
	CategoryMainDishes = "Main Dishes"
	CategoryDrinks     = "Drinks"
	CategoryDesserts   = "Desserts"
)

type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Category    string    `gorm:"type:varchar(50);not null;index" json:"category"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string    `gorm:"type:varchar(255);not null" json:"image"`
	Description string    `gorm:"type:text" json:"description"`
	PrepTime    int       `json:"prep_time"`
	Available   bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func ValidCategory(category string) bool {
	switch category {
	case CategoryBreakfast, CategoryMainDishes, CategoryDrinks, CategoryDesserts:
		return true
	}
	return false
}
