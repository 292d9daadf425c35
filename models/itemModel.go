package models

import "gorm.io/gorm"

type Item struct {
	gorm.Model
	UserID      uint   `json:"userId"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	// Price is in minor currency units (cents).
	Price      int    `json:"price" binding:"required"`
	Image      string `json:"image"`
	LargeImage string `json:"largeImage"`
}

// ItemUpdates carries a partial item update; nil fields are left unchanged.
type ItemUpdates struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
	Image       *string `json:"image"`
	LargeImage  *string `json:"largeImage"`
}
