package models

import "gorm.io/gorm"

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	// Total is the amount the processor confirmed it captured, in minor
	// currency units.
	Total int `json:"total"`
	// Charge is the processor's charge id.
	Charge string      `json:"charge"`
	Items  []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is an immutable snapshot of an item at purchase time. Items may
// change or disappear later without corrupting historical orders.
type OrderItem struct {
	gorm.Model
	OrderID     uint   `json:"orderId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	LargeImage  string `json:"largeImage"`
	Quantity    int    `json:"quantity"`
}
