package models

import "gorm.io/gorm"

// CartItem is one line of a user's cart. The (user, item) pair is unique;
// adding the same item again increments Quantity instead of inserting a
// second row.
type CartItem struct {
	gorm.Model
	UserID   uint `json:"userId" gorm:"uniqueIndex:idx_cart_user_item"`
	ItemID   uint `json:"itemId" gorm:"uniqueIndex:idx_cart_user_item"`
	Quantity int  `json:"quantity"`
	Item     Item `json:"item"`
}
