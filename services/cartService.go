package services

import (
	"fmt"

	"github.com/nbui/fitstore-api/apperrors"
	"github.com/nbui/fitstore-api/auth"
	"github.com/nbui/fitstore-api/models"
)

// CartService mutates a user's cart.
type CartService struct {
	cart  CartStore
	items ItemStore
}

func NewCartService(cart CartStore, items ItemStore) *CartService {
	return &CartService{cart: cart, items: items}
}

// AddToCart puts one unit of the item in the actor's cart. If the item is
// already there, the existing line's quantity is incremented instead of
// inserting a duplicate row.
func (s *CartService) AddToCart(actor *models.User, itemID uint) (*models.CartItem, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	item, err := s.items.ByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("no such item: %w", apperrors.ErrNotFound)
	}

	line, err := s.cart.LineFor(actor.ID, itemID)
	if err != nil {
		return nil, err
	}
	if line != nil {
		line.Quantity++
		if err := s.cart.Save(line); err != nil {
			return nil, err
		}
		return line, nil
	}

	line = &models.CartItem{UserID: actor.ID, ItemID: itemID, Quantity: 1}
	if err := s.cart.Create(line); err != nil {
		return nil, err
	}
	return line, nil
}

// RemoveFromCart deletes a cart line the actor owns and returns its prior
// value.
func (s *CartService) RemoveFromCart(actor *models.User, lineID uint) (*models.CartItem, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	line, err := s.cart.ByID(lineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, fmt.Errorf("no cart item found: %w", apperrors.ErrNotFound)
	}
	if !auth.Owns(actor.ID, line.UserID) {
		return nil, apperrors.ErrForbidden
	}

	if err := s.cart.Delete(line.ID); err != nil {
		return nil, err
	}
	return line, nil
}

// Cart returns the actor's current cart lines with items preloaded.
func (s *CartService) Cart(actor *models.User) ([]models.CartItem, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return s.cart.ListForUser(actor.ID)
}
