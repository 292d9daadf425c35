package services

import (
	"fmt"

	"github.com/nbui/fitstore-api/apperrors"
	"github.com/nbui/fitstore-api/auth"
	"github.com/nbui/fitstore-api/models"
)

// ItemService handles catalog items. Destructive operations are permitted to
// the item's owner or to holders of an elevated permission.
type ItemService struct {
	items ItemStore
}

func NewItemService(items ItemStore) *ItemService {
	return &ItemService{items: items}
}

func (s *ItemService) Create(actor *models.User, item *models.Item) (*models.Item, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	item.UserID = actor.ID
	if err := s.items.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Get(id uint) (*models.Item, error) {
	item, err := s.items.ByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("no such item: %w", apperrors.ErrNotFound)
	}
	return item, nil
}

func (s *ItemService) List(limit, offset int) ([]models.Item, int64, error) {
	items, err := s.items.List(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.items.Count()
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (s *ItemService) Update(actor *models.User, id uint, updates models.ItemUpdates) (*models.Item, error) {
	item, err := s.gatedItem(actor, id)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		item.Title = *updates.Title
	}
	if updates.Description != nil {
		item.Description = *updates.Description
	}
	if updates.Price != nil {
		item.Price = *updates.Price
	}
	if updates.Image != nil {
		item.Image = *updates.Image
	}
	if updates.LargeImage != nil {
		item.LargeImage = *updates.LargeImage
	}

	if err := s.items.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item and returns its prior value.
func (s *ItemService) Delete(actor *models.User, id uint) (*models.Item, error) {
	item, err := s.gatedItem(actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.items.Delete(item.ID); err != nil {
		return nil, err
	}
	return item, nil
}

// gatedItem fetches the item and enforces the owner-or-elevated-permission
// rule shared by update and delete.
func (s *ItemService) gatedItem(actor *models.User, id uint) (*models.Item, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	item, err := s.items.ByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("no such item: %w", apperrors.ErrNotFound)
	}
	if !auth.Owns(actor.ID, item.UserID) {
		if err := auth.Authorize(actor.PermissionList(), auth.PermAdmin, auth.PermItemDelete); err != nil {
			return nil, err
		}
	}
	return item, nil
}
