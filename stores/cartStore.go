package stores

import (
	"errors"
	"fmt"

	"github.com/nbui/fitstore-api/models"
	"gorm.io/gorm"
)

type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// LineFor returns the cart line for the (user, item) pair, or nil if the
// item is not in the user's cart yet.
func (s *CartStore) LineFor(userID, itemID uint) (*models.CartItem, error) {
	var line models.CartItem
	err := s.db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart line: %w", err)
	}
	return &line, nil
}

func (s *CartStore) ByID(id uint) (*models.CartItem, error) {
	var line models.CartItem
	err := s.db.First(&line, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart line by id: %w", err)
	}
	return &line, nil
}

// ListForUser returns the user's cart lines with each referenced item
// preloaded.
func (s *CartStore) ListForUser(userID uint) ([]models.CartItem, error) {
	var lines []models.CartItem
	err := s.db.Where("user_id = ?", userID).Preload("Item").Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	return lines, nil
}

func (s *CartStore) Create(line *models.CartItem) error {
	if err := s.db.Create(line).Error; err != nil {
		return fmt.Errorf("create cart line: %w", err)
	}
	return nil
}

func (s *CartStore) Save(line *models.CartItem) error {
	if err := s.db.Save(line).Error; err != nil {
		return fmt.Errorf("save cart line: %w", err)
	}
	return nil
}

func (s *CartStore) Delete(id uint) error {
	if err := s.db.Delete(&models.CartItem{}, id).Error; err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	return nil
}

// DeleteByIDs bulk-deletes exactly the given cart lines. Checkout uses this
// so lines added mid-workflow survive.
func (s *CartStore) DeleteByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := s.db.Delete(&models.CartItem{}, ids)
	if result.Error != nil {
		return 0, fmt.Errorf("delete cart lines: %w", result.Error)
	}
	return result.RowsAffected, nil
}
