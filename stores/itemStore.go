package stores

import (
	"errors"
	"fmt"

	"github.com/nbui/fitstore-api/models"
	"gorm.io/gorm"
)

type ItemStore struct {
	db *gorm.DB
}

func NewItemStore(db *gorm.DB) *ItemStore {
	return &ItemStore{db: db}
}

// ByID returns the item, or nil if it does not exist.
func (s *ItemStore) ByID(id uint) (*models.Item, error) {
	var item models.Item
	err := s.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return &item, nil
}

func (s *ItemStore) Create(item *models.Item) error {
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (s *ItemStore) Save(item *models.Item) error {
	if err := s.db.Save(item).Error; err != nil {
		return fmt.Errorf("save item: %w", err)
	}
	return nil
}

func (s *ItemStore) Delete(id uint) error {
	if err := s.db.Delete(&models.Item{}, id).Error; err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (s *ItemStore) List(limit, offset int) ([]models.Item, error) {
	var items []models.Item
	err := s.db.Order("created_at desc").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *ItemStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Item{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}
