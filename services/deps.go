package services

import (
	"time"

	"github.com/nbui/fitstore-api/models"
	"github.com/nbui/fitstore-api/payment"
)

// Collaborator interfaces the services depend on. The gorm-backed stores
// satisfy these in production; tests substitute in-memory fakes.

type UserStore interface {
	ByID(id uint) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	ByResetToken(token string, validSince time.Time) (*models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
	List() ([]models.User, error)
}

type ItemStore interface {
	ByID(id uint) (*models.Item, error)
	Create(item *models.Item) error
	Save(item *models.Item) error
	Delete(id uint) error
	List(limit, offset int) ([]models.Item, error)
	Count() (int64, error)
}

type CartStore interface {
	LineFor(userID, itemID uint) (*models.CartItem, error)
	ByID(id uint) (*models.CartItem, error)
	ListForUser(userID uint) ([]models.CartItem, error)
	Create(line *models.CartItem) error
	Save(line *models.CartItem) error
	Delete(id uint) error
	DeleteByIDs(ids []uint) (int64, error)
}

type OrderStore interface {
	Create(order *models.Order) error
	ByID(id uint) (*models.Order, error)
	ListForUser(userID uint) ([]models.Order, error)
}

type PaymentClient interface {
	Charge(amount int, currency, source string) (*payment.Charge, error)
}

type Mailer interface {
	SendPasswordReset(to, name, resetURL string) error
}

type TokenIssuer interface {
	Issue(userID uint) (string, error)
}
