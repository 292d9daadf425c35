package services

import (
	"fmt"
	"time"

	"github.com/nbui/fitstore-api/models"
	"github.com/nbui/fitstore-api/payment"
)

// In-memory fakes for the collaborators the services depend on.

type fakeUserStore struct {
	users  []*models.User
	nextID uint
	saves  int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1}
}

func (f *fakeUserStore) add(user *models.User) *models.User {
	user.ID = f.nextID
	f.nextID++
	f.users = append(f.users, user)
	return user
}

func (f *fakeUserStore) ByID(id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) ByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) ByResetToken(token string, validSince time.Time) (*models.User, error) {
	for _, u := range f.users {
		if u.ResetToken != nil && *u.ResetToken == token &&
			u.ResetTokenExpiry != nil && !u.ResetTokenExpiry.Before(validSince) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(user *models.User) error {
	f.add(user)
	return nil
}

func (f *fakeUserStore) Save(user *models.User) error {
	f.saves++
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return fmt.Errorf("save: user %d not found", user.ID)
}

func (f *fakeUserStore) List() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeItemStore struct {
	items  []*models.Item
	nextID uint
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{nextID: 1}
}

func (f *fakeItemStore) add(item *models.Item) *models.Item {
	item.ID = f.nextID
	f.nextID++
	f.items = append(f.items, item)
	return item
}

func (f *fakeItemStore) ByID(id uint) (*models.Item, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeItemStore) Create(item *models.Item) error {
	f.add(item)
	return nil
}

func (f *fakeItemStore) Save(item *models.Item) error {
	for i, it := range f.items {
		if it.ID == item.ID {
			f.items[i] = item
			return nil
		}
	}
	return fmt.Errorf("save: item %d not found", item.ID)
}

func (f *fakeItemStore) Delete(id uint) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeItemStore) List(limit, offset int) ([]models.Item, error) {
	out := make([]models.Item, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeItemStore) Count() (int64, error) {
	return int64(len(f.items)), nil
}

type fakeCartStore struct {
	lines      []*models.CartItem
	nextID     uint
	deletedIDs []uint
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{nextID: 1}
}

func (f *fakeCartStore) add(line *models.CartItem) *models.CartItem {
	line.ID = f.nextID
	f.nextID++
	f.lines = append(f.lines, line)
	return line
}

func (f *fakeCartStore) LineFor(userID, itemID uint) (*models.CartItem, error) {
	for _, l := range f.lines {
		if l.UserID == userID && l.ItemID == itemID {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeCartStore) ByID(id uint) (*models.CartItem, error) {
	for _, l := range f.lines {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeCartStore) ListForUser(userID uint) ([]models.CartItem, error) {
	out := make([]models.CartItem, 0)
	for _, l := range f.lines {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeCartStore) Create(line *models.CartItem) error {
	f.add(line)
	return nil
}

func (f *fakeCartStore) Save(line *models.CartItem) error {
	for i, l := range f.lines {
		if l.ID == line.ID {
			f.lines[i] = line
			return nil
		}
	}
	return fmt.Errorf("save: cart line %d not found", line.ID)
}

func (f *fakeCartStore) Delete(id uint) error {
	for i, l := range f.lines {
		if l.ID == id {
			f.lines = append(f.lines[:i], f.lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCartStore) DeleteByIDs(ids []uint) (int64, error) {
	f.deletedIDs = append(f.deletedIDs, ids...)
	var deleted int64
	for _, id := range ids {
		for i, l := range f.lines {
			if l.ID == id {
				f.lines = append(f.lines[:i], f.lines[i+1:]...)
				deleted++
				break
			}
		}
	}
	return deleted, nil
}

type fakeOrderStore struct {
	orders    []*models.Order
	nextID    uint
	createErr error
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{nextID: 1}
}

func (f *fakeOrderStore) Create(order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = f.nextID
	f.nextID++
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderStore) ByID(id uint) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderStore) ListForUser(userID uint) ([]models.Order, error) {
	out := make([]models.Order, 0)
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

type chargeCall struct {
	amount   int
	currency string
	source   string
}

type fakePayment struct {
	calls []chargeCall
	// capturedAmount, when non-zero, overrides the confirmed amount so
	// tests can assert the processor's figure wins over the local sum.
	capturedAmount int
	err            error
	// beforeCharge runs just before the charge succeeds; tests use it to
	// simulate concurrent cart activity during the workflow.
	beforeCharge func()
}

func (f *fakePayment) Charge(amount int, currency, source string) (*payment.Charge, error) {
	f.calls = append(f.calls, chargeCall{amount: amount, currency: currency, source: source})
	if f.err != nil {
		return nil, f.err
	}
	if f.beforeCharge != nil {
		f.beforeCharge()
	}
	captured := amount
	if f.capturedAmount != 0 {
		captured = f.capturedAmount
	}
	return &payment.Charge{ID: "ch_fake_1", Amount: captured, Currency: currency}, nil
}

type resetMail struct {
	to       string
	name     string
	resetURL string
}

type fakeMailer struct {
	sent []resetMail
	err  error
}

func (f *fakeMailer) SendPasswordReset(to, name, resetURL string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, resetMail{to: to, name: name, resetURL: resetURL})
	return nil
}

type fakeTokenIssuer struct {
	issued int
}

func (f *fakeTokenIssuer) Issue(userID uint) (string, error) {
	f.issued++
	return fmt.Sprintf("session-token-%d", userID), nil
}
