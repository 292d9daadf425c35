package services

import (
	"fmt"
	"log"

	"github.com/nbui/fitstore-api/apperrors"
	"github.com/nbui/fitstore-api/auth"
	"github.com/nbui/fitstore-api/models"
)

const chargeCurrency = "usd"

// OrderService runs the checkout workflow: snapshot the cart, price it,
// capture payment, persist the order and clear the purchased lines.
type OrderService struct {
	cart     CartStore
	orders   OrderStore
	payments PaymentClient
}

func NewOrderService(cart CartStore, orders OrderStore, payments PaymentClient) *OrderService {
	return &OrderService{cart: cart, orders: orders, payments: payments}
}

// Checkout converts the actor's cart into a paid order. cardToken is the
// client-supplied opaque payment source. Any failure before the order is
// persisted leaves no order and an untouched cart; payment is only captured
// after the cart has been snapshotted and priced.
func (s *OrderService) Checkout(actor *models.User, cardToken string) (*models.Order, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	// Snapshot the cart up front. Everything below works off this snapshot
	// so lines added concurrently are not swept into the order or deleted.
	lines, err := s.cart.ListForUser(actor.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	total := 0
	for _, line := range lines {
		total += line.Item.Price * line.Quantity
	}

	charge, err := s.payments.Charge(total, chargeCurrency, cardToken)
	if err != nil {
		return nil, err
	}

	orderItems := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		orderItems = append(orderItems, models.OrderItem{
			Title:       line.Item.Title,
			Description: line.Item.Description,
			Price:       line.Item.Price,
			Image:       line.Item.Image,
			LargeImage:  line.Item.LargeImage,
			Quantity:    line.Quantity,
		})
	}

	// The processor's confirmation is the source of truth for the total
	// from here on.
	order := &models.Order{
		UserID: actor.ID,
		Total:  charge.Amount,
		Charge: charge.ID,
		Items:  orderItems,
	}
	if err := s.orders.Create(order); err != nil {
		// Money has been captured but no order exists; surface the charge id
		// so the payment can be reconciled.
		return nil, fmt.Errorf("order not recorded for charge %s: %w", charge.ID, err)
	}

	lineIDs := make([]uint, 0, len(lines))
	for _, line := range lines {
		lineIDs = append(lineIDs, line.ID)
	}
	deleted, err := s.cart.DeleteByIDs(lineIDs)
	if err != nil {
		return nil, fmt.Errorf("clear cart after order %d: %w", order.ID, err)
	}
	if deleted != int64(len(lineIDs)) {
		log.Printf("expected to clear %d cart lines for order %d, cleared %d", len(lineIDs), order.ID, deleted)
	}

	return order, nil
}

// Get returns an order readable by its owner or an admin.
func (s *OrderService) Get(actor *models.User, id uint) (*models.Order, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	order, err := s.orders.ByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("no such order: %w", apperrors.ErrNotFound)
	}
	if !auth.Owns(actor.ID, order.UserID) {
		if err := auth.Authorize(actor.PermissionList(), auth.PermAdmin); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// ListForUser returns the actor's own orders.
func (s *OrderService) ListForUser(actor *models.User) ([]models.Order, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return s.orders.ListForUser(actor.ID)
}
