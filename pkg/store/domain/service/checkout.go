package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"storefront/pkg/store/domain/model"
)

var ErrEmptyCart = errors.New("cannot place an order for an empty cart")

type CheckoutService interface {
	// PlaceOrder builds an immutable order from a cart snapshot and its
	// subtotal. An empty cart is rejected and no order is created.
	PlaceOrder(items []model.CartItem, subtotal int64) (*model.Order, error)
}

func NewCheckoutService(dispatcher EventDispatcher) CheckoutService {
	return &checkoutService{dispatcher: dispatcher}
}

type checkoutService struct {
	dispatcher EventDispatcher
}

func (s *checkoutService) PlaceOrder(items []model.CartItem, subtotal int64) (*model.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now().UTC()
	order := &model.Order{
		ID:       uuid.New(),
		Items:    model.CloneCartItems(items),
		Subtotal: subtotal,
		Date:     now.Format("January 2, 2006 15:04"),
		PlacedAt: now,
	}

	_ = s.dispatcher.Dispatch(model.OrderPlaced{OrderID: order.ID, Subtotal: subtotal})
	return order, nil
}
