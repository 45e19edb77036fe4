package service

import (
	"storefront/pkg/store/domain/model"
)

type Event interface {
	Type() string
}

type EventDispatcher interface {
	Dispatch(event Event) error
}

type CartService interface {
	// AddToCart inserts the product with quantity 1, or increments the
	// existing line by 1. It never fails.
	AddToCart(product model.Product)
	// UpdateQuantity sets the quantity of an existing line item. A quantity
	// of zero or less removes the line. Unknown product ids are a no-op.
	UpdateQuantity(productID string, quantity int)
	RemoveFromCart(productID string)
	ClearCart()

	Items() []model.CartItem
	Snapshot() []model.CartItem
	Subtotal() int64
	ItemCount() int
}

func NewCartService(dispatcher EventDispatcher) CartService {
	return &cartService{dispatcher: dispatcher}
}

type cartService struct {
	items      []model.CartItem
	dispatcher EventDispatcher
}

func (s *cartService) AddToCart(product model.Product) {
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			_ = s.dispatcher.Dispatch(model.ItemAddedToCart{ProductID: product.ID, Quantity: s.items[i].Quantity})
			return
		}
	}

	s.items = append(s.items, model.CartItem{Product: product.Clone(), Quantity: 1})
	_ = s.dispatcher.Dispatch(model.ItemAddedToCart{ProductID: product.ID, Quantity: 1})
}

func (s *cartService) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			_ = s.dispatcher.Dispatch(model.CartQuantityChanged{ProductID: productID, NewQuantity: quantity})
			return
		}
	}
}

func (s *cartService) RemoveFromCart(productID string) {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			_ = s.dispatcher.Dispatch(model.ItemRemovedFromCart{ProductID: productID})
			return
		}
	}
}

func (s *cartService) ClearCart() {
	if len(s.items) == 0 {
		return
	}
	s.items = nil
	_ = s.dispatcher.Dispatch(model.CartCleared{})
}

func (s *cartService) Items() []model.CartItem {
	return s.items
}

func (s *cartService) Snapshot() []model.CartItem {
	return model.CloneCartItems(s.items)
}

func (s *cartService) Subtotal() int64 {
	var subtotal int64
	for _, item := range s.items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

func (s *cartService) ItemCount() int {
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}
