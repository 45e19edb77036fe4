package service

import "storefront/pkg/store/domain/model"

type WishlistService interface {
	// AddToWishlist inserts the product if absent; adding an already
	// wishlisted product is a no-op.
	AddToWishlist(product model.Product)
	RemoveFromWishlist(productID string)
	IsInWishlist(productID string) bool
	Items() []model.Product
	ItemCount() int
}

func NewWishlistService(dispatcher EventDispatcher) WishlistService {
	return &wishlistService{dispatcher: dispatcher}
}

type wishlistService struct {
	items      []model.Product
	dispatcher EventDispatcher
}

func (s *wishlistService) AddToWishlist(product model.Product) {
	if s.IsInWishlist(product.ID) {
		return
	}
	s.items = append(s.items, product.Clone())
	_ = s.dispatcher.Dispatch(model.ProductWishlisted{ProductID: product.ID})
}

func (s *wishlistService) RemoveFromWishlist(productID string) {
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			_ = s.dispatcher.Dispatch(model.ProductUnwishlisted{ProductID: productID})
			return
		}
	}
}

func (s *wishlistService) IsInWishlist(productID string) bool {
	for _, item := range s.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

func (s *wishlistService) Items() []model.Product {
	return s.items
}

func (s *wishlistService) ItemCount() int {
	return len(s.items)
}
