package service

import (
	"errors"

	"storefront/pkg/store/domain/model"
)

var (
	ErrNotAFoundation = errors.New("bundle foundation must be a phone")
	ErrNotAnAccessory = errors.New("bundle extras must be accessory products")
	ErrNoFoundation   = errors.New("no foundation product selected")
)

// Discount grows 5 percentage points per accessory and tops out at 20.
const (
	discountPercentPerAccessory = 5
	maxDiscountPercent          = 20
)

type BundleStep int

const (
	StepChooseFoundation BundleStep = iota + 1
	StepChooseAccessories
)

type BundleQuote struct {
	Items        []model.Product `json:"items"`
	Subtotal     int64           `json:"subtotal"`
	DiscountRate float64         `json:"discountRate"`
	Discount     int64           `json:"discount"`
	Total        int64           `json:"total"`
}

type BundleService interface {
	// SelectFoundation picks the phone the bundle is built around and
	// advances to the accessory step.
	SelectFoundation(phone model.Product) error
	// ToggleAccessory adds or removes an accessory from the bundle.
	ToggleAccessory(accessory model.Product) error
	// Reset returns to the foundation step and discards the selection.
	Reset()
	Step() BundleStep
	// Quote prices the current selection. The discount is part of the
	// quote only; committed line items keep their catalog price.
	Quote() (BundleQuote, error)
	// CommitBundle inserts the foundation and every selected accessory
	// into the cart as individual line items, then resets the builder.
	CommitBundle(cart CartService) error
}

func NewBundleService(dispatcher EventDispatcher) BundleService {
	return &bundleService{dispatcher: dispatcher}
}

type bundleService struct {
	foundation  *model.Product
	accessories []model.Product
	dispatcher  EventDispatcher
}

func (s *bundleService) SelectFoundation(phone model.Product) error {
	if !phone.IsPhone() {
		return ErrNotAFoundation
	}
	clone := phone.Clone()
	s.foundation = &clone
	return nil
}

func (s *bundleService) ToggleAccessory(accessory model.Product) error {
	if accessory.Category != model.CategoryAccessory {
		return ErrNotAnAccessory
	}

	for i := range s.accessories {
		if s.accessories[i].ID == accessory.ID {
			s.accessories = append(s.accessories[:i], s.accessories[i+1:]...)
			return nil
		}
	}
	s.accessories = append(s.accessories, accessory.Clone())
	return nil
}

func (s *bundleService) Reset() {
	s.foundation = nil
	s.accessories = nil
}

func (s *bundleService) Step() BundleStep {
	if s.foundation == nil {
		return StepChooseFoundation
	}
	return StepChooseAccessories
}

func (s *bundleService) Quote() (BundleQuote, error) {
	if s.foundation == nil {
		return BundleQuote{}, ErrNoFoundation
	}

	items := make([]model.Product, 0, len(s.accessories)+1)
	items = append(items, *s.foundation)
	items = append(items, s.accessories...)

	var subtotal int64
	for _, item := range items {
		subtotal += item.Price
	}

	percent := discountPercentPerAccessory * len(s.accessories)
	if percent > maxDiscountPercent {
		percent = maxDiscountPercent
	}
	discount := subtotal * int64(percent) / 100

	return BundleQuote{
		Items:        items,
		Subtotal:     subtotal,
		DiscountRate: float64(percent) / 100,
		Discount:     discount,
		Total:        subtotal - discount,
	}, nil
}

func (s *bundleService) CommitBundle(cart CartService) error {
	quote, err := s.Quote()
	if err != nil {
		return err
	}

	for _, item := range quote.Items {
		cart.AddToCart(item)
	}

	_ = s.dispatcher.Dispatch(model.BundleCommitted{
		FoundationID:   s.foundation.ID,
		AccessoryCount: len(s.accessories),
		Subtotal:       quote.Subtotal,
		Discount:       quote.Discount,
	})

	s.Reset()
	return nil
}
