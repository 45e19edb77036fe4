package model

import "github.com/google/uuid"

type ItemAddedToCart struct {
	ProductID string
	Quantity  int
}

func (e ItemAddedToCart) Type() string { return "ItemAddedToCart" }

type CartQuantityChanged struct {
	ProductID   string
	NewQuantity int
}

func (e CartQuantityChanged) Type() string { return "CartQuantityChanged" }

type ItemRemovedFromCart struct {
	ProductID string
}

func (e ItemRemovedFromCart) Type() string { return "ItemRemovedFromCart" }

type CartCleared struct{}

func (e CartCleared) Type() string { return "CartCleared" }

type ProductWishlisted struct {
	ProductID string
}

func (e ProductWishlisted) Type() string { return "ProductWishlisted" }

type ProductUnwishlisted struct {
	ProductID string
}

func (e ProductUnwishlisted) Type() string { return "ProductUnwishlisted" }

type RatingsSeeded struct {
	ProductCount int
	SampleCount  int
}

func (e RatingsSeeded) Type() string { return "RatingsSeeded" }

type RatingAdded struct {
	ProductID string
	Rating    int
}

func (e RatingAdded) Type() string { return "RatingAdded" }

type SessionStarted struct {
	UserID uuid.UUID
	Email  string
}

func (e SessionStarted) Type() string { return "SessionStarted" }

type SessionEnded struct {
	UserID uuid.UUID
}

func (e SessionEnded) Type() string { return "SessionEnded" }

type OrderPlaced struct {
	OrderID  uuid.UUID
	Subtotal int64
}

func (e OrderPlaced) Type() string { return "OrderPlaced" }

type ComparisonToggled struct {
	ProductID string
	Selected  bool
}

func (e ComparisonToggled) Type() string { return "ComparisonToggled" }

type ComparisonCleared struct{}

func (e ComparisonCleared) Type() string { return "ComparisonCleared" }

type BundleCommitted struct {
	FoundationID   string
	AccessoryCount int
	Subtotal       int64
	Discount       int64
}

func (e BundleCommitted) Type() string { return "BundleCommitted" }
