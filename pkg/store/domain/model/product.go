package model

import "errors"

var ErrProductNotFound = errors.New("product not found")

type ProductCategory string

const (
	CategoryIPhone    ProductCategory = "iPhone"
	CategorySamsung   ProductCategory = "Samsung"
	CategoryAudio     ProductCategory = "Audio"
	CategoryAccessory ProductCategory = "Accessory"
)

type ProductCondition string

const (
	ConditionBrandNew    ProductCondition = "Brand New"
	ConditionForeignUsed ProductCondition = "Foreign Used"
)

// Spec is a single labelled entry of a product's spec sheet. Specs keep
// their declaration order, so they live in a slice rather than a map.
type Spec struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Product prices are whole naira amounts, no minor units.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    ProductCategory  `json:"category"`
	Price       int64            `json:"price"`
	ImageURL    string           `json:"imageUrl"`
	Description string           `json:"description"`
	Condition   ProductCondition `json:"condition,omitempty"`
	Specs       []Spec           `json:"specs,omitempty"`
	Warranty    string           `json:"warranty,omitempty"`
	Tagline     string           `json:"tagline,omitempty"`
	SalesCount  int              `json:"salesCount,omitempty"`
}

// IsPhone reports whether the product can anchor a bundle.
func (p Product) IsPhone() bool {
	return p.Category == CategoryIPhone || p.Category == CategorySamsung
}

// Clone returns a deep copy, detached from the receiver's spec slice.
func (p Product) Clone() Product {
	clone := p
	if p.Specs != nil {
		clone.Specs = make([]Spec, len(p.Specs))
		copy(clone.Specs, p.Specs)
	}
	return clone
}
