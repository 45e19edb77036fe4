// Package catalog holds the static product data the storefront sells.
// Products are loaded once at startup and never mutated at runtime.
package catalog

import (
	"sort"
	"strings"

	"storefront/pkg/store/domain/model"
)

type Catalog struct {
	products    []model.Product
	accessories []model.Product
}

func New(products, accessories []model.Product) *Catalog {
	return &Catalog{products: products, accessories: accessories}
}

// Default returns the built-in EasyHub catalog.
func Default() *Catalog {
	return New(defaultProducts, defaultAccessories)
}

func (c *Catalog) Products() []model.Product {
	return c.products
}

func (c *Catalog) Accessories() []model.Product {
	return c.accessories
}

func (c *Catalog) All() []model.Product {
	all := make([]model.Product, 0, len(c.products)+len(c.accessories))
	all = append(all, c.products...)
	all = append(all, c.accessories...)
	return all
}

// Phones returns the products eligible as bundle foundations.
func (c *Catalog) Phones() []model.Product {
	var phones []model.Product
	for _, p := range c.products {
		if p.IsPhone() {
			phones = append(phones, p)
		}
	}
	return phones
}

func (c *Catalog) Find(id string) (model.Product, error) {
	for _, p := range c.All() {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, model.ErrProductNotFound
}

// Search filters the whole catalog by a case-insensitive match against
// product names and descriptions.
func (c *Catalog) Search(query string) []model.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []model.Product
	for _, p := range c.All() {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// SortedByPopularity returns the catalog ordered by sales count, best
// sellers first. The underlying catalog order is left untouched.
func (c *Catalog) SortedByPopularity() []model.Product {
	sorted := append([]model.Product(nil), c.All()...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SalesCount > sorted[j].SalesCount
	})
	return sorted
}

type Branch struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

func Branches() []Branch {
	return []Branch{
		{
			Name:    "Ikeja Branch",
			Address: "Shop B1, M-Square Plaza, Pepple Street, Computer Village, Ikeja, Lagos.",
			Lat:     6.5960,
			Lng:     3.3421,
		},
		{
			Name:    "Ikotun Branch",
			Address: "Shop 20/21, Ferach Plaza, Behind BRT Ikotun Market, Ikotun, Lagos.",
			Lat:     6.5501,
			Lng:     3.2647,
		},
		{
			Name:    "Victoria Island Branch",
			Address: "Shop C4, Tele Plaza, Saka Tinubu Street, Victoria Island, Lagos.",
			Lat:     6.4297,
			Lng:     3.4215,
		},
	}
}
