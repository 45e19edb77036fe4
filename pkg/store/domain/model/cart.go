package model

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (i CartItem) LineTotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

func (i CartItem) Clone() CartItem {
	return CartItem{Product: i.Product.Clone(), Quantity: i.Quantity}
}

// CloneCartItems deep-copies a line item slice so order snapshots stay
// untouched by later cart mutations.
func CloneCartItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	clone := make([]CartItem, len(items))
	for i, item := range items {
		clone[i] = item.Clone()
	}
	return clone
}
