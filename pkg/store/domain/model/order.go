package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID       uuid.UUID  `json:"id"`
	Items    []CartItem `json:"items"`
	Subtotal int64      `json:"subtotal"`
	Date     string     `json:"date"`
	PlacedAt time.Time  `json:"placedAt"`
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	OrderHistory []Order   `json:"orderHistory"`
	CreatedAt    time.Time `json:"createdAt"`
}
