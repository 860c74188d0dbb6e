package model

import "time"

const (
	ProductStatusForSale = "for_sale"
	ProductStatusUnsold  = "unsold"
)

// Product represents a bakery product listed by a user
type Product struct {
	ID        int64     `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"` // "for_sale" or "unsold"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProductRequest is used for creating a new product
type CreateProductRequest struct {
	Name   string  `json:"name" binding:"required"`
	Price  float64 `json:"price" binding:"gte=0"`
	Status string  `json:"status" binding:"omitempty,oneof=for_sale unsold"`
}

type UpdateProductRequest struct {
	Name   *string  `json:"name,omitempty" binding:"omitempty,min=1"` // Pointers to allow partial updates
	Price  *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Status *string  `json:"status,omitempty" binding:"omitempty,oneof=for_sale unsold"`
}
