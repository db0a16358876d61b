// Package warehouse holds the destination-side transport model used by
// mapping tests and examples.
package warehouse

import (
	"time"
)

// Product is the warehouse view of a sellable item.
type Product struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"` // in cents (minor currency unit)
	Stock       int     `json:"stock"`
	IsActive    bool    `json:"is_active"`
	Weight      float64 `json:"weight"` // in grams, useful for shipping
}

// Customer is the warehouse view of a store customer.
type Customer struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
}

// Order is the warehouse view of a customer's purchase.
type Order struct {
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"` // e.g. "pending", "paid", "shipped", "cancelled"
	TotalAmount int64     `json:"total_amount"` // in cents
	Currency    string    `json:"currency"`
	Customer    *Customer `json:"customer"`
	PlacedAt    time.Time `json:"placed_at"`
}
