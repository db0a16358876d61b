// Package store holds the source-side domain model used by mapping tests and
// examples. Prices are int64 cents (lowest currency unit) to avoid
// floating-point errors.
package store

import (
	"time"
)

// Product is an individual item available for sale.
type Product struct {
	ID           int64  `json:"id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PriceCents   int64  `json:"price_cents"`
	Inventory    int    `json:"inventory"`
	Discontinued bool   `json:"discontinued"`
}

// Customer is the user placing orders.
type Customer struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"is_active"`
}

// Order is a transaction made by a customer.
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Customer   Customer    `json:"customer"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	OrderedAt  time.Time   `json:"ordered_at"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
