// Package entity defines the fixed record types synthd generates:
// users, products, and orders.
package entity

import "time"

// Kind identifies an entity collection.
type Kind string

// Entity kinds.
const (
	KindUser    Kind = "users"
	KindProduct Kind = "products"
	KindOrder   Kind = "orders"
)

// Status is the lifecycle state of an order.
type Status string

// Order statuses.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses returns all valid order statuses.
func Statuses() []Status {
	return []Status{StatusPending, StatusCompleted, StatusCancelled}
}

// User is a generated person record. The ID is assigned by the store on
// insert; all other fields are fixed at creation time.
type User struct {
	ID        int64     `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email" yaml:"email"`
	Address   string    `json:"address" yaml:"address"`
	Phone     string    `json:"phone" yaml:"phone"`
	BirthDate time.Time `json:"birth_date" yaml:"birth_date"`
	IsActive  bool      `json:"is_active" yaml:"is_active"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Product is a generated catalog item.
type Product struct {
	ID            int64     `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	Description   string    `json:"description" yaml:"description"`
	Price         float64   `json:"price" yaml:"price"`
	Category      string    `json:"category" yaml:"category"`
	StockQuantity int       `json:"stock_quantity" yaml:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
}

// Order references an existing user and product. TotalPrice is a frozen
// snapshot of quantity times the product price at creation time; it is
// never recomputed when the product later changes.
type Order struct {
	ID         int64     `json:"id" yaml:"id"`
	UserID     int64     `json:"user_id" yaml:"user_id"`
	ProductID  int64     `json:"product_id" yaml:"product_id"`
	Quantity   int       `json:"quantity" yaml:"quantity"`
	TotalPrice float64   `json:"total_price" yaml:"total_price"`
	Status     Status    `json:"status" yaml:"status"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// CSV column orders. These are part of the export compatibility surface
// and must stay stable.
var (
	UserFields    = []string{"id", "name", "email", "address", "phone", "birth_date", "is_active", "created_at"}
	ProductFields = []string{"id", "name", "description", "price", "category", "stock_quantity", "created_at"}
	OrderFields   = []string{"id", "user_id", "product_id", "quantity", "total_price", "status", "created_at"}
)

// FormatTime renders a timestamp in its canonical string form (UTC, RFC 3339
// with nanoseconds, matching encoding/json's time.Time output).
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatDate renders a date-only value such as a birth date.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
