// Package store defines the repository boundary around persisted entity
// collections and provides in-memory and bbolt-backed implementations.
package store

import (
	"errors"
	"fmt"

	"github.com/synthd/synthd/pkg/entity"
)

// Store is the ownership boundary around the three entity collections.
// Batch inserts are atomic per call: either every record in the batch is
// committed and assigned an id, or none are. Reads observe all previously
// committed batches.
type Store interface {
	// InsertUsers commits a batch of users and returns the assigned ids in
	// batch order. Each record's ID field is set in place.
	InsertUsers(users []*entity.User) ([]int64, error)

	// InsertProducts commits a batch of products.
	InsertProducts(products []*entity.Product) ([]int64, error)

	// InsertOrders commits a batch of orders.
	InsertOrders(orders []*entity.Order) ([]int64, error)

	// Users returns a full snapshot of all users, ordered by id.
	Users() ([]*entity.User, error)

	// Products returns a full snapshot of all products, ordered by id.
	Products() ([]*entity.Product, error)

	// Orders returns a full snapshot of all orders, ordered by id.
	Orders() ([]*entity.Order, error)

	// UserByID returns a single user, or a NotFoundError.
	UserByID(id int64) (*entity.User, error)

	// ProductByID returns a single product, or a NotFoundError.
	ProductByID(id int64) (*entity.Product, error)

	// OrderByID returns a single order, or a NotFoundError.
	OrderByID(id int64) (*entity.Order, error)

	// Close releases any resources held by the store.
	Close() error
}

// NotFoundError is returned when a record id does not exist in a collection.
type NotFoundError struct {
	Kind entity.Kind
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s record %d not found", e.Kind, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
