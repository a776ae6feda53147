// Package engine orchestrates batch generation of users, products, and
// orders, enforcing referential integrity and derived-value consistency.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/synthd/synthd/pkg/entity"
	"github.com/synthd/synthd/pkg/logging"
	"github.com/synthd/synthd/pkg/store"
)

// ReferenceError is returned when order generation needs a user or product
// id but none exist in the store. It is not retryable within the same call;
// remaining order generation is aborted and partial counts are reported in
// the Summary.
type ReferenceError struct {
	Missing entity.Kind
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("no %s available to reference from new orders", e.Missing)
}

// Summary reports what a single Generate call committed. On partial
// failure the counts reflect the batches that were committed before the
// failure; nothing is rolled back.
type Summary struct {
	RunID    string        `json:"run_id"`
	Users    int           `json:"users"`
	Products int           `json:"products"`
	Orders   int           `json:"orders"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Engine drives the entity factory and commits generated batches to a
// store. Generation is synchronous and single-caller; the engine never
// updates or deletes previously committed entities.
type Engine struct {
	store   store.Store
	factory *Factory
	faker   picker
	log     *slog.Logger
}

// picker is the element-picking primitive the engine uses for uniform
// reference selection. Satisfied by *faker.Faker.
type picker interface {
	PickIndex(n int) int
}

// New creates an Engine bound to an explicit store handle.
func New(st store.Store, factory *Factory, pick picker, log *slog.Logger) *Engine {
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{store: st, factory: factory, faker: pick, log: log}
}

// Generate creates numUsers users, numProducts products, and numOrders
// orders, committing each kind as one atomic batch. Zero counts are legal.
// Orders reference users and products uniformly at random; each order's
// total price is computed from the product price read back from the store
// at order-creation time.
//
// There is no transaction spanning the three phases: batches committed
// before a failure stay committed, and the returned Summary reports them.
func (e *Engine) Generate(numUsers, numProducts, numOrders int) (*Summary, error) {
	sum := &Summary{RunID: uuid.NewString()}
	if numUsers < 0 || numProducts < 0 || numOrders < 0 {
		return sum, fmt.Errorf("counts must be non-negative (got %d users, %d products, %d orders)",
			numUsers, numProducts, numOrders)
	}

	start := time.Now()
	e.log.Info("generating dataset",
		"run_id", sum.RunID, "users", numUsers, "products", numProducts, "orders", numOrders)

	userIDs, err := e.generateUsers(numUsers)
	if err != nil {
		return sum, err
	}
	sum.Users = len(userIDs)

	productIDs, err := e.generateProducts(numProducts)
	if err != nil {
		return sum, err
	}
	sum.Products = len(productIDs)

	orderCount, err := e.generateOrders(numOrders, userIDs, productIDs)
	sum.Orders = orderCount
	sum.Elapsed = time.Since(start)
	if err != nil {
		e.log.Error("order generation aborted",
			"run_id", sum.RunID, "produced", sum.Orders, "error", err)
		return sum, err
	}

	e.log.Info("generation complete",
		"run_id", sum.RunID, "users", sum.Users, "products", sum.Products,
		"orders", sum.Orders, "elapsed", sum.Elapsed)
	return sum, nil
}

func (e *Engine) generateUsers(n int) ([]int64, error) {
	users := make([]*entity.User, n)
	for i := range users {
		users[i] = e.factory.User()
	}
	ids, err := e.store.InsertUsers(users)
	if err != nil {
		return nil, fmt.Errorf("insert user batch: %w", err)
	}
	e.log.Debug("user batch committed", "count", len(ids))
	return ids, nil
}

func (e *Engine) generateProducts(n int) ([]int64, error) {
	products := make([]*entity.Product, n)
	for i := range products {
		products[i] = e.factory.Product()
	}
	ids, err := e.store.InsertProducts(products)
	if err != nil {
		return nil, fmt.Errorf("insert product batch: %w", err)
	}
	e.log.Debug("product batch committed", "count", len(ids))
	return ids, nil
}

// generateOrders builds up to n orders referencing the given id sets and
// commits whatever was produced as one batch. When this run created no
// users or products, ids already committed to the store are used instead;
// only when the store holds none does generation fail with ReferenceError.
func (e *Engine) generateOrders(n int, userIDs, productIDs []int64) (int, error) {
	if n == 0 {
		return 0, nil
	}

	var err error
	if len(userIDs) == 0 {
		if userIDs, err = e.existingUserIDs(); err != nil {
			return 0, err
		}
	}
	if len(productIDs) == 0 {
		if productIDs, err = e.existingProductIDs(); err != nil {
			return 0, err
		}
	}

	orders := make([]*entity.Order, 0, n)
	var genErr error
	for i := 0; i < n; i++ {
		if len(userIDs) == 0 {
			genErr = &ReferenceError{Missing: entity.KindUser}
			break
		}
		if len(productIDs) == 0 {
			genErr = &ReferenceError{Missing: entity.KindProduct}
			break
		}

		userID := userIDs[e.faker.PickIndex(len(userIDs))]
		productID := productIDs[e.faker.PickIndex(len(productIDs))]

		product, err := e.store.ProductByID(productID)
		if err != nil {
			return 0, fmt.Errorf("resolve price for product %d: %w", productID, err)
		}
		orders = append(orders, e.factory.Order(userID, productID, product.Price))
	}

	committed := 0
	if len(orders) > 0 {
		ids, err := e.store.InsertOrders(orders)
		if err != nil {
			return 0, fmt.Errorf("insert order batch: %w", err)
		}
		committed = len(ids)
		e.log.Debug("order batch committed", "count", committed)
	}
	return committed, genErr
}

func (e *Engine) existingUserIDs() ([]int64, error) {
	users, err := e.store.Users()
	if err != nil {
		return nil, fmt.Errorf("load existing users: %w", err)
	}
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

func (e *Engine) existingProductIDs() ([]int64, error) {
	products, err := e.store.Products()
	if err != nil {
		return nil, fmt.Errorf("load existing products: %w", err)
	}
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids, nil
}
