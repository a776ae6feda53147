package store

import (
	"sort"
	"sync"

	"github.com/synthd/synthd/pkg/entity"
)

// Memory is a thread-safe in-memory Store. Ids are assigned from a
// monotonic per-kind counter. Records are stored and returned by value so
// callers can never alias committed state.
type Memory struct {
	mu       sync.RWMutex
	users    map[int64]entity.User
	products map[int64]entity.Product
	orders   map[int64]entity.Order

	nextUser    int64
	nextProduct int64
	nextOrder   int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:    make(map[int64]entity.User),
		products: make(map[int64]entity.Product),
		orders:   make(map[int64]entity.Order),
	}
}

// InsertUsers commits a batch of users and returns the assigned ids.
func (s *Memory) InsertUsers(users []*entity.User) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		s.nextUser++
		u.ID = s.nextUser
		s.users[u.ID] = *u
		ids = append(ids, u.ID)
	}
	return ids, nil
}

// InsertProducts commits a batch of products and returns the assigned ids.
func (s *Memory) InsertProducts(products []*entity.Product) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		s.nextProduct++
		p.ID = s.nextProduct
		s.products[p.ID] = *p
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// InsertOrders commits a batch of orders and returns the assigned ids.
func (s *Memory) InsertOrders(orders []*entity.Order) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		s.nextOrder++
		o.ID = s.nextOrder
		s.orders[o.ID] = *o
		ids = append(ids, o.ID)
	}
	return ids, nil
}

// Users returns all users ordered by id.
func (s *Memory) Users() ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		u := u
		result = append(result, &u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Products returns all products ordered by id.
func (s *Memory) Products() ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		p := p
		result = append(result, &p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Orders returns all orders ordered by id.
func (s *Memory) Orders() ([]*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*entity.Order, 0, len(s.orders))
	for _, o := range s.orders {
		o := o
		result = append(result, &o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// UserByID returns a single user, or a NotFoundError.
func (s *Memory) UserByID(id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, &NotFoundError{Kind: entity.KindUser, ID: id}
	}
	return &u, nil
}

// ProductByID returns a single product, or a NotFoundError.
func (s *Memory) ProductByID(id int64) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, &NotFoundError{Kind: entity.KindProduct, ID: id}
	}
	return &p, nil
}

// OrderByID returns a single order, or a NotFoundError.
func (s *Memory) OrderByID(id int64) (*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, &NotFoundError{Kind: entity.KindOrder, ID: id}
	}
	return &o, nil
}

// Close is a no-op for the in-memory store.
func (s *Memory) Close() error { return nil }

// Ensure Memory implements Store.
var _ Store = (*Memory)(nil)
