package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthd/synthd/pkg/entity"
)

// runStoreTests exercises the Store contract against any implementation.
func runStoreTests(t *testing.T, open func(t *testing.T) Store) {
	t.Run("insert assigns unique monotonic ids", func(t *testing.T) {
		st := open(t)
		defer func() { _ = st.Close() }()

		first, err := st.InsertUsers([]*entity.User{newUser("a"), newUser("b")})
		require.NoError(t, err)
		second, err := st.InsertUsers([]*entity.User{newUser("c")})
		require.NoError(t, err)

		require.Equal(t, []int64{1, 2}, first)
		require.Equal(t, []int64{3}, second)
	})

	t.Run("insert sets id on the record", func(t *testing.T) {
		st := open(t)
		defer func() { _ = st.Close() }()

		u := newUser("a")
		ids, err := st.InsertUsers([]*entity.User{u})
		require.NoError(t, err)
		assert.Equal(t, ids[0], u.ID)
	})

	t.Run("ids are per kind", func(t *testing.T) {
		st := open(t)
		defer func() { _ = st.Close() }()

		userIDs, err := st.InsertUsers([]*entity.User{newUser("a")})
		require.NoError(t, err)
		productIDs, err := st.InsertProducts([]*entity.Product{newProduct(9.99)})
		require.NoError(t, err)

		// Both start at 1: uniqueness is within a kind, not across kinds.
		assert.Equal(t, []int64{1}, userIDs)
		assert.Equal(t, []int64{1}, productIDs)
	})

	t.Run("read all returns snapshot in id order", func(t *testing.T) {
		st := open(t)
		defer func() { _ = st.Close() }()

		_, err := st.InsertProducts([]*entity.Product{
			newProduct(1.00), newProduct(2.00), newProduct(3.00),
		})
		require.NoError(t, err)

		products, err := st.Products()
		require.NoError(t, err)
		require.Len(t, products, 3)
		for i, p := range products {
			assert.Equal(t, int64(i+1), p.ID)
		}
	})

	t.Run("read one", func(t *testing.T) {
		st := open(t)
		defer func() { _ = st.Close() }()

		_, err := st.InsertProducts([]*entity.Product{newProduct(42.50)})
		require.NoError(t, err)

		p, err := st.ProductByID(1)
		require.NoError(t, err)
		assert.Equal(t, 42.50, p.Price)
	})

	t.Run("read one not found", func(t *testing.T) {
		st := open(t)
		defer func() { _ = st.Close() }()

		_, err := st.UserByID(99)
		require.Error(t, err)
		assert.True(t, IsNotFound(err), "expected NotFoundError, got %v", err)
	})

	t.Run("orders round trip", func(t *testing.T) {
		st := open(t)
		defer func() { _ = st.Close() }()

		o := &entity.Order{
			UserID: 1, ProductID: 2, Quantity: 3, TotalPrice: 29.97,
			Status: entity.StatusPending, CreatedAt: time.Now().UTC(),
		}
		_, err := st.InsertOrders([]*entity.Order{o})
		require.NoError(t, err)

		got, err := st.OrderByID(1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.UserID)
		assert.Equal(t, int64(2), got.ProductID)
		assert.Equal(t, 3, got.Quantity)
		assert.Equal(t, 29.97, got.TotalPrice)
		assert.Equal(t, entity.StatusPending, got.Status)
	})

	t.Run("empty reads return empty slices", func(t *testing.T) {
		st := open(t)
		defer func() { _ = st.Close() }()

		users, err := st.Users()
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, func(t *testing.T) Store {
		return NewMemory()
	})
}

func TestBoltStore(t *testing.T) {
	runStoreTests(t, func(t *testing.T) Store {
		st, err := OpenBolt(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		return st
	})
}

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	st, err := OpenBolt(path)
	require.NoError(t, err)
	_, err = st.InsertUsers([]*entity.User{newUser("a"), newUser("b")})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = OpenBolt(path)
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	users, err := st.Users()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	// The sequence continues after reopen; ids never repeat.
	ids, err := st.InsertUsers([]*entity.User{newUser("c")})
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids)
}

func TestMemoryStore_ReadsDoNotAliasState(t *testing.T) {
	st := NewMemory()
	_, err := st.InsertProducts([]*entity.Product{newProduct(10.00)})
	require.NoError(t, err)

	p, err := st.ProductByID(1)
	require.NoError(t, err)
	p.Price = 999.99

	again, err := st.ProductByID(1)
	require.NoError(t, err)
	assert.Equal(t, 10.00, again.Price, "mutating a read result must not change committed state")
}

func newUser(name string) *entity.User {
	return &entity.User{
		Name:      name,
		Email:     name + "@example.com",
		Address:   "1 Main St, Springfield, IL 62704",
		Phone:     "+1-555-000-0000",
		BirthDate: time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

func newProduct(price float64) *entity.Product {
	return &entity.Product{
		Name:          "widget",
		Description:   "A widget.",
		Price:         price,
		Category:      "tools",
		StockQuantity: 5,
		CreatedAt:     time.Now().UTC(),
	}
}
