package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthd/synthd/pkg/entity"
	"github.com/synthd/synthd/pkg/faker"
	"github.com/synthd/synthd/pkg/store"
)

func newTestEngine(st store.Store, seed uint64) *Engine {
	fk := faker.NewSeeded("en-US", seed)
	return New(st, NewFactory(fk, nil, nil), fk, nil)
}

func TestGenerate_CountsAndReferences(t *testing.T) {
	st := store.NewMemory()
	eng := newTestEngine(st, 42)

	summary, err := eng.Generate(5, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Users)
	assert.Equal(t, 3, summary.Products)
	assert.Equal(t, 10, summary.Orders)
	assert.NotEmpty(t, summary.RunID)

	users, err := st.Users()
	require.NoError(t, err)
	require.Len(t, users, 5)
	products, err := st.Products()
	require.NoError(t, err)
	require.Len(t, products, 3)
	orders, err := st.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 10)

	userIDs := make(map[int64]bool)
	for _, u := range users {
		userIDs[u.ID] = true
	}
	priceByID := make(map[int64]float64)
	for _, p := range products {
		priceByID[p.ID] = p.Price
	}

	for _, o := range orders {
		assert.True(t, userIDs[o.UserID], "order %d references unknown user %d", o.ID, o.UserID)
		price, ok := priceByID[o.ProductID]
		require.True(t, ok, "order %d references unknown product %d", o.ID, o.ProductID)
		assert.InDelta(t, float64(o.Quantity)*price, o.TotalPrice, 0.005,
			"order %d total must be quantity x product price at creation", o.ID)
	}
}

func TestGenerate_ZeroCountsAreLegal(t *testing.T) {
	st := store.NewMemory()
	eng := newTestEngine(st, 1)

	summary, err := eng.Generate(0, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, summary.Users)
	assert.Zero(t, summary.Products)
	assert.Zero(t, summary.Orders)
}

func TestGenerate_OrdersWithoutReferentsFail(t *testing.T) {
	st := store.NewMemory()
	eng := newTestEngine(st, 2)

	summary, err := eng.Generate(0, 0, 5)
	require.Error(t, err)

	var refErr *ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, entity.KindUser, refErr.Missing)
	assert.Zero(t, summary.Orders, "no orders may be produced without referents")

	orders, readErr := st.Orders()
	require.NoError(t, readErr)
	assert.Empty(t, orders)
}

func TestGenerate_MissingProductsReported(t *testing.T) {
	st := store.NewMemory()
	eng := newTestEngine(st, 3)

	_, err := eng.Generate(2, 0, 5)
	require.Error(t, err)

	var refErr *ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, entity.KindProduct, refErr.Missing)
}

func TestGenerate_PartialCommitSurvivesOrderFailure(t *testing.T) {
	st := store.NewMemory()
	eng := newTestEngine(st, 4)

	summary, err := eng.Generate(3, 0, 5)
	require.Error(t, err)
	assert.Equal(t, 3, summary.Users)

	// No rollback: the committed user batch stays.
	users, readErr := st.Users()
	require.NoError(t, readErr)
	assert.Len(t, users, 3)
}

func TestGenerate_ZeroCountsFallBackToPriorEntities(t *testing.T) {
	st := store.NewMemory()

	_, err := newTestEngine(st, 5).Generate(2, 2, 0)
	require.NoError(t, err)

	// A later run with zero users/products can still reference them.
	summary, err := newTestEngine(st, 6).Generate(0, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Orders)

	orders, err := st.Orders()
	require.NoError(t, err)
	for _, o := range orders {
		assert.Contains(t, []int64{1, 2}, o.UserID)
		assert.Contains(t, []int64{1, 2}, o.ProductID)
	}
}

func TestGenerate_NegativeCountsRejected(t *testing.T) {
	eng := newTestEngine(store.NewMemory(), 7)

	_, err := eng.Generate(-1, 0, 0)
	require.Error(t, err)
}

func TestGenerate_TotalPriceIsFrozenSnapshot(t *testing.T) {
	st := store.NewMemory()
	eng := newTestEngine(st, 8)

	_, err := eng.Generate(1, 1, 3)
	require.NoError(t, err)

	product, err := st.ProductByID(1)
	require.NoError(t, err)
	orders, err := st.Orders()
	require.NoError(t, err)

	want := make(map[int64]float64, len(orders))
	for _, o := range orders {
		want[o.ID] = o.TotalPrice
		assert.InDelta(t, float64(o.Quantity)*product.Price, o.TotalPrice, 0.005)
	}

	// A second run re-reads products but must never touch prior orders.
	_, err = eng.Generate(0, 1, 2)
	require.NoError(t, err)

	after, err := st.Orders()
	require.NoError(t, err)
	for _, o := range after {
		if prev, ok := want[o.ID]; ok {
			assert.Equal(t, prev, o.TotalPrice, "order %d total was recomputed", o.ID)
		}
	}
}

func TestGenerate_FailingEnhancerDoesNotAffectOutcome(t *testing.T) {
	st := store.NewMemory()
	fk := faker.NewSeeded("en-US", 9)
	eng := New(st, NewFactory(fk, failingEnhancer{}, nil), fk, nil)

	summary, err := eng.Generate(4, 2, 6)
	require.NoError(t, err, "enhancement failures must never surface")
	assert.Equal(t, 4, summary.Users)
	assert.Equal(t, 6, summary.Orders)
}

func TestGenerate_SeededRunsAreReproducible(t *testing.T) {
	run := func() ([]*entity.Order, []*entity.User) {
		st := store.NewMemory()
		eng := newTestEngine(st, 1234)
		_, err := eng.Generate(5, 5, 20)
		require.NoError(t, err)
		orders, err := st.Orders()
		require.NoError(t, err)
		users, err := st.Users()
		require.NoError(t, err)
		return orders, users
	}

	orders1, users1 := run()
	orders2, users2 := run()

	require.Len(t, orders2, len(orders1))
	for i := range orders1 {
		assert.Equal(t, orders1[i].UserID, orders2[i].UserID)
		assert.Equal(t, orders1[i].ProductID, orders2[i].ProductID)
		assert.Equal(t, orders1[i].Quantity, orders2[i].Quantity)
		assert.Equal(t, orders1[i].Status, orders2[i].Status)
	}
	for i := range users1 {
		assert.Equal(t, users1[i].Name, users2[i].Name)
		assert.Equal(t, users1[i].Email, users2[i].Email)
	}
}
