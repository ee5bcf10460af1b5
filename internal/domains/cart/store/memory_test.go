package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Axocidue/SportsStore/internal/domains/cart/model"
	catalog "github.com/Axocidue/SportsStore/internal/domains/catalog/model"
)

func storedCart(t *testing.T) *model.Cart {
	t.Helper()
	cart := model.NewCart()
	require.NoError(t, cart.AddItem(catalog.Product{ID: 2, Name: "P2", Price: decimal.New(5, 0)}, 3))
	require.NoError(t, cart.AddItem(catalog.Product{ID: 1, Name: "P1", Price: decimal.New(7, 0)}, 1))
	return cart
}

func TestMemoryStore_UnknownSessionYieldsEmptyCart(t *testing.T) {
	s := NewMemoryStore()

	cart, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestMemoryStore_RoundTripPreservesLines(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "sess-1", storedCart(t)))

	got, err := s.Get(ctx, "sess-1")
	require.NoError(t, err)

	lines := got.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(2), lines[0].Product.ID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, int64(1), lines[1].Product.ID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestMemoryStore_GetHandsOutIndependentCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "sess-1", storedCart(t)))

	first, err := s.Get(ctx, "sess-1")
	require.NoError(t, err)
	first.Clear()

	second, err := s.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, second.Lines(), 2, "mutating one copy must not affect the stored cart")
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "sess-1", storedCart(t)))

	other, err := s.Get(ctx, "sess-2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "sess-1", storedCart(t)))
	require.NoError(t, s.Delete(ctx, "sess-1"))

	cart, err := s.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// Deleting again is harmless
	require.NoError(t, s.Delete(ctx, "sess-1"))
}
