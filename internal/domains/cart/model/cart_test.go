package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/Axocidue/SportsStore/internal/domains/catalog/model"
)

func product(id int64, name, price string) catalog.Product {
	return catalog.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func TestAddItem_NewLines(t *testing.T) {
	p1 := product(1, "P1", "10.00")
	p2 := product(2, "P2", "20.00")

	cart := NewCart()
	require.NoError(t, cart.AddItem(p1, 1))
	require.NoError(t, cart.AddItem(p2, 1))

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].Product.ID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, int64(2), lines[1].Product.ID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestAddItem_MergesQuantityForExistingLine(t *testing.T) {
	p1 := product(1, "P1", "10.00")
	p2 := product(2, "P2", "20.00")

	cart := NewCart()
	require.NoError(t, cart.AddItem(p1, 1))
	require.NoError(t, cart.AddItem(p2, 1))
	require.NoError(t, cart.AddItem(p1, 10))

	lines := cart.Lines()
	require.Len(t, lines, 2)
	// p1 keeps its first-add position even after the merge
	assert.Equal(t, int64(1), lines[0].Product.ID)
	assert.Equal(t, 11, lines[0].Quantity)
	assert.Equal(t, int64(2), lines[1].Product.ID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	p1 := product(1, "P1", "10.00")

	cart := NewCart()
	assert.ErrorIs(t, cart.AddItem(p1, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.AddItem(p1, -3), ErrInvalidQuantity)
	assert.Empty(t, cart.Lines())
}

func TestAddItem_DistinctLinesMatchDistinctProducts(t *testing.T) {
	p1 := product(1, "P1", "1.00")
	p2 := product(2, "P2", "1.00")
	p3 := product(3, "P3", "1.00")

	cart := NewCart()
	for _, add := range []struct {
		p   catalog.Product
		qty int
	}{
		{p1, 2}, {p2, 1}, {p1, 3}, {p3, 4}, {p2, 2}, {p1, 1},
	} {
		require.NoError(t, cart.AddItem(add.p, add.qty))
	}

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, 6, lines[0].Quantity) // p1: 2+3+1
	assert.Equal(t, 3, lines[1].Quantity) // p2: 1+2
	assert.Equal(t, 4, lines[2].Quantity) // p3: 4
}

func TestRemoveLine(t *testing.T) {
	p1 := product(1, "P1", "10.00")
	p2 := product(2, "P2", "20.00")
	p3 := product(3, "P3", "30.00")

	cart := NewCart()
	require.NoError(t, cart.AddItem(p1, 1))
	require.NoError(t, cart.AddItem(p2, 3))
	require.NoError(t, cart.AddItem(p3, 5))
	require.NoError(t, cart.AddItem(p2, 1))

	cart.RemoveLine(2)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].Product.ID)
	assert.Equal(t, int64(3), lines[1].Product.ID)
}

func TestRemoveLine_AbsentProductIsNoop(t *testing.T) {
	p1 := product(1, "P1", "10.00")

	cart := NewCart()
	require.NoError(t, cart.AddItem(p1, 2))

	cart.RemoveLine(99)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestComputeTotalValue(t *testing.T) {
	p1 := product(1, "P1", "100.00")
	p2 := product(2, "P2", "50.00")

	cart := NewCart()
	require.NoError(t, cart.AddItem(p1, 1))
	require.NoError(t, cart.AddItem(p2, 1))
	require.NoError(t, cart.AddItem(p1, 3))

	assert.True(t, cart.ComputeTotalValue().Equal(decimal.RequireFromString("450.00")),
		"expected 450.00, got %s", cart.ComputeTotalValue())
}

func TestComputeTotalValue_ExactDecimalArithmetic(t *testing.T) {
	// 0.1 * 3 would drift under binary floating point
	p := product(1, "P1", "0.10")

	cart := NewCart()
	require.NoError(t, cart.AddItem(p, 3))

	assert.Equal(t, "0.30", cart.ComputeTotalValue().StringFixed(2))
}

func TestClear_IsIdempotent(t *testing.T) {
	p1 := product(1, "P1", "100.00")

	cart := NewCart()
	require.NoError(t, cart.AddItem(p1, 1))

	cart.Clear()
	assert.Empty(t, cart.Lines())
	assert.True(t, cart.IsEmpty())

	cart.Clear()
	assert.Empty(t, cart.Lines())
}

func TestCart_JSONRoundTripPreservesOrder(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(product(3, "P3", "3.00"), 2))
	require.NoError(t, cart.AddItem(product(1, "P1", "1.00"), 1))
	require.NoError(t, cart.AddItem(product(2, "P2", "2.00"), 5))

	data, err := json.Marshal(cart)
	require.NoError(t, err)

	restored := NewCart()
	require.NoError(t, json.Unmarshal(data, restored))

	lines := restored.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, int64(3), lines[0].Product.ID)
	assert.Equal(t, int64(1), lines[1].Product.ID)
	assert.Equal(t, int64(2), lines[2].Product.ID)
	assert.Equal(t, 5, lines[2].Quantity)
	assert.True(t, restored.ComputeTotalValue().Equal(cart.ComputeTotalValue()))
}
