package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartModel "github.com/Axocidue/SportsStore/internal/domains/cart/model"
	"github.com/Axocidue/SportsStore/internal/domains/cart/store"
	catalogModel "github.com/Axocidue/SportsStore/internal/domains/catalog/model"
	catalogRepo "github.com/Axocidue/SportsStore/internal/domains/catalog/repository"
	checkoutModel "github.com/Axocidue/SportsStore/internal/domains/checkout/model"
	checkoutService "github.com/Axocidue/SportsStore/internal/domains/checkout/service"
)

type recordingProcessor struct {
	calls int
	err   error
}

func (p *recordingProcessor) ProcessOrder(ctx context.Context, cart *cartModel.Cart, details checkoutModel.ShippingDetails) error {
	p.calls++
	return p.err
}

func newTestService(processor checkoutService.OrderProcessor) (ServiceInterface, store.StoreInterface) {
	repo := catalogRepo.NewMemoryRepository([]catalogModel.Product{
		{ID: 1, Name: "Kayak", Category: "Watersports", Price: decimal.RequireFromString("275.00")},
		{ID: 2, Name: "Soccer Ball", Category: "Soccer", Price: decimal.RequireFromString("19.50")},
	})
	carts := store.NewMemoryStore()
	checkout := checkoutService.NewCheckoutService(processor, time.Second)
	return NewCartService(repo, carts, checkout), carts
}

func validShipping() checkoutModel.ShippingDetails {
	return checkoutModel.ShippingDetails{
		Name: "Alex", Line1: "123 Main St", City: "Lund", Country: "Sweden", Zip: "22100",
	}
}

func TestCartService_AddItemPersistsLine(t *testing.T) {
	svc, carts := newTestService(&recordingProcessor{})
	ctx := context.Background()

	resp, err := svc.AddItem(ctx, "sess-1", cartModel.AddItemRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "550.00", resp.Total)

	// The line survives a fresh load from the store
	stored, err := carts.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, stored.Lines(), 1)
	assert.Equal(t, 2, stored.Lines()[0].Quantity)
}

func TestCartService_AddItemMergesAcrossRequests(t *testing.T) {
	svc, _ := newTestService(&recordingProcessor{})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", cartModel.AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess-1", cartModel.AddItemRequest{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	resp, err := svc.AddItem(ctx, "sess-1", cartModel.AddItemRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 2)
	assert.Equal(t, int64(1), resp.Lines[0].ProductID)
	assert.Equal(t, 4, resp.Lines[0].Quantity)
	assert.Equal(t, "1119.50", resp.Total) // 275*4 + 19.50
}

func TestCartService_AddItemUnknownProduct(t *testing.T) {
	svc, _ := newTestService(&recordingProcessor{})

	_, err := svc.AddItem(context.Background(), "sess-1", cartModel.AddItemRequest{ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, catalogModel.ErrProductNotFound)
}

func TestCartService_AddItemRejectsInvalidRequest(t *testing.T) {
	svc, carts := newTestService(&recordingProcessor{})

	_, err := svc.AddItem(context.Background(), "sess-1", cartModel.AddItemRequest{ProductID: 1, Quantity: 0})
	require.Error(t, err)

	stored, err := carts.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.True(t, stored.IsEmpty())
}

func TestCartService_RemoveItem(t *testing.T) {
	svc, _ := newTestService(&recordingProcessor{})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", cartModel.AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess-1", cartModel.AddItemRequest{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	resp, err := svc.RemoveItem(ctx, "sess-1", 1)
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, int64(2), resp.Lines[0].ProductID)
}

func TestCartService_CheckoutCompletedEmptiesStoredCart(t *testing.T) {
	processor := &recordingProcessor{}
	svc, carts := newTestService(processor)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", cartModel.AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	result, err := svc.Checkout(ctx, "sess-1", validShipping())
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Equal(t, 1, processor.calls)

	stored, err := carts.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, stored.IsEmpty())
}

func TestCartService_CheckoutFailureKeepsStoredCart(t *testing.T) {
	processor := &recordingProcessor{err: errors.New("delivery unreachable")}
	svc, carts := newTestService(processor)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", cartModel.AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	result, err := svc.Checkout(ctx, "sess-1", validShipping())
	require.NoError(t, err)
	assert.False(t, result.Completed)

	// The order was not placed; the shopper can retry with the same cart
	stored, err := carts.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, stored.Lines(), 1)
}

func TestCartService_CheckoutEmptyCartFails(t *testing.T) {
	processor := &recordingProcessor{}
	svc, _ := newTestService(processor)

	result, err := svc.Checkout(context.Background(), "sess-1", validShipping())
	require.NoError(t, err)
	assert.False(t, result.Completed)
	assert.NotEmpty(t, result.Errors)
	assert.Equal(t, 0, processor.calls)
}
