package service

import (
	"context"
	"fmt"

	"github.com/Axocidue/SportsStore/internal/domains/cart/model"
	"github.com/Axocidue/SportsStore/internal/domains/cart/store"
	catalogRepo "github.com/Axocidue/SportsStore/internal/domains/catalog/repository"
	checkoutModel "github.com/Axocidue/SportsStore/internal/domains/checkout/model"
	checkoutService "github.com/Axocidue/SportsStore/internal/domains/checkout/service"
	"github.com/Axocidue/SportsStore/pkg/logger"
)

// CartService loads the session's cart around each operation, applies the
// aggregate mutation, and persists the result. The session middleware
// guarantees one session key per browser, and the store holds one cart
// per key, so each cart has a single writer.
type CartService struct {
	catalog  catalogRepo.RepositoryInterface
	carts    store.StoreInterface
	checkout checkoutService.ServiceInterface
}

func NewCartService(
	catalog catalogRepo.RepositoryInterface,
	carts store.StoreInterface,
	checkout checkoutService.ServiceInterface,
) ServiceInterface {
	if checkout == nil {
		panic("cart: checkout service is required")
	}
	return &CartService{
		catalog:  catalog,
		carts:    carts,
		checkout: checkout,
	}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart.ToResponse(), nil
}

// AddItem resolves the product in the catalog and merges it into the
// session's cart. The full product is snapshotted into the line; totals
// are still recomputed per request, so a later catalog price change shows
// up the next time the product is re-added.
func (s *CartService) AddItem(ctx context.Context, sessionID string, req model.AddItemRequest) (*model.CartResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product, err := s.catalog.ProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	if err := cart.AddItem(*product, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	return cart.ToResponse(), nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (*model.CartResponse, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	cart.RemoveLine(productID)

	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	return cart.ToResponse(), nil
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Checkout runs the checkout workflow against the session's cart. The
// stored cart only changes when the workflow completes: a failed outcome
// leaves the persisted lines exactly as they were so the shopper can fix
// the problem and retry.
func (s *CartService) Checkout(ctx context.Context, sessionID string, details checkoutModel.ShippingDetails) (checkoutModel.Result, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return checkoutModel.Result{}, fmt.Errorf("get cart: %w", err)
	}

	result := s.checkout.Checkout(ctx, cart, details)
	if !result.Completed {
		return result, nil
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		// The order is already placed; losing the delete only leaves an
		// empty-looking cart behind. Log and report success anyway.
		logger.Error("failed to clear cart after checkout", err)
	}

	return result, nil
}
