package service

import (
	"context"

	"github.com/Axocidue/SportsStore/internal/domains/cart/model"
	checkoutModel "github.com/Axocidue/SportsStore/internal/domains/checkout/model"
)

type ServiceInterface interface {
	GetCart(ctx context.Context, sessionID string) (*model.CartResponse, error)
	AddItem(ctx context.Context, sessionID string, req model.AddItemRequest) (*model.CartResponse, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*model.CartResponse, error)
	ClearCart(ctx context.Context, sessionID string) error
	Checkout(ctx context.Context, sessionID string, details checkoutModel.ShippingDetails) (checkoutModel.Result, error)
}
