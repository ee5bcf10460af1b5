package store

import (
	"context"

	"github.com/Axocidue/SportsStore/internal/domains/cart/model"
)

// StoreInterface keeps one cart per session key across requests. Get on an
// unknown session returns a fresh empty cart, never an error: a browsing
// session always has a cart.
type StoreInterface interface {
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	Save(ctx context.Context, sessionID string, cart *model.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
