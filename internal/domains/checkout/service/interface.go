package service

import (
	"context"

	cartModel "github.com/Axocidue/SportsStore/internal/domains/cart/model"
	"github.com/Axocidue/SportsStore/internal/domains/checkout/model"
)

// OrderProcessor is the pluggable order-submission capability. A
// processor consumes the finalized cart plus shipping details and
// performs a side-effecting notification: compose an order summary and
// dispatch it through some out-of-band channel.
//
// The call is synchronous from the workflow's point of view. A returned
// error means the order was NOT confirmed as placed and must surface as
// a failed checkout.
type OrderProcessor interface {
	ProcessOrder(ctx context.Context, cart *cartModel.Cart, details model.ShippingDetails) error
}

// ServiceInterface runs the validate-then-submit checkout workflow
type ServiceInterface interface {
	Checkout(ctx context.Context, cart *cartModel.Cart, details model.ShippingDetails) model.Result
}
