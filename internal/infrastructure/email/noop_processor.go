package email

import (
	"context"

	cartModel "github.com/Axocidue/SportsStore/internal/domains/cart/model"
	checkoutModel "github.com/Axocidue/SportsStore/internal/domains/checkout/model"
	"github.com/Axocidue/SportsStore/pkg/logger"
)

// NoopOrderProcessor accepts every order without dispatching anything.
// Default in development so checkout works without an SMTP server.
type NoopOrderProcessor struct{}

func NewNoopOrderProcessor() *NoopOrderProcessor {
	return &NoopOrderProcessor{}
}

func (p *NoopOrderProcessor) ProcessOrder(ctx context.Context, cart *cartModel.Cart, details checkoutModel.ShippingDetails) error {
	logger.Info("order accepted (noop processor)", map[string]interface{}{
		"items": cart.ItemsCount(),
		"total": cart.ComputeTotalValue().StringFixed(2),
	})
	return nil
}
